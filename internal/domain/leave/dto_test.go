package leave

import (
	"testing"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyLeaveRequestValid(t *testing.T) {
	req := ApplyLeaveRequest{
		EmployeeID: "emp-1",
		Type:       TypeSick,
		FromDate:   "2024-03-11",
		ToDate:     "2024-03-15",
	}

	require.NoError(t, req.Validate())
	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), req.From())
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), req.To())
}

func TestApplyLeaveRequestReversedRange(t *testing.T) {
	req := ApplyLeaveRequest{
		EmployeeID: "emp-1",
		Type:       TypeCasual,
		FromDate:   "2024-03-15",
		ToDate:     "2024-03-11",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "to_date", errs[0].Field)
}

func TestApplyLeaveRequestInvalidType(t *testing.T) {
	req := ApplyLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "unpaid",
		FromDate:   "2024-03-11",
		ToDate:     "2024-03-15",
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "type")
}

func TestApplyLeaveRequestMissingDates(t *testing.T) {
	req := ApplyLeaveRequest{EmployeeID: "emp-1", Type: TypeEarned}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "from_date")
	assert.Contains(t, m, "to_date")
}

func TestApplyLeaveRequestSingleDay(t *testing.T) {
	req := ApplyLeaveRequest{
		EmployeeID: "emp-1",
		Type:       TypeSick,
		FromDate:   "2024-03-11",
		ToDate:     "2024-03-11",
	}

	assert.NoError(t, req.Validate())
}
