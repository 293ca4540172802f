package leave

import (
	"testing"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func approved(id string, from, to time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         id,
		EmployeeID: "emp-1",
		Type:       leave.TypeCasual,
		FromDate:   from,
		ToDate:     to,
		Status:     leave.StatusApproved,
	}
}

func TestMonthBounds(t *testing.T) {
	start, end, err := MonthBounds(2, 2024)
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.March, 1), start)
	assert.Equal(t, 2024, end.Year())
	assert.Equal(t, time.March, end.Month())
	assert.Equal(t, 31, end.Day())
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
}

func TestMonthBoundsFebruaryLeapYear(t *testing.T) {
	_, end, err := MonthBounds(1, 2024)
	require.NoError(t, err)
	assert.Equal(t, 29, end.Day())

	_, end, err = MonthBounds(1, 2023)
	require.NoError(t, err)
	assert.Equal(t, 28, end.Day())
}

func TestMonthBoundsInvalid(t *testing.T) {
	_, _, err := MonthBounds(12, 2024)
	assert.Error(t, err)

	_, _, err = MonthBounds(-1, 2024)
	assert.Error(t, err)

	_, _, err = MonthBounds(3, 24)
	assert.Error(t, err)
}

func TestApprovedDaysFullWeek(t *testing.T) {
	// 2024-03-11 is a Monday, 2024-03-15 a Friday
	requests := []leave.LeaveRequest{
		approved("lr-1", date(2024, time.March, 11), date(2024, time.March, 15)),
	}

	total, breakdown, err := ApprovedDaysInMonth(requests, 2, 2024)
	require.NoError(t, err)

	assert.Equal(t, 5, total)
	require.Len(t, breakdown, 1)
	assert.Equal(t, "lr-1", breakdown[0].RequestID)
	assert.Equal(t, leave.TypeCasual, breakdown[0].Type)
	assert.Equal(t, 5, breakdown[0].Days)
}

func TestApprovedDaysWeekendExcluded(t *testing.T) {
	// 2024-03-08 (Fri) through 2024-03-11 (Mon): Sat and Sun drop out
	requests := []leave.LeaveRequest{
		approved("lr-1", date(2024, time.March, 8), date(2024, time.March, 11)),
	}

	total, _, err := ApprovedDaysInMonth(requests, 2, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestApprovedDaysClippedToMonth(t *testing.T) {
	// Request spills into April; only March days count.
	// 2024-03-28 (Thu) .. 2024-03-31 (Sun) → Thu, Fri
	requests := []leave.LeaveRequest{
		approved("lr-1", date(2024, time.March, 28), date(2024, time.April, 5)),
	}

	total, breakdown, err := ApprovedDaysInMonth(requests, 2, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, breakdown, 1)
	assert.Equal(t, date(2024, time.March, 28), breakdown[0].From)
	assert.Equal(t, time.March, breakdown[0].To.Month())
}

func TestApprovedDaysSpanningFromPreviousMonth(t *testing.T) {
	// 2024-02-26 (Mon) .. 2024-03-01 (Fri): only March 1st counts for March
	requests := []leave.LeaveRequest{
		approved("lr-1", date(2024, time.February, 26), date(2024, time.March, 1)),
	}

	total, _, err := ApprovedDaysInMonth(requests, 2, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestApprovedDaysNoOverlap(t *testing.T) {
	requests := []leave.LeaveRequest{
		approved("lr-1", date(2024, time.January, 8), date(2024, time.January, 12)),
	}

	total, breakdown, err := ApprovedDaysInMonth(requests, 2, 2024)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, breakdown)
}

func TestApprovedDaysIgnoresUnapproved(t *testing.T) {
	pending := approved("lr-1", date(2024, time.March, 11), date(2024, time.March, 15))
	pending.Status = leave.StatusPending

	total, breakdown, err := ApprovedDaysInMonth([]leave.LeaveRequest{pending}, 2, 2024)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, breakdown)
}

func TestApprovedDaysMultipleIntervals(t *testing.T) {
	requests := []leave.LeaveRequest{
		approved("lr-1", date(2024, time.March, 4), date(2024, time.March, 5)),   // Mon, Tue
		approved("lr-2", date(2024, time.March, 20), date(2024, time.March, 22)), // Wed..Fri
	}

	total, breakdown, err := ApprovedDaysInMonth(requests, 2, 2024)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, breakdown, 2)
}

func TestCountWorkingDaysSingleDay(t *testing.T) {
	// 2024-03-16 is a Saturday
	assert.Equal(t, 0, countWorkingDays(date(2024, time.March, 16), date(2024, time.March, 16)))
	assert.Equal(t, 1, countWorkingDays(date(2024, time.March, 18), date(2024, time.March, 18)))
}
