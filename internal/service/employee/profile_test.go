package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestProfileCompletionAllFilled(t *testing.T) {
	e := &employee.Employee{
		Name:            "Alice",
		Email:           "alice@example.com",
		DepartmentID:    strPtr("dep-1"),
		Salary:          decimal.NewFromInt(50000),
		ProfileImageURL: strPtr("http://localhost:5000/uploads/alice.png"),
	}

	assert.Equal(t, 100, ProfileCompletion(e))
}

func TestProfileCompletionEmpty(t *testing.T) {
	assert.Equal(t, 0, ProfileCompletion(&employee.Employee{}))
}

func TestProfileCompletionPartial(t *testing.T) {
	e := &employee.Employee{
		Name:   "Bob",
		Email:  "bob@example.com",
		Salary: decimal.NewFromInt(40000),
	}

	// 3 of 5 fields filled
	assert.Equal(t, 60, ProfileCompletion(e))
}

func TestProfileCompletionZeroSalaryUnfilled(t *testing.T) {
	e := &employee.Employee{
		Name:            "Carol",
		Email:           "carol@example.com",
		DepartmentID:    strPtr("dep-1"),
		Salary:          decimal.Zero,
		ProfileImageURL: strPtr("http://localhost:5000/uploads/carol.png"),
	}

	// salary 0 does not count as filled
	assert.Equal(t, 80, ProfileCompletion(e))
}

func TestProfileCompletionBlankStringsUnfilled(t *testing.T) {
	e := &employee.Employee{
		Name:         "  ",
		Email:        "dave@example.com",
		DepartmentID: strPtr(""),
	}

	assert.Equal(t, 20, ProfileCompletion(e))
}
