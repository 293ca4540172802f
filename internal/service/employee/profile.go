package employee

import (
	"math"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

// ProfileCompletion computes the percentage of profile checklist fields that
// are filled: name, email, department, salary, profile image. A zero salary
// counts as unfilled, matching the stored-record truthiness semantics.
func ProfileCompletion(e *employee.Employee) int {
	checks := []bool{
		!validator.IsEmpty(e.Name),
		!validator.IsEmpty(e.Email),
		e.DepartmentID != nil && !validator.IsEmpty(*e.DepartmentID),
		!e.Salary.IsZero(),
		e.ProfileImageURL != nil && !validator.IsEmpty(*e.ProfileImageURL),
	}

	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}

	return int(math.Round(float64(filled) / float64(len(checks)) * 100))
}
