package leave

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeID string    `json:"-"`
	Type       LeaveType `json:"type"`
	FromDate   string    `json:"from_date"`
	ToDate     string    `json:"to_date"`
	Reason     *string   `json:"reason,omitempty"`

	from time.Time
	to   time.Time
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	// EmployeeID
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	// Type
	if !r.Type.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of sick, casual, earned",
		})
	}

	// FromDate
	from, fromOK := validator.IsValidDate(r.FromDate)
	if validator.IsEmpty(r.FromDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date is required",
		})
	} else if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be a valid date (YYYY-MM-DD)",
		})
	}

	// ToDate
	to, toOK := validator.IsValidDate(r.ToDate)
	if validator.IsEmpty(r.ToDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date is required",
		})
	} else if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be a valid date (YYYY-MM-DD)",
		})
	}

	// Range
	if fromOK && toOK && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must not be before from_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.from = from
	r.to = to
	return nil
}

// From returns the parsed from date. Only valid after Validate succeeds.
func (r *ApplyLeaveRequest) From() time.Time { return r.from }

// To returns the parsed to date. Only valid after Validate succeeds.
func (r *ApplyLeaveRequest) To() time.Time { return r.to }

type ListFilter struct {
	Status     *Status
	EmployeeID *string
}
