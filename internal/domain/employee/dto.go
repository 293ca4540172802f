package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	DepartmentID *string          `json:"department_id,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	Password     *string          `json:"password,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	// Email
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	// Salary
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	// Password
	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID           string           `json:"-"`
	Name         *string          `json:"name,omitempty"`
	Email        *string          `json:"email,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	// ID
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	// Name
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	// Email
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	// Salary
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordAttendanceRequest struct {
	EmployeeID string           `json:"-"`
	Date       string           `json:"date"`
	Status     AttendanceStatus `json:"status"`

	day time.Time
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	// EmployeeID
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	// Date
	day, dayOK := validator.IsValidDate(r.Date)
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if !dayOK {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid date (YYYY-MM-DD)",
		})
	}

	// Status
	if !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.day = day
	return nil
}

// Day returns the parsed date. Only valid after Validate succeeds.
func (r *RecordAttendanceRequest) Day() time.Time { return r.day }
