package task

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	AssignedTo  string   `json:"assigned_to"`
	AssignedBy  string   `json:"-"`
	Priority    Priority `json:"priority,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"`
	AdminNotes  *string  `json:"admin_notes,omitempty"`

	due *time.Time
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	// Title
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}

	// AssignedTo
	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to is required",
		})
	}

	// Priority
	if r.Priority != "" && !r.Priority.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of low, medium, high, urgent",
		})
	}

	// DueDate
	if r.DueDate != nil {
		due, ok := validator.IsValidDate(*r.DueDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be a valid date (YYYY-MM-DD)",
			})
		} else {
			r.due = &due
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Due returns the parsed due date. Only valid after Validate succeeds.
func (r *CreateTaskRequest) Due() *time.Time { return r.due }

type UpdateTaskRequest struct {
	ID          string    `json:"-"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	AssignedTo  *string   `json:"assigned_to,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	AdminNotes  *string   `json:"admin_notes,omitempty"`

	due *time.Time
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	// ID
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	// Title
	if r.Title != nil {
		if validator.IsEmpty(*r.Title) {
			errs = append(errs, validator.ValidationError{
				Field:   "title",
				Message: "title must not be empty",
			})
		}
		if len(*r.Title) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "title",
				Message: "title must not exceed 255 characters",
			})
		}
	}

	// Priority
	if r.Priority != nil && !r.Priority.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of low, medium, high, urgent",
		})
	}

	// Status
	if r.Status != nil && !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, in_progress, completed, cancelled",
		})
	}

	// DueDate
	if r.DueDate != nil {
		due, ok := validator.IsValidDate(*r.DueDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "due_date must be a valid date (YYYY-MM-DD)",
			})
		} else {
			r.due = &due
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Due returns the parsed due date. Only valid after Validate succeeds.
func (r *UpdateTaskRequest) Due() *time.Time { return r.due }

type UpdateStatusRequest struct {
	ID            string  `json:"-"`
	EmployeeID    string  `json:"-"`
	Status        Status  `json:"status"`
	EmployeeNotes *string `json:"employee_notes,omitempty"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	// ID
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	// Status
	if !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, in_progress, completed, cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	Status     *Status
	Priority   *Priority
	AssignedTo *string
}
