package department

import "time"

type Department struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// DepartmentResponse carries the employee headcount alongside the department.
type DepartmentResponse struct {
	Department
	EmployeeCount int `json:"employee_count"`
}
