package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string          `json:"id"`
	UserID           *string         `json:"user_id,omitempty"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	DepartmentID     *string         `json:"department_id,omitempty"`
	Salary           decimal.Decimal `json:"salary"`
	ProfileImageURL  *string         `json:"profile_image_url,omitempty"`
	TotalLeaves      int             `json:"total_leaves"`
	PaymentsReceived int             `json:"payments_received"`
	OnLeave          bool            `json:"on_leave"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        *time.Time      `json:"updated_at,omitempty"`
}

// EmployeeResponse joins in the department name, which lives in another table.
type EmployeeResponse struct {
	Employee
	DepartmentName *string `json:"department_name,omitempty"`
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLeave   AttendanceStatus = "leave"
)

func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave:
		return true
	}
	return false
}

type Attendance struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employee_id"`
	Date       time.Time        `json:"date"`
	Status     AttendanceStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
}
