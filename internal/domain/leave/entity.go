package leave

import "time"

type LeaveType string

const (
	TypeSick   LeaveType = "sick"
	TypeCasual LeaveType = "casual"
	TypeEarned LeaveType = "earned"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case TypeSick, TypeCasual, TypeEarned:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type LeaveRequest struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	Type       LeaveType  `json:"type"`
	FromDate   time.Time  `json:"from_date"`
	ToDate     time.Time  `json:"to_date"`
	Reason     *string    `json:"reason,omitempty"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// LeaveRequestResponse joins in the employee's name for admin listings.
type LeaveRequestResponse struct {
	LeaveRequest
	EmployeeName string `json:"employee_name"`
}

// IntervalDays is the per-request breakdown of working days counted
// toward a month.
type IntervalDays struct {
	RequestID string    `json:"request_id"`
	Type      LeaveType `json:"type"`
	Status    Status    `json:"status"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	Days      int       `json:"days"`
}
