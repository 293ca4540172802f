package summary

import "github.com/shopspring/decimal"

// EmployeeSummary is the per-employee dashboard snapshot.
type EmployeeSummary struct {
	LeavesTaken       int `json:"leaves_taken"`
	LeavePending      int `json:"leave_pending"`
	LeaveApproved     int `json:"leave_approved"`
	LeaveRejected     int `json:"leave_rejected"`
	PaymentsReceived  int `json:"payments_received"`
	ProfileCompletion int `json:"profile_completion"`
}

// AdminSummary is the organisation-wide dashboard snapshot.
type AdminSummary struct {
	TotalEmployees   int             `json:"total_employees"`
	TotalDepartments int             `json:"total_departments"`
	MonthlyPay       decimal.Decimal `json:"monthly_pay"`
	LeaveApplied     int             `json:"leave_applied"`
	LeaveApproved    int             `json:"leave_approved"`
	LeavePending     int             `json:"leave_pending"`
	LeaveRejected    int             `json:"leave_rejected"`
}
