package summary

import "context"

type SummaryService interface {
	EmployeeSummary(ctx context.Context, employeeID string) (*EmployeeSummary, error)
	AdminSummary(ctx context.Context) (*AdminSummary, error)
}
