package leave

import (
	"context"
)

type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (*LeaveRequest, error)
	Get(ctx context.Context, id string) (*LeaveRequest, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveRequestResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	ApprovedDaysInMonth(ctx context.Context, employeeID string, month, year int) (int, []IntervalDays, error)
}
