package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, lr *LeaveRequest) error
	GetByID(ctx context.Context, id string) (*LeaveRequest, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveRequestResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	CountByStatus(ctx context.Context, employeeID *string) (map[Status]int, error)
	DeleteByEmployee(ctx context.Context, employeeID string) error
	ListOrphaned(ctx context.Context) ([]string, error)
	DeleteByIDs(ctx context.Context, ids []string) error
	ListEmployeesOnLeave(ctx context.Context, day time.Time) ([]string, error)
}
