package task

import "context"

type Repository interface {
	Create(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context, filter ListFilter) ([]TaskResponse, error)
	ListByAssignee(ctx context.Context, employeeID string) ([]Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id string) error
	DeleteByAssignee(ctx context.Context, employeeID string) error
	StatsByAssignee(ctx context.Context, employeeID string) (Stats, error)
}
