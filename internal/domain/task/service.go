package task

import "context"

type TaskService interface {
	Create(ctx context.Context, req CreateTaskRequest) (*Task, error)
	Get(ctx context.Context, id string) (*Task, error)
	List(ctx context.Context, filter ListFilter) ([]TaskResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]Task, error)
	Update(ctx context.Context, req UpdateTaskRequest) (*Task, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*Task, error)
	Delete(ctx context.Context, id string) error
	MyStats(ctx context.Context, employeeID string) (Stats, error)
}
