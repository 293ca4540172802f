package task

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/task"
)

type TaskServiceImpl struct {
	taskRepo     task.Repository
	employeeRepo employee.Repository
	now          func() time.Time
}

func NewTaskService(taskRepo task.Repository, employeeRepo employee.Repository) task.TaskService {
	return &TaskServiceImpl{
		taskRepo:     taskRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (*task.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.AssignedTo); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = task.PriorityMedium
	}

	t := &task.Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		AssignedBy:  req.AssignedBy,
		Status:      task.StatusPending,
		Priority:    priority,
		DueDate:     req.Due(),
		AdminNotes:  req.AdminNotes,
	}

	if err := s.taskRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// Get implements task.TaskService.
func (s *TaskServiceImpl) Get(ctx context.Context, id string) (*task.Task, error) {
	return s.taskRepo.GetByID(ctx, id)
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, filter task.ListFilter) ([]task.TaskResponse, error) {
	return s.taskRepo.List(ctx, filter)
}

// ListMine implements task.TaskService.
func (s *TaskServiceImpl) ListMine(ctx context.Context, employeeID string) ([]task.Task, error) {
	return s.taskRepo.ListByAssignee(ctx, employeeID)
}

// Update implements task.TaskService. Admin path: any field may change.
func (s *TaskServiceImpl) Update(ctx context.Context, req task.UpdateTaskRequest) (*task.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.AssignedTo != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.AssignedTo); err != nil {
			return nil, err
		}
		t.AssignedTo = *req.AssignedTo
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.AdminNotes != nil {
		t.AdminNotes = req.AdminNotes
	}
	if req.Due() != nil {
		t.DueDate = req.Due()
	}
	if req.Status != nil {
		applyStatus(t, *req.Status, s.now())
	}

	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// UpdateStatus implements task.TaskService. Employee path: scoped to the
// employee's own assignment, and limited to status plus employee notes.
// A task assigned to someone else is a forbidden access, not a missing task.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, req task.UpdateStatusRequest) (*task.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if t.AssignedTo != req.EmployeeID {
		return nil, task.ErrTaskNotOwned
	}

	applyStatus(t, req.Status, s.now())
	if req.EmployeeNotes != nil {
		t.EmployeeNotes = req.EmployeeNotes
	}

	if err := s.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}

// MyStats implements task.TaskService.
func (s *TaskServiceImpl) MyStats(ctx context.Context, employeeID string) (task.Stats, error) {
	return s.taskRepo.StatsByAssignee(ctx, employeeID)
}

// applyStatus writes a status transition onto t. Completing a task stamps
// completed_at; leaving the completed state clears it.
func applyStatus(t *task.Task, status task.Status, now time.Time) {
	if t.Status == status {
		return
	}

	t.Status = status
	if status == task.StatusCompleted {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
}
