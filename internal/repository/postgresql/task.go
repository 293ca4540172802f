package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/task"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.Repository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `id, title, description, assigned_to, assigned_by, status, priority,
	due_date, completed_at, employee_notes, admin_notes, created_at, updated_at`

func scanTask(row pgx.Row) (*task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.AssignedBy, &t.Status, &t.Priority,
		&t.DueDate, &t.CompletedAt, &t.EmployeeNotes, &t.AdminNotes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create implements task.Repository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t *task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (id, title, description, assigned_to, assigned_by, status,
			priority, due_date, employee_notes, admin_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.AssignedTo, t.AssignedBy, t.Status,
		t.Priority, t.DueDate, t.EmployeeNotes, t.AdminNotes,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetByID implements task.Repository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (*task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	t, err := scanTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, task.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// List implements task.Repository.
func (r *taskRepositoryImpl) List(ctx context.Context, filter task.ListFilter) ([]task.TaskResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.title, t.description, t.assigned_to, t.assigned_by, t.status,
			t.priority, t.due_date, t.completed_at, t.employee_notes, t.admin_notes,
			t.created_at, t.updated_at, e.name
		FROM tasks t
		JOIN employees e ON e.id = t.assigned_to
	`

	var args []interface{}
	var conds []string
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("t.status = $%d", len(args)))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		conds = append(conds, fmt.Sprintf("t.priority = $%d", len(args)))
	}
	if filter.AssignedTo != nil {
		args = append(args, *filter.AssignedTo)
		conds = append(conds, fmt.Sprintf("t.assigned_to = $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY t.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.TaskResponse
	for rows.Next() {
		var resp task.TaskResponse
		err := rows.Scan(
			&resp.ID, &resp.Title, &resp.Description, &resp.AssignedTo, &resp.AssignedBy,
			&resp.Status, &resp.Priority, &resp.DueDate, &resp.CompletedAt,
			&resp.EmployeeNotes, &resp.AdminNotes, &resp.CreatedAt, &resp.UpdatedAt,
			&resp.AssigneeName,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ListByAssignee implements task.Repository.
func (r *taskRepositoryImpl) ListByAssignee(ctx context.Context, employeeID string) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE assigned_to = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks by assignee: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.AssignedTo, &t.AssignedBy, &t.Status, &t.Priority,
			&t.DueDate, &t.CompletedAt, &t.EmployeeNotes, &t.AdminNotes, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update implements task.Repository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t *task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET title = $1, description = $2, assigned_to = $3, status = $4, priority = $5,
			due_date = $6, completed_at = $7, employee_notes = $8, admin_notes = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		t.Title, t.Description, t.AssignedTo, t.Status, t.Priority,
		t.DueDate, t.CompletedAt, t.EmployeeNotes, t.AdminNotes, t.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// Delete implements task.Repository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// DeleteByAssignee implements task.Repository.
func (r *taskRepositoryImpl) DeleteByAssignee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM tasks WHERE assigned_to = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete tasks by assignee: %w", err)
	}

	return nil
}

// StatsByAssignee implements task.Repository.
func (r *taskRepositoryImpl) StatsByAssignee(ctx context.Context, employeeID string) (task.Stats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'in_progress'),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status IN ('pending', 'in_progress') AND due_date < NOW())
		FROM tasks
		WHERE assigned_to = $1
	`

	var stats task.Stats
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&stats.Total, &stats.Pending, &stats.InProgress, &stats.Completed, &stats.Overdue,
	)
	if err != nil {
		return task.Stats{}, fmt.Errorf("failed to get task stats: %w", err)
	}

	return stats, nil
}
