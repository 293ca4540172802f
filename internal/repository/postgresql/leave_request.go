package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.Repository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveColumns = `id, employee_id, leave_type, from_date, to_date, reason, status, created_at, updated_at`

// Create implements leave.Repository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, lr *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (id, employee_id, leave_type, from_date, to_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		lr.ID, lr.EmployeeID, lr.Type, lr.FromDate, lr.ToDate, lr.Reason, lr.Status,
	).Scan(&lr.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create leave request: %w", err)
	}

	return nil
}

// GetByID implements leave.Repository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	var lr leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&lr.ID, &lr.EmployeeID, &lr.Type, &lr.FromDate, &lr.ToDate,
		&lr.Reason, &lr.Status, &lr.CreatedAt, &lr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}

	return &lr, nil
}

// List implements leave.Repository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequestResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.from_date, lr.to_date,
			lr.reason, lr.status, lr.created_at, lr.updated_at, e.name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
	`

	var args []interface{}
	var conds []string
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("lr.status = $%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conds = append(conds, fmt.Sprintf("lr.employee_id = $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY lr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequestResponse
	for rows.Next() {
		var resp leave.LeaveRequestResponse
		err := rows.Scan(
			&resp.ID, &resp.EmployeeID, &resp.Type, &resp.FromDate, &resp.ToDate,
			&resp.Reason, &resp.Status, &resp.CreatedAt, &resp.UpdatedAt, &resp.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListByEmployee implements leave.Repository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE employee_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests by employee: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// ListApprovedOverlapping implements leave.Repository. The overlap predicate
// is from_date <= rangeEnd AND to_date >= rangeStart.
func (r *leaveRequestRepositoryImpl) ListApprovedOverlapping(ctx context.Context, employeeID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1 AND status = $2 AND from_date <= $3 AND to_date >= $4
		ORDER BY from_date
	`

	rows, err := q.Query(ctx, query, employeeID, leave.StatusApproved, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// UpdateStatus implements leave.Repository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update leave request status: %w", err)
	}

	return nil
}

// CountByStatus implements leave.Repository. A nil employeeID counts across
// all employees.
func (r *leaveRequestRepositoryImpl) CountByStatus(ctx context.Context, employeeID *string) (map[leave.Status]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT status, COUNT(*) FROM leave_requests`
	var args []interface{}
	if employeeID != nil {
		query += ` WHERE employee_id = $1`
		args = append(args, *employeeID)
	}
	query += ` GROUP BY status`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count leave requests: %w", err)
	}
	defer rows.Close()

	counts := make(map[leave.Status]int)
	for rows.Next() {
		var status leave.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// DeleteByEmployee implements leave.Repository.
func (r *leaveRequestRepositoryImpl) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete leave requests by employee: %w", err)
	}

	return nil
}

// ListOrphaned implements leave.Repository. It returns ids of leave requests
// whose employee no longer exists.
func (r *leaveRequestRepositoryImpl) ListOrphaned(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		WHERE e.id IS NULL
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list orphaned leave requests: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

// DeleteByIDs implements leave.Repository.
func (r *leaveRequestRepositoryImpl) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("failed to delete leave requests: %w", err)
	}

	return nil
}

// ListEmployeesOnLeave implements leave.Repository. It returns ids of
// employees with an approved leave covering day.
func (r *leaveRequestRepositoryImpl) ListEmployeesOnLeave(ctx context.Context, day time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT employee_id
		FROM leave_requests
		WHERE status = $1 AND from_date <= $2 AND to_date >= $2
	`

	rows, err := q.Query(ctx, query, leave.StatusApproved, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees on leave: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}

func scanLeaveRequests(rows pgx.Rows) ([]leave.LeaveRequest, error) {
	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.Type, &lr.FromDate, &lr.ToDate,
			&lr.Reason, &lr.Status, &lr.CreatedAt, &lr.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
