package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, user_id, name, email, department_id, salary,
			profile_image_url, total_leaves, payments_received, on_leave)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		e.ID, e.UserID, e.Name, e.Email, e.DepartmentID, e.Salary,
		e.ProfileImageURL, e.TotalLeaves, e.PaymentsReceived, e.OnLeave,
	).Scan(&e.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.name, e.email, e.department_id, e.salary,
			e.profile_image_url, e.total_leaves, e.payments_received, e.on_leave,
			e.created_at, e.updated_at, d.name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`

	var resp employee.EmployeeResponse
	err := q.QueryRow(ctx, query, id).Scan(
		&resp.ID, &resp.UserID, &resp.Name, &resp.Email, &resp.DepartmentID, &resp.Salary,
		&resp.ProfileImageURL, &resp.TotalLeaves, &resp.PaymentsReceived, &resp.OnLeave,
		&resp.CreatedAt, &resp.UpdatedAt, &resp.DepartmentName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &resp, nil
}

// GetByEmail implements employee.Repository.
func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, name, email, department_id, salary, profile_image_url,
			total_leaves, payments_received, on_leave, created_at, updated_at
		FROM employees
		WHERE email = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, email).Scan(
		&e.ID, &e.UserID, &e.Name, &e.Email, &e.DepartmentID, &e.Salary, &e.ProfileImageURL,
		&e.TotalLeaves, &e.PaymentsReceived, &e.OnLeave, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return &e, nil
}

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.name, e.email, e.department_id, e.salary,
			e.profile_image_url, e.total_leaves, e.payments_received, e.on_leave,
			e.created_at, e.updated_at, d.name
		FROM employees e
		LEFT JOIN departments d ON d.id = e.department_id
		ORDER BY e.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.EmployeeResponse
	for rows.Next() {
		var resp employee.EmployeeResponse
		err := rows.Scan(
			&resp.ID, &resp.UserID, &resp.Name, &resp.Email, &resp.DepartmentID, &resp.Salary,
			&resp.ProfileImageURL, &resp.TotalLeaves, &resp.PaymentsReceived, &resp.OnLeave,
			&resp.CreatedAt, &resp.UpdatedAt, &resp.DepartmentName,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// ListIDs implements employee.Repository.
func (r *employeeRepositoryImpl) ListIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM employees`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee ids: %w", err)
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

// Update implements employee.Repository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET user_id = $1, name = $2, email = $3, department_id = $4, salary = $5,
			profile_image_url = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		e.UserID, e.Name, e.Email, e.DepartmentID, e.Salary, e.ProfileImageURL, e.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return employee.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// Delete implements employee.Repository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Count implements employee.Repository.
func (r *employeeRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// SumSalaries implements employee.Repository.
func (r *employeeRepositoryImpl) SumSalaries(ctx context.Context) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx, `SELECT COALESCE(SUM(salary), 0) FROM employees`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum salaries: %w", err)
	}

	return total, nil
}

// IncrementTotalLeaves implements employee.Repository.
func (r *employeeRepositoryImpl) IncrementTotalLeaves(ctx context.Context, id string, days int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET total_leaves = total_leaves + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, days, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to increment total leaves: %w", err)
	}

	return nil
}

// SetOnLeave implements employee.Repository.
func (r *employeeRepositoryImpl) SetOnLeave(ctx context.Context, id string, onLeave bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET on_leave = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, onLeave, id).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to set on_leave flag: %w", err)
	}

	return nil
}
