package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/department"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.Repository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.Repository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d *department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, d.ID, d.Name, d.Description).Scan(&d.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return department.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("failed to create department: %w", err)
	}

	return nil
}

// GetByID implements department.Repository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (*department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, description, created_at, updated_at FROM departments WHERE id = $1`

	var d department.Department
	err := q.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return &d, nil
}

// GetByName implements department.Repository.
func (r *departmentRepositoryImpl) GetByName(ctx context.Context, name string) (*department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, description, created_at, updated_at FROM departments WHERE LOWER(name) = LOWER($1)`

	var d department.Department
	err := q.QueryRow(ctx, query, name).Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department by name: %w", err)
	}

	return &d, nil
}

// List implements department.Repository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.description, d.created_at, d.updated_at,
			COUNT(e.id) AS employee_count
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		GROUP BY d.id
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.DepartmentResponse
	for rows.Next() {
		var d department.DepartmentResponse
		err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeCount)
		if err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Update implements department.Repository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, d *department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, d.Name, d.Description, d.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.ErrDepartmentNotFound
		}
		if isUniqueViolation(err) {
			return department.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("failed to update department: %w", err)
	}

	return nil
}

// Delete implements department.Repository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// Count implements department.Repository.
func (r *departmentRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}

	return count, nil
}
