package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) employee.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements employee.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a *employee.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, employee_id, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, a.ID, a.EmployeeID, a.Date, a.Status).Scan(&a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return employee.ErrAttendanceAlreadyTaken
		}
		return fmt.Errorf("failed to record attendance: %w", err)
	}

	return nil
}

// GetByEmployeeAndDate implements employee.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*employee.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, created_at
		FROM attendance
		WHERE employee_id = $1 AND date = $2
	`

	var a employee.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return &a, nil
}

// ListByEmployee implements employee.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]employee.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, created_at
		FROM attendance
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []employee.Attendance
	for rows.Next() {
		var a employee.Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
