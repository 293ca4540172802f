package employee

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id string) (*EmployeeResponse, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	ListIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	SumSalaries(ctx context.Context) (decimal.Decimal, error)
	IncrementTotalLeaves(ctx context.Context, id string, days int) error
	SetOnLeave(ctx context.Context, id string, onLeave bool) error
}

type AttendanceRepository interface {
	Create(ctx context.Context, a *Attendance) error
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
}
