package employee

import (
	"context"
	"io"
	"time"
)

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error)
	Get(ctx context.Context, id string) (*EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (*EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	UploadProfileImage(ctx context.Context, employeeID string, filename string, file io.Reader) (string, error)
	RecordAttendance(ctx context.Context, req RecordAttendanceRequest) (*Attendance, error)
	ListAttendance(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
}
