package employee

import (
	"context"
	"testing"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employee.Repository
	byID    map[string]*employee.EmployeeResponse
	byEmail map[string]*employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return nil, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	if e, ok := f.byEmail[email]; ok {
		return e, nil
	}
	return nil, employee.ErrEmployeeNotFound
}

type fakeAttendanceRepo struct {
	employee.AttendanceRepository
	existing map[string]*employee.Attendance
	created  []*employee.Attendance
}

func attendanceKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a *employee.Attendance) error {
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*employee.Attendance, error) {
	if a, ok := f.existing[attendanceKey(employeeID, date)]; ok {
		return a, nil
	}
	return nil, employee.ErrAttendanceNotFound
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	empRepo := &fakeEmployeeRepo{
		byEmail: map[string]*employee.Employee{
			"alice@example.com": {ID: "emp-1", Email: "alice@example.com"},
		},
	}
	svc := NewEmployeeService(nil, empRepo, nil, nil, nil, nil, nil, "employee123")

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	assert.ErrorIs(t, err, employee.ErrEmailAlreadyExists)
}

func TestRecordAttendanceRejectsDuplicateDay(t *testing.T) {
	day := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	empRepo := &fakeEmployeeRepo{
		byID: map[string]*employee.EmployeeResponse{
			"emp-1": {Employee: employee.Employee{ID: "emp-1"}},
		},
	}
	attRepo := &fakeAttendanceRepo{
		existing: map[string]*employee.Attendance{
			attendanceKey("emp-1", day): {ID: "att-1", EmployeeID: "emp-1", Date: day},
		},
	}
	svc := NewEmployeeService(nil, empRepo, attRepo, nil, nil, nil, nil, "employee123")

	_, err := svc.RecordAttendance(context.Background(), employee.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-11",
		Status:     employee.AttendancePresent,
	})

	assert.ErrorIs(t, err, employee.ErrAttendanceAlreadyTaken)
	assert.Empty(t, attRepo.created)
}

func TestRecordAttendanceStoresParsedDate(t *testing.T) {
	empRepo := &fakeEmployeeRepo{
		byID: map[string]*employee.EmployeeResponse{
			"emp-1": {Employee: employee.Employee{ID: "emp-1"}},
		},
	}
	attRepo := &fakeAttendanceRepo{}
	svc := NewEmployeeService(nil, empRepo, attRepo, nil, nil, nil, nil, "employee123")

	record, err := svc.RecordAttendance(context.Background(), employee.RecordAttendanceRequest{
		EmployeeID: "emp-1",
		Date:       "2024-03-11",
		Status:     employee.AttendanceLeave,
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), record.Date)
	assert.Equal(t, employee.AttendanceLeave, record.Status)
	require.Len(t, attRepo.created, 1)
	assert.Equal(t, record, attRepo.created[0])
}
