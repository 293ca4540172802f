package employee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/task"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/storage"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db              *database.DB
	employeeRepo    employee.Repository
	attendanceRepo  employee.AttendanceRepository
	userRepo        user.Repository
	leaveRepo       leave.Repository
	taskRepo        task.Repository
	fileStorage     storage.FileStorage
	defaultPassword string
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.Repository,
	attendanceRepo employee.AttendanceRepository,
	userRepo user.Repository,
	leaveRepo leave.Repository,
	taskRepo task.Repository,
	fileStorage storage.FileStorage,
	defaultPassword string,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:              db,
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		userRepo:        userRepo,
		leaveRepo:       leaveRepo,
		taskRepo:        taskRepo,
		fileStorage:     fileStorage,
		defaultPassword: defaultPassword,
	}
}

// Create implements employee.EmployeeService. The employee row and its
// linked account are created in one transaction, so a failed account
// provision leaves no half-created employee behind.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, employee.ErrEmailAlreadyExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, err
	}

	salary := decimal.Zero
	if req.Salary != nil {
		salary = *req.Salary
	}

	password := s.defaultPassword
	if req.Password != nil {
		password = *req.Password
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newEmployee := &employee.Employee{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		Salary:       salary,
	}
	account := &user.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
		EmployeeID:   &newEmployee.ID,
	}
	newEmployee.UserID = &account.ID

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.Create(txCtx, newEmployee); err != nil {
			return err
		}
		if err := s.userRepo.Create(txCtx, account); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.employeeRepo.GetByID(ctx, newEmployee.ID)
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (*employee.EmployeeResponse, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return s.employeeRepo.List(ctx)
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	e := current.Employee
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.DepartmentID != nil {
		e.DepartmentID = req.DepartmentID
	}
	if req.Salary != nil {
		e.Salary = *req.Salary
	}

	if err := s.employeeRepo.Update(ctx, &e); err != nil {
		return nil, err
	}

	return s.employeeRepo.GetByID(ctx, req.ID)
}

// Delete implements employee.EmployeeService. The linked account, leave
// requests and task assignments go with the employee, in one transaction.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.leaveRepo.DeleteByEmployee(txCtx, id); err != nil {
			return err
		}
		if err := s.taskRepo.DeleteByAssignee(txCtx, id); err != nil {
			return err
		}

		account, err := s.userRepo.GetByEmployeeID(txCtx, id)
		if err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return err
		}
		if account != nil {
			if err := s.userRepo.Delete(txCtx, account.ID); err != nil {
				return err
			}
		}

		return s.employeeRepo.Delete(txCtx, id)
	})
}

// UploadProfileImage implements employee.EmployeeService. The stored URL is
// written to the employee record and mirrored on the linked account.
func (s *EmployeeServiceImpl) UploadProfileImage(ctx context.Context, employeeID string, filename string, file io.Reader) (string, error) {
	current, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("profile-images/%s%s", employeeID, filepath.Ext(filename))
	storedPath, err := s.fileStorage.Upload(ctx, file, path)
	if err != nil {
		return "", fmt.Errorf("failed to store profile image: %w", err)
	}
	url := s.fileStorage.URL(storedPath)

	e := current.Employee
	e.ProfileImageURL = &url

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.Update(txCtx, &e); err != nil {
			return err
		}

		account, err := s.userRepo.GetByEmployeeID(txCtx, employeeID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return nil
			}
			return err
		}
		account.ProfileImageURL = &url
		return s.userRepo.Update(txCtx, account)
	})
	if err != nil {
		return "", err
	}

	return url, nil
}

// RecordAttendance implements employee.EmployeeService. One record per
// employee per day.
func (s *EmployeeServiceImpl) RecordAttendance(ctx context.Context, req employee.RecordAttendanceRequest) (*employee.Attendance, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	if _, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, req.Day()); err == nil {
		return nil, employee.ErrAttendanceAlreadyTaken
	} else if !errors.Is(err, employee.ErrAttendanceNotFound) {
		return nil, err
	}

	a := &employee.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Date:       req.Day(),
		Status:     req.Status,
	}

	if err := s.attendanceRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// ListAttendance implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListAttendance(ctx context.Context, employeeID string, from, to time.Time) ([]employee.Attendance, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	return s.attendanceRepo.ListByEmployee(ctx, employeeID, from, to)
}
