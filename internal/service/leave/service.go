package leave

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db           *database.DB
	leaveRepo    leave.Repository
	employeeRepo employee.Repository
}

func NewLeaveService(db *database.DB, leaveRepo leave.Repository, employeeRepo employee.Repository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:           db,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (*leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	lr := &leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		FromDate:   req.From(),
		ToDate:     req.To(),
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	if err := s.leaveRepo.Create(ctx, lr); err != nil {
		return nil, err
	}

	return lr, nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	return s.leaveRepo.GetByID(ctx, id)
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequestResponse, error) {
	return s.leaveRepo.List(ctx, filter)
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	return s.leaveRepo.ListByEmployee(ctx, employeeID)
}

// Approve implements leave.LeaveService. Only a pending request can be
// approved; approval bumps the employee's total_leaves by the request's
// working days and refreshes the on_leave flag.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) error {
	lr, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lr.Status != leave.StatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	days := countWorkingDays(lr.FromDate, lr.ToDate)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	onLeave := !today.Before(truncateDay(lr.FromDate)) && !today.After(truncateDay(lr.ToDate))

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.leaveRepo.UpdateStatus(txCtx, id, leave.StatusApproved); err != nil {
			return err
		}
		if err := s.employeeRepo.IncrementTotalLeaves(txCtx, lr.EmployeeID, days); err != nil {
			return err
		}
		if onLeave {
			if err := s.employeeRepo.SetOnLeave(txCtx, lr.EmployeeID, true); err != nil {
				return err
			}
		}
		return nil
	})
}

// Reject implements leave.LeaveService. Only a pending request can be
// rejected.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id string) error {
	lr, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lr.Status != leave.StatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	return s.leaveRepo.UpdateStatus(ctx, id, leave.StatusRejected)
}

// ApprovedDaysInMonth implements leave.LeaveService. The month is zero-based.
func (s *LeaveServiceImpl) ApprovedDaysInMonth(ctx context.Context, employeeID string, month, year int) (int, []leave.IntervalDays, error) {
	start, end, err := MonthBounds(month, year)
	if err != nil {
		return 0, nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return 0, nil, err
	}

	requests, err := s.leaveRepo.ListApprovedOverlapping(ctx, employeeID, start, end)
	if err != nil {
		return 0, nil, err
	}

	return ApprovedDaysInMonth(requests, month, year)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
