package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/cron"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// Service keeps derived state consistent: employees get linked accounts,
// leave requests for deleted employees go away, and on_leave flags track
// approved leave covering the current day.
type Service struct {
	db              *database.DB
	employeeRepo    employee.Repository
	userRepo        user.Repository
	leaveRepo       leave.Repository
	defaultPassword string
}

func NewService(
	db *database.DB,
	employeeRepo employee.Repository,
	userRepo user.Repository,
	leaveRepo leave.Repository,
	defaultPassword string,
) *Service {
	return &Service{
		db:              db,
		employeeRepo:    employeeRepo,
		userRepo:        userRepo,
		leaveRepo:       leaveRepo,
		defaultPassword: defaultPassword,
	}
}

// Register adds the reconciliation jobs to the scheduler.
func (s *Service) Register(scheduler *cron.Scheduler, interval time.Duration) {
	scheduler.AddJob("provision-orphan-accounts", interval, s.ProvisionOrphanAccounts)
	scheduler.AddJob("delete-orphan-leave-requests", interval, s.DeleteOrphanLeaveRequests)
	scheduler.AddJob("refresh-on-leave-flags", interval, s.RefreshOnLeaveFlags)
}

// ProvisionOrphanAccounts creates a login account with the default password
// for every employee that has none.
func (s *Service) ProvisionOrphanAccounts(ctx context.Context) error {
	employeeIDs, err := s.employeeRepo.ListIDs(ctx)
	if err != nil {
		return err
	}

	linkedIDs, err := s.userRepo.ListEmployeeIDsWithAccounts(ctx)
	if err != nil {
		return err
	}
	linked := make(map[string]struct{}, len(linkedIDs))
	for _, id := range linkedIDs {
		linked[id] = struct{}{}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	provisioned := 0
	for _, id := range employeeIDs {
		if _, ok := linked[id]; ok {
			continue
		}

		emp, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			slog.Warn("Skipping account provision", "employee_id", id, "error", err)
			continue
		}

		employeeID := id
		account := &user.User{
			ID:           uuid.NewString(),
			Name:         emp.Name,
			Email:        emp.Email,
			PasswordHash: string(hash),
			Role:         user.RoleEmployee,
			EmployeeID:   &employeeID,
		}

		err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
			if err := s.userRepo.Create(txCtx, account); err != nil {
				return err
			}
			e := emp.Employee
			e.UserID = &account.ID
			return s.employeeRepo.Update(txCtx, &e)
		})
		if err != nil {
			slog.Warn("Failed to provision account", "employee_id", id, "error", err)
			continue
		}
		provisioned++
	}

	if provisioned > 0 {
		slog.Info("Provisioned accounts for employees", "count", provisioned)
	}
	return nil
}

// DeleteOrphanLeaveRequests removes leave requests whose employee record no
// longer exists.
func (s *Service) DeleteOrphanLeaveRequests(ctx context.Context) error {
	ids, err := s.leaveRepo.ListOrphaned(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	if err := s.leaveRepo.DeleteByIDs(ctx, ids); err != nil {
		return err
	}

	slog.Info("Deleted orphaned leave requests", "count", len(ids))
	return nil
}

// RefreshOnLeaveFlags sets on_leave for employees with approved leave
// covering today and clears it for everyone else.
func (s *Service) RefreshOnLeaveFlags(ctx context.Context) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	onLeaveIDs, err := s.leaveRepo.ListEmployeesOnLeave(ctx, today)
	if err != nil {
		return err
	}
	onLeave := make(map[string]struct{}, len(onLeaveIDs))
	for _, id := range onLeaveIDs {
		onLeave[id] = struct{}{}
	}

	employeeIDs, err := s.employeeRepo.ListIDs(ctx)
	if err != nil {
		return err
	}

	for _, id := range employeeIDs {
		_, shouldBe := onLeave[id]
		if err := s.employeeRepo.SetOnLeave(ctx, id, shouldBe); err != nil {
			slog.Warn("Failed to refresh on_leave flag", "employee_id", id, "error", err)
		}
	}

	return nil
}
