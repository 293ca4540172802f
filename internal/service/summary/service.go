package summary

import (
	"context"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/department"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/summary"
	employeesvc "github.com/staffdesk/staffdesk-backend-go/internal/service/employee"
)

type SummaryServiceImpl struct {
	employeeRepo   employee.Repository
	departmentRepo department.Repository
	leaveRepo      leave.Repository
}

func NewSummaryService(
	employeeRepo employee.Repository,
	departmentRepo department.Repository,
	leaveRepo leave.Repository,
) summary.SummaryService {
	return &SummaryServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		leaveRepo:      leaveRepo,
	}
}

// EmployeeSummary implements summary.SummaryService.
func (s *SummaryServiceImpl) EmployeeSummary(ctx context.Context, employeeID string) (*summary.EmployeeSummary, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	counts, err := s.leaveRepo.CountByStatus(ctx, &employeeID)
	if err != nil {
		return nil, err
	}

	return &summary.EmployeeSummary{
		LeavesTaken:       emp.TotalLeaves,
		LeavePending:      counts[leave.StatusPending],
		LeaveApproved:     counts[leave.StatusApproved],
		LeaveRejected:     counts[leave.StatusRejected],
		PaymentsReceived:  emp.PaymentsReceived,
		ProfileCompletion: employeesvc.ProfileCompletion(&emp.Employee),
	}, nil
}

// AdminSummary implements summary.SummaryService.
func (s *SummaryServiceImpl) AdminSummary(ctx context.Context) (*summary.AdminSummary, error) {
	totalEmployees, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalDepartments, err := s.departmentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	monthlyPay, err := s.employeeRepo.SumSalaries(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.leaveRepo.CountByStatus(ctx, nil)
	if err != nil {
		return nil, err
	}

	applied := 0
	for _, n := range counts {
		applied += n
	}

	return &summary.AdminSummary{
		TotalEmployees:   totalEmployees,
		TotalDepartments: totalDepartments,
		MonthlyPay:       monthlyPay,
		LeaveApplied:     applied,
		LeaveApproved:    counts[leave.StatusApproved],
		LeavePending:     counts[leave.StatusPending],
		LeaveRejected:    counts[leave.StatusRejected],
	}, nil
}
