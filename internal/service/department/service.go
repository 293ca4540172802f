package department

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	departmentRepo department.Repository
}

func NewDepartmentService(departmentRepo department.Repository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (*department.Department, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.departmentRepo.GetByName(ctx, req.Name); err == nil {
		return nil, department.ErrDepartmentAlreadyExists
	} else if !errors.Is(err, department.ErrDepartmentNotFound) {
		return nil, err
	}

	d := &department.Department{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.departmentRepo.Create(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

// Get implements department.DepartmentService.
func (s *DepartmentServiceImpl) Get(ctx context.Context, id string) (*department.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	return s.departmentRepo.List(ctx)
}

// Update implements department.DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (*department.Department, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Description != nil {
		d.Description = req.Description
	}

	if err := s.departmentRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

// Delete implements department.DepartmentService. Employees referencing the
// department keep their reference; only the department row goes away.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}
