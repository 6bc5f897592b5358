package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/repository"
	"go-sales-rest/pkg/validator"

	"gorm.io/gorm"
)

// ErrDepartmentEmpty is returned when a named department has no employees.
var ErrDepartmentEmpty = &NotFoundError{Entity: "department"}

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req *model.EmployeeRequest, creatorID string) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, id uint, req *model.EmployeeRequest, updaterID string) (*model.Employee, error)
	GetEmployee(ctx context.Context, id uint) (*model.Employee, error)
	ListEmployees(ctx context.Context, department string) ([]model.Employee, error)
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) CreateEmployee(ctx context.Context, req *model.EmployeeRequest, creatorID string) (*model.Employee, error) {
	if field, reason := validator.FirstError(req); field != "" {
		return nil, validationError(field, reason)
	}
	if err := s.ensureNssFree(ctx, req.Nss, 0); err != nil {
		return nil, err
	}

	employee := &model.Employee{}
	req.Apply(employee)
	supervisorID, err := s.resolveSupervisor(ctx, req.IDSupervisor)
	if err != nil {
		return nil, err
	}
	employee.SupervisorID = supervisorID
	employee.CreatedBy = creatorID
	employee.UpdatedBy = creatorID

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id uint, req *model.EmployeeRequest, updaterID string) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrEmployeeNotFound)
	}
	if field, reason := validator.FirstError(req); field != "" {
		return nil, validationError(field, reason)
	}
	if req.Nss != employee.Nss {
		if err := s.ensureNssFree(ctx, req.Nss, employee.ID); err != nil {
			return nil, err
		}
	}

	req.Apply(employee)
	supervisorID, err := s.resolveSupervisor(ctx, req.IDSupervisor)
	if err != nil {
		return nil, err
	}
	employee.SupervisorID = supervisorID
	employee.UpdatedBy = updaterID

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// resolveSupervisor returns nil for an absent or unknown supervisor id.
// An unknown id is logged and dropped, never rejected.
func (s *employeeService) resolveSupervisor(ctx context.Context, id *uint) (*uint, error) {
	if id == nil {
		return nil, nil
	}
	supervisor, err := s.employeeRepo.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Supervisor %d not found, employee saved without supervisor", *id)
			return nil, nil
		}
		return nil, err
	}
	return &supervisor.ID, nil
}

func (s *employeeService) ensureNssFree(ctx context.Context, nss int64, selfID uint) error {
	existing, err := s.employeeRepo.FindByNss(ctx, nss)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return &ConflictError{Field: "nss", Value: fmt.Sprint(nss)}
	}
	return nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id uint) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrEmployeeNotFound)
	}
	return employee, nil
}

// ListEmployees returns everyone when department is empty.
func (s *employeeService) ListEmployees(ctx context.Context, department string) ([]model.Employee, error) {
	if department == "" {
		return s.employeeRepo.FindAll(ctx)
	}
	employees, err := s.employeeRepo.FindByDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, ErrDepartmentEmpty
	}
	return employees, nil
}
