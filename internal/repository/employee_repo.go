package repository

import (
	"context"

	"go-sales-rest/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	FindByNss(ctx context.Context, nss int64) (*model.Employee, error)
	FindAll(ctx context.Context) ([]model.Employee, error)
	FindByDepartment(ctx context.Context, department string) ([]model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
}

type employeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Omit("Supervisor").Create(employee).Error
}

func (r *employeeRepo) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) FindByNss(ctx context.Context, nss int64) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Where("nss = ?", nss).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) FindAll(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).Order("id ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) FindByDepartment(ctx context.Context, department string) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).Where("department = ?", department).Order("id ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Omit("Supervisor").Save(employee).Error
}
