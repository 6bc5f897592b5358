package service

import (
	"context"
	"errors"
	"testing"

	"go-sales-rest/internal/model"
	"go-sales-rest/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func employeeRequest(name string, nss int64, department string, supervisor *uint) *model.EmployeeRequest {
	return &model.EmployeeRequest{
		Name:         name,
		Address:      "Av. Libertad 10",
		Age:          35,
		Salary:       2100.5,
		Nss:          nss,
		Department:   department,
		IDSupervisor: supervisor,
	}
}

func newEmployeeService(t *testing.T) (*fixture, EmployeeService) {
	f := newFixture(t)
	return f, NewEmployeeService(repository.NewEmployeeRepo(f.db))
}

func TestCreateEmployeeResolvesSupervisor(t *testing.T) {
	_, svc := newEmployeeService(t)
	ctx := context.Background()

	boss, err := svc.CreateEmployee(ctx, employeeRequest("Marta", 100, "Ventas", nil), "1")
	require.NoError(t, err)
	assert.Nil(t, boss.SupervisorID)

	worker, err := svc.CreateEmployee(ctx, employeeRequest("Pablo", 101, "Ventas", &boss.ID), "1")
	require.NoError(t, err)
	require.NotNil(t, worker.SupervisorID)
	assert.Equal(t, boss.ID, *worker.SupervisorID)

	missing := uint(4242)
	orphan, err := svc.CreateEmployee(ctx, employeeRequest("Sara", 102, "Ventas", &missing), "1")
	require.NoError(t, err)
	assert.Nil(t, orphan.SupervisorID)

	stored, err := svc.GetEmployee(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.SupervisorID)
}

func TestCreateEmployeeDuplicateNss(t *testing.T) {
	_, svc := newEmployeeService(t)
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, employeeRequest("Marta", 100, "Ventas", nil), "1")
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, employeeRequest("Otra", 100, "IT", nil), "1")
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "nss", conflict.Field)
	assert.Equal(t, "100", conflict.Value)
}

func TestUpdateEmployee(t *testing.T) {
	_, svc := newEmployeeService(t)
	ctx := context.Background()
	boss, err := svc.CreateEmployee(ctx, employeeRequest("Marta", 100, "Ventas", nil), "1")
	require.NoError(t, err)
	e, err := svc.CreateEmployee(ctx, employeeRequest("Pablo", 101, "Ventas", nil), "1")
	require.NoError(t, err)

	req := employeeRequest("Pablo R.", 101, "IT", &boss.ID)
	updated, err := svc.UpdateEmployee(ctx, e.ID, req, "2")
	require.NoError(t, err)
	assert.Equal(t, "IT", updated.Department)
	require.NotNil(t, updated.SupervisorID)
	assert.Equal(t, boss.ID, *updated.SupervisorID)

	_, err = svc.UpdateEmployee(ctx, e.ID, employeeRequest("Pablo", 100, "IT", nil), "2")
	var conflict *ConflictError
	assert.True(t, errors.As(err, &conflict))

	_, err = svc.UpdateEmployee(ctx, 999, req, "2")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestListEmployees(t *testing.T) {
	_, svc := newEmployeeService(t)
	ctx := context.Background()
	for i, dept := range []string{"Ventas", "IT", "Ventas"} {
		_, err := svc.CreateEmployee(ctx, employeeRequest("E", int64(200+i), dept, nil), "1")
		require.NoError(t, err)
	}

	all, err := svc.ListEmployees(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	ventas, err := svc.ListEmployees(ctx, "Ventas")
	require.NoError(t, err)
	assert.Len(t, ventas, 2)

	_, err = svc.ListEmployees(ctx, "Legal")
	assert.ErrorIs(t, err, ErrDepartmentEmpty)

	_, err = svc.GetEmployee(ctx, 999)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
