package pages

import (
	"context"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/stretchr/testify/mock"
)

type notice struct {
	Level Level
	Text  string
}

type recorder struct {
	notices []notice
}

func (r *recorder) Notify(level Level, msg string) {
	r.notices = append(r.notices, notice{Level: level, Text: msg})
}

// MockAPI implements every page API.
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Employees(ctx context.Context) ([]entity.Employee, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.Employee)
	return items, args.Error(1)
}

func (m *MockAPI) UpdateEmployee(ctx context.Context, id uint64, emp entity.Employee) (*entity.Employee, error) {
	args := m.Called(ctx, id, emp)
	out, _ := args.Get(0).(*entity.Employee)
	return out, args.Error(1)
}

func (m *MockAPI) AddEmployee(ctx context.Context, emp entity.Employee) (*entity.Employee, error) {
	args := m.Called(ctx, emp)
	out, _ := args.Get(0).(*entity.Employee)
	return out, args.Error(1)
}

func (m *MockAPI) DeleteEmployee(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAPI) SetPassword(ctx context.Context, id uint64, password string) error {
	return m.Called(ctx, id, password).Error(0)
}

func (m *MockAPI) Vacations(ctx context.Context) ([]entity.Vacation, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.Vacation)
	return items, args.Error(1)
}

func (m *MockAPI) UpdateVacation(ctx context.Context, id uint64, status entity.VacationStatus) (*entity.Vacation, error) {
	args := m.Called(ctx, id, status)
	out, _ := args.Get(0).(*entity.Vacation)
	return out, args.Error(1)
}

func (m *MockAPI) CreateVacation(ctx context.Context, in entity.VacationInput) (*entity.Vacation, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*entity.Vacation)
	return out, args.Error(1)
}

func (m *MockAPI) EmployeeVacations(ctx context.Context, employeeID string) []entity.Vacation {
	items, _ := m.Called(ctx, employeeID).Get(0).([]entity.Vacation)
	return items
}

func (m *MockAPI) Profile(ctx context.Context) (*entity.Profile, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(*entity.Profile)
	return out, args.Error(1)
}

func (m *MockAPI) Departments(ctx context.Context) ([]entity.Department, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.Department)
	return items, args.Error(1)
}

func (m *MockAPI) Contracts(ctx context.Context) ([]entity.Contract, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.Contract)
	return items, args.Error(1)
}

func (m *MockAPI) AddContract(ctx context.Context, in entity.ContractInput) (*entity.Contract, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*entity.Contract)
	return out, args.Error(1)
}

func (m *MockAPI) UpdateContract(ctx context.Context, id uint64, in entity.ContractInput) (*entity.Contract, error) {
	args := m.Called(ctx, id, in)
	out, _ := args.Get(0).(*entity.Contract)
	return out, args.Error(1)
}

func (m *MockAPI) DeleteContract(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAPI) DepartmentCount(ctx context.Context) ([]entity.DepartmentCount, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.DepartmentCount)
	return items, args.Error(1)
}

func (m *MockAPI) AverageAge(ctx context.Context) (*entity.AverageAge, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(*entity.AverageAge)
	return out, args.Error(1)
}

func (m *MockAPI) ChurnRate(ctx context.Context) (*entity.ChurnRate, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(*entity.ChurnRate)
	return out, args.Error(1)
}

func (m *MockAPI) AverageTenure(ctx context.Context) (*entity.AverageTenure, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).(*entity.AverageTenure)
	return out, args.Error(1)
}

func (m *MockAPI) AverageHoursPerDepartment(ctx context.Context) ([]entity.DepartmentHours, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]entity.DepartmentHours)
	return items, args.Error(1)
}
