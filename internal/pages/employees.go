package pages

import (
	"context"
	"errors"
	"slices"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/adamanr/hrdesk/internal/forms"
	"github.com/adamanr/hrdesk/internal/listview"
)

var (
	ErrNotLoaded        = errors.New("record is not in the loaded list")
	ErrPasswordRequired = errors.New("enter a password")
)

type EmployeesAPI interface {
	Employees(ctx context.Context) ([]entity.Employee, error)
	UpdateEmployee(ctx context.Context, id uint64, emp entity.Employee) (*entity.Employee, error)
	DeleteEmployee(ctx context.Context, id uint64) error
	SetPassword(ctx context.Context, employeeID uint64, password string) error
}

type EmployeesPage struct {
	api    EmployeesAPI
	notify Notifier
	items  []entity.Employee
}

func NewEmployeesPage(api EmployeesAPI, n Notifier) *EmployeesPage {
	return &EmployeesPage{api: api, notify: n}
}

func (p *EmployeesPage) Load(ctx context.Context) error {
	items, err := p.api.Employees(ctx)
	if err != nil {
		return report(p.notify, err, "Failed to load employees.")
	}

	p.items = items
	return nil
}

// Items returns a copy of the last loaded list.
func (p *EmployeesPage) Items() []entity.Employee {
	return slices.Clone(p.items)
}

func (p *EmployeesPage) View(q listview.Query, s listview.Sort) []entity.Employee {
	return listview.Employees(p.items, q, s)
}

func (p *EmployeesPage) Find(id uint64) (entity.Employee, bool) {
	for _, e := range p.items {
		if e.ID == id {
			return e, true
		}
	}

	return entity.Employee{}, false
}

func (p *EmployeesPage) Update(ctx context.Context, id uint64, form forms.EmployeeForm) error {
	emp, err := form.Payload()
	if err != nil {
		return invalid(p.notify, err)
	}

	return p.save(ctx, id, emp, "Employee updated.", "Failed to update employee.")
}

// Dismiss marks the employee inactive. The record stays in the database.
func (p *EmployeesPage) Dismiss(ctx context.Context, id uint64) error {
	emp, ok := p.Find(id)
	if !ok {
		return invalid(p.notify, ErrNotLoaded)
	}

	emp.Active = entity.ActiveNo
	emp.Department = nil

	return p.save(ctx, id, emp, emp.FullName()+" dismissed.", "Failed to dismiss employee.")
}

func (p *EmployeesPage) save(ctx context.Context, id uint64, emp entity.Employee, ok, fallback string) error {
	if _, err := p.api.UpdateEmployee(ctx, id, emp); err != nil {
		return report(p.notify, err, fallback)
	}

	p.notify.Notify(LevelSuccess, ok)
	return p.Load(ctx)
}

func (p *EmployeesPage) Delete(ctx context.Context, id uint64) error {
	if err := p.api.DeleteEmployee(ctx, id); err != nil {
		return report(p.notify, err, "Failed to delete employee.")
	}

	p.notify.Notify(LevelSuccess, "Employee deleted.")
	return p.Load(ctx)
}

func (p *EmployeesPage) SetPassword(ctx context.Context, id uint64, password string) error {
	if password == "" {
		return invalid(p.notify, ErrPasswordRequired)
	}

	if err := p.api.SetPassword(ctx, id, password); err != nil {
		return report(p.notify, err, "Failed to set password.")
	}

	p.notify.Notify(LevelSuccess, "Password updated.")
	return nil
}

type AddEmployeeAPI interface {
	AddEmployee(ctx context.Context, emp entity.Employee) (*entity.Employee, error)
}

type AddEmployeePage struct {
	api    AddEmployeeAPI
	notify Notifier
}

func NewAddEmployeePage(api AddEmployeeAPI, n Notifier) *AddEmployeePage {
	return &AddEmployeePage{api: api, notify: n}
}

func (p *AddEmployeePage) Submit(ctx context.Context, form forms.EmployeeForm) (*entity.Employee, error) {
	emp, err := form.Payload()
	if err != nil {
		return nil, invalid(p.notify, err)
	}

	created, err := p.api.AddEmployee(ctx, emp)
	if err != nil {
		return nil, report(p.notify, err, "Failed to add employee.")
	}

	p.notify.Notify(LevelSuccess, "Employee added.")
	return created, nil
}
