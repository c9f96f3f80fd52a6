package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/jackc/pgx/v5"
)

const employeeColumns = `employee_id, first_name, last_name, date_of_birth, gender, email, phone, salary,
	inn, snils, fk_department, job_name, active, role, employment_date`

type EmployeeController struct {
	deps        *Dependens
	departments *DepartmentController
}

func NewEmployeeController(deps *Dependens) *EmployeeController {
	return &EmployeeController{
		deps:        deps,
		departments: NewDepartmentController(deps),
	}
}

func (c *EmployeeController) GetEmployees(ctx context.Context) ([]entity.Employee, error) {
	rows, err := c.deps.DB.Query(ctx, "SELECT "+employeeColumns+" FROM employees ORDER BY employee_id")
	if err != nil {
		c.deps.Logger.Error("Error querying employees", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	employees, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.Employee])
	if err != nil {
		c.deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	if err = c.attachDepartments(ctx, employees); err != nil {
		return nil, err
	}

	return employees, nil
}

func (c *EmployeeController) GetEmployeeByID(ctx context.Context, id uint64) (*entity.Employee, error) {
	rows, err := c.deps.DB.Query(ctx, "SELECT "+employeeColumns+" FROM employees WHERE employee_id = $1", id)
	if err != nil {
		c.deps.Logger.Error("Error querying employee", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	employee, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[entity.Employee])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.deps.Logger.Warn("Employee not found", slog.Uint64("id", id))
			return nil, ErrEmployeeNotFound
		}

		c.deps.Logger.Error("Error collecting row", slog.String("error", err.Error()))
		return nil, err
	}

	employees := []entity.Employee{employee}
	if err = c.attachDepartments(ctx, employees); err != nil {
		return nil, err
	}

	return &employees[0], nil
}

func (c *EmployeeController) attachDepartments(ctx context.Context, employees []entity.Employee) error {
	needed := false
	for _, e := range employees {
		if e.DepartmentID != nil {
			needed = true
			break
		}
	}
	if !needed {
		return nil
	}

	byID, err := c.departments.departmentsByID(ctx)
	if err != nil {
		return err
	}

	for i := range employees {
		if employees[i].DepartmentID == nil {
			continue
		}
		if d, ok := byID[*employees[i].DepartmentID]; ok {
			employees[i].Department = &d
		}
	}

	return nil
}

func validateEmployee(emp *entity.Employee) error {
	if emp.FirstName == "" || emp.LastName == "" || emp.Email == "" || emp.JobName == "" {
		return ErrEmployeeFieldsRequired
	}

	if emp.Active == "" {
		emp.Active = entity.ActiveYes
	}
	if emp.Role == "" {
		emp.Role = entity.RoleEmployee
	}

	switch {
	case emp.Gender != "" && emp.Gender != entity.GenderMale && emp.Gender != entity.GenderFemale:
		return fmt.Errorf("%w: gender %q", ErrInvalidEmployeeField, emp.Gender)
	case emp.Active != entity.ActiveYes && emp.Active != entity.ActiveNo:
		return fmt.Errorf("%w: active %q", ErrInvalidEmployeeField, emp.Active)
	case emp.Role != entity.RoleHR && emp.Role != entity.RoleEmployee:
		return fmt.Errorf("%w: role %q", ErrInvalidEmployeeField, emp.Role)
	}

	return nil
}

func (c *EmployeeController) CreateEmployee(ctx context.Context, emp entity.Employee) (*entity.Employee, error) {
	if err := validateEmployee(&emp); err != nil {
		c.deps.Logger.Warn("Invalid employee", slog.String("error", err.Error()))
		return nil, err
	}

	query := `INSERT INTO employees (first_name, last_name, date_of_birth, gender, email, phone, salary, inn, snils,
              fk_department, job_name, active, role, employment_date)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
              RETURNING employee_id`

	if err := c.deps.DB.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.DateOfBirth, emp.Gender, emp.Email, emp.Phone, emp.Salary,
		emp.INN, emp.SNILS, emp.DepartmentID, emp.JobName, emp.Active, emp.Role, emp.EmploymentDate,
	).Scan(&emp.ID); err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, ErrEmployeeExists
		case pgForeignKeyViolation:
			return nil, fmt.Errorf("%w: unknown department", ErrInvalidEmployeeField)
		}

		c.deps.Logger.Error("Error inserting employee", slog.String("error", err.Error()))
		return nil, err
	}

	emp.Department = nil
	c.deps.Logger.Info("Employee created", slog.Uint64("id", emp.ID))

	return &emp, nil
}

func (c *EmployeeController) UpdateEmployee(ctx context.Context, id uint64, emp entity.Employee) (*entity.Employee, error) {
	if err := validateEmployee(&emp); err != nil {
		c.deps.Logger.Warn("Invalid employee", slog.String("error", err.Error()))
		return nil, err
	}

	query := `UPDATE employees SET first_name = $1, last_name = $2, date_of_birth = $3, gender = $4, email = $5,
              phone = $6, salary = $7, inn = $8, snils = $9, fk_department = $10, job_name = $11, active = $12,
              role = $13, employment_date = $14
              WHERE employee_id = $15`

	tag, err := c.deps.DB.Exec(ctx, query,
		emp.FirstName, emp.LastName, emp.DateOfBirth, emp.Gender, emp.Email, emp.Phone, emp.Salary,
		emp.INN, emp.SNILS, emp.DepartmentID, emp.JobName, emp.Active, emp.Role, emp.EmploymentDate, id,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, ErrEmployeeExists
		case pgForeignKeyViolation:
			return nil, fmt.Errorf("%w: unknown department", ErrInvalidEmployeeField)
		}

		c.deps.Logger.Error("Error updating employee", slog.String("error", err.Error()))
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrEmployeeNotFound
	}

	emp.ID = id
	emp.Department = nil

	return &emp, nil
}

func (c *EmployeeController) DeleteEmployee(ctx context.Context, id uint64) error {
	tag, err := c.deps.DB.Exec(ctx, "DELETE FROM employees WHERE employee_id = $1", id)
	if err != nil {
		c.deps.Logger.Error("Error deleting employee", slog.String("error", err.Error()))
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}

	c.deps.Logger.Info("Employee deleted", slog.Uint64("id", id))
	return nil
}
