package controllers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/jackc/pgx/v5"
)

const vacationSelect = `SELECT v.vacation_id, v.fk_employee, v.start_date, v.end_date, v.status,
	e.first_name, e.last_name, e.email
	FROM vacations v JOIN employees e ON e.employee_id = v.fk_employee`

type VacationController struct {
	deps *Dependens
}

func NewVacationController(deps *Dependens) *VacationController {
	return &VacationController{
		deps: deps,
	}
}

func scanVacation(row pgx.CollectableRow) (entity.Vacation, error) {
	var (
		v        entity.Vacation
		employee entity.VacationEmployee
	)

	if err := row.Scan(&v.ID, &v.EmployeeID, &v.StartDate, &v.EndDate, &v.Status,
		&employee.FirstName, &employee.LastName, &employee.Email); err != nil {
		return v, err
	}

	v.Employee = &employee
	return v, nil
}

func (c *VacationController) list(ctx context.Context, query string, args ...any) ([]entity.Vacation, error) {
	rows, err := c.deps.DB.Query(ctx, query, args...)
	if err != nil {
		c.deps.Logger.Error("Error querying vacations", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	vacations, err := pgx.CollectRows(rows, scanVacation)
	if err != nil {
		c.deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	return vacations, nil
}

func (c *VacationController) GetVacations(ctx context.Context) ([]entity.Vacation, error) {
	return c.list(ctx, vacationSelect+" ORDER BY v.vacation_id")
}

// GetEmployeeVacations returns an empty list for employees without requests.
func (c *VacationController) GetEmployeeVacations(ctx context.Context, employeeID uint64) ([]entity.Vacation, error) {
	return c.list(ctx, vacationSelect+" WHERE v.fk_employee = $1 ORDER BY v.start_date DESC", employeeID)
}

func (c *VacationController) GetVacationByID(ctx context.Context, id uint64) (*entity.Vacation, error) {
	rows, err := c.deps.DB.Query(ctx, vacationSelect+" WHERE v.vacation_id = $1", id)
	if err != nil {
		c.deps.Logger.Error("Error querying vacation", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	vacation, err := pgx.CollectOneRow(rows, scanVacation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVacationNotFound
		}

		c.deps.Logger.Error("Error collecting row", slog.String("error", err.Error()))
		return nil, err
	}

	return &vacation, nil
}

func (c *VacationController) CreateVacation(ctx context.Context, in entity.VacationInput) (*entity.Vacation, error) {
	if in.EmployeeID == 0 || !in.StartDate.IsSet() || !in.EndDate.IsSet() {
		return nil, ErrVacationFieldsRequired
	}

	if in.StartDate.After(in.EndDate) {
		return nil, ErrInvalidPeriod
	}

	var employee entity.VacationEmployee
	if err := c.deps.DB.QueryRow(ctx,
		"SELECT first_name, last_name, email FROM employees WHERE employee_id = $1", in.EmployeeID,
	).Scan(&employee.FirstName, &employee.LastName, &employee.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}

		c.deps.Logger.Error("Error querying employee", slog.String("error", err.Error()))
		return nil, err
	}

	vacation := entity.Vacation{
		EmployeeID: in.EmployeeID,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Status:     entity.VacationPending,
		Employee:   &employee,
	}

	if err := c.deps.DB.QueryRow(ctx,
		"INSERT INTO vacations (fk_employee, start_date, end_date, status) VALUES ($1, $2, $3, $4) RETURNING vacation_id",
		vacation.EmployeeID, vacation.StartDate, vacation.EndDate, string(vacation.Status),
	).Scan(&vacation.ID); err != nil {
		c.deps.Logger.Error("Error inserting vacation", slog.String("error", err.Error()))
		return nil, err
	}

	c.deps.Logger.Info("Vacation requested", slog.Uint64("id", vacation.ID), slog.Uint64("employee_id", vacation.EmployeeID))
	return &vacation, nil
}

// UpdateVacationStatus records an HR decision. Only Approved and Rejected are accepted.
func (c *VacationController) UpdateVacationStatus(ctx context.Context, id uint64, status entity.VacationStatus) (*entity.Vacation, error) {
	if status != entity.VacationApproved && status != entity.VacationRejected {
		return nil, ErrInvalidStatus
	}

	tag, err := c.deps.DB.Exec(ctx, "UPDATE vacations SET status = $1 WHERE vacation_id = $2", string(status), id)
	if err != nil {
		c.deps.Logger.Error("Error updating vacation", slog.String("error", err.Error()))
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrVacationNotFound
	}

	c.deps.Logger.Info("Vacation status updated", slog.Uint64("id", id), slog.String("status", string(status)))
	return c.GetVacationByID(ctx, id)
}
