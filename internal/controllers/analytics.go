package controllers

import (
	"context"
	"log/slog"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/jackc/pgx/v5"
)

type AnalyticsController struct {
	deps *Dependens
}

func NewAnalyticsController(deps *Dependens) *AnalyticsController {
	return &AnalyticsController{
		deps: deps,
	}
}

// DepartmentCount reports the head-count of every department, empty ones included.
func (c *AnalyticsController) DepartmentCount(ctx context.Context) ([]entity.DepartmentCount, error) {
	return collectByPos[entity.DepartmentCount](ctx, c.deps, `SELECT d.name, COUNT(e.employee_id)
		FROM departments d LEFT JOIN employees e ON e.fk_department = d.department_id
		GROUP BY d.department_id, d.name ORDER BY d.department_id`)
}

func (c *AnalyticsController) AverageAge(ctx context.Context) (*entity.AverageAge, error) {
	var res entity.AverageAge
	err := c.scalar(ctx, `SELECT COALESCE(ROUND(AVG(EXTRACT(YEAR FROM CURRENT_DATE) - EXTRACT(YEAR FROM date_of_birth)), 1), 0)::float8
		FROM employees WHERE date_of_birth IS NOT NULL`, &res.AverageAge)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// ChurnRate is the percentage of inactive employees, one decimal.
func (c *AnalyticsController) ChurnRate(ctx context.Context) (*entity.ChurnRate, error) {
	var res entity.ChurnRate
	err := c.scalar(ctx, `SELECT COALESCE(ROUND(100.0 * COUNT(*) FILTER (WHERE active = 'No') / NULLIF(COUNT(*), 0), 1), 0)::float8
		FROM employees`, &res.ChurnRate)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *AnalyticsController) AverageTenure(ctx context.Context) (*entity.AverageTenure, error) {
	var res entity.AverageTenure
	err := c.scalar(ctx, `SELECT COALESCE(ROUND(AVG(EXTRACT(YEAR FROM CURRENT_DATE) - EXTRACT(YEAR FROM employment_date)), 1), 0)::float8
		FROM employees WHERE employment_date IS NOT NULL`, &res.AverageTenure)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *AnalyticsController) AverageHoursPerDepartment(ctx context.Context) ([]entity.DepartmentHours, error) {
	return collectByPos[entity.DepartmentHours](ctx, c.deps, `SELECT d.name, COALESCE(ROUND(AVG(w.hours_worked), 1), 0)::float8
		FROM departments d
		JOIN employees e ON e.fk_department = d.department_id
		JOIN work_hours w ON w.fk_employee = e.employee_id
		GROUP BY d.department_id, d.name ORDER BY d.department_id`)
}

func (c *AnalyticsController) scalar(ctx context.Context, query string, dest *float64) error {
	if err := c.deps.DB.QueryRow(ctx, query).Scan(dest); err != nil {
		c.deps.Logger.Error("Error querying analytics", slog.String("error", err.Error()))
		return err
	}

	return nil
}

func collectByPos[T any](ctx context.Context, deps *Dependens, query string) ([]T, error) {
	rows, err := deps.DB.Query(ctx, query)
	if err != nil {
		deps.Logger.Error("Error querying analytics", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByPos[T])
	if err != nil {
		deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	return items, nil
}
