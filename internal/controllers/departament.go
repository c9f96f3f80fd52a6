package controllers

import (
	"context"
	"log/slog"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

type DepartmentController struct {
	deps  *Dependens
	group singleflight.Group
}

func NewDepartmentController(deps *Dependens) *DepartmentController {
	return &DepartmentController{
		deps: deps,
	}
}

// GetDepartments coalesces concurrent loads. Callers
// share the result slice and must not modify it.
func (c *DepartmentController) GetDepartments(ctx context.Context) ([]entity.Department, error) {
	v, err, _ := c.group.Do("departments", func() (any, error) {
		return c.queryDepartments(ctx)
	})
	if err != nil {
		return nil, err
	}

	return v.([]entity.Department), nil
}

func (c *DepartmentController) queryDepartments(ctx context.Context) ([]entity.Department, error) {
	rows, err := c.deps.DB.Query(ctx, "SELECT department_id, name FROM departments ORDER BY department_id")
	if err != nil {
		c.deps.Logger.Error("Error querying departments", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	departments, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.Department])
	if err != nil {
		c.deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	return departments, nil
}

func (c *DepartmentController) departmentsByID(ctx context.Context) (map[uint64]entity.Department, error) {
	departments, err := c.GetDepartments(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]entity.Department, len(departments))
	for _, d := range departments {
		byID[d.ID] = d
	}

	return byID, nil
}
