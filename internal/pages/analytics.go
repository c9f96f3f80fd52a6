package pages

import (
	"context"

	"github.com/adamanr/hrdesk/internal/entity"
)

type AnalyticsAPI interface {
	DepartmentCount(ctx context.Context) ([]entity.DepartmentCount, error)
	AverageAge(ctx context.Context) (*entity.AverageAge, error)
	ChurnRate(ctx context.Context) (*entity.ChurnRate, error)
	AverageTenure(ctx context.Context) (*entity.AverageTenure, error)
	AverageHoursPerDepartment(ctx context.Context) ([]entity.DepartmentHours, error)
}

// Figures is everything shown on the analytics dashboard.
type Figures struct {
	Departments   []entity.DepartmentCount
	AverageAge    float64
	ChurnRate     float64
	AverageTenure float64
	Hours         []entity.DepartmentHours
}

type AnalyticsPage struct {
	api     AnalyticsAPI
	notify  Notifier
	Figures Figures
}

func NewAnalyticsPage(api AnalyticsAPI, n Notifier) *AnalyticsPage {
	return &AnalyticsPage{api: api, notify: n}
}

// Load fetches all figures and keeps the previous ones if any call fails.
func (p *AnalyticsPage) Load(ctx context.Context) error {
	var f Figures
	var err error

	if f.Departments, err = p.api.DepartmentCount(ctx); err != nil {
		return report(p.notify, err, "Failed to load department head-count.")
	}

	age, err := p.api.AverageAge(ctx)
	if err != nil {
		return report(p.notify, err, "Failed to load average age.")
	}
	f.AverageAge = age.AverageAge

	churn, err := p.api.ChurnRate(ctx)
	if err != nil {
		return report(p.notify, err, "Failed to load churn rate.")
	}
	f.ChurnRate = churn.ChurnRate

	tenure, err := p.api.AverageTenure(ctx)
	if err != nil {
		return report(p.notify, err, "Failed to load average tenure.")
	}
	f.AverageTenure = tenure.AverageTenure

	if f.Hours, err = p.api.AverageHoursPerDepartment(ctx); err != nil {
		return report(p.notify, err, "Failed to load worked hours.")
	}

	p.Figures = f
	return nil
}
