package pages

import (
	"context"
	"strconv"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/adamanr/hrdesk/internal/forms"
)

const noDepartment = "Not specified"

type ProfileAPI interface {
	Profile(ctx context.Context) (*entity.Profile, error)
	EmployeeVacations(ctx context.Context, employeeID string) []entity.Vacation
	Departments(ctx context.Context) ([]entity.Department, error)
	CreateVacation(ctx context.Context, in entity.VacationInput) (*entity.Vacation, error)
}

type ProfilePage struct {
	api    ProfileAPI
	notify Notifier

	Profile    *entity.Profile
	Department string
	Vacations  []entity.Vacation
}

func NewProfilePage(api ProfileAPI, n Notifier) *ProfilePage {
	return &ProfilePage{api: api, notify: n}
}

func (p *ProfilePage) Load(ctx context.Context) error {
	profile, err := p.api.Profile(ctx)
	if err != nil {
		return report(p.notify, err, "Failed to load profile data.")
	}

	p.Profile = profile
	p.Department = p.departmentName(ctx, profile.DepartmentID)
	p.Vacations = p.api.EmployeeVacations(ctx, strconv.FormatUint(profile.ID, 10))

	return nil
}

// departmentName never fails the page; the name is cosmetic.
func (p *ProfilePage) departmentName(ctx context.Context, id *uint64) string {
	if id == nil {
		return noDepartment
	}

	departments, err := p.api.Departments(ctx)
	if err != nil {
		return noDepartment
	}

	for _, d := range departments {
		if d.ID == *id {
			return d.Name
		}
	}

	return noDepartment
}

func (p *ProfilePage) RequestVacation(ctx context.Context, form forms.VacationForm) error {
	if p.Profile == nil {
		if err := p.Load(ctx); err != nil {
			return err
		}
	}

	in, err := form.Payload(p.Profile.ID)
	if err != nil {
		return invalid(p.notify, err)
	}

	if _, err := p.api.CreateVacation(ctx, in); err != nil {
		return report(p.notify, err, "Failed to submit the vacation request.")
	}

	p.notify.Notify(LevelSuccess, "Vacation request submitted.")
	p.Vacations = p.api.EmployeeVacations(ctx, strconv.FormatUint(p.Profile.ID, 10))

	return nil
}
