package pages

import (
	"context"
	"errors"
	"slices"

	"github.com/adamanr/hrdesk/internal/entity"
)

// ProcessedNotice is shown when an approved or rejected request is opened.
const ProcessedNotice = "This request has already been processed and cannot be changed."

var ErrAlreadyProcessed = errors.New("vacation request already processed")

type VacationsAPI interface {
	Vacations(ctx context.Context) ([]entity.Vacation, error)
	UpdateVacation(ctx context.Context, id uint64, status entity.VacationStatus) (*entity.Vacation, error)
}

type VacationsPage struct {
	api       VacationsAPI
	notify    Notifier
	pending   []entity.Vacation
	processed []entity.Vacation
	selected  *entity.Vacation
}

func NewVacationsPage(api VacationsAPI, n Notifier) *VacationsPage {
	return &VacationsPage{api: api, notify: n}
}

// Load refreshes both tables.
func (p *VacationsPage) Load(ctx context.Context) error {
	items, err := p.api.Vacations(ctx)
	if err != nil {
		return report(p.notify, err, "Failed to load vacation requests.")
	}

	pending := make([]entity.Vacation, 0, len(items))
	processed := make([]entity.Vacation, 0, len(items))
	for _, v := range items {
		if v.IsPending() {
			pending = append(pending, v)
		} else {
			processed = append(processed, v)
		}
	}

	p.pending, p.processed = pending, processed
	return nil
}

func (p *VacationsPage) Pending() []entity.Vacation {
	return slices.Clone(p.pending)
}

func (p *VacationsPage) Processed() []entity.Vacation {
	return slices.Clone(p.processed)
}

// Selected is the request opened last, or nil.
func (p *VacationsPage) Selected() *entity.Vacation {
	return p.selected
}

func (p *VacationsPage) find(id uint64) (entity.Vacation, bool) {
	for _, list := range [][]entity.Vacation{p.pending, p.processed} {
		for _, v := range list {
			if v.ID == id {
				return v, true
			}
		}
	}

	return entity.Vacation{}, false
}

// Open selects a pending request for review. Processed requests are never
// selected; the fixed notice is shown and ErrAlreadyProcessed returned.
func (p *VacationsPage) Open(id uint64) (entity.Vacation, error) {
	v, ok := p.find(id)
	if !ok {
		return entity.Vacation{}, invalid(p.notify, ErrNotLoaded)
	}

	if !v.IsPending() {
		p.notify.Notify(LevelInfo, ProcessedNotice)
		return entity.Vacation{}, reported(ErrAlreadyProcessed)
	}

	p.selected = &v
	return v, nil
}

func (p *VacationsPage) Approve(ctx context.Context, id uint64) error {
	return p.decide(ctx, id, entity.VacationApproved, "Request approved.", "Failed to approve the request.")
}

func (p *VacationsPage) Reject(ctx context.Context, id uint64) error {
	return p.decide(ctx, id, entity.VacationRejected, "Request rejected.", "Failed to reject the request.")
}

func (p *VacationsPage) decide(ctx context.Context, id uint64, status entity.VacationStatus, ok, fallback string) error {
	if _, err := p.Open(id); err != nil {
		return err
	}

	if _, err := p.api.UpdateVacation(ctx, id, status); err != nil {
		return report(p.notify, err, fallback)
	}

	p.selected = nil
	p.notify.Notify(LevelSuccess, ok)
	return p.Load(ctx)
}
