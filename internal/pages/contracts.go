package pages

import (
	"context"
	"slices"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/adamanr/hrdesk/internal/forms"
)

type ContractsAPI interface {
	Contracts(ctx context.Context) ([]entity.Contract, error)
	AddContract(ctx context.Context, in entity.ContractInput) (*entity.Contract, error)
	UpdateContract(ctx context.Context, id uint64, in entity.ContractInput) (*entity.Contract, error)
	DeleteContract(ctx context.Context, id uint64) error
}

type ContractsPage struct {
	api    ContractsAPI
	notify Notifier
	items  []entity.Contract
}

func NewContractsPage(api ContractsAPI, n Notifier) *ContractsPage {
	return &ContractsPage{api: api, notify: n}
}

func (p *ContractsPage) Load(ctx context.Context) error {
	items, err := p.api.Contracts(ctx)
	if err != nil {
		return report(p.notify, err, "Failed to load contracts.")
	}

	p.items = items
	return nil
}

func (p *ContractsPage) Items() []entity.Contract {
	return slices.Clone(p.items)
}

func (p *ContractsPage) Create(ctx context.Context, form forms.ContractForm) error {
	in, err := form.Payload()
	if err != nil {
		return invalid(p.notify, err)
	}

	if _, err := p.api.AddContract(ctx, in); err != nil {
		return report(p.notify, err, "Failed to create the contract.")
	}

	p.notify.Notify(LevelSuccess, "Contract created.")
	return p.Load(ctx)
}

func (p *ContractsPage) Delete(ctx context.Context, id uint64) error {
	if err := p.api.DeleteContract(ctx, id); err != nil {
		return report(p.notify, err, "Failed to delete the contract.")
	}

	p.notify.Notify(LevelSuccess, "Contract deleted.")
	return p.Load(ctx)
}

func (p *ContractsPage) Activate(ctx context.Context, id uint64) error {
	return p.setStatus(ctx, id, entity.ContractActive, "Contract activated.", "Failed to activate the contract.")
}

func (p *ContractsPage) Terminate(ctx context.Context, id uint64) error {
	return p.setStatus(ctx, id, entity.ContractTerminated, "Contract terminated.", "Failed to terminate the contract.")
}

// setStatus resends the stored renewal date since the server clears it when
// an update leaves it out.
func (p *ContractsPage) setStatus(ctx context.Context, id uint64, status entity.ContractStatus, ok, fallback string) error {
	idx := slices.IndexFunc(p.items, func(c entity.Contract) bool { return c.ID == id })
	if idx < 0 {
		return invalid(p.notify, ErrNotLoaded)
	}

	in := entity.ContractInput{Status: &status}
	if renewal := p.items[idx].RenewalNotificationDate; renewal.IsSet() {
		in.RenewalNotificationDate = &renewal
	}

	if _, err := p.api.UpdateContract(ctx, id, in); err != nil {
		return report(p.notify, err, fallback)
	}

	p.notify.Notify(LevelSuccess, ok)
	return p.Load(ctx)
}
