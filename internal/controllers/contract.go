package controllers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/jackc/pgx/v5"
)

const contractSelect = `SELECT c.contract_id, c.fk_employee, c.start_date, c.end_date,
	c.renewal_notification_date, c.status, e.first_name || ' ' || e.last_name
	FROM contracts c LEFT JOIN employees e ON e.employee_id = c.fk_employee`

type ContractController struct {
	deps *Dependens
}

func NewContractController(deps *Dependens) *ContractController {
	return &ContractController{
		deps: deps,
	}
}

func scanContract(row pgx.CollectableRow) (entity.Contract, error) {
	var (
		ct   entity.Contract
		name *string
	)

	if err := row.Scan(&ct.ID, &ct.EmployeeID, &ct.StartDate, &ct.EndDate,
		&ct.RenewalNotificationDate, &ct.Status, &name); err != nil {
		return ct, err
	}

	ct.EmployeeName = entity.EmployeeRemovedName
	if name != nil {
		ct.EmployeeName = *name
	}

	return ct, nil
}

func (c *ContractController) GetContracts(ctx context.Context) ([]entity.Contract, error) {
	rows, err := c.deps.DB.Query(ctx, contractSelect+" ORDER BY c.contract_id")
	if err != nil {
		c.deps.Logger.Error("Error querying contracts", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	contracts, err := pgx.CollectRows(rows, scanContract)
	if err != nil {
		c.deps.Logger.Error("Error collecting rows", slog.String("error", err.Error()))
		return nil, err
	}

	return contracts, nil
}

func (c *ContractController) GetContractByID(ctx context.Context, id uint64) (*entity.Contract, error) {
	rows, err := c.deps.DB.Query(ctx, contractSelect+" WHERE c.contract_id = $1", id)
	if err != nil {
		c.deps.Logger.Error("Error querying contract", slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	contract, err := pgx.CollectOneRow(rows, scanContract)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrContractNotFound
		}

		c.deps.Logger.Error("Error collecting row", slog.String("error", err.Error()))
		return nil, err
	}

	return &contract, nil
}

// validateContract checks the dates and status. The employee is only required
// on create: contracts outlive their employee, whose reference becomes NULL.
func validateContract(ct *entity.Contract) error {
	if !ct.StartDate.IsSet() || !ct.EndDate.IsSet() {
		return ErrContractFieldsRequired
	}

	if !ct.EndDate.After(ct.StartDate) {
		return ErrInvalidContractPeriod
	}

	if ct.RenewalNotificationDate.IsSet() && !ct.RenewalNotificationDate.Before(ct.EndDate) {
		return ErrInvalidRenewalDate
	}

	if !ct.Status.Valid() {
		return ErrInvalidStatus
	}

	return nil
}

// apply merges the input over ct. Absent fields keep their value, except the
// renewal date which is cleared.
func apply(ct *entity.Contract, in entity.ContractInput) {
	if in.EmployeeID != nil {
		id := *in.EmployeeID
		ct.EmployeeID = &id
	}
	if in.StartDate != nil {
		ct.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		ct.EndDate = *in.EndDate
	}
	if in.Status != nil {
		ct.Status = *in.Status
	}

	ct.RenewalNotificationDate = entity.Date{}
	if in.RenewalNotificationDate != nil {
		ct.RenewalNotificationDate = *in.RenewalNotificationDate
	}
}

func (c *ContractController) CreateContract(ctx context.Context, in entity.ContractInput) (*entity.Contract, error) {
	contract := entity.Contract{Status: entity.ContractActive}
	apply(&contract, in)

	if contract.EmployeeID == nil {
		c.deps.Logger.Warn("Invalid contract", slog.String("error", ErrContractFieldsRequired.Error()))
		return nil, ErrContractFieldsRequired
	}

	if err := validateContract(&contract); err != nil {
		c.deps.Logger.Warn("Invalid contract", slog.String("error", err.Error()))
		return nil, err
	}

	if err := c.deps.DB.QueryRow(ctx,
		`INSERT INTO contracts (fk_employee, start_date, end_date, renewal_notification_date, status)
		 VALUES ($1, $2, $3, $4, $5) RETURNING contract_id`,
		contract.EmployeeID, contract.StartDate, contract.EndDate, contract.RenewalNotificationDate, string(contract.Status),
	).Scan(&contract.ID); err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, ErrEmployeeNotFound
		}

		c.deps.Logger.Error("Error inserting contract", slog.String("error", err.Error()))
		return nil, err
	}

	c.deps.Logger.Info("Contract created", slog.Uint64("id", contract.ID))
	return c.GetContractByID(ctx, contract.ID)
}

func (c *ContractController) UpdateContract(ctx context.Context, id uint64, in entity.ContractInput) (*entity.Contract, error) {
	contract, err := c.GetContractByID(ctx, id)
	if err != nil {
		return nil, err
	}

	apply(contract, in)

	if err = validateContract(contract); err != nil {
		c.deps.Logger.Warn("Invalid contract", slog.String("error", err.Error()))
		return nil, err
	}

	tag, err := c.deps.DB.Exec(ctx,
		`UPDATE contracts SET fk_employee = $1, start_date = $2, end_date = $3, renewal_notification_date = $4, status = $5
		 WHERE contract_id = $6`,
		contract.EmployeeID, contract.StartDate, contract.EndDate, contract.RenewalNotificationDate, string(contract.Status), id,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, ErrEmployeeNotFound
		}

		c.deps.Logger.Error("Error updating contract", slog.String("error", err.Error()))
		return nil, err
	}

	if tag.RowsAffected() == 0 {
		return nil, ErrContractNotFound
	}

	return c.GetContractByID(ctx, id)
}

func (c *ContractController) DeleteContract(ctx context.Context, id uint64) error {
	tag, err := c.deps.DB.Exec(ctx, "DELETE FROM contracts WHERE contract_id = $1", id)
	if err != nil {
		c.deps.Logger.Error("Error deleting contract", slog.String("error", err.Error()))
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrContractNotFound
	}

	c.deps.Logger.Info("Contract deleted", slog.Uint64("id", id))
	return nil
}
