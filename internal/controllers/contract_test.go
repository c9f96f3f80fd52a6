package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const getContractSQL = contractSelect + " WHERE c.contract_id = $1"

func uint64Ptr(v uint64) *uint64 {
	return &v
}

func contractRow(id uint64, renewal interface{}, name interface{}) []interface{} {
	return []interface{}{
		id, uint64(7), entity.NewDate(2025, time.January, 1), entity.NewDate(2026, time.January, 1),
		renewal, "Active", name,
	}
}

func TestContractController_GetContracts(t *testing.T) {
	deps, db, _ := newTestDeps()
	db.On("Query", mock.Anything, contractSelect+" ORDER BY c.contract_id").Return(NewMockRows([][]interface{}{
		contractRow(1, entity.NewDate(2025, time.December, 1), "Anna Smith"),
		contractRow(2, nil, nil),
	}, nil), nil)

	contracts, err := NewContractController(deps).GetContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, contracts, 2)

	assert.Equal(t, "Anna Smith", contracts[0].EmployeeName)
	assert.True(t, contracts[0].RenewalNotificationDate.IsSet())
	assert.Equal(t, entity.ContractActive, contracts[0].Status)

	assert.Equal(t, uint64Ptr(7), contracts[0].EmployeeID)
	assert.Equal(t, entity.EmployeeRemovedName, contracts[1].EmployeeName)
	assert.False(t, contracts[1].RenewalNotificationDate.IsSet())
}

func TestContractController_CreateContract(t *testing.T) {
	employee := uint64(7)
	start := entity.NewDate(2025, time.January, 1)
	end := entity.NewDate(2026, time.January, 1)
	late := entity.NewDate(2026, time.February, 1)

	tests := []struct {
		name        string
		in          entity.ContractInput
		expectedErr error
	}{
		{
			name: "permanent contract",
			in:   entity.ContractInput{EmployeeID: &employee, StartDate: &start, EndDate: &entity.PermanentEndDate},
		},
		{
			name:        "missing employee",
			in:          entity.ContractInput{StartDate: &start, EndDate: &end},
			expectedErr: ErrContractFieldsRequired,
		},
		{
			name:        "end before start",
			in:          entity.ContractInput{EmployeeID: &employee, StartDate: &end, EndDate: &start},
			expectedErr: ErrInvalidContractPeriod,
		},
		{
			name:        "end equals start",
			in:          entity.ContractInput{EmployeeID: &employee, StartDate: &start, EndDate: &start},
			expectedErr: ErrInvalidContractPeriod,
		},
		{
			name:        "renewal after end",
			in:          entity.ContractInput{EmployeeID: &employee, StartDate: &start, EndDate: &end, RenewalNotificationDate: &late},
			expectedErr: ErrInvalidRenewalDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps, db, _ := newTestDeps()
			if tt.expectedErr == nil {
				db.On("QueryRow", mock.Anything, mock.AnythingOfType("string"),
					&employee, start, entity.PermanentEndDate, entity.Date{}, "Active",
				).Return(NewMockRow([]interface{}{uint64(5)}, nil))
				db.On("Query", mock.Anything, getContractSQL, uint64(5)).Return(NewMockRows([][]interface{}{{
					uint64(5), employee, start, entity.PermanentEndDate, nil, "Active", "Anna Smith",
				}}, nil), nil)
			}

			contract, err := NewContractController(deps).CreateContract(context.Background(), tt.in)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint64(5), contract.ID)
			assert.True(t, contract.IsPermanent())
			assert.Equal(t, "Anna Smith", contract.EmployeeName)
			db.AssertExpectations(t)
		})
	}
}

func TestContractController_UpdateContract_PartialClearsRenewal(t *testing.T) {
	deps, db, _ := newTestDeps()
	terminated := entity.ContractTerminated

	db.On("Query", mock.Anything, getContractSQL, uint64(1)).Return(NewMockRows([][]interface{}{
		contractRow(1, entity.NewDate(2025, time.December, 1), "Anna Smith"),
	}, nil), nil).Once()
	db.On("Exec", mock.Anything, mock.AnythingOfType("string"),
		uint64Ptr(7), entity.NewDate(2025, time.January, 1), entity.NewDate(2026, time.January, 1), entity.Date{}, "Terminated", uint64(1),
	).Return(pgconn.NewCommandTag("UPDATE 1"), nil)
	db.On("Query", mock.Anything, getContractSQL, uint64(1)).Return(NewMockRows([][]interface{}{{
		uint64(1), uint64(7), entity.NewDate(2025, time.January, 1), entity.NewDate(2026, time.January, 1), nil, "Terminated", "Anna Smith",
	}}, nil), nil).Once()

	contract, err := NewContractController(deps).UpdateContract(context.Background(), 1, entity.ContractInput{Status: &terminated})
	require.NoError(t, err)
	assert.Equal(t, entity.ContractTerminated, contract.Status)
	assert.False(t, contract.RenewalNotificationDate.IsSet())

	db.AssertExpectations(t)
}

func TestContractController_UpdateContract_EmployeeRemoved(t *testing.T) {
	deps, db, _ := newTestDeps()
	active := entity.ContractActive
	start, end := entity.NewDate(2025, time.January, 1), entity.NewDate(2026, time.January, 1)

	db.On("Query", mock.Anything, getContractSQL, uint64(9)).Return(NewMockRows([][]interface{}{
		{uint64(9), nil, start, end, nil, "Pending", nil},
	}, nil), nil).Once()
	db.On("Exec", mock.Anything, mock.AnythingOfType("string"),
		(*uint64)(nil), start, end, entity.Date{}, "Active", uint64(9),
	).Return(pgconn.NewCommandTag("UPDATE 1"), nil)
	db.On("Query", mock.Anything, getContractSQL, uint64(9)).Return(NewMockRows([][]interface{}{
		{uint64(9), nil, start, end, nil, "Active", nil},
	}, nil), nil).Once()

	contract, err := NewContractController(deps).UpdateContract(context.Background(), 9, entity.ContractInput{Status: &active})
	require.NoError(t, err)
	assert.Nil(t, contract.EmployeeID)
	assert.Equal(t, entity.ContractActive, contract.Status)
	assert.Equal(t, entity.EmployeeRemovedName, contract.EmployeeName)

	db.AssertExpectations(t)
}

func TestContractController_UpdateContract_NotFound(t *testing.T) {
	deps, db, _ := newTestDeps()
	db.On("Query", mock.Anything, getContractSQL, uint64(4)).Return(NewMockRows(nil, nil), nil)

	_, err := NewContractController(deps).UpdateContract(context.Background(), 4, entity.ContractInput{})
	assert.ErrorIs(t, err, ErrContractNotFound)
}

func TestContractController_DeleteContract(t *testing.T) {
	deps, db, _ := newTestDeps()
	db.On("Exec", mock.Anything, "DELETE FROM contracts WHERE contract_id = $1", uint64(1)).Return(NewMockCommandTag("DELETE", 1), nil)
	db.On("Exec", mock.Anything, "DELETE FROM contracts WHERE contract_id = $1", uint64(2)).Return(NewMockCommandTag("DELETE", 0), nil)

	c := NewContractController(deps)
	assert.NoError(t, c.DeleteContract(context.Background(), 1))
	assert.ErrorIs(t, c.DeleteContract(context.Background(), 2), ErrContractNotFound)
}
