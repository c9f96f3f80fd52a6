package controllers

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountDeactivated  = errors.New("account deactivated")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenRevoked        = errors.New("token revoked")
	ErrPasswordRequired    = errors.New("password is required")

	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeExists         = errors.New("employee with this email already exists")
	ErrEmployeeFieldsRequired = errors.New("required fields: first_name, last_name, email, job_name")
	ErrInvalidEmployeeField   = errors.New("invalid employee field")

	ErrVacationNotFound       = errors.New("vacation not found")
	ErrVacationFieldsRequired = errors.New("required fields: fk_employee, start_date, end_date")

	ErrContractNotFound       = errors.New("contract not found")
	ErrContractFieldsRequired = errors.New("required fields: fk_employee, start_date, end_date")
	ErrInvalidRenewalDate     = errors.New("renewal notification date must be before the end date")
	ErrInvalidContractPeriod  = errors.New("end date must be after the start date")

	ErrInvalidPeriod = errors.New("start date must not be after end date")
	ErrInvalidStatus = errors.New("invalid status")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
