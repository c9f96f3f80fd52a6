package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/adamanr/hrdesk/internal/session"
)

// Login authenticates and stores the resulting session.
func (c *Client) Login(ctx context.Context, email, password string) (session.Session, error) {
	var resp entity.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", entity.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return session.Session{}, err
	}

	s := session.Session{
		Token:    resp.AccessToken,
		Role:     resp.Role,
		UserID:   strconv.FormatUint(resp.EmployeeID, 10),
		UserName: resp.Name,
	}

	if err := c.store.Save(s); err != nil {
		return session.Session{}, err
	}

	return s, nil
}

// Logout revokes the token on the server and always clears the local session.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if clearErr := c.store.Clear(); clearErr != nil {
		return clearErr
	}

	if errors.Is(err, ErrUnauthorized) {
		return nil
	}

	return err
}

func (c *Client) Profile(ctx context.Context) (*entity.Profile, error) {
	var profile entity.Profile
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (c *Client) SetPassword(ctx context.Context, employeeID uint64, password string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/auth/set-password/%d", employeeID), entity.SetPasswordRequest{Password: password}, nil)
}

func (c *Client) Employees(ctx context.Context) ([]entity.Employee, error) {
	var employees []entity.Employee
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &employees); err != nil {
		return nil, err
	}

	return employees, nil
}

func (c *Client) Employee(ctx context.Context, id uint64) (*entity.Employee, error) {
	var employee entity.Employee
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/employees/%d", id), nil, &employee); err != nil {
		return nil, err
	}

	return &employee, nil
}

func (c *Client) AddEmployee(ctx context.Context, emp entity.Employee) (*entity.Employee, error) {
	var created entity.Employee
	if err := c.do(ctx, http.MethodPost, "/employees", emp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id uint64, emp entity.Employee) (*entity.Employee, error) {
	var updated entity.Employee
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/employees/%d", id), emp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d", id), nil, nil)
}

func (c *Client) Vacations(ctx context.Context) ([]entity.Vacation, error) {
	var vacations []entity.Vacation
	if err := c.do(ctx, http.MethodGet, "/vacations", nil, &vacations); err != nil {
		return nil, err
	}

	return vacations, nil
}

func (c *Client) Vacation(ctx context.Context, id uint64) (*entity.Vacation, error) {
	var vacation entity.Vacation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/vacations/%d", id), nil, &vacation); err != nil {
		return nil, err
	}

	return &vacation, nil
}

// EmployeeVacations never fails: an empty id or any error yields an empty list.
func (c *Client) EmployeeVacations(ctx context.Context, employeeID string) []entity.Vacation {
	if employeeID == "" {
		return []entity.Vacation{}
	}

	var vacations []entity.Vacation
	if err := c.do(ctx, http.MethodGet, "/employee-vacations/"+employeeID, nil, &vacations); err != nil {
		c.logger.Error("Error loading employee vacations", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
		return []entity.Vacation{}
	}

	if vacations == nil {
		return []entity.Vacation{}
	}

	return vacations
}

func (c *Client) CreateVacation(ctx context.Context, in entity.VacationInput) (*entity.Vacation, error) {
	var vacation entity.Vacation
	if err := c.do(ctx, http.MethodPost, "/vacations", in, &vacation); err != nil {
		return nil, err
	}

	return &vacation, nil
}

func (c *Client) UpdateVacation(ctx context.Context, id uint64, status entity.VacationStatus) (*entity.Vacation, error) {
	var vacation entity.Vacation
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/vacations/%d", id), entity.VacationStatusUpdate{Status: status}, &vacation); err != nil {
		return nil, err
	}

	return &vacation, nil
}

func (c *Client) Departments(ctx context.Context) ([]entity.Department, error) {
	var departments []entity.Department
	if err := c.do(ctx, http.MethodGet, "/departments", nil, &departments); err != nil {
		return nil, err
	}

	return departments, nil
}

func (c *Client) Contracts(ctx context.Context) ([]entity.Contract, error) {
	var contracts []entity.Contract
	if err := c.do(ctx, http.MethodGet, "/contracts", nil, &contracts); err != nil {
		return nil, err
	}

	return contracts, nil
}

func (c *Client) Contract(ctx context.Context, id uint64) (*entity.Contract, error) {
	var contract entity.Contract
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/contracts/%d", id), nil, &contract); err != nil {
		return nil, err
	}

	return &contract, nil
}

func (c *Client) AddContract(ctx context.Context, in entity.ContractInput) (*entity.Contract, error) {
	var contract entity.Contract
	if err := c.do(ctx, http.MethodPost, "/contracts", in, &contract); err != nil {
		return nil, err
	}

	return &contract, nil
}

func (c *Client) UpdateContract(ctx context.Context, id uint64, in entity.ContractInput) (*entity.Contract, error) {
	var contract entity.Contract
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/contracts/%d", id), in, &contract); err != nil {
		return nil, err
	}

	return &contract, nil
}

func (c *Client) DeleteContract(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/contracts/%d", id), nil, nil)
}

func (c *Client) DepartmentCount(ctx context.Context) ([]entity.DepartmentCount, error) {
	var counts []entity.DepartmentCount
	if err := c.do(ctx, http.MethodGet, "/analytics/department-count", nil, &counts); err != nil {
		return nil, err
	}

	return counts, nil
}

func (c *Client) AverageAge(ctx context.Context) (*entity.AverageAge, error) {
	var res entity.AverageAge
	if err := c.do(ctx, http.MethodGet, "/analytics/average-age", nil, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) ChurnRate(ctx context.Context) (*entity.ChurnRate, error) {
	var res entity.ChurnRate
	if err := c.do(ctx, http.MethodGet, "/analytics/churn-rate", nil, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) AverageTenure(ctx context.Context) (*entity.AverageTenure, error) {
	var res entity.AverageTenure
	if err := c.do(ctx, http.MethodGet, "/analytics/average-tenure", nil, &res); err != nil {
		return nil, err
	}

	return &res, nil
}

func (c *Client) AverageHoursPerDepartment(ctx context.Context) ([]entity.DepartmentHours, error) {
	var hours []entity.DepartmentHours
	if err := c.do(ctx, http.MethodGet, "/analytics/average-hours-per-department", nil, &hours); err != nil {
		return nil, err
	}

	return hours, nil
}
