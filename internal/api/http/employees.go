package api

import (
	"net/http"

	"github.com/adamanr/hrdesk/internal/entity"
)

func (s Server) GetEmployees(w http.ResponseWriter, r *http.Request) {
	if !s.requireHR(w, r) {
		return
	}

	employees, err := s.Controllers.EmployeeController.GetEmployees(r.Context())
	if err != nil {
		s.fail(w, err, "Failed to get employees")
		return
	}

	s.httpResponse(w, http.StatusOK, employees, "success")
}

func (s Server) GetEmployeeByID(w http.ResponseWriter, r *http.Request, id uint64) {
	if !s.requireHR(w, r) {
		return
	}

	employee, err := s.Controllers.EmployeeController.GetEmployeeByID(r.Context(), id)
	if err != nil {
		s.fail(w, err, "Failed to get employee")
		return
	}

	s.httpResponse(w, http.StatusOK, employee, "success")
}

func (s Server) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	if !s.requireHR(w, r) {
		return
	}

	var emp entity.Employee
	if !s.decode(w, r, &emp) {
		return
	}

	created, err := s.Controllers.EmployeeController.CreateEmployee(r.Context(), emp)
	if err != nil {
		s.fail(w, err, "Failed to create employee")
		return
	}

	s.httpResponse(w, http.StatusCreated, created, "success")
}

func (s Server) UpdateEmployee(w http.ResponseWriter, r *http.Request, id uint64) {
	if !s.requireHR(w, r) {
		return
	}

	var emp entity.Employee
	if !s.decode(w, r, &emp) {
		return
	}

	updated, err := s.Controllers.EmployeeController.UpdateEmployee(r.Context(), id, emp)
	if err != nil {
		s.fail(w, err, "Failed to update employee")
		return
	}

	s.httpResponse(w, http.StatusOK, updated, "success")
}

func (s Server) DeleteEmployee(w http.ResponseWriter, r *http.Request, id uint64) {
	if !s.requireHR(w, r) {
		return
	}

	if err := s.Controllers.EmployeeController.DeleteEmployee(r.Context(), id); err != nil {
		s.fail(w, err, "Failed to delete employee")
		return
	}

	s.httpResponse(w, http.StatusOK, entity.MessageResponse{Message: "Employee deleted"}, "success")
}

// GetDepartments is open to every signed-in user; the profile page resolves
// department names through it.
func (s Server) GetDepartments(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authorize(w, r); !ok {
		return
	}

	departments, err := s.Controllers.DepartmentController.GetDepartments(r.Context())
	if err != nil {
		s.fail(w, err, "Failed to get departments")
		return
	}

	s.httpResponse(w, http.StatusOK, departments, "success")
}
