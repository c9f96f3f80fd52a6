package api

import (
	"log/slog"
	"net/http"

	"github.com/adamanr/hrdesk/internal/entity"
)

func (s Server) GetVacations(w http.ResponseWriter, r *http.Request) {
	if !s.requireHR(w, r) {
		return
	}

	vacations, err := s.Controllers.VacationController.GetVacations(r.Context())
	if err != nil {
		s.fail(w, err, "Failed to get vacations")
		return
	}

	s.httpResponse(w, http.StatusOK, vacations, "success")
}

func (s Server) GetVacationByID(w http.ResponseWriter, r *http.Request, id uint64) {
	if !s.requireHR(w, r) {
		return
	}

	vacation, err := s.Controllers.VacationController.GetVacationByID(r.Context(), id)
	if err != nil {
		s.fail(w, err, "Failed to get vacation")
		return
	}

	s.httpResponse(w, http.StatusOK, vacation, "success")
}

// CreateVacation files a request. Employees may only file for themselves.
func (s Server) CreateVacation(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authorize(w, r)
	if !ok {
		return
	}

	var in entity.VacationInput
	if !s.decode(w, r, &in) {
		return
	}

	if claims.Role != entity.RoleHR && in.EmployeeID != claims.ID {
		s.deps.Logger.Warn("Vacation request for another employee",
			slog.Uint64("user_id", claims.ID), slog.Uint64("employee_id", in.EmployeeID))
		s.httpResponse(w, http.StatusForbidden, errorBody("Insufficient permissions"), "error")
		return
	}

	vacation, err := s.Controllers.VacationController.CreateVacation(r.Context(), in)
	if err != nil {
		s.fail(w, err, "Failed to create vacation")
		return
	}

	s.httpResponse(w, http.StatusCreated, vacation, "success")
}

func (s Server) UpdateVacation(w http.ResponseWriter, r *http.Request, id uint64) {
	if !s.requireHR(w, r) {
		return
	}

	var req entity.VacationStatusUpdate
	if !s.decode(w, r, &req) {
		return
	}

	vacation, err := s.Controllers.VacationController.UpdateVacationStatus(r.Context(), id, req.Status)
	if err != nil {
		s.fail(w, err, "Failed to update vacation")
		return
	}

	s.httpResponse(w, http.StatusOK, vacation, "success")
}

func (s Server) GetEmployeeVacations(w http.ResponseWriter, r *http.Request, id uint64) {
	claims, ok := s.authorize(w, r)
	if !ok {
		return
	}

	if claims.Role != entity.RoleHR && claims.ID != id {
		s.httpResponse(w, http.StatusForbidden, errorBody("Insufficient permissions"), "error")
		return
	}

	vacations, err := s.Controllers.VacationController.GetEmployeeVacations(r.Context(), id)
	if err != nil {
		s.fail(w, err, "Failed to get vacations")
		return
	}

	s.httpResponse(w, http.StatusOK, vacations, "success")
}
