package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/adamanr/hrdesk/internal/controllers"
	"github.com/adamanr/hrdesk/internal/entity"
)

var errAuthHeaderMissing = errors.New("authorization header missing")

type Server struct {
	deps        *controllers.Dependens
	Controllers *controllers.Controllers
}

func NewServer(deps *controllers.Dependens) *Server {
	return &Server{
		deps:        deps,
		Controllers: controllers.NewControllers(deps),
	}
}

var _ ServerInterface = Server{}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// getUserFromToken extracts user information from the token.
func (s Server) getUserFromToken(r *http.Request) (*entity.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errAuthHeaderMissing
	}

	claims, err := s.Controllers.AuthController.CheckUserToken(r.Context(), authHeader)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// authorize answers 401 for a missing or rejected token and 403 when the
// caller's role is not in roles. An empty roles list admits any signed-in user.
func (s Server) authorize(w http.ResponseWriter, r *http.Request, roles ...string) (*entity.Claims, bool) {
	claims, err := s.getUserFromToken(r)
	if err != nil {
		if errors.Is(err, errAuthHeaderMissing) || errors.Is(err, controllers.ErrInvalidToken) || errors.Is(err, controllers.ErrTokenRevoked) {
			s.deps.Logger.Warn("Unauthorized request", slog.String("path", r.URL.Path), slog.String("error", err.Error()))
			s.httpResponse(w, http.StatusUnauthorized, errorBody("Unauthorized"), "error")
			return nil, false
		}

		s.deps.Logger.Error("Error checking token", slog.String("error", err.Error()))
		s.httpResponse(w, http.StatusInternalServerError, errorBody("Failed to check token"), "error")
		return nil, false
	}

	if len(roles) > 0 && !slices.Contains(roles, claims.Role) {
		s.deps.Logger.Warn("Insufficient permissions",
			slog.Uint64("user_id", claims.ID), slog.String("role", claims.Role), slog.String("path", r.URL.Path))
		s.httpResponse(w, http.StatusForbidden, errorBody("Insufficient permissions"), "error")
		return nil, false
	}

	return claims, true
}

func (s Server) requireHR(w http.ResponseWriter, r *http.Request) bool {
	_, ok := s.authorize(w, r, entity.RoleHR)
	return ok
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, controllers.ErrEmployeeNotFound),
		errors.Is(err, controllers.ErrVacationNotFound),
		errors.Is(err, controllers.ErrContractNotFound):
		return http.StatusNotFound
	case errors.Is(err, controllers.ErrEmployeeFieldsRequired),
		errors.Is(err, controllers.ErrInvalidEmployeeField),
		errors.Is(err, controllers.ErrVacationFieldsRequired),
		errors.Is(err, controllers.ErrContractFieldsRequired),
		errors.Is(err, controllers.ErrInvalidRenewalDate),
		errors.Is(err, controllers.ErrInvalidPeriod),
		errors.Is(err, controllers.ErrInvalidContractPeriod),
		errors.Is(err, controllers.ErrInvalidStatus),
		errors.Is(err, controllers.ErrPasswordRequired),
		errors.Is(err, controllers.ErrCredentialsRequired):
		return http.StatusBadRequest
	case errors.Is(err, controllers.ErrEmployeeExists):
		return http.StatusConflict
	case errors.Is(err, controllers.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, controllers.ErrAccountDeactivated):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// fail maps a controller error to a status. Internal errors are reported with
// fallback instead of the raw error text.
func (s Server) fail(w http.ResponseWriter, err error, fallback string) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.deps.Logger.Error(fallback, slog.String("error", err.Error()))
		s.httpResponse(w, status, errorBody(fallback), "error")
		return
	}

	s.httpResponse(w, status, errorBody(err.Error()), "error")
}

func (s Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.deps.Logger.Warn("Error decoding request body", slog.String("error", err.Error()))
		s.httpResponse(w, http.StatusBadRequest, errorBody("Invalid request body"), "error")
		return false
	}

	return true
}

// ParamErrorHandler answers unbindable path parameters in the common envelope.
func (s Server) ParamErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	s.httpResponse(w, http.StatusBadRequest, errorBody(err.Error()), "error")
}

func (s Server) httpResponse(w http.ResponseWriter, status int, data any, respType string) {
	resp := map[string]any{
		"status": status,
		"type":   respType,
		"data":   data,
	}

	respData, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		s.deps.Logger.Error("Error marshaling response", slog.String("error", marshalErr.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(respData); err != nil {
		s.deps.Logger.Error("Error writing response", slog.String("error", err.Error()))
	}
}

// AuthLogin authenticates a user and returns a JWT token.
func (s Server) AuthLogin(w http.ResponseWriter, r *http.Request) {
	var req entity.LoginRequest
	if !s.decode(w, r, &req) {
		return
	}

	resp, err := s.Controllers.AuthController.Login(r.Context(), &req)
	if err != nil {
		s.fail(w, err, "Failed to log in")
		return
	}

	s.httpResponse(w, http.StatusOK, resp, "success")
}

// AuthLogout revokes the caller's token.
func (s Server) AuthLogout(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authorize(w, r); !ok {
		return
	}

	if err := s.Controllers.AuthController.Logout(r.Context(), r.Header.Get("Authorization")); err != nil {
		s.fail(w, err, "Failed to logout")
		return
	}

	s.httpResponse(w, http.StatusOK, entity.MessageResponse{Message: "Logged out successfully"}, "success")
}

func (s Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.authorize(w, r)
	if !ok {
		return
	}

	profile, err := s.Controllers.AuthController.Profile(r.Context(), claims.ID)
	if err != nil {
		s.fail(w, err, "Failed to get profile")
		return
	}

	s.httpResponse(w, http.StatusOK, profile, "success")
}

// SetPassword sets or resets an employee password. HR only.
func (s Server) SetPassword(w http.ResponseWriter, r *http.Request, id uint64) {
	if !s.requireHR(w, r) {
		return
	}

	var req entity.SetPasswordRequest
	if !s.decode(w, r, &req) {
		return
	}

	if err := s.Controllers.AuthController.SetPassword(r.Context(), id, req.Password); err != nil {
		s.fail(w, err, "Failed to set password")
		return
	}

	s.httpResponse(w, http.StatusOK, entity.MessageResponse{Message: "Password updated"}, "success")
}
