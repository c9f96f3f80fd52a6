package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /auth/login)
	AuthLogin(w http.ResponseWriter, r *http.Request)
	// (POST /auth/logout)
	AuthLogout(w http.ResponseWriter, r *http.Request)
	// (GET /auth/profile)
	GetProfile(w http.ResponseWriter, r *http.Request)
	// (POST /auth/set-password/{id})
	SetPassword(w http.ResponseWriter, r *http.Request, id uint64)

	// (GET /employees)
	GetEmployees(w http.ResponseWriter, r *http.Request)
	// (POST /employees)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	// (GET /employees/{id})
	GetEmployeeByID(w http.ResponseWriter, r *http.Request, id uint64)
	// (PUT /employees/{id})
	UpdateEmployee(w http.ResponseWriter, r *http.Request, id uint64)
	// (DELETE /employees/{id})
	DeleteEmployee(w http.ResponseWriter, r *http.Request, id uint64)

	// (GET /vacations)
	GetVacations(w http.ResponseWriter, r *http.Request)
	// (POST /vacations)
	CreateVacation(w http.ResponseWriter, r *http.Request)
	// (GET /vacations/{id})
	GetVacationByID(w http.ResponseWriter, r *http.Request, id uint64)
	// (PUT /vacations/{id})
	UpdateVacation(w http.ResponseWriter, r *http.Request, id uint64)
	// (GET /employee-vacations/{id})
	GetEmployeeVacations(w http.ResponseWriter, r *http.Request, id uint64)

	// (GET /departments)
	GetDepartments(w http.ResponseWriter, r *http.Request)

	// (GET /contracts)
	GetContracts(w http.ResponseWriter, r *http.Request)
	// (POST /contracts)
	CreateContract(w http.ResponseWriter, r *http.Request)
	// (GET /contracts/{id})
	GetContractByID(w http.ResponseWriter, r *http.Request, id uint64)
	// (PUT /contracts/{id})
	UpdateContract(w http.ResponseWriter, r *http.Request, id uint64)
	// (DELETE /contracts/{id})
	DeleteContract(w http.ResponseWriter, r *http.Request, id uint64)

	// (GET /analytics/department-count)
	GetDepartmentCount(w http.ResponseWriter, r *http.Request)
	// (GET /analytics/average-age)
	GetAverageAge(w http.ResponseWriter, r *http.Request)
	// (GET /analytics/churn-rate)
	GetChurnRate(w http.ResponseWriter, r *http.Request)
	// (GET /analytics/average-tenure)
	GetAverageTenure(w http.ResponseWriter, r *http.Request)
	// (GET /analytics/average-hours-per-department)
	GetAverageHoursPerDepartment(w http.ResponseWriter, r *http.Request)
}

// InvalidParamFormatError is reported when a path parameter cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

type idHandler func(w http.ResponseWriter, r *http.Request, id uint64)

// ServerInterfaceWrapper binds path parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler          ServerInterface
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *ServerInterfaceWrapper) withID(next idHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id uint64

		err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
		if err != nil {
			siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
			return
		}

		next(w, r, id)
	}
}

// HandlerFromMux registers every route of si on r. loginMiddlewares wrap only
// the login route.
func HandlerFromMux(si ServerInterface, r chi.Router, errorHandler func(w http.ResponseWriter, r *http.Request, err error), loginMiddlewares ...func(http.Handler) http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = func(w http.ResponseWriter, _ *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:          si,
		ErrorHandlerFunc: errorHandler,
	}

	r.Group(func(r chi.Router) {
		r.With(loginMiddlewares...).Post("/auth/login", si.AuthLogin)
		r.Post("/auth/logout", si.AuthLogout)
		r.Get("/auth/profile", si.GetProfile)
		r.Post("/auth/set-password/{id}", wrapper.withID(si.SetPassword))

		r.Get("/employees", si.GetEmployees)
		r.Post("/employees", si.CreateEmployee)
		r.Get("/employees/{id}", wrapper.withID(si.GetEmployeeByID))
		r.Put("/employees/{id}", wrapper.withID(si.UpdateEmployee))
		r.Delete("/employees/{id}", wrapper.withID(si.DeleteEmployee))

		r.Get("/vacations", si.GetVacations)
		r.Post("/vacations", si.CreateVacation)
		r.Get("/vacations/{id}", wrapper.withID(si.GetVacationByID))
		r.Put("/vacations/{id}", wrapper.withID(si.UpdateVacation))
		r.Get("/employee-vacations/{id}", wrapper.withID(si.GetEmployeeVacations))

		r.Get("/departments", si.GetDepartments)

		r.Get("/contracts", si.GetContracts)
		r.Post("/contracts", si.CreateContract)
		r.Get("/contracts/{id}", wrapper.withID(si.GetContractByID))
		r.Put("/contracts/{id}", wrapper.withID(si.UpdateContract))
		r.Delete("/contracts/{id}", wrapper.withID(si.DeleteContract))

		r.Get("/analytics/department-count", si.GetDepartmentCount)
		r.Get("/analytics/average-age", si.GetAverageAge)
		r.Get("/analytics/churn-rate", si.GetChurnRate)
		r.Get("/analytics/average-tenure", si.GetAverageTenure)
		r.Get("/analytics/average-hours-per-department", si.GetAverageHoursPerDepartment)
	})

	return r
}
