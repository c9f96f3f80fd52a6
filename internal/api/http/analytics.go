package api

import (
	"context"
	"net/http"
)

// analytics runs an HR-only read and writes its result.
func analytics[T any](s Server, w http.ResponseWriter, r *http.Request, fn func(context.Context) (T, error)) {
	if !s.requireHR(w, r) {
		return
	}

	res, err := fn(r.Context())
	if err != nil {
		s.fail(w, err, "Failed to compute analytics")
		return
	}

	s.httpResponse(w, http.StatusOK, res, "success")
}

func (s Server) GetDepartmentCount(w http.ResponseWriter, r *http.Request) {
	analytics(s, w, r, s.Controllers.AnalyticsController.DepartmentCount)
}

func (s Server) GetAverageAge(w http.ResponseWriter, r *http.Request) {
	analytics(s, w, r, s.Controllers.AnalyticsController.AverageAge)
}

func (s Server) GetChurnRate(w http.ResponseWriter, r *http.Request) {
	analytics(s, w, r, s.Controllers.AnalyticsController.ChurnRate)
}

func (s Server) GetAverageTenure(w http.ResponseWriter, r *http.Request) {
	analytics(s, w, r, s.Controllers.AnalyticsController.AverageTenure)
}

func (s Server) GetAverageHoursPerDepartment(w http.ResponseWriter, r *http.Request) {
	analytics(s, w, r, s.Controllers.AnalyticsController.AverageHoursPerDepartment)
}
