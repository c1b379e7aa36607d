// Package response provides HTTP response helpers.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/nexgen/dispatch-optimizer/internal/api/middleware"
	"github.com/nexgen/dispatch-optimizer/internal/api/models"
)

// JSON writes a JSON response with the given status, carrying the request
// ID for correlation.
func JSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if requestID := middleware.GetRequestID(r.Context()); requestID != "" {
		w.Header().Set("X-Request-Id", requestID)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Error writes a Problem+JSON response.
func Error(w http.ResponseWriter, r *http.Request, problem *models.Problem) {
	problem.Instance = r.URL.Path
	problem.Write(w)
}

// BadRequest writes a 400 problem.
func BadRequest(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, models.NewBadRequest(middleware.GetRequestID(r.Context()), detail))
}

// NotFound writes a 404 problem.
func NotFound(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, models.NewNotFound(middleware.GetRequestID(r.Context()), detail))
}

// NoEligibleVehicle writes a 422 problem.
func NoEligibleVehicle(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, models.NewNoEligibleVehicle(middleware.GetRequestID(r.Context()), detail))
}

// DataUnavailable writes a 503 problem.
func DataUnavailable(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, models.NewDataUnavailable(middleware.GetRequestID(r.Context()), detail))
}

// SchemaViolation writes a 500 problem.
func SchemaViolation(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, models.NewSchemaViolation(middleware.GetRequestID(r.Context()), detail))
}

// Internal writes a 500 problem.
func Internal(w http.ResponseWriter, r *http.Request, detail string) {
	Error(w, r, models.NewInternalError(middleware.GetRequestID(r.Context()), detail))
}
