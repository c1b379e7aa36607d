// Package models defines the HTTP API's request and response shapes.
package models

import (
	"encoding/json"
	"net/http"
)

// Problem is an RFC7807 error response, served with
// Content-Type: application/problem+json.
type Problem struct {
	// Type is a URI reference identifying the problem class.
	Type string `json:"type"`

	// Title is a short human-readable summary of the class.
	Title string `json:"title"`

	// Status is the HTTP status code.
	Status int `json:"status"`

	// Detail explains this specific occurrence. It names the offending
	// source, column or order.
	Detail string `json:"detail,omitempty"`

	// Instance is the request path.
	Instance string `json:"instance,omitempty"`

	// TraceID is the request identifier for correlation.
	TraceID string `json:"traceId"`
}

// Problem type URIs. Each error class in the engine maps to its own type so
// callers can branch on it.
const (
	ProblemTypeValidation      = "https://api.nexgen.dev/problems/validation-error"
	ProblemTypeNotFound        = "https://api.nexgen.dev/problems/not-found"
	ProblemTypeNoEligible      = "https://api.nexgen.dev/problems/no-eligible-vehicle"
	ProblemTypeDataUnavailable = "https://api.nexgen.dev/problems/data-unavailable"
	ProblemTypeSchemaViolation = "https://api.nexgen.dev/problems/schema-violation"
	ProblemTypeTooManyRequests = "https://api.nexgen.dev/problems/too-many-requests"
	ProblemTypeInternal        = "https://api.nexgen.dev/problems/internal-error"
)

// NewProblem creates a Problem.
func NewProblem(problemType, title string, status int, traceID string) *Problem {
	return &Problem{
		Type:    problemType,
		Title:   title,
		Status:  status,
		TraceID: traceID,
	}
}

// WithDetail sets the occurrence detail.
func (p *Problem) WithDetail(detail string) *Problem {
	p.Detail = detail
	return p
}

// Write serializes the Problem to the response.
func (p *Problem) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.Header().Set("X-Request-Id", p.TraceID)
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// NewBadRequest creates a 400 problem.
func NewBadRequest(traceID, detail string) *Problem {
	return NewProblem(ProblemTypeValidation, "Validation error", http.StatusBadRequest, traceID).WithDetail(detail)
}

// NewNotFound creates a 404 problem.
func NewNotFound(traceID, detail string) *Problem {
	return NewProblem(ProblemTypeNotFound, "Not found", http.StatusNotFound, traceID).WithDetail(detail)
}

// NewNoEligibleVehicle creates a 422 problem for an empty candidate set.
func NewNoEligibleVehicle(traceID, detail string) *Problem {
	return NewProblem(ProblemTypeNoEligible, "No eligible vehicle", http.StatusUnprocessableEntity, traceID).WithDetail(detail)
}

// NewDataUnavailable creates a 503 problem for a failed or absent load.
func NewDataUnavailable(traceID, detail string) *Problem {
	return NewProblem(ProblemTypeDataUnavailable, "Data unavailable", http.StatusServiceUnavailable, traceID).WithDetail(detail)
}

// NewSchemaViolation creates a 500 problem for broken source schemas.
func NewSchemaViolation(traceID, detail string) *Problem {
	return NewProblem(ProblemTypeSchemaViolation, "Schema violation", http.StatusInternalServerError, traceID).WithDetail(detail)
}

// NewTooManyRequests creates a 429 problem.
func NewTooManyRequests(traceID, detail string) *Problem {
	return NewProblem(ProblemTypeTooManyRequests, "Too many requests", http.StatusTooManyRequests, traceID).WithDetail(detail)
}

// NewInternalError creates a 500 problem.
func NewInternalError(traceID, detail string) *Problem {
	return NewProblem(ProblemTypeInternal, "Internal server error", http.StatusInternalServerError, traceID).WithDetail(detail)
}
