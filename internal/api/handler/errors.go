// Package handler provides the HTTP handlers for the dispatch optimizer
// API.
package handler

import (
	"errors"
	"net/http"

	"github.com/nexgen/dispatch-optimizer/internal/api/response"
	"github.com/nexgen/dispatch-optimizer/internal/dataset"
	"github.com/nexgen/dispatch-optimizer/internal/optimizer"
)

// writeDomainError maps engine errors onto problem responses. Every error
// class gets a distinct type and a detail naming the offending source,
// column or order.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		unavailable  *dataset.UnavailableError
		loadErr      *dataset.LoadError
		schemaErr    *dataset.SchemaError
		duplicateErr *dataset.DuplicateKeyError
		vehicleErr   *optimizer.VehicleDataError
	)

	switch {
	case errors.Is(err, dataset.ErrNotLoaded):
		response.DataUnavailable(w, r, "dataset has not been loaded yet")
	case errors.As(err, &unavailable):
		response.DataUnavailable(w, r, unavailable.Error())
	case errors.As(err, &loadErr):
		response.DataUnavailable(w, r, loadErr.Error())
	case errors.As(err, &schemaErr):
		response.SchemaViolation(w, r, schemaErr.Error())
	case errors.As(err, &duplicateErr):
		response.SchemaViolation(w, r, duplicateErr.Error())
	case errors.As(err, &vehicleErr):
		response.Internal(w, r, vehicleErr.Error())
	case errors.Is(err, optimizer.ErrOrderNotFound):
		response.NotFound(w, r, err.Error())
	case errors.Is(err, optimizer.ErrNoEligibleVehicle):
		response.NoEligibleVehicle(w, r, err.Error())
	default:
		response.Internal(w, r, err.Error())
	}
}
