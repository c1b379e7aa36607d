package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexgen/dispatch-optimizer/internal/api/models"
	"github.com/nexgen/dispatch-optimizer/internal/api/response"
	"github.com/nexgen/dispatch-optimizer/internal/optimizer"
)

// OptimizeHandler runs vehicle recommendations.
type OptimizeHandler struct {
	engine *optimizer.Service
}

// NewOptimizeHandler creates an OptimizeHandler.
func NewOptimizeHandler(engine *optimizer.Service) *OptimizeHandler {
	return &OptimizeHandler{engine: engine}
}

// Optimize handles POST /v1/orders/{orderID}/optimize.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	var input models.OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}
	if err := input.Weights.Validate(); err != nil {
		response.BadRequest(w, r, err.Error())
		return
	}

	recommendation, err := h.engine.Optimize(r.Context(), orderID, input.Weights)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, recommendation)
}
