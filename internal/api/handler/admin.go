package handler

import (
	"net/http"

	"github.com/nexgen/dispatch-optimizer/internal/api/response"
	"github.com/nexgen/dispatch-optimizer/internal/dataset"
)

// AdminHandler handles operational mutations.
type AdminHandler struct {
	data *dataset.Service
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(data *dataset.Service) *AdminHandler {
	return &AdminHandler{data: data}
}

// Refresh handles POST /v1/admin/refresh - manual cache invalidation and
// reload. A failed reload keeps the previous snapshot serving.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.data.Refresh(r.Context()); err != nil {
		writeDomainError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, h.data.Status())
}
