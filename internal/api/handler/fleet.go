package handler

import (
	"net/http"

	"github.com/nexgen/dispatch-optimizer/internal/api/models"
	"github.com/nexgen/dispatch-optimizer/internal/api/response"
	"github.com/nexgen/dispatch-optimizer/internal/dataset"
	"github.com/nexgen/dispatch-optimizer/internal/optimizer"
)

// FleetHandler serves the reference tables: the vehicle fleet and the two
// passthrough sources the display layer renders without the scoring core
// touching them.
type FleetHandler struct {
	data *dataset.Service
}

// NewFleetHandler creates a FleetHandler.
func NewFleetHandler(data *dataset.Service) *FleetHandler {
	return &FleetHandler{data: data}
}

// ListFleet handles GET /v1/fleet - parsed vehicle records, schema-checked.
func (h *FleetHandler) ListFleet(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.data.Snapshot()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	vehicles, err := optimizer.ParseFleet(snapshot.Fleet)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, models.FleetResponse{
		Items: vehicles,
		Count: len(vehicles),
	})
}

// ListInventory handles GET /v1/inventory - warehouse inventory
// passthrough.
func (h *FleetHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	h.passthrough(w, r, func(s *dataset.Snapshot) *dataset.Table { return s.Inventory })
}

// ListFeedback handles GET /v1/feedback - customer feedback passthrough.
func (h *FleetHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	h.passthrough(w, r, func(s *dataset.Snapshot) *dataset.Table { return s.Feedback })
}

func (h *FleetHandler) passthrough(w http.ResponseWriter, r *http.Request, pick func(*dataset.Snapshot) *dataset.Table) {
	snapshot, err := h.data.Snapshot()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	t := pick(snapshot)
	response.JSON(w, r, http.StatusOK, models.TableResponse{
		Columns: t.Columns(),
		Items:   t.Records(),
		Count:   t.NumRows(),
	})
}
