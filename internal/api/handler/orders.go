package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexgen/dispatch-optimizer/internal/api/models"
	"github.com/nexgen/dispatch-optimizer/internal/api/response"
	"github.com/nexgen/dispatch-optimizer/internal/dataset"
)

// OrdersHandler serves the merged order table.
type OrdersHandler struct {
	data *dataset.Service
}

// NewOrdersHandler creates an OrdersHandler.
func NewOrdersHandler(data *dataset.Service) *OrdersHandler {
	return &OrdersHandler{data: data}
}

// orderFilterFromQuery reads the repeatable category/priority query
// parameters.
func orderFilterFromQuery(r *http.Request) dataset.OrderFilter {
	q := r.URL.Query()
	return dataset.OrderFilter{
		Categories: q["category"],
		Priorities: q["priority"],
	}
}

// ListOrders handles GET /v1/orders - the merged/imputed order rows,
// optionally filtered by product category and priority.
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.data.Snapshot()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	filtered := dataset.FilterOrders(snapshot.Orders, orderFilterFromQuery(r))
	response.JSON(w, r, http.StatusOK, models.TableResponse{
		Columns: filtered.Columns(),
		Items:   filtered.Records(),
		Count:   filtered.NumRows(),
	})
}

// GetOrder handles GET /v1/orders/{orderID} - one merged order.
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")

	snapshot, err := h.data.Snapshot()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	row := dataset.FindRow(snapshot.Orders, dataset.KeyOrderID, orderID)
	if row < 0 {
		response.NotFound(w, r, "order "+orderID+" not found")
		return
	}
	response.JSON(w, r, http.StatusOK, snapshot.Orders.Row(row))
}

// ExportOrders handles GET /v1/orders/export - the filtered merged table as
// a CSV download. The export reloads to an equivalent table given the same
// imputation run.
func (h *OrdersHandler) ExportOrders(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.data.Snapshot()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	filtered := dataset.FilterOrders(snapshot.Orders, orderFilterFromQuery(r))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="filtered_logistics_data.csv"`)
	if err := dataset.WriteTable(w, filtered); err != nil {
		// Headers are already out; the broken download is all we can
		// report.
		return
	}
}
