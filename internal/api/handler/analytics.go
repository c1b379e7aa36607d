package handler

import (
	"net/http"

	"github.com/nexgen/dispatch-optimizer/internal/api/models"
	"github.com/nexgen/dispatch-optimizer/internal/api/response"
	"github.com/nexgen/dispatch-optimizer/internal/dataset"
)

// AnalyticsHandler serves the dashboard aggregations.
type AnalyticsHandler struct {
	data *dataset.Service
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(data *dataset.Service) *AnalyticsHandler {
	return &AnalyticsHandler{data: data}
}

// Summary handles GET /v1/analytics/summary - the aggregations behind the
// dashboard charts, computed over the (optionally filtered) merged table.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.data.Snapshot()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	orders := dataset.FilterOrders(snapshot.Orders, orderFilterFromQuery(r))
	response.JSON(w, r, http.StatusOK, models.AnalyticsSummary{
		DelayByPriority:  dataset.MeanBy(orders, "priority", dataset.ColDeliveryDelay),
		OrdersByCategory: dataset.CountBy(orders, "product_category"),
		CostByCarrier:    dataset.SummaryBy(orders, "carrier", "delivery_cost"),
	})
}
