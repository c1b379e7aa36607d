package models

import (
	"time"

	"github.com/nexgen/dispatch-optimizer/internal/dataset"
	"github.com/nexgen/dispatch-optimizer/internal/optimizer"
)

// Health is the ops health/readiness payload.
type Health struct {
	Status  string                 `json:"status"`
	Time    time.Time              `json:"time"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Health status values.
const (
	HealthStatusOK       = "OK"
	HealthStatusDegraded = "DEGRADED"
)

// SystemStatus reports the dataset cache state for ops.
type SystemStatus struct {
	Status  string         `json:"status"`
	Time    time.Time      `json:"time"`
	Dataset dataset.Status `json:"dataset"`
}

// TableResponse carries rows of a tabular source for display. Rows are
// column-keyed maps because the merged table's exact column set depends on
// the loaded sources.
type TableResponse struct {
	Columns []string                 `json:"columns"`
	Items   []map[string]interface{} `json:"items"`
	Count   int                      `json:"count"`
}

// OptimizeRequest is the body of POST /v1/orders/{orderID}/optimize.
type OptimizeRequest struct {
	Weights optimizer.Weights `json:"weights"`
}

// AnalyticsSummary is the dashboard aggregation payload.
type AnalyticsSummary struct {
	DelayByPriority  []dataset.GroupMean     `json:"delayByPriority"`
	OrdersByCategory []dataset.CategoryCount `json:"ordersByCategory"`
	CostByCarrier    []dataset.GroupSummary  `json:"costByCarrier"`
}

// FleetResponse lists the parsed vehicle records.
type FleetResponse struct {
	Items []optimizer.Vehicle `json:"items"`
	Count int                 `json:"count"`
}
