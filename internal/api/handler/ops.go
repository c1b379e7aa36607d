package handler

import (
	"net/http"
	"time"

	"github.com/nexgen/dispatch-optimizer/internal/api/models"
	"github.com/nexgen/dispatch-optimizer/internal/api/response"
	"github.com/nexgen/dispatch-optimizer/internal/dataset"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	data      *dataset.Service
}

// NewOpsHandler creates an OpsHandler.
func NewOpsHandler(version, buildTime string, data *dataset.Service) *OpsHandler {
	return &OpsHandler{version: version, buildTime: buildTime, data: data}
}

// HealthCheck handles GET /v1/ops/health - liveness.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{
		Status: models.HealthStatusOK,
		Time:   time.Now(),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	})
}

// ReadinessCheck handles GET /v1/ops/ready - ready once a snapshot is
// loaded.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	status := h.data.Status()
	if !status.Loaded {
		response.DataUnavailable(w, r, "dataset has not been loaded yet")
		return
	}
	response.JSON(w, r, http.StatusOK, models.Health{
		Status: models.HealthStatusOK,
		Time:   time.Now(),
	})
}

// SystemStatus handles GET /v1/ops/status - dataset cache state.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	status := h.data.Status()
	overall := models.HealthStatusOK
	if !status.Loaded {
		overall = models.HealthStatusDegraded
	}
	response.JSON(w, r, http.StatusOK, models.SystemStatus{
		Status:  overall,
		Time:    time.Now(),
		Dataset: status,
	})
}
