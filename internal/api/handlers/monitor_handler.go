package handlers

import (
	"github.com/gin-gonic/gin"

	"faultmesh/internal/service"
	"faultmesh/pkg/utils"
)

type MonitorHandler struct {
	monitorService *service.MonitorService
}

func NewMonitorHandler(monitorService *service.MonitorService) *MonitorHandler {
	return &MonitorHandler{monitorService: monitorService}
}

// GetSystemMetrics reports host CPU/memory/goroutine diagnostics for
// whoever is watching batch-run wall-clock time.
func (h *MonitorHandler) GetSystemMetrics(c *gin.Context) {
	metrics, err := h.monitorService.GetSystemMetrics()
	if err != nil {
		utils.Error(c, utils.ERROR, "failed to sample system metrics")
		return
	}

	utils.Success(c, metrics)
}
