package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"faultmesh/pkg/utils"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	utils.Success(c, map[string]interface{}{
		"status":    "up",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "faultmesh API",
		"version":   "1.0.0",
	})
}
