// File: handlers/dashboard.go
package handlers

import (
	"net/http"

	flowRepo "roomdesk/database/repository/flow"
	"roomdesk/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the approval-flow progress view.
type DashboardHandler struct {
	Flows flowRepo.FlowTrackingRepository
}

// NewDashboardHandler returns a DashboardHandler backed by the given repository.
func NewDashboardHandler(flows flowRepo.FlowTrackingRepository) *DashboardHandler {
	return &DashboardHandler{Flows: flows}
}

// GetFlows returns the caller's flow tracking documents plus the fixed
// progress-step labels the dashboard renders against the step field.
func (h *DashboardHandler) GetFlows(c *gin.Context) {
	logger := getLogger(c)
	email := c.GetString("userEmail")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	flows, err := h.Flows.GetByOwner(c.Request.Context(), email)
	if err != nil {
		logger.Error("Failed to fetch flow tracking data", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch flow data"})
		return
	}
	if flows == nil {
		flows = []models.FlowTracking{}
	}

	c.JSON(http.StatusOK, gin.H{
		"flows": flows,
		"steps": models.FlowStepLabels,
	})
}
