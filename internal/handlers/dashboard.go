package handlers

import (
	"devdash-backend/internal/services"
	"devdash-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.dashboardService.Summarize(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "dashboard", "Not found")
		return
	}
	utils.Success(c, view)
}
