package handler

import (
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetAnalytics 创作者仪表盘统计
func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	analytics, err := h.dashboardService.GetAnalytics(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, analytics)
}
