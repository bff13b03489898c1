package handlers

import (
	"MediHome/middlewares"
	"MediHome/models"
	"MediHome/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboardStats returns count-by-status aggregates over the collection.
func (h *DashboardHandler) GetDashboardStats(c *gin.Context) {
	c.JSON(200, h.service.GetDashboardStats(c.Request.Context()))
}

// ListServices returns the service list filtered by the caller's role and
// the search/status/type query parameters.
func (h *DashboardHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()

	filter := services.ServiceFilter{
		SearchTerm: c.Query("search"),
	}
	if userID, err := middlewares.ExtractUserIDFromContext(ctx); err == nil {
		filter.UserID = userID
	}
	if role, err := middlewares.ExtractUserRoleFromContext(ctx); err == nil {
		filter.Role = models.UserRole(role)
	}

	if status := c.Query("status"); status != "" {
		s := models.ServiceStatus(status)
		if !s.Valid() {
			c.JSON(400, gin.H{"error": "Invalid status filter"})
			return
		}
		filter.Status = &s
	}
	if typ := c.Query("type"); typ != "" {
		t := models.ServiceType(typ)
		if !t.Valid() {
			c.JSON(400, gin.H{"error": "Invalid type filter"})
			return
		}
		filter.Type = &t
	}

	c.JSON(200, h.service.ListServices(ctx, filter))
}
