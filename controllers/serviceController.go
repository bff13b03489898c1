package controllers

import (
	"MediHome/handlers"
	"MediHome/middlewares"
	"MediHome/models"

	"github.com/gin-gonic/gin"
)

// SetupServiceRoutes registers the service and dashboard routes. All of them
// require a valid staff token; creating and assigning services is reserved
// for coordinators, medical reports for doctors.
func SetupServiceRoutes(router *gin.Engine, serviceHandler *handlers.ServiceHandler, dashboardHandler *handlers.DashboardHandler) {
	staff := router.Group("/").Use(middlewares.TokenAuthMiddleware())
	{
		staff.GET("/services", dashboardHandler.ListServices)
		staff.GET("/services/:service_id", serviceHandler.GetServiceByID)
		staff.PUT("/services/:service_id", serviceHandler.UpdateService)
		staff.POST("/services/:service_id/status", serviceHandler.UpdateServiceStatus)
		staff.POST("/services/:service_id/vital-signs", serviceHandler.AddVitalSigns)
		staff.GET("/services/:service_id/activity", serviceHandler.GetServiceActivity)
		staff.POST("/services/clear-error", serviceHandler.ClearError)

		staff.GET("/dashboard/stats", dashboardHandler.GetDashboardStats)
	}

	coordinator := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleCoordinator),
	)
	{
		coordinator.POST("/services", serviceHandler.CreateService)
		coordinator.POST("/services/:service_id/assign", serviceHandler.AssignService)
	}

	doctor := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleDoctor),
	)
	{
		doctor.POST("/services/:service_id/medical-report", serviceHandler.AddMedicalReport)
	}
}
