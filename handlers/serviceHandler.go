package handlers

import (
	"MediHome/middlewares"
	"MediHome/models"
	"MediHome/repositories"
	"MediHome/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	service *services.ServiceService
}

func NewServiceHandler(service *services.ServiceService) *ServiceHandler {
	return &ServiceHandler{service: service}
}

// respondServiceError maps repository failures onto HTTP status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case err == repositories.ErrServiceNotFound:
		middlewares.HttpError(c, "Service not found", http.StatusNotFound, err)
	case err == repositories.ErrReportExists:
		middlewares.HttpError(c, err.Error(), http.StatusConflict, err)
	case repositories.IsValidation(err):
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
	default:
		middlewares.HttpError(c, "Internal server error", http.StatusInternalServerError, err)
	}
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	// The coordinator opening the request owns the service unless the payload
	// names another coordinator.
	if req.CoordinatorID == "" {
		if userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context()); err == nil {
			req.CoordinatorID = userID
		}
	}

	service, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, service)
}

func (h *ServiceHandler) GetServiceByID(c *gin.Context) {
	service, err := h.service.GetByID(c.Request.Context(), c.Param("service_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, service)
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	var req models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	actorID, _ := middlewares.ExtractUserIDFromContext(c.Request.Context())
	service, err := h.service.Update(c.Request.Context(), actorID, c.Param("service_id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, service)
}

func (h *ServiceHandler) AssignService(c *gin.Context) {
	var req models.AssignServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	actorID, _ := middlewares.ExtractUserIDFromContext(c.Request.Context())
	service, err := h.service.Assign(c.Request.Context(), actorID, c.Param("service_id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, service)
}

func (h *ServiceHandler) UpdateServiceStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	actorID, _ := middlewares.ExtractUserIDFromContext(c.Request.Context())
	service, err := h.service.UpdateStatus(c.Request.Context(), actorID, c.Param("service_id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, service)
}

func (h *ServiceHandler) AddVitalSigns(c *gin.Context) {
	var req models.VitalSignsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	// Measurements are attributed to the authenticated user.
	if userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context()); err == nil {
		req.RecordedBy = userID
	}

	service, err := h.service.AddVitalSigns(c.Request.Context(), c.Param("service_id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, service)
}

func (h *ServiceHandler) AddMedicalReport(c *gin.Context) {
	var req models.MedicalReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	// Reports are signed by the authenticated doctor.
	if userID, err := middlewares.ExtractUserIDFromContext(c.Request.Context()); err == nil {
		req.DoctorID = userID
	}

	service, err := h.service.AddMedicalReport(c.Request.Context(), c.Param("service_id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(201, service)
}

func (h *ServiceHandler) GetServiceActivity(c *gin.Context) {
	serviceID := c.Param("service_id")
	if _, err := h.service.GetByID(c.Request.Context(), serviceID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, h.service.Activity(c.Request.Context(), serviceID))
}

func (h *ServiceHandler) ClearError(c *gin.Context) {
	h.service.ClearError()
	c.Status(http.StatusOK)
}
