package handlers_test

import (
	"MediHome/controllers"
	"MediHome/handlers"
	"MediHome/models"
	"MediHome/repositories"
	"MediHome/services"
	"MediHome/utils"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repositories.ServiceRepository) {
	t.Helper()
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")
	gin.SetMode(gin.TestMode)

	repo := repositories.NewServiceRepository(0)
	serviceHandler := handlers.NewServiceHandler(services.NewServiceService(repo))
	dashboardHandler := handlers.NewDashboardHandler(services.NewDashboardService(repo))

	router := gin.New()
	controllers.SetupServiceRoutes(router, serviceHandler, dashboardHandler)
	return router, repo
}

func tokenFor(t *testing.T, userID string, role models.UserRole) string {
	t.Helper()
	token, err := utils.GenerateAccessToken(userID, string(role))
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	if token != "" {
		path += "?accessToken=" + token
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeService(t *testing.T, recorder *httptest.ResponseRecorder) models.Service {
	t.Helper()
	var svc models.Service
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &svc))
	return svc
}

func createPayload() gin.H {
	return gin.H{
		"type":            "basic-transport",
		"patient_name":    "Juan Pérez",
		"patient_phone":   "+34600123456",
		"patient_address": "Calle Mayor 123",
	}
}

func TestCreateServiceEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)
	coordinator := tokenFor(t, "1", models.RoleCoordinator)

	w := doRequest(t, router, http.MethodPost, "/services", coordinator, createPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	svc := decodeService(t, w)
	assert.NotEmpty(t, svc.ID)
	assert.Equal(t, models.StatusRequested, svc.Status)
	// The authenticated coordinator owns the request.
	assert.Equal(t, "1", svc.CoordinatorID)
}

func TestCreateServiceRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/services", "", createPayload())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateServiceForbiddenForDoctor(t *testing.T) {
	router, _ := newTestRouter(t)
	doctor := tokenFor(t, "2", models.RoleDoctor)

	w := doRequest(t, router, http.MethodPost, "/services", doctor, createPayload())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateServiceValidationFailure(t *testing.T) {
	router, repo := newTestRouter(t)
	coordinator := tokenFor(t, "1", models.RoleCoordinator)

	payload := createPayload()
	payload["patient_name"] = ""
	w := doRequest(t, router, http.MethodPost, "/services", coordinator, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, repo.LastError())
}

func TestGetServiceNotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	coordinator := tokenFor(t, "1", models.RoleCoordinator)

	w := doRequest(t, router, http.MethodGet, "/services/missing-id", coordinator, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServiceLifecycleOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)
	coordinator := tokenFor(t, "1", models.RoleCoordinator)
	doctor := tokenFor(t, "2", models.RoleDoctor)
	nurse := tokenFor(t, "3", models.RoleNurse)

	w := doRequest(t, router, http.MethodPost, "/services", coordinator, createPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	serviceID := decodeService(t, w).ID

	// Coordinator assigns the medical team.
	w = doRequest(t, router, http.MethodPost, "/services/"+serviceID+"/assign", coordinator,
		gin.H{"doctor_id": "2", "nurse_id": "3"})
	require.Equal(t, http.StatusOK, w.Code)
	svc := decodeService(t, w)
	assert.Equal(t, models.StatusAssigned, svc.Status)
	assert.Equal(t, "2", svc.DoctorID)

	// Only the coordinator may assign.
	w = doRequest(t, router, http.MethodPost, "/services/"+serviceID+"/assign", nurse,
		gin.H{"nurse_id": "3"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, router, http.MethodPost, "/services/"+serviceID+"/status", doctor,
		gin.H{"status": "in-progress"})
	require.Equal(t, http.StatusOK, w.Code)

	// The nurse records vital signs; attribution comes from the token.
	w = doRequest(t, router, http.MethodPost, "/services/"+serviceID+"/vital-signs", nurse,
		gin.H{"heart_rate": 72, "temperature": 36.5})
	require.Equal(t, http.StatusCreated, w.Code)
	svc = decodeService(t, w)
	require.Len(t, svc.VitalSigns, 1)
	assert.Equal(t, "3", svc.VitalSigns[0].RecordedBy)

	// The doctor signs the report.
	w = doRequest(t, router, http.MethodPost, "/services/"+serviceID+"/medical-report", doctor,
		gin.H{"patient_condition": "Stable", "diagnosis": "Hypertension"})
	require.Equal(t, http.StatusCreated, w.Code)
	svc = decodeService(t, w)
	require.NotNil(t, svc.MedicalReport)
	assert.Equal(t, "2", svc.MedicalReport.DoctorID)

	// A second report conflicts.
	w = doRequest(t, router, http.MethodPost, "/services/"+serviceID+"/medical-report", doctor,
		gin.H{"patient_condition": "Stable"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, router, http.MethodPost, "/services/"+serviceID+"/status", doctor,
		gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code)
	svc = decodeService(t, w)
	assert.Equal(t, models.StatusCompleted, svc.Status)
	assert.NotNil(t, svc.CompletedDate)

	// Every mutation left an activity entry.
	w = doRequest(t, router, http.MethodGet, "/services/"+serviceID+"/activity", coordinator, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []models.ActivityLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 6)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	router, repo := newTestRouter(t)
	coordinator := tokenFor(t, "1", models.RoleCoordinator)

	w := doRequest(t, router, http.MethodPost, "/services", coordinator, createPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	serviceID := decodeService(t, w).ID

	// requested -> completed skips the lifecycle.
	w = doRequest(t, router, http.MethodPost, "/services/"+serviceID+"/status", coordinator,
		gin.H{"status": "completed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	got, err := repo.GetByID(context.Background(), serviceID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRequested, got.Status)
}

func TestMedicalReportForbiddenForNurse(t *testing.T) {
	router, _ := newTestRouter(t)
	coordinator := tokenFor(t, "1", models.RoleCoordinator)
	nurse := tokenFor(t, "3", models.RoleNurse)

	w := doRequest(t, router, http.MethodPost, "/services", coordinator, createPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	serviceID := decodeService(t, w).ID

	w = doRequest(t, router, http.MethodPost, "/services/"+serviceID+"/medical-report", nurse,
		gin.H{"patient_condition": "Stable"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListServicesRoleVisibility(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.SeedDemoData(context.Background())

	coordinator := tokenFor(t, "1", models.RoleCoordinator)
	doctor := tokenFor(t, "2", models.RoleDoctor)

	w := doRequest(t, router, http.MethodGet, "/services", coordinator, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 3)

	// The doctor only sees the two services they are assigned to.
	w = doRequest(t, router, http.MethodGet, "/services", doctor, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var own []models.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &own))
	assert.Len(t, own, 2)
}

func TestDashboardStatsEndpoint(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.SeedDemoData(context.Background())
	coordinator := tokenFor(t, "1", models.RoleCoordinator)

	w := doRequest(t, router, http.MethodGet, "/dashboard/stats", coordinator, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalServices)
	assert.Equal(t, 1, stats.RequestedServices)
	assert.Equal(t, 1, stats.AssignedServices)
	assert.Equal(t, 1, stats.InProgressServices)
}

func TestClearErrorEndpoint(t *testing.T) {
	router, repo := newTestRouter(t)
	coordinator := tokenFor(t, "1", models.RoleCoordinator)

	payload := createPayload()
	payload["patient_phone"] = ""
	w := doRequest(t, router, http.MethodPost, "/services", coordinator, payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotEmpty(t, repo.LastError())

	w = doRequest(t, router, http.MethodPost, "/services/clear-error", coordinator, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.LastError())
}
