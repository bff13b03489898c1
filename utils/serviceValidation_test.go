package utils

import (
	"MediHome/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCreateRequest() models.CreateServiceRequest {
	return models.CreateServiceRequest{
		Type:           models.TypeBasicTransport,
		PatientName:    "Juan Pérez",
		PatientPhone:   "+34600123456",
		PatientAddress: "Calle Mayor 123",
		CoordinatorID:  "1",
	}
}

func TestValidateCreateService(t *testing.T) {
	assert.NoError(t, ValidateCreateService(validCreateRequest()))

	cases := []struct {
		name   string
		mutate func(*models.CreateServiceRequest)
	}{
		{"missing type", func(r *models.CreateServiceRequest) { r.Type = "" }},
		{"unknown type", func(r *models.CreateServiceRequest) { r.Type = "helicopter" }},
		{"missing name", func(r *models.CreateServiceRequest) { r.PatientName = "" }},
		{"missing phone", func(r *models.CreateServiceRequest) { r.PatientPhone = "" }},
		{"short phone", func(r *models.CreateServiceRequest) { r.PatientPhone = "+34600" }},
		{"phone with letters", func(r *models.CreateServiceRequest) { r.PatientPhone = "call me maybe" }},
		{"missing address", func(r *models.CreateServiceRequest) { r.PatientAddress = "" }},
		{"missing coordinator", func(r *models.CreateServiceRequest) { r.CoordinatorID = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			assert.Error(t, ValidateCreateService(req))
		})
	}
}

func TestValidateCreateServiceAcceptsFormattedPhones(t *testing.T) {
	for _, phone := range []string{"+34 600 123 456", "(91) 123-45-67", "600123456"} {
		req := validCreateRequest()
		req.PatientPhone = phone
		assert.NoErrorf(t, ValidateCreateService(req), "phone %q", phone)
	}
}

func TestValidateUpdateService(t *testing.T) {
	// Absent fields are fine.
	assert.NoError(t, ValidateUpdateService(models.UpdateServiceRequest{}))

	notes := "new notes"
	assert.NoError(t, ValidateUpdateService(models.UpdateServiceRequest{Notes: &notes}))

	// Present fields must not blank out required data.
	empty := ""
	assert.Error(t, ValidateUpdateService(models.UpdateServiceRequest{PatientName: &empty}))
	assert.Error(t, ValidateUpdateService(models.UpdateServiceRequest{PatientPhone: &empty}))

	badType := models.ServiceType("helicopter")
	assert.Error(t, ValidateUpdateService(models.UpdateServiceRequest{Type: &badType}))
}

func TestValidateVitalSigns(t *testing.T) {
	hr := 72
	assert.NoError(t, ValidateVitalSigns(models.VitalSignsRequest{RecordedBy: "3", HeartRate: &hr}))

	// Attribution is required.
	assert.Error(t, ValidateVitalSigns(models.VitalSignsRequest{HeartRate: &hr}))

	// Notes alone are not a measurement.
	err := ValidateVitalSigns(models.VitalSignsRequest{RecordedBy: "3", Notes: "patient resting"})
	assert.ErrorIs(t, err, ErrNoMeasurement)

	assert.Error(t, ValidateVitalSigns(models.VitalSignsRequest{
		RecordedBy:    "3",
		BloodPressure: &models.BloodPressure{Systolic: 0, Diastolic: 80},
	}))
	assert.NoError(t, ValidateVitalSigns(models.VitalSignsRequest{
		RecordedBy:    "3",
		BloodPressure: &models.BloodPressure{Systolic: 120, Diastolic: 80},
	}))
}

func TestValidateMedicalReport(t *testing.T) {
	assert.NoError(t, ValidateMedicalReport(models.MedicalReportRequest{
		DoctorID:         "2",
		PatientCondition: "Stable",
	}))
	assert.Error(t, ValidateMedicalReport(models.MedicalReportRequest{PatientCondition: "Stable"}))
	assert.Error(t, ValidateMedicalReport(models.MedicalReportRequest{DoctorID: "2"}))
}
