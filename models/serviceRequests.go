package models

import (
	"time"
)

// Request payloads are one struct per operation, validated at the boundary by
// utils before any command is applied.

// CreateServiceRequest carries the fields needed to open a new service.
type CreateServiceRequest struct {
	Type           ServiceType `json:"type"`
	PatientName    string      `json:"patient_name"`
	PatientPhone   string      `json:"patient_phone"`
	PatientAddress string      `json:"patient_address"`
	ScheduledDate  *time.Time  `json:"scheduled_date,omitempty"`
	CoordinatorID  string      `json:"coordinator_id"`
	DoctorID       string      `json:"doctor_id,omitempty"`
	NurseID        string      `json:"nurse_id,omitempty"`
	Notes          string      `json:"notes"`
}

// UpdateServiceRequest is a partial update: nil fields are left untouched.
// Status is deliberately absent; UpdateStatusRequest is the only driver of the
// lifecycle.
type UpdateServiceRequest struct {
	Type           *ServiceType `json:"type,omitempty"`
	PatientName    *string      `json:"patient_name,omitempty"`
	PatientPhone   *string      `json:"patient_phone,omitempty"`
	PatientAddress *string      `json:"patient_address,omitempty"`
	ScheduledDate  *time.Time   `json:"scheduled_date,omitempty"`
	DoctorID       *string      `json:"doctor_id,omitempty"`
	NurseID        *string      `json:"nurse_id,omitempty"`
	Notes          *string      `json:"notes,omitempty"`
}

// AssignServiceRequest sets one or both assignees on a service.
type AssignServiceRequest struct {
	DoctorID *string `json:"doctor_id,omitempty"`
	NurseID  *string `json:"nurse_id,omitempty"`
}

// UpdateStatusRequest moves a service through its lifecycle.
type UpdateStatusRequest struct {
	Status ServiceStatus `json:"status"`
}

// VitalSignsRequest carries one clinical measurement snapshot. At least one
// measurement must be present.
type VitalSignsRequest struct {
	RecordedBy       string         `json:"recorded_by"`
	BloodPressure    *BloodPressure `json:"blood_pressure,omitempty"`
	HeartRate        *int           `json:"heart_rate,omitempty"`
	Temperature      *float64       `json:"temperature,omitempty"`
	OxygenSaturation *int           `json:"oxygen_saturation,omitempty"`
	BloodSugar       *float64       `json:"blood_sugar,omitempty"`
	Notes            string         `json:"notes,omitempty"`
}

// HasMeasurement reports whether any clinical measurement is present.
func (r VitalSignsRequest) HasMeasurement() bool {
	return r.BloodPressure != nil || r.HeartRate != nil || r.Temperature != nil ||
		r.OxygenSaturation != nil || r.BloodSugar != nil
}

// MedicalReportRequest carries a doctor's clinical summary.
type MedicalReportRequest struct {
	DoctorID         string   `json:"doctor_id"`
	PatientCondition string   `json:"patient_condition"`
	Diagnosis        string   `json:"diagnosis,omitempty"`
	Treatment        string   `json:"treatment,omitempty"`
	Medications      []string `json:"medications,omitempty"`
	Recommendations  string   `json:"recommendations,omitempty"`
}
