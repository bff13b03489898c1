package models

import (
	"time"
)

// ServiceType identifies the kind of home service being coordinated.
type ServiceType string

const (
	TypeBasicTransport       ServiceType = "basic-transport"
	TypeMedicalizedTransport ServiceType = "medicalized-transport"
	TypeHomeConsultation     ServiceType = "home-consultation"
)

// ServiceTypeLabels maps service types to their display names.
var ServiceTypeLabels = map[ServiceType]string{
	TypeBasicTransport:       "Basic Transport",
	TypeMedicalizedTransport: "Medicalized Transport",
	TypeHomeConsultation:     "Home Medical Consultation",
}

// Valid reports whether the type is one of the known service types.
func (t ServiceType) Valid() bool {
	switch t {
	case TypeBasicTransport, TypeMedicalizedTransport, TypeHomeConsultation:
		return true
	}
	return false
}

// Label returns the display name for the service type.
func (t ServiceType) Label() string {
	return ServiceTypeLabels[t]
}

// ServiceStatus is the lifecycle state of a service.
type ServiceStatus string

const (
	StatusRequested  ServiceStatus = "requested"
	StatusAssigned   ServiceStatus = "assigned"
	StatusInProgress ServiceStatus = "in-progress"
	StatusCompleted  ServiceStatus = "completed"
	StatusCancelled  ServiceStatus = "cancelled"
)

// ServiceStatusLabels maps statuses to their display names.
var ServiceStatusLabels = map[ServiceStatus]string{
	StatusRequested:  "Requested",
	StatusAssigned:   "Assigned",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
	StatusCancelled:  "Cancelled",
}

// Valid reports whether the status is one of the known statuses.
func (s ServiceStatus) Valid() bool {
	switch s {
	case StatusRequested, StatusAssigned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Label returns the display name for the status.
func (s ServiceStatus) Label() string {
	return ServiceStatusLabels[s]
}

// Terminal reports whether the status admits no further transitions.
func (s ServiceStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether the lifecycle permits moving from one status
// to another. Same-state transitions are not permitted.
func CanTransition(from, to ServiceStatus) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	switch from {
	case StatusRequested:
		return to == StatusAssigned
	case StatusAssigned:
		return to == StatusInProgress
	case StatusInProgress:
		return to == StatusCompleted
	}
	return false
}

// BloodPressure is a systolic/diastolic pair in mmHg.
type BloodPressure struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

// VitalSigns is a timestamped clinical measurement snapshot attached to a
// service. Records are immutable once appended.
type VitalSigns struct {
	ID               string         `json:"id"`
	ServiceID        string         `json:"service_id"`
	RecordedBy       string         `json:"recorded_by"`
	RecordedAt       time.Time      `json:"recorded_at"`
	BloodPressure    *BloodPressure `json:"blood_pressure,omitempty"`
	HeartRate        *int           `json:"heart_rate,omitempty"`
	Temperature      *float64       `json:"temperature,omitempty"`
	OxygenSaturation *int           `json:"oxygen_saturation,omitempty"`
	BloodSugar       *float64       `json:"blood_sugar,omitempty"`
	Notes            string         `json:"notes,omitempty"`
}

// MedicalReport is a doctor's clinical summary for a service. At most one
// exists per service.
type MedicalReport struct {
	ID               string    `json:"id"`
	ServiceID        string    `json:"service_id"`
	DoctorID         string    `json:"doctor_id"`
	PatientCondition string    `json:"patient_condition"`
	Diagnosis        string    `json:"diagnosis,omitempty"`
	Treatment        string    `json:"treatment,omitempty"`
	Medications      []string  `json:"medications,omitempty"`
	Recommendations  string    `json:"recommendations,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ActivityLog records one action taken against a service.
type ActivityLog struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"service_id"`
	UserID      string    `json:"user_id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Service is a single requested transport or consultation task tracked
// end-to-end. ID and CoordinatorID never change after creation; CompletedDate
// is set exactly once, on the transition to completed.
type Service struct {
	ID             string         `json:"id"`
	Type           ServiceType    `json:"type"`
	Status         ServiceStatus  `json:"status"`
	PatientName    string         `json:"patient_name"`
	PatientPhone   string         `json:"patient_phone"`
	PatientAddress string         `json:"patient_address"`
	RequestedDate  time.Time      `json:"requested_date"`
	ScheduledDate  *time.Time     `json:"scheduled_date,omitempty"`
	CompletedDate  *time.Time     `json:"completed_date,omitempty"`
	CoordinatorID  string         `json:"coordinator_id"`
	DoctorID       string         `json:"doctor_id,omitempty"`
	NurseID        string         `json:"nurse_id,omitempty"`
	Notes          string         `json:"notes"`
	VitalSigns     []VitalSigns   `json:"vital_signs"`
	MedicalReport  *MedicalReport `json:"medical_report,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Clone returns a deep copy, so snapshots handed across component boundaries
// never alias repository-owned state.
func (s Service) Clone() Service {
	out := s
	if s.ScheduledDate != nil {
		d := *s.ScheduledDate
		out.ScheduledDate = &d
	}
	if s.CompletedDate != nil {
		d := *s.CompletedDate
		out.CompletedDate = &d
	}
	if s.VitalSigns != nil {
		out.VitalSigns = make([]VitalSigns, len(s.VitalSigns))
		for i, v := range s.VitalSigns {
			out.VitalSigns[i] = v.Clone()
		}
	}
	if s.MedicalReport != nil {
		r := s.MedicalReport.Clone()
		out.MedicalReport = &r
	}
	return out
}

// Clone returns a deep copy of the measurement record.
func (v VitalSigns) Clone() VitalSigns {
	out := v
	if v.BloodPressure != nil {
		bp := *v.BloodPressure
		out.BloodPressure = &bp
	}
	if v.HeartRate != nil {
		n := *v.HeartRate
		out.HeartRate = &n
	}
	if v.Temperature != nil {
		n := *v.Temperature
		out.Temperature = &n
	}
	if v.OxygenSaturation != nil {
		n := *v.OxygenSaturation
		out.OxygenSaturation = &n
	}
	if v.BloodSugar != nil {
		n := *v.BloodSugar
		out.BloodSugar = &n
	}
	return out
}

// Clone returns a deep copy of the report.
func (r MedicalReport) Clone() MedicalReport {
	out := r
	if r.Medications != nil {
		out.Medications = append([]string(nil), r.Medications...)
	}
	return out
}

// DashboardStats is a derived snapshot of the collection, recomputed on demand
// and never stored.
type DashboardStats struct {
	TotalServices      int `json:"total_services"`
	RequestedServices  int `json:"requested_services"`
	AssignedServices   int `json:"assigned_services"`
	InProgressServices int `json:"in_progress_services"`
	CompletedServices  int `json:"completed_services"`
	CancelledServices  int `json:"cancelled_services"`
}
