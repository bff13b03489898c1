package utils

import (
	"MediHome/models"
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrInvalidServiceType = errors.New("unknown service type")
	ErrInvalidPhone       = errors.New("phone number is not valid")
	ErrNoMeasurement      = errors.New("at least one clinical measurement is required")
)

var phoneRegex = regexp.MustCompile(`^[+]?[\d\s\-()]+$`)

// validatePhone checks the phone number shape: digits, spaces, dashes and
// parentheses with an optional leading plus, at least 8 characters.
func validatePhone(value interface{}) error {
	phone, _ := value.(string)
	if len(phone) < 8 || !phoneRegex.MatchString(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// validateServiceType rejects unknown service types.
func validateServiceType(value interface{}) error {
	t, _ := value.(models.ServiceType)
	if !t.Valid() {
		return ErrInvalidServiceType
	}
	return nil
}

// ValidateCreateService validates a service creation payload.
func ValidateCreateService(req models.CreateServiceRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Type, validation.Required, validation.By(validateServiceType)),
		validation.Field(&req.PatientName, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.PatientPhone, validation.Required, validation.By(validatePhone)),
		validation.Field(&req.PatientAddress, validation.Required, validation.Length(1, 500)),
		validation.Field(&req.CoordinatorID, validation.Required),
	)
}

// ValidateUpdateService validates a partial update payload. Absent fields are
// fine; present ones must not blank out required data.
func ValidateUpdateService(req models.UpdateServiceRequest) error {
	errs := validation.Errors{}
	if req.Type != nil && !req.Type.Valid() {
		errs["type"] = ErrInvalidServiceType
	}
	if req.PatientName != nil {
		errs["patient_name"] = validation.Validate(*req.PatientName, validation.Required, validation.Length(1, 200))
	}
	if req.PatientPhone != nil {
		errs["patient_phone"] = validation.Validate(*req.PatientPhone, validation.Required, validation.By(validatePhone))
	}
	if req.PatientAddress != nil {
		errs["patient_address"] = validation.Validate(*req.PatientAddress, validation.Required, validation.Length(1, 500))
	}
	return errs.Filter()
}

// ValidateVitalSigns validates a measurement payload. The contract requires
// at least one clinical measurement to be present.
func ValidateVitalSigns(req models.VitalSignsRequest) error {
	if err := validation.ValidateStruct(&req,
		validation.Field(&req.RecordedBy, validation.Required),
	); err != nil {
		return err
	}
	if !req.HasMeasurement() {
		return ErrNoMeasurement
	}
	if bp := req.BloodPressure; bp != nil && (bp.Systolic <= 0 || bp.Diastolic <= 0) {
		return errors.New("blood pressure readings must be positive")
	}
	return nil
}

// ValidateMedicalReport validates a report payload.
func ValidateMedicalReport(req models.MedicalReportRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.DoctorID, validation.Required),
		validation.Field(&req.PatientCondition, validation.Required, validation.Length(1, 2000)),
	)
}
