package repositories

import (
	"MediHome/models"
	"fmt"
	"time"
)

// replaceService builds the next collection state with the service matching
// id replaced by mutate's result. Unchanged services are shared with the
// previous state; the target is deep-copied before mutate sees it. The input
// slice is never modified.
func replaceService(services []models.Service, id string, now time.Time, mutate func(*models.Service) error) ([]models.Service, models.Service, error) {
	for i, s := range services {
		if s.ID != id {
			continue
		}
		next := make([]models.Service, len(services))
		copy(next, services)
		changed := s.Clone()
		if err := mutate(&changed); err != nil {
			return nil, models.Service{}, err
		}
		changed.UpdatedAt = now
		next[i] = changed
		return next, changed, nil
	}
	return nil, models.Service{}, ErrServiceNotFound
}

func activityEntry(entryID, serviceID, userID, action, description string, now time.Time) models.ActivityLog {
	return models.ActivityLog{
		ID:          entryID,
		ServiceID:   serviceID,
		UserID:      userID,
		Action:      action,
		Description: description,
		Timestamp:   now,
	}
}

type createCommand struct {
	id      string
	entryID string
	req     models.CreateServiceRequest
}

func (c *createCommand) apply(now time.Time, services []models.Service) ([]models.Service, models.Service, models.ActivityLog, error) {
	svc := models.Service{
		ID:             c.id,
		Type:           c.req.Type,
		Status:         models.StatusRequested,
		PatientName:    c.req.PatientName,
		PatientPhone:   c.req.PatientPhone,
		PatientAddress: c.req.PatientAddress,
		RequestedDate:  now,
		ScheduledDate:  c.req.ScheduledDate,
		CoordinatorID:  c.req.CoordinatorID,
		DoctorID:       c.req.DoctorID,
		NurseID:        c.req.NurseID,
		Notes:          c.req.Notes,
		VitalSigns:     []models.VitalSigns{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	next := make([]models.Service, len(services), len(services)+1)
	copy(next, services)
	next = append(next, svc)
	entry := activityEntry(c.entryID, c.id, c.req.CoordinatorID, "created",
		fmt.Sprintf("Service requested for %s", c.req.PatientName), now)
	return next, svc, entry, nil
}

type updateCommand struct {
	id      string
	entryID string
	actorID string
	req     models.UpdateServiceRequest
}

func (c *updateCommand) apply(now time.Time, services []models.Service) ([]models.Service, models.Service, models.ActivityLog, error) {
	next, changed, err := replaceService(services, c.id, now, func(s *models.Service) error {
		if c.req.Type != nil {
			s.Type = *c.req.Type
		}
		if c.req.PatientName != nil {
			s.PatientName = *c.req.PatientName
		}
		if c.req.PatientPhone != nil {
			s.PatientPhone = *c.req.PatientPhone
		}
		if c.req.PatientAddress != nil {
			s.PatientAddress = *c.req.PatientAddress
		}
		if c.req.ScheduledDate != nil {
			d := *c.req.ScheduledDate
			s.ScheduledDate = &d
		}
		if c.req.DoctorID != nil {
			s.DoctorID = *c.req.DoctorID
		}
		if c.req.NurseID != nil {
			s.NurseID = *c.req.NurseID
		}
		if c.req.Notes != nil {
			s.Notes = *c.req.Notes
		}
		return nil
	})
	if err != nil {
		return nil, models.Service{}, models.ActivityLog{}, err
	}
	entry := activityEntry(c.entryID, c.id, c.actorID, "updated", "Service details updated", now)
	return next, changed, entry, nil
}

type assignCommand struct {
	id      string
	entryID string
	actorID string
	req     models.AssignServiceRequest
}

func (c *assignCommand) apply(now time.Time, services []models.Service) ([]models.Service, models.Service, models.ActivityLog, error) {
	next, changed, err := replaceService(services, c.id, now, func(s *models.Service) error {
		if s.Status != models.StatusRequested && s.Status != models.StatusAssigned {
			return NewValidationError(fmt.Sprintf("cannot assign a service that is %s", s.Status))
		}
		if c.req.DoctorID != nil {
			s.DoctorID = *c.req.DoctorID
		}
		if c.req.NurseID != nil {
			s.NurseID = *c.req.NurseID
		}
		if s.DoctorID != "" || s.NurseID != "" {
			s.Status = models.StatusAssigned
		} else {
			s.Status = models.StatusRequested
		}
		return nil
	})
	if err != nil {
		return nil, models.Service{}, models.ActivityLog{}, err
	}
	entry := activityEntry(c.entryID, c.id, c.actorID, "assigned",
		fmt.Sprintf("Assignees updated, service is now %s", changed.Status), now)
	return next, changed, entry, nil
}

type statusCommand struct {
	id      string
	entryID string
	actorID string
	status  models.ServiceStatus
}

func (c *statusCommand) apply(now time.Time, services []models.Service) ([]models.Service, models.Service, models.ActivityLog, error) {
	next, changed, err := replaceService(services, c.id, now, func(s *models.Service) error {
		if !models.CanTransition(s.Status, c.status) {
			return NewValidationError(fmt.Sprintf("illegal status transition %s -> %s", s.Status, c.status))
		}
		s.Status = c.status
		if c.status == models.StatusCompleted {
			d := now
			s.CompletedDate = &d
		}
		return nil
	})
	if err != nil {
		return nil, models.Service{}, models.ActivityLog{}, err
	}
	entry := activityEntry(c.entryID, c.id, c.actorID, "status-changed",
		fmt.Sprintf("Status changed to %s", c.status), now)
	return next, changed, entry, nil
}

type vitalsCommand struct {
	serviceID string
	recordID  string
	entryID   string
	req       models.VitalSignsRequest
}

func (c *vitalsCommand) apply(now time.Time, services []models.Service) ([]models.Service, models.Service, models.ActivityLog, error) {
	record := models.VitalSigns{
		ID:               c.recordID,
		ServiceID:        c.serviceID,
		RecordedBy:       c.req.RecordedBy,
		RecordedAt:       now,
		BloodPressure:    c.req.BloodPressure,
		HeartRate:        c.req.HeartRate,
		Temperature:      c.req.Temperature,
		OxygenSaturation: c.req.OxygenSaturation,
		BloodSugar:       c.req.BloodSugar,
		Notes:            c.req.Notes,
	}
	next, changed, err := replaceService(services, c.serviceID, now, func(s *models.Service) error {
		s.VitalSigns = append(s.VitalSigns, record.Clone())
		return nil
	})
	if err != nil {
		return nil, models.Service{}, models.ActivityLog{}, err
	}
	entry := activityEntry(c.entryID, c.serviceID, c.req.RecordedBy, "vitals-recorded",
		"Vital signs recorded", now)
	return next, changed, entry, nil
}

type reportCommand struct {
	serviceID string
	reportID  string
	entryID   string
	req       models.MedicalReportRequest
}

func (c *reportCommand) apply(now time.Time, services []models.Service) ([]models.Service, models.Service, models.ActivityLog, error) {
	next, changed, err := replaceService(services, c.serviceID, now, func(s *models.Service) error {
		if s.MedicalReport != nil {
			return ErrReportExists
		}
		report := models.MedicalReport{
			ID:               c.reportID,
			ServiceID:        c.serviceID,
			DoctorID:         c.req.DoctorID,
			PatientCondition: c.req.PatientCondition,
			Diagnosis:        c.req.Diagnosis,
			Treatment:        c.req.Treatment,
			Medications:      append([]string(nil), c.req.Medications...),
			Recommendations:  c.req.Recommendations,
			CreatedAt:        now,
		}
		s.MedicalReport = &report
		return nil
	})
	if err != nil {
		return nil, models.Service{}, models.ActivityLog{}, err
	}
	entry := activityEntry(c.entryID, c.serviceID, c.req.DoctorID, "report-added",
		"Medical report added", now)
	return next, changed, entry, nil
}
