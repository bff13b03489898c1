package repositories

import (
	"MediHome/models"
	"MediHome/utils"
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ServiceRepository owns the service collection. All mutations are expressed
// as commands applied by a pure transition function that returns a fresh
// slice; the committed slice is then swapped in one step, so readers only
// ever observe fully committed state. Commands are serialized: they apply in
// call order and never interleave.
type ServiceRepository struct {
	mu sync.Mutex // serializes mutating commands

	stateMu  sync.RWMutex // guards the committed state below
	services []models.Service
	activity []models.ActivityLog
	loading  bool
	lastErr  string

	latency time.Duration // simulated transport delay per command
	now     func() time.Time
	newID   func() string
}

// NewServiceRepository creates an empty repository. latency is the simulated
// transport delay applied to every command; pass zero to disable it.
func NewServiceRepository(latency time.Duration) *ServiceRepository {
	return &ServiceRepository{
		services: []models.Service{},
		activity: []models.ActivityLog{},
		latency:  latency,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// command is one mutation of the collection. apply must be pure: it reads the
// committed slice, never modifies it in place, and returns the next slice
// together with the changed service and an activity entry.
type command interface {
	apply(now time.Time, services []models.Service) ([]models.Service, models.Service, models.ActivityLog, error)
}

// dispatch runs one command to completion: simulated transport suspension,
// pure apply, then atomic commit. On any failure the collection is left
// untouched and the failure message is recorded on the repository.
func (r *ServiceRepository) dispatch(ctx context.Context, cmd command, failMsg string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.setLoading(true)
	defer r.setLoading(false)

	// Commands are not cancellable: a suspended command always resolves.
	if r.latency > 0 {
		time.Sleep(r.latency)
	}

	next, changed, entry, err := cmd.apply(r.now(), r.committed())
	if err != nil {
		r.fail(err, failMsg)
		return nil, err
	}

	r.commit(next, entry)
	out := changed.Clone()
	return &out, nil
}

// committed returns the current committed slice. Committed state is treated
// as immutable; commands build replacements rather than editing it.
func (r *ServiceRepository) committed() []models.Service {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()
	return r.services
}

// commit swaps in the next collection state and clears the error flag.
func (r *ServiceRepository) commit(next []models.Service, entry models.ActivityLog) {
	r.stateMu.Lock()
	defer r.stateMu.Unlock()
	r.services = next
	r.activity = append(r.activity, entry)
	r.lastErr = ""
}

// fail records a human-readable failure message without touching the
// collection.
func (r *ServiceRepository) fail(err error, failMsg string) {
	msg := failMsg
	if IsValidation(err) || err == ErrServiceNotFound || err == ErrReportExists {
		msg = err.Error()
	}
	log.Printf("service repository: %v", err)
	r.stateMu.Lock()
	defer r.stateMu.Unlock()
	r.lastErr = msg
}

func (r *ServiceRepository) setLoading(v bool) {
	r.stateMu.Lock()
	defer r.stateMu.Unlock()
	r.loading = v
}

// IsLoading reports whether a command is currently in flight.
func (r *ServiceRepository) IsLoading() bool {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()
	return r.loading
}

// LastError returns the message of the most recent failed command, or "".
func (r *ServiceRepository) LastError() string {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()
	return r.lastErr
}

// ClearError clears the recorded failure message.
func (r *ServiceRepository) ClearError() {
	r.stateMu.Lock()
	defer r.stateMu.Unlock()
	r.lastErr = ""
}

// GetAll returns a deep-copied snapshot of the collection in insertion order.
func (r *ServiceRepository) GetAll(ctx context.Context) []models.Service {
	services := r.committed()
	out := make([]models.Service, len(services))
	for i, s := range services {
		out[i] = s.Clone()
	}
	return out
}

// GetByID returns a deep copy of one service.
func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*models.Service, error) {
	for _, s := range r.committed() {
		if s.ID == id {
			out := s.Clone()
			return &out, nil
		}
	}
	return nil, ErrServiceNotFound
}

// Activity returns the activity entries recorded for one service, oldest
// first.
func (r *ServiceRepository) Activity(ctx context.Context, serviceID string) []models.ActivityLog {
	r.stateMu.RLock()
	defer r.stateMu.RUnlock()
	out := []models.ActivityLog{}
	for _, e := range r.activity {
		if e.ServiceID == serviceID {
			out = append(out, e)
		}
	}
	return out
}

// Create opens a new service in status requested and appends it to the
// collection.
func (r *ServiceRepository) Create(ctx context.Context, req models.CreateServiceRequest) (*models.Service, error) {
	if err := utils.ValidateCreateService(req); err != nil {
		verr := NewValidationError(err.Error())
		r.fail(verr, "")
		return nil, verr
	}
	cmd := &createCommand{
		id:      r.newID(),
		entryID: r.newID(),
		req:     req,
	}
	return r.dispatch(ctx, cmd, "Failed to create service")
}

// Update merges the non-nil fields of req into the service with the given id.
func (r *ServiceRepository) Update(ctx context.Context, actorID, id string, req models.UpdateServiceRequest) (*models.Service, error) {
	if err := utils.ValidateUpdateService(req); err != nil {
		verr := NewValidationError(err.Error())
		r.fail(verr, "")
		return nil, verr
	}
	cmd := &updateCommand{
		id:      id,
		entryID: r.newID(),
		actorID: actorID,
		req:     req,
	}
	return r.dispatch(ctx, cmd, "Failed to update service")
}

// Assign sets the doctor and/or nurse on a service. It is only legal while
// the service is still requested or assigned; the status becomes assigned
// when an assignee is present after the merge, requested otherwise.
func (r *ServiceRepository) Assign(ctx context.Context, actorID, id string, req models.AssignServiceRequest) (*models.Service, error) {
	cmd := &assignCommand{
		id:      id,
		entryID: r.newID(),
		actorID: actorID,
		req:     req,
	}
	return r.dispatch(ctx, cmd, "Failed to assign service")
}

// UpdateStatus moves a service through its lifecycle. Transitions outside the
// table are rejected and leave the collection untouched.
func (r *ServiceRepository) UpdateStatus(ctx context.Context, actorID, id string, status models.ServiceStatus) (*models.Service, error) {
	if !status.Valid() {
		verr := NewValidationError(fmt.Sprintf("unknown status %q", status))
		r.fail(verr, "")
		return nil, verr
	}
	cmd := &statusCommand{
		id:      id,
		entryID: r.newID(),
		actorID: actorID,
		status:  status,
	}
	return r.dispatch(ctx, cmd, "Failed to update service status")
}

// AddVitalSigns appends one measurement snapshot to a service. At least one
// clinical measurement must be present.
func (r *ServiceRepository) AddVitalSigns(ctx context.Context, serviceID string, req models.VitalSignsRequest) (*models.Service, error) {
	if err := utils.ValidateVitalSigns(req); err != nil {
		verr := NewValidationError(err.Error())
		r.fail(verr, "")
		return nil, verr
	}
	cmd := &vitalsCommand{
		serviceID: serviceID,
		recordID:  r.newID(),
		entryID:   r.newID(),
		req:       req,
	}
	return r.dispatch(ctx, cmd, "Failed to record vital signs")
}

// AddMedicalReport attaches the doctor's report to a service. A service holds
// at most one report; resubmission is rejected.
func (r *ServiceRepository) AddMedicalReport(ctx context.Context, serviceID string, req models.MedicalReportRequest) (*models.Service, error) {
	if err := utils.ValidateMedicalReport(req); err != nil {
		verr := NewValidationError(err.Error())
		r.fail(verr, "")
		return nil, verr
	}
	cmd := &reportCommand{
		serviceID: serviceID,
		reportID:  r.newID(),
		entryID:   r.newID(),
		req:       req,
	}
	return r.dispatch(ctx, cmd, "Failed to add medical report")
}

// SeedDemoData loads the demo services used for local development. It is a
// no-op when the collection is not empty.
func (r *ServiceRepository) SeedDemoData(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.committed()) > 0 {
		return
	}

	now := r.now()
	twoHours := now.Add(2 * time.Hour)
	halfHourAgo := now.Add(-30 * time.Minute)
	inProgressID := r.newID()

	demo := []models.Service{
		{
			ID:             r.newID(),
			Type:           models.TypeBasicTransport,
			Status:         models.StatusRequested,
			PatientName:    "Juan Pérez",
			PatientPhone:   "+34 600 123 456",
			PatientAddress: "Calle Mayor 123, Madrid",
			RequestedDate:  now,
			CoordinatorID:  "1",
			Notes:          "Patient needs wheelchair assistance",
			VitalSigns:     []models.VitalSigns{},
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             r.newID(),
			Type:           models.TypeMedicalizedTransport,
			Status:         models.StatusAssigned,
			PatientName:    "María García",
			PatientPhone:   "+34 600 789 012",
			PatientAddress: "Avenida del Sol 45, Barcelona",
			RequestedDate:  now,
			ScheduledDate:  &twoHours,
			CoordinatorID:  "1",
			DoctorID:       "2",
			Notes:          "Post-surgery transport required",
			VitalSigns:     []models.VitalSigns{},
			CreatedAt:      now,
			UpdatedAt:      now,
		},
		{
			ID:             inProgressID,
			Type:           models.TypeHomeConsultation,
			Status:         models.StatusInProgress,
			PatientName:    "Carlos López",
			PatientPhone:   "+34 600 345 678",
			PatientAddress: "Plaza Nueva 78, Valencia",
			RequestedDate:  now,
			ScheduledDate:  &halfHourAgo,
			CoordinatorID:  "1",
			DoctorID:       "2",
			NurseID:        "3",
			Notes:          "Regular checkup for chronic condition",
			VitalSigns: []models.VitalSigns{
				{
					ID:            r.newID(),
					ServiceID:     inProgressID,
					RecordedBy:    "3",
					RecordedAt:    now,
					BloodPressure: &models.BloodPressure{Systolic: 120, Diastolic: 80},
					HeartRate:     intPtr(72),
					Temperature:   floatPtr(36.5),
				},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	r.stateMu.Lock()
	defer r.stateMu.Unlock()
	r.services = demo
	log.Printf("Seeded %d demo services", len(demo))
}

func intPtr(n int) *int { return &n }

func floatPtr(n float64) *float64 { return &n }
