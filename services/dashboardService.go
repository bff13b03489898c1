package services

import (
	"MediHome/models"
	"MediHome/repositories"
	"context"
	"strings"
)

// ComputeDashboardStats counts services by status in one pass. Deterministic,
// no side effects; the counts always sum to TotalServices.
func ComputeDashboardStats(services []models.Service) models.DashboardStats {
	stats := models.DashboardStats{TotalServices: len(services)}
	for _, s := range services {
		switch s.Status {
		case models.StatusRequested:
			stats.RequestedServices++
		case models.StatusAssigned:
			stats.AssignedServices++
		case models.StatusInProgress:
			stats.InProgressServices++
		case models.StatusCompleted:
			stats.CompletedServices++
		case models.StatusCancelled:
			stats.CancelledServices++
		}
	}
	return stats
}

// ServiceFilter selects services for presentation. All criteria are
// AND-composed; zero values mean "no constraint".
type ServiceFilter struct {
	Role       models.UserRole
	UserID     string
	SearchTerm string
	Status     *models.ServiceStatus
	Type       *models.ServiceType
}

// FilterServices applies role visibility, then a case-insensitive substring
// search over patient name, address and notes, then exact status/type
// matches. The input order is preserved; with no criteria set the input is
// returned unchanged.
func FilterServices(services []models.Service, filter ServiceFilter) []models.Service {
	out := services
	if filter.Role != "" && filter.Role != models.RoleCoordinator {
		out = filtered(out, func(s models.Service) bool {
			return s.DoctorID == filter.UserID || s.NurseID == filter.UserID
		})
	}
	if filter.SearchTerm != "" {
		term := strings.ToLower(filter.SearchTerm)
		out = filtered(out, func(s models.Service) bool {
			return strings.Contains(strings.ToLower(s.PatientName), term) ||
				strings.Contains(strings.ToLower(s.PatientAddress), term) ||
				strings.Contains(strings.ToLower(s.Notes), term)
		})
	}
	if filter.Status != nil {
		out = filtered(out, func(s models.Service) bool { return s.Status == *filter.Status })
	}
	if filter.Type != nil {
		out = filtered(out, func(s models.Service) bool { return s.Type == *filter.Type })
	}
	return out
}

// filtered is a stable filter over the slice; it never mutates the input.
func filtered(services []models.Service, keep func(models.Service) bool) []models.Service {
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// DashboardService reads repository snapshots and computes derived views.
type DashboardService struct {
	repository *repositories.ServiceRepository
}

func NewDashboardService(repository *repositories.ServiceRepository) *DashboardService {
	return &DashboardService{repository: repository}
}

// GetDashboardStats recomputes the dashboard counters from the current
// committed collection.
func (s *DashboardService) GetDashboardStats(ctx context.Context) models.DashboardStats {
	return ComputeDashboardStats(s.repository.GetAll(ctx))
}

// ListServices returns the filtered collection snapshot.
func (s *DashboardService) ListServices(ctx context.Context, filter ServiceFilter) []models.Service {
	return FilterServices(s.repository.GetAll(ctx), filter)
}
