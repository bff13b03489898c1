package services

import (
	"MediHome/models"
	"MediHome/repositories"
	"context"
)

type ServiceService struct {
	repository *repositories.ServiceRepository
}

func NewServiceService(repository *repositories.ServiceRepository) *ServiceService {
	return &ServiceService{repository: repository}
}

func (s *ServiceService) Create(ctx context.Context, req models.CreateServiceRequest) (*models.Service, error) {
	return s.repository.Create(ctx, req)
}

func (s *ServiceService) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ServiceService) GetAll(ctx context.Context) []models.Service {
	return s.repository.GetAll(ctx)
}

func (s *ServiceService) Update(ctx context.Context, actorID, id string, req models.UpdateServiceRequest) (*models.Service, error) {
	return s.repository.Update(ctx, actorID, id, req)
}

func (s *ServiceService) Assign(ctx context.Context, actorID, id string, req models.AssignServiceRequest) (*models.Service, error) {
	return s.repository.Assign(ctx, actorID, id, req)
}

func (s *ServiceService) UpdateStatus(ctx context.Context, actorID, id string, status models.ServiceStatus) (*models.Service, error) {
	return s.repository.UpdateStatus(ctx, actorID, id, status)
}

func (s *ServiceService) AddVitalSigns(ctx context.Context, serviceID string, req models.VitalSignsRequest) (*models.Service, error) {
	return s.repository.AddVitalSigns(ctx, serviceID, req)
}

func (s *ServiceService) AddMedicalReport(ctx context.Context, serviceID string, req models.MedicalReportRequest) (*models.Service, error) {
	return s.repository.AddMedicalReport(ctx, serviceID, req)
}

func (s *ServiceService) Activity(ctx context.Context, serviceID string) []models.ActivityLog {
	return s.repository.Activity(ctx, serviceID)
}

func (s *ServiceService) IsLoading() bool {
	return s.repository.IsLoading()
}

func (s *ServiceService) LastError() string {
	return s.repository.LastError()
}

func (s *ServiceService) ClearError() {
	s.repository.ClearError()
}
