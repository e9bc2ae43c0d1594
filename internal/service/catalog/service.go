package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/service/catalog/models"
)

// Service каталог услуг салона
type Service struct {
	serviceRepo ServiceRepository
	changes     ChangePublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, changes ChangePublisher, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		changes:     changes,
		logger:      logger,
	}
}

// List возвращает каталог, упорядоченный по названию
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(services), nil
}

// Add добавляет услугу. Услуги не редактируются и не удаляются
func (s *Service) Add(ctx context.Context, req *models.AddServiceRequest) (*models.ServiceResponse, error) {
	service := req.ToDomain()
	s.logger.Info("Add: adding service name=%q price=%.2f duration=%d icon=%s",
		service.Name, service.Price, service.DurationMinutes, service.Icon)

	if err := service.Validate(); err != nil {
		s.logger.Warn("Add: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Add: repository error: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	if err := s.changes.Publish(ctx, domain.CollectionServices); err != nil {
		s.logger.Warn("Add: failed to publish change: %v", err)
	}

	s.logger.Info("Add: service id=%s created", created.ID)
	resp := models.FromDomainService(created)
	return &resp, nil
}
