package settings

import (
	"context"
	"fmt"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/service/settings/models"
)

// Service сервис настроек салона
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает текущие настройки
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSettings(settings), nil
}

// FestivalMode возвращает текущий режим праздничного расписания
func (s *Service) FestivalMode(ctx context.Context) (bool, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: FestivalMode - repository error: %v", ErrInternal, err)
	}
	return settings.FestivalMode, nil
}

// Update сохраняет настройки
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	if req.FestivalMode == nil {
		verr := domain.NewValidationError()
		verr.Add("festivalMode", "festivalMode is required")
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, verr)
	}

	s.logger.Info("Update: festivalMode=%t", *req.FestivalMode)

	saved, err := s.settingsRepo.Update(ctx, &domain.SalonSettings{FestivalMode: *req.FestivalMode})
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(saved), nil
}
