package models

import (
	"strings"
	"time"

	"github.com/m04kA/parlourease/internal/domain"
)

// AddServiceRequest запрос на добавление услуги в каталог
type AddServiceRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
	Icon     string  `json:"icon"`
}

// ToDomain конвертирует запрос в domain.Service
func (r *AddServiceRequest) ToDomain() *domain.Service {
	return &domain.Service{
		Name:            strings.TrimSpace(r.Name),
		Price:           r.Price,
		DurationMinutes: r.Duration,
		Icon:            strings.TrimSpace(r.Icon),
	}
}

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Duration  int       `json:"duration"`
	Icon      string    `json:"icon"`
	Glyph     string    `json:"glyph"`
	CreatedAt time.Time `json:"createdAt"`
}

// ServiceListResponse каталог, упорядоченный по названию
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Icons    []string          `json:"icons"`
}

// FromDomainService конвертирует domain модель в DTO
// Неизвестная иконка отдаётся как иконка по умолчанию
func FromDomainService(s *domain.Service) ServiceResponse {
	icon := s.ResolvedIcon()
	return ServiceResponse{
		ID:        s.ID,
		Name:      s.Name,
		Price:     s.Price,
		Duration:  s.DurationMinutes,
		Icon:      icon.Token,
		Glyph:     icon.Glyph,
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
		Icons:    domain.IconTokens(),
	}
	for _, s := range services {
		resp.Services = append(resp.Services, FromDomainService(s))
	}
	return resp
}
