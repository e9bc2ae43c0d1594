package models

import (
	"fmt"
	"time"

	"github.com/m04kA/parlourease/internal/domain"
)

// UpdateSettingsRequest запрос на изменение настроек салона
type UpdateSettingsRequest struct {
	FestivalMode *bool `json:"festivalMode"`
}

// SettingsResponse настройки салона и производная политика слотов
type SettingsResponse struct {
	FestivalMode        bool      `json:"festivalMode"`
	SlotIntervalMinutes int       `json:"slotIntervalMinutes"`
	OpeningTime         string    `json:"openingTime"`
	ClosingTime         string    `json:"closingTime"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.SalonSettings) *SettingsResponse {
	return &SettingsResponse{
		FestivalMode:        s.FestivalMode,
		SlotIntervalMinutes: domain.SlotInterval(s.FestivalMode),
		OpeningTime:         fmt.Sprintf("%02d:00", domain.OpeningHour),
		ClosingTime:         fmt.Sprintf("%02d:00", domain.ClosingHour),
		UpdatedAt:           s.UpdatedAt,
	}
}
