package get_available_slots

import (
	"github.com/m04kA/parlourease/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date     string  // Дата YYYY-MM-DD
	Festival *bool   // Режим фестиваля; nil - из настроек салона
	Selected *string // Ранее выбранное время HH:MM (опционально)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date             string `json:"date"`
	FestivalMode     bool   `json:"festivalMode"`
	IntervalMinutes  int    `json:"intervalMinutes"`
	Slots            []Slot `json:"slots"`
	Selected         string `json:"selected"`
	SelectionCleared bool   `json:"selectionCleared"`
}

// Slot модель временного слота
// Booked носит справочный характер: запись на занятый слот разрешена
type Slot struct {
	StartTime types.TimeString `json:"time"`
	Booked    int              `json:"booked"`
}
