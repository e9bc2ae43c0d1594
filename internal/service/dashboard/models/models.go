package models

import (
	bookingModels "github.com/m04kA/parlourease/internal/service/bookings/models"
	catalogModels "github.com/m04kA/parlourease/internal/service/catalog/models"
)

// QueueItem строка очереди на сегодня
type QueueItem struct {
	ID           string                        `json:"id"`
	CustomerName string                        `json:"customerName"`
	Contact      string                        `json:"contact"`
	Time         string                        `json:"appointmentTime"`
	Services     string                        `json:"services"`
	TotalPrice   float64                       `json:"totalPrice"`
	Status       string                        `json:"status"`
	Payment      bookingModels.PaymentResponse `json:"payment"`
	Actions      []string                      `json:"actions"`
}

// MethodTotals выручка по способам оплаты за всё время
type MethodTotals struct {
	Cash float64 `json:"Cash"`
	UPI  float64 `json:"UPI"`
	Card float64 `json:"Card"`
}

// RevenueResponse выручка (только оплаченные бронирования)
type RevenueResponse struct {
	Daily    float64      `json:"daily"`
	Monthly  float64      `json:"monthly"`
	ByMethod MethodTotals `json:"byMethod"`
}

// StatusCounts количество визитов сегодня по статусам
type StatusCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

// Versions версии снимков, из которых построено представление
type Versions struct {
	Services uint64 `json:"services"`
	Bookings uint64 `json:"bookings"`
}

// DashboardResponse представление панели администратора
type DashboardResponse struct {
	Date     string                          `json:"date"`
	Ready    bool                            `json:"ready"`
	Queue    []QueueItem                     `json:"queue"`
	Counts   StatusCounts                    `json:"counts"`
	Services []catalogModels.ServiceResponse `json:"services"`
	Revenue  RevenueResponse                 `json:"revenue"`
	Versions Versions                        `json:"versions"`
}
