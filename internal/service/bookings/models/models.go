package models

import (
	"errors"
	"time"

	"github.com/m04kA/parlourease/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Date   *string `json:"date,omitempty"`   // "2025-10-15", только визиты этого дня
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// UpdateBookingRequest редактирование бронирования администратором
// Администратор выбирает ровно одну услугу
type UpdateBookingRequest struct {
	CustomerName string  `json:"customerName"`
	Contact      string  `json:"contact"`
	ServiceID    string  `json:"serviceId"`
	Date         string  `json:"appointmentDate"` // "2025-10-15"
	Time         string  `json:"appointmentTime"` // "10:00"
	Notes        *string `json:"notes,omitempty"`
}

// RecordPaymentRequest данные формы оплаты
type RecordPaymentRequest struct {
	Amount float64 `json:"amount"`
	Method *string `json:"method"`
	Status string  `json:"status"`
}

// ToDomain конвертирует запрос в domain.Payment
func (r *RecordPaymentRequest) ToDomain() domain.Payment {
	p := domain.Payment{
		Amount: r.Amount,
		Status: domain.PaymentStatus(r.Status),
	}
	if r.Method != nil {
		method := domain.PaymentMethod(*r.Method)
		p.Method = &method
	}
	return p
}

// Response модели

// PaymentResponse платёжная часть бронирования
type PaymentResponse struct {
	Amount float64 `json:"amount"`
	Method *string `json:"method"`
	Status string  `json:"status"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                  string          `json:"id"`
	CustomerName        string          `json:"customerName"`
	Contact             string          `json:"contact"`
	ServiceIDs          []string        `json:"serviceId"`
	AppointmentDateTime time.Time       `json:"appointmentDateTime"`
	Date                string          `json:"appointmentDate"` // "2025-10-15"
	Time                string          `json:"appointmentTime"` // "10:00"
	Notes               *string         `json:"notes,omitempty"`
	Status              string          `json:"status"`
	Payment             PaymentResponse `json:"payment"`
	Actions             []string        `json:"actions"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// PaymentFormResponse предзаполненная форма оплаты
type PaymentFormResponse struct {
	BookingID    string   `json:"bookingId"`
	CustomerName string   `json:"customerName"`
	Services     string   `json:"services"`
	Amount       float64  `json:"amount"`
	Method       *string  `json:"method"`
	Status       string   `json:"status"`
	Methods      []string `json:"methods"`
}

// ActionResponse результат действия над бронированием
// PaymentForm заполнен только после Complete
type ActionResponse struct {
	Booking     BookingResponse      `json:"booking"`
	PaymentForm *PaymentFormResponse `json:"paymentForm,omitempty"`
}

// Методы конвертации

// FromDomainPayment конвертирует оплату в DTO
func FromDomainPayment(p domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		Amount: p.Amount,
		Status: string(p.Status),
	}
	if p.Method != nil {
		method := string(*p.Method)
		resp.Method = &method
	}
	return resp
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	serviceIDs := b.ServiceIDs
	if serviceIDs == nil {
		serviceIDs = []string{}
	}

	actions := make([]string, 0, 1)
	for _, a := range b.AvailableActions() {
		actions = append(actions, string(a))
	}

	return &BookingResponse{
		ID:                  b.ID,
		CustomerName:        b.CustomerName,
		Contact:             b.Contact,
		ServiceIDs:          serviceIDs,
		AppointmentDateTime: b.AppointmentAt,
		Date:                b.AppointmentAt.Format(domain.DateFormat),
		Time:                b.AppointmentAt.Format(domain.TimeFormat),
		Notes:               b.Notes,
		Status:              string(b.Status),
		Payment:             FromDomainPayment(b.Payment),
		Actions:             actions,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// NewPaymentForm собирает предзаполненную форму оплаты
func NewPaymentForm(b *domain.Booking, catalog domain.Catalog) *PaymentFormResponse {
	payment := FromDomainPayment(b.Payment)
	return &PaymentFormResponse{
		BookingID:    b.ID,
		CustomerName: b.CustomerName,
		Services:     catalog.Summarize(b.ServiceIDs).Label,
		Amount:       b.PaymentPrefill(catalog),
		Method:       payment.Method,
		Status:       payment.Status,
		Methods: []string{
			string(domain.PaymentCash),
			string(domain.PaymentUPI),
			string(domain.PaymentCard),
		},
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
