package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/parlourease/internal/api/handlers"
	"github.com/m04kA/parlourease/internal/domain"
	createBooking "github.com/m04kA/parlourease/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
// serviceId принимает строку или массив строк
type CreateBookingRequest struct {
	Source              string              `json:"source,omitempty"` // customer (по умолчанию) | admin
	CustomerName        string              `json:"customerName"`
	Contact             string              `json:"contact"`
	ServiceID           handlers.StringList `json:"serviceId"`
	Date                string              `json:"appointmentDate"` // "2025-10-15"
	Time                string              `json:"appointmentTime"` // "10:00"
	AppointmentDateTime handlers.Instant    `json:"appointmentDateTime"`
	Notes               *string             `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(loc *time.Location) (*createBooking.Request, error) {
	source := createBooking.SourceCustomer
	switch r.Source {
	case "", string(createBooking.SourceCustomer):
	case string(createBooking.SourceAdmin):
		source = createBooking.SourceAdmin
	default:
		return nil, fmt.Errorf("unknown source %q", r.Source)
	}

	req := &createBooking.Request{
		Source:       source,
		CustomerName: r.CustomerName,
		Contact:      r.Contact,
		ServiceIDs:   []string(r.ServiceID),
		Date:         r.Date,
		Time:         r.Time,
		Notes:        r.Notes,
	}

	if r.AppointmentDateTime.Set {
		date, tm, err := r.AppointmentDateTime.DateAndTime(loc)
		if err != nil {
			verr := domain.NewValidationError()
			verr.Add("appointmentDateTime", "Appointment date and time are invalid.")
			return nil, verr
		}
		req.Date, req.Time = date, tm
	}

	return req, nil
}
