package update_booking

import (
	"time"

	"github.com/m04kA/parlourease/internal/api/handlers"
	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/service/bookings/models"
)

// UpdateBookingRequest HTTP request model
// Время визита передаётся либо парой appointmentDate/appointmentTime, либо appointmentDateTime
type UpdateBookingRequest struct {
	CustomerName        string              `json:"customerName"`
	Contact             string              `json:"contact"`
	ServiceID           handlers.StringList `json:"serviceId"`
	Date                string              `json:"appointmentDate"`
	Time                string              `json:"appointmentTime"`
	AppointmentDateTime handlers.Instant    `json:"appointmentDateTime"`
	Notes               *string             `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest(loc *time.Location) (*models.UpdateBookingRequest, error) {
	verr := domain.NewValidationError()

	req := &models.UpdateBookingRequest{
		CustomerName: r.CustomerName,
		Contact:      r.Contact,
		Date:         r.Date,
		Time:         r.Time,
		Notes:        r.Notes,
	}

	switch len(r.ServiceID) {
	case 0:
	case 1:
		req.ServiceID = r.ServiceID[0]
	default:
		verr.Add("serviceId", "Please select a single service.")
	}

	if r.AppointmentDateTime.Set {
		date, tm, err := r.AppointmentDateTime.DateAndTime(loc)
		if err != nil {
			verr.Add("appointmentDateTime", "Appointment date and time are invalid.")
		} else {
			req.Date, req.Time = date, tm
		}
	}

	if err := verr.ErrOrNil(); err != nil {
		return nil, err
	}
	return req, nil
}
