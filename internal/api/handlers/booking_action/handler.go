package booking_action

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/parlourease/internal/api/handlers"
	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/service/bookings"
)

const (
	msgNotFound          = "booking not found"
	msgInvalidTransition = "action is not available for the current booking status"
)

// Handler один обработчик на каждое действие (start, complete)
type Handler struct {
	service BookingService
	action  domain.BookingAction
	logger  Logger
}

func NewHandler(service BookingService, action domain.BookingAction, logger Logger) *Handler {
	return &Handler{
		service: service,
		action:  action,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/start|complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	resp, err := h.service.ApplyAction(r.Context(), bookingID, h.action)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/%s - Booking not found: booking_id=%s", h.action, bookingID)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("POST /bookings/{id}/%s - Invalid transition: booking_id=%s, error=%v", h.action, bookingID, err)
			handlers.RespondConflict(w, msgInvalidTransition)
		default:
			h.logger.Error("POST /bookings/{id}/%s - Failed to apply action: booking_id=%s, error=%v", h.action, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/%s - Action applied: booking_id=%s, status=%s", h.action, bookingID, resp.Booking.Status)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
