package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/parlourease/internal/api/handlers"
	createBooking "github.com/m04kA/parlourease/internal/usecase/create_booking"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if !handlers.RespondValidation(w, err) {
			handlers.RespondBadRequest(w, err.Error())
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: customer=%q, error=%v", req.CustomerName, err)
			if !handlers.RespondValidation(w, err) {
				handlers.RespondBadRequest(w, err.Error())
			}
		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer=%q, error=%v", req.CustomerName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, source=%s", result.ID, useCaseReq.Source)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
