package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/parlourease/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/parlourease/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "date is required"
	msgInvalidFestival = "festival must be true or false"
	msgInvalidInput    = "invalid date or selected time, expected YYYY-MM-DD and HH:MM"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD), festival (optional), selected (optional, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Get("date") == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(query)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFestival)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", useCaseReq.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: date=%s, slots_count=%d", result.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
