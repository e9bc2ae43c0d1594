package add_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/parlourease/internal/api/handlers"
	"github.com/m04kA/parlourease/internal/service/catalog"
	"github.com/m04kA/parlourease/internal/service/catalog/models"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.AddServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	created, err := h.service.Add(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /services - Validation failed: %v", err)
			if !handlers.RespondValidation(w, err) {
				handlers.RespondBadRequest(w, err.Error())
			}
		default:
			h.logger.Error("POST /services - Failed to add service: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service added successfully: service_id=%s", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
