package get_dashboard

import (
	"net/http"

	"github.com/m04kA/parlourease/internal/api/handlers"
)

type Handler struct {
	view   DashboardView
	logger Logger
}

func NewHandler(view DashboardView, logger Logger) *Handler {
	return &Handler{
		view:   view,
		logger: logger,
	}
}

// Handle GET /api/v1/dashboard
// Пока оба снимка не получены, ready=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view := h.view.View()
	if !view.Ready {
		h.logger.Warn("GET /dashboard - Projection not ready yet")
	}
	handlers.RespondJSON(w, http.StatusOK, view)
}
