package get_dashboard

import (
	"github.com/m04kA/parlourease/internal/service/dashboard/models"
)

type DashboardView interface {
	View() *models.DashboardResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
