package booking_action

import (
	"context"

	"github.com/m04kA/parlourease/internal/domain"
	"github.com/m04kA/parlourease/internal/service/bookings/models"
)

type BookingService interface {
	ApplyAction(ctx context.Context, id string, action domain.BookingAction) (*models.ActionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
