package get_payment

import (
	"context"

	"github.com/m04kA/parlourease/internal/service/bookings/models"
)

type BookingService interface {
	PaymentForm(ctx context.Context, id string) (*models.PaymentFormResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
