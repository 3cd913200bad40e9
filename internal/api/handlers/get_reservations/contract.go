package get_reservations

import (
	"context"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

type ReservationsService interface {
	GetAll(ctx context.Context) ([]*domain.Reservation, error)
	Latest(ctx context.Context, n int) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
