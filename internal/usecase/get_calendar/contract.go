package get_calendar

import (
	"context"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// ReservationReader интерфейс чтения реестра бронирований
type ReservationReader interface {
	GetAll(ctx context.Context) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
