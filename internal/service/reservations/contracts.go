package reservations

import (
	"context"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ReadAll(ctx context.Context) ([]*domain.Reservation, error)
}

// ReservationCache интерфейс кеша чтения реестра
type ReservationCache interface {
	Get(ctx context.Context) ([]*domain.Reservation, error)
	Set(ctx context.Context, reservations []*domain.Reservation) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
