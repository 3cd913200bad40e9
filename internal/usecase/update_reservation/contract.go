package update_reservation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error)
	ReplaceByID(ctx context.Context, id uuid.UUID, reservation *domain.Reservation) error
}

// CacheInvalidator интерфейс инвалидации кеша чтения
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
