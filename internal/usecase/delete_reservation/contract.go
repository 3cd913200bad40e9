package delete_reservation

import (
	"context"

	"github.com/google/uuid"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	DeleteByID(ctx context.Context, id uuid.UUID) error
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
