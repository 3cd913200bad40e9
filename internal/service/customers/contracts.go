package customers

import (
	"context"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Append(ctx context.Context, c *domain.Customer) error
	ReadAll(ctx context.Context) ([]*domain.Customer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
