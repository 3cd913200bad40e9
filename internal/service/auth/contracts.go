package auth

import (
	"context"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// UserRepository интерфейс репозитория учетных записей
type UserRepository interface {
	Append(ctx context.Context, u *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
