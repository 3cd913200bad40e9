package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/UA-BookingService/internal/domain"
	"github.com/m04kA/UA-BookingService/internal/integrations/sheetstore"
)

// RowStore интерфейс внешнего хранилища строк
type RowStore interface {
	ReadAll(ctx context.Context, worksheet string) ([]sheetstore.Row, error)
	Append(ctx context.Context, worksheet string, row sheetstore.Row) error
}

// Позиционная схема листа пользователей
const (
	colName = iota
	colSurname
	colEmail
	colUsername
	colPasswordHash
	colRegisteredAt

	rowWidth = colRegisteredAt + 1
)

// Repository репозиторий учетных записей операторов
type Repository struct {
	store     RowStore
	worksheet string
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(store RowStore, worksheet string) *Repository {
	return &Repository{store: store, worksheet: worksheet}
}

// Append дописывает учетную запись в конец листа
func (r *Repository) Append(ctx context.Context, u *domain.User) error {
	row := sheetstore.Row{
		u.Name,
		u.Surname,
		u.Email,
		u.Username,
		u.PasswordHash,
		u.RegisteredAt.Format(domain.BookedAtFormat),
	}

	if err := r.store.Append(ctx, r.worksheet, row); err != nil {
		return fmt.Errorf("%w: Append: %v", ErrWriteStore, err)
	}

	return nil
}

// FindByUsername ищет пользователя по имени входа без учета регистра
func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	rows, err := r.store.ReadAll(ctx, r.worksheet)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByUsername: %v", ErrReadStore, err)
	}

	needle := strings.ToLower(strings.TrimSpace(username))
	for _, row := range rows {
		if len(row) < rowWidth {
			continue
		}
		if strings.ToLower(strings.TrimSpace(row[colUsername])) != needle {
			continue
		}

		registeredAt, _ := time.Parse(domain.BookedAtFormat, row[colRegisteredAt])
		return &domain.User{
			Name:         row[colName],
			Surname:      row[colSurname],
			Email:        row[colEmail],
			Username:     row[colUsername],
			PasswordHash: row[colPasswordHash],
			RegisteredAt: registeredAt,
		}, nil
	}

	return nil, ErrUserNotFound
}
