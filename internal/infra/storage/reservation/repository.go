package reservation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// Repository репозиторий бронирований поверх внешнего хранилища строк
// Единственная точка, где суррогатный ключ бронирования транслируется
// в порядковый номер строки: наружу порядковые номера не выходят
type Repository struct {
	store     RowStore
	worksheet string
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store RowStore, worksheet string) *Repository {
	return &Repository{store: store, worksheet: worksheet}
}

// ReadAll читает все бронирования в порядке хранения
func (r *Repository) ReadAll(ctx context.Context) ([]*domain.Reservation, error) {
	rows, err := r.store.ReadAll(ctx, r.worksheet)
	if err != nil {
		return nil, fmt.Errorf("%w: ReadAll: %v", ErrReadStore, err)
	}

	reservations := make([]*domain.Reservation, 0, len(rows))
	for i, row := range rows {
		decoded, err := decodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: ReadAll - row %d: %v", ErrDecodeRow, i, err)
		}
		reservations = append(reservations, decoded)
	}

	return reservations, nil
}

// Append дописывает бронирование в конец листа
func (r *Repository) Append(ctx context.Context, reservation *domain.Reservation) error {
	if err := r.store.Append(ctx, r.worksheet, encodeRow(reservation)); err != nil {
		return fmt.Errorf("%w: Append: %v", ErrWriteStore, err)
	}
	return nil
}

// ReplaceByID заменяет бронирование с указанным ключом, сохраняя позицию строки
// Обновление реализовано как удаление со вставкой на ту же позицию -
// так хранилище сохраняет порядок записей
func (r *Repository) ReplaceByID(ctx context.Context, id uuid.UUID, reservation *domain.Reservation) error {
	index, err := r.findIndexByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.store.DeleteAt(ctx, r.worksheet, index); err != nil {
		return fmt.Errorf("%w: ReplaceByID - delete at %d: %v", ErrWriteStore, index, err)
	}

	if err := r.store.InsertAt(ctx, r.worksheet, index, encodeRow(reservation)); err != nil {
		return fmt.Errorf("%w: ReplaceByID - insert at %d: %v", ErrWriteStore, index, err)
	}

	return nil
}

// DeleteByID удаляет бронирование с указанным ключом
// Порядковый номер разрешается непосредственно перед удалением, поэтому
// сдвиг строк после чужого удаления не приводит к удалению не той записи
func (r *Repository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	index, err := r.findIndexByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.store.DeleteAt(ctx, r.worksheet, index); err != nil {
		return fmt.Errorf("%w: DeleteByID - delete at %d: %v", ErrWriteStore, index, err)
	}

	return nil
}

// GetByID возвращает бронирование по суррогатному ключу
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	reservations, err := r.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, reservation := range reservations {
		if reservation.ID == id {
			return reservation, nil
		}
	}

	return nil, ErrReservationNotFound
}

// findIndexByID разрешает суррогатный ключ в текущий порядковый номер строки
func (r *Repository) findIndexByID(ctx context.Context, id uuid.UUID) (int, error) {
	if id == uuid.Nil {
		return 0, ErrReservationNotFound
	}

	rows, err := r.store.ReadAll(ctx, r.worksheet)
	if err != nil {
		return 0, fmt.Errorf("%w: findIndexByID: %v", ErrReadStore, err)
	}

	for i, row := range rows {
		if len(row) >= rowWidth && row[colID] == id.String() {
			return i, nil
		}
	}

	return 0, ErrReservationNotFound
}
