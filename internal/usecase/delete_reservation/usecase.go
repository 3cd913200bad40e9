package delete_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	storage "github.com/m04kA/UA-BookingService/internal/infra/storage/reservation"
)

// UseCase удаление бронирования
// Ключ разрешается в порядковый номер строки в момент удаления,
// поэтому параллельные мутации не сдвигают цель на чужую строку
type UseCase struct {
	repo   ReservationRepository
	cache  CacheInvalidator // может быть nil, если кеш выключен
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo ReservationRepository, cache CacheInvalidator, logger Logger) *UseCase {
	return &UseCase{repo: repo, cache: cache, logger: logger}
}

// Execute удаляет бронирование по суррогатному ключу
func (uc *UseCase) Execute(ctx context.Context, id uuid.UUID) error {
	uc.logger.Info("DeleteReservation: id=%s", id)

	if err := uc.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			uc.logger.Warn("DeleteReservation: reservation %s not found", id)
			return fmt.Errorf("%w: %s", ErrReservationNotFound, id)
		}
		uc.logger.Error("DeleteReservation: delete failed: %v", err)
		return fmt.Errorf("%w: Execute - delete reservation: %v", ErrStoreUnavailable, err)
	}

	uc.invalidateCache(ctx)

	uc.logger.Info("DeleteReservation: deleted id=%s", id)
	return nil
}

// invalidateCache сбрасывает кеш чтения после мутации
func (uc *UseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("DeleteReservation: cache invalidation failed: %v", err)
	}
}
