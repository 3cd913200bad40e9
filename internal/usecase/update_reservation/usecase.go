package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UA-BookingService/internal/domain"
	storage "github.com/m04kA/UA-BookingService/internal/infra/storage/reservation"
)

// UseCase редактирование сохраненного бронирования
// Запись заменяется целиком с пересчетом производных полей;
// суррогатный ключ и время создания сохраняются
type UseCase struct {
	repo   ReservationRepository
	cache  CacheInvalidator // может быть nil, если кеш выключен
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo ReservationRepository, cache CacheInvalidator, logger Logger) *UseCase {
	return &UseCase{repo: repo, cache: cache, logger: logger}
}

// Execute обновляет бронирование по суррогатному ключу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%s, activity=%s", req.ID, req.Activity)

	if req.Activity != "" && !req.Activity.IsKnown() {
		uc.logger.Warn("UpdateReservation: unknown activity %q", req.Activity)
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, req.Activity)
	}

	draft := req.toDraft()
	if err := draft.Validate(); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	existing, err := uc.repo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			uc.logger.Warn("UpdateReservation: reservation %s not found", req.ID)
			return nil, fmt.Errorf("%w: %s", ErrReservationNotFound, req.ID)
		}
		uc.logger.Error("UpdateReservation: get reservation failed: %v", err)
		return nil, fmt.Errorf("%w: Execute - get reservation: %v", ErrStoreUnavailable, err)
	}

	finalPrice := draft.SuggestedPrice()
	if req.FinalPrice != nil {
		if *req.FinalPrice < 0 {
			return nil, fmt.Errorf("%w: final price must be non-negative", ErrInvalidInput)
		}
		finalPrice = *req.FinalPrice
	}

	updated := &domain.Reservation{
		ID:            existing.ID,
		CustomerName:  draft.CustomerName,
		Activity:      draft.Activity,
		Date:          *draft.Date,
		StartTime:     draft.StartTime,
		Duration:      draft.Duration,
		PartySize:     draft.TotalPartySize(),
		ContactMethod: draft.ContactMethod,
		ContactValue:  draft.ContactValue,
		FinalPrice:    finalPrice,
		Notes:         draft.Notes,
		BookedAt:      existing.BookedAt,
		UnitPrice:     domain.UnitPrice(draft.Activity, draft.Duration, finalPrice, draft.TotalPartySize(), draft.ManualUnitPrice),
	}

	if err := uc.repo.ReplaceByID(ctx, req.ID, updated); err != nil {
		if errors.Is(err, storage.ErrReservationNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReservationNotFound, req.ID)
		}
		uc.logger.Error("UpdateReservation: replace failed: %v", err)
		return nil, fmt.Errorf("%w: Execute - replace reservation: %v", ErrStoreUnavailable, err)
	}

	uc.invalidateCache(ctx)

	uc.logger.Info("UpdateReservation: updated id=%s, final=%.2f", updated.ID, updated.FinalPrice)

	return &Response{
		ID:         updated.ID,
		FinalPrice: updated.FinalPrice,
		UnitPrice:  updated.UnitPrice,
	}, nil
}

// invalidateCache сбрасывает кеш чтения после мутации
func (uc *UseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("UpdateReservation: cache invalidation failed: %v", err)
	}
}
