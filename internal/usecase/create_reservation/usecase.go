package create_reservation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// UseCase переход "ожидает подтверждения -> сохранено"
// Повторно валидирует запись, фиксирует цену и производные поля,
// дописывает строку в хранилище и инвалидирует кеш чтения
type UseCase struct {
	repo         ReservationRepository
	cache        CacheInvalidator // может быть nil, если кеш выключен
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo ReservationRepository, cache CacheInvalidator, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		repo:         repo,
		cache:        cache,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute сохраняет подтвержденное бронирование
// При недоступности хранилища переход не фиксируется: строка не записана,
// кеш не трогается, клиент может повторить подтверждение
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: name=%q, activity=%s, party=%d",
		req.CustomerName, req.Activity, req.PartySize)

	if req.Activity != "" && !req.Activity.IsKnown() {
		uc.logger.Warn("CreateReservation: unknown activity %q", req.Activity)
		return nil, fmt.Errorf("%w: %q", ErrUnknownActivity, req.Activity)
	}

	draft := req.toDraft()
	if err := draft.Validate(); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	finalPrice := draft.SuggestedPrice()
	if req.FinalPrice != nil {
		if *req.FinalPrice < 0 {
			return nil, fmt.Errorf("%w: final price must be non-negative", ErrInvalidInput)
		}
		finalPrice = *req.FinalPrice
	}

	now := uc.timeProvider.Now()
	reservation := &domain.Reservation{
		ID:            uuid.New(),
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
		BookedAt:      now,
		UnitPrice:     domain.UnitPrice(draft.Activity, draft.Duration, finalPrice, draft.TotalPartySize(), draft.ManualUnitPrice),
	}

	if err := uc.repo.Append(ctx, reservation); err != nil {
		uc.logger.Error("CreateReservation: append failed: %v", err)
		return nil, fmt.Errorf("%w: Execute - append reservation: %v", ErrStoreUnavailable, err)
	}

	uc.invalidateCache(ctx)

	uc.logger.Info("CreateReservation: saved id=%s, final=%.2f, unit=%.2f",
		reservation.ID, reservation.FinalPrice, reservation.UnitPrice)

	return &Response{
		ID:         reservation.ID,
		FinalPrice: reservation.FinalPrice,
		UnitPrice:  reservation.UnitPrice,
		BookedAt:   reservation.BookedAt,
	}, nil
}

// invalidateCache сбрасывает кеш чтения после мутации
// Ошибка инвалидации не прерывает операцию: запись уже зафиксирована,
// кеш догонит хранилище по истечении TTL
func (uc *UseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("CreateReservation: cache invalidation failed: %v", err)
	}
}
