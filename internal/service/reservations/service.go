package reservations

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/UA-BookingService/internal/domain"
	"github.com/m04kA/UA-BookingService/internal/infra/cache"
)

// Service читающая сторона реестра бронирований
// Все чтения идут через кеш; при недоступности кеша деградирует
// до прямых чтений из хранилища
type Service struct {
	repo   ReservationRepository
	cache  ReservationCache // nil, если кеш выключен
	logger Logger
}

// NewService создает новый экземпляр сервиса чтения бронирований
func NewService(repo ReservationRepository, reservationCache ReservationCache, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  reservationCache,
		logger: logger,
	}
}

// GetAll возвращает весь реестр бронирований в порядке хранения
func (s *Service) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("GetAll: cache degraded, reading store directly: %v", err)
		}
	}

	reservations, err := s.repo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll: %v", ErrStoreUnavailable, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, reservations); err != nil {
			s.logger.Warn("GetAll: failed to populate cache: %v", err)
		}
	}

	return reservations, nil
}

// Latest возвращает последние n зарегистрированных бронирований, новые первыми
func (s *Service) Latest(ctx context.Context, n int) ([]*domain.Reservation, error) {
	reservations, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]*domain.Reservation, len(reservations))
	copy(sorted, reservations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BookedAt.After(sorted[j].BookedAt)
	})

	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}

	return sorted, nil
}
