package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// reservationsKey единственный ключ кеша: весь реестр целиком
// Любая мутация сбрасывает ключ полностью - на масштабе одного оператора
// грубая инвалидация дешевле поключевой
const reservationsKey = "ua:reservations:all"

// MetricsRecorder интерфейс записи метрик кеша, может быть nil
type MetricsRecorder interface {
	ObserveCacheHit()
	ObserveCacheMiss()
}

// ReservationCache кеш чтения реестра бронирований поверх Redis
// Время жизни записи ограничено: устаревание в пределах TTL допустимо,
// каждая мутация обязана явно вызвать Invalidate
type ReservationCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics MetricsRecorder
}

// NewReservationCache создает кеш с указанным временем жизни записей
func NewReservationCache(client *redis.Client, ttl time.Duration, metrics MetricsRecorder) *ReservationCache {
	return &ReservationCache{
		client:  client,
		ttl:     ttl,
		metrics: metrics,
	}
}

// Get читает реестр из кеша
func (c *ReservationCache) Get(ctx context.Context) ([]*domain.Reservation, error) {
	raw, err := c.client.Get(ctx, reservationsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		if c.metrics != nil {
			c.metrics.ObserveCacheMiss()
		}
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrCacheUnavailable, err)
	}

	var reservations []*domain.Reservation
	if err := json.Unmarshal(raw, &reservations); err != nil {
		// Битая запись равносильна промаху
		if c.metrics != nil {
			c.metrics.ObserveCacheMiss()
		}
		return nil, ErrCacheMiss
	}

	if c.metrics != nil {
		c.metrics.ObserveCacheHit()
	}
	return reservations, nil
}

// Set записывает реестр в кеш с настроенным TTL
func (c *ReservationCache) Set(ctx context.Context, reservations []*domain.Reservation) error {
	encoded, err := json.Marshal(reservations)
	if err != nil {
		return fmt.Errorf("%w: Set - encode: %v", ErrCacheUnavailable, err)
	}

	if err := c.client.Set(ctx, reservationsKey, encoded, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Invalidate сбрасывает кеш, чтобы следующее чтение увидело свежие данные
func (c *ReservationCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, reservationsKey).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrCacheUnavailable, err)
	}
	return nil
}
