package cache

import "errors"

var (
	// ErrCacheMiss возвращается, когда записи в кеше нет
	ErrCacheMiss = errors.New("reservation.cache: cache miss")

	// ErrCacheUnavailable возвращается при недоступности Redis
	// Кеш деградирует до прямых чтений из хранилища, это не фатальная ошибка
	ErrCacheUnavailable = errors.New("reservation.cache: cache unavailable")
)
