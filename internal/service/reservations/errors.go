package reservations

import "errors"

var (
	// ErrStoreUnavailable возвращается, когда реестр не удалось прочитать из хранилища
	ErrStoreUnavailable = errors.New("reservations service: store unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
