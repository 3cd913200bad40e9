package create_reservation

import "errors"

var (
	// ErrUnknownActivity возвращается, когда активности нет в каталоге
	ErrUnknownActivity = errors.New("create_reservation: unknown activity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrStoreUnavailable возвращается, когда хранилище недоступно
	// Переход остается незафиксированным, пользователь может повторить подтверждение
	ErrStoreUnavailable = errors.New("create_reservation: store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
