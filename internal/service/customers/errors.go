package customers

import "errors"

var (
	// ErrInvalidInput возвращается при незаполненных обязательных полях
	ErrInvalidInput = errors.New("customers service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("customers service: internal error")
)
