package quote_reservation

import "errors"

var (
	// ErrUnknownActivity возвращается, когда активности нет в каталоге
	ErrUnknownActivity = errors.New("quote_reservation: unknown activity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_reservation: invalid input data")
)
