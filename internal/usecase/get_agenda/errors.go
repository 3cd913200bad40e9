package get_agenda

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("get_agenda: invalid date range")

	// ErrStoreUnavailable возвращается, когда реестр бронирований недоступен
	ErrStoreUnavailable = errors.New("get_agenda: store unavailable")
)
