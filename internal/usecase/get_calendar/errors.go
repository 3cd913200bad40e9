package get_calendar

import "errors"

var (
	// ErrInvalidWindow возвращается при некорректном сочетании месяца и года
	ErrInvalidWindow = errors.New("get_calendar: invalid month/year window")

	// ErrStoreUnavailable возвращается, когда реестр бронирований недоступен
	ErrStoreUnavailable = errors.New("get_calendar: store unavailable")
)
