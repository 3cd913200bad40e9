package reports

import "errors"

var (
	// ErrStoreUnavailable возвращается, когда данные клиентов не удалось прочитать
	ErrStoreUnavailable = errors.New("reports service: store unavailable")
)
