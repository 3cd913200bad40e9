package customer

import "errors"

var (
	// ErrReadStore возвращается при ошибке чтения из хранилища
	ErrReadStore = errors.New("customer.repository: failed to read store")

	// ErrWriteStore возвращается при ошибке записи в хранилище
	ErrWriteStore = errors.New("customer.repository: failed to write store")

	// ErrDecodeRow возвращается при некорректной строке листа
	ErrDecodeRow = errors.New("customer.repository: failed to decode row")
)
