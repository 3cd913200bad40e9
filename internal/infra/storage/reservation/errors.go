package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	// (в том числе когда строка исчезла между чтением и мутацией)
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrReadStore возвращается при ошибке чтения из хранилища
	ErrReadStore = errors.New("reservation.repository: failed to read store")

	// ErrWriteStore возвращается при ошибке записи в хранилище
	ErrWriteStore = errors.New("reservation.repository: failed to write store")

	// ErrDecodeRow возвращается при некорректной строке листа
	ErrDecodeRow = errors.New("reservation.repository: failed to decode row")

	// ErrEncodeRow возвращается при невозможности закодировать бронирование
	ErrEncodeRow = errors.New("reservation.repository: failed to encode row")
)
