package sheetstore

import "errors"

var (
	// ErrWorksheetNotFound возвращается, когда лист не найден в таблице
	ErrWorksheetNotFound = errors.New("sheetstore client: worksheet not found")

	// ErrRowNotFound возвращается, когда строки с указанным порядковым номером нет
	ErrRowNotFound = errors.New("sheetstore client: row not found")

	// ErrUnauthorized возвращается при отклоненном токене доступа
	ErrUnauthorized = errors.New("sheetstore client: unauthorized")

	// ErrUnavailable возвращается, когда хранилище недоступно (сеть, таймаут, квота)
	// Начатый переход остается незафиксированным, пользователь может повторить вручную
	ErrUnavailable = errors.New("sheetstore client: store unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе хранилища
	ErrInvalidResponse = errors.New("sheetstore client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("sheetstore client: internal error")
)
