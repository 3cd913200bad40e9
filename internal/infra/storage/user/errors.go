package user

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrReadStore возвращается при ошибке чтения из хранилища
	ErrReadStore = errors.New("user.repository: failed to read store")

	// ErrWriteStore возвращается при ошибке записи в хранилище
	ErrWriteStore = errors.New("user.repository: failed to write store")
)
