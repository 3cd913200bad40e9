package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном имени пользователя или пароле
	ErrInvalidCredentials = errors.New("auth service: invalid credentials")

	// ErrUserAlreadyExists возвращается, когда имя пользователя уже занято
	ErrUserAlreadyExists = errors.New("auth service: username already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth service: invalid input data")

	// ErrPasswordMismatch возвращается, когда пароль и подтверждение не совпадают
	ErrPasswordMismatch = errors.New("auth service: passwords do not match")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
