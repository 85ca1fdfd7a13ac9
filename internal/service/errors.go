package service

import "errors"

// Ошибки слоя сервиса. Хендлеры сопоставляют их через errors.Is и отдают короткие сообщения.
var (
	// ErrValidation: не заполнено обязательное поле.
	ErrValidation = errors.New("validation error")
	// ErrLoginTaken: логин уже занят.
	ErrLoginTaken = errors.New("username already taken")
	// ErrInvalidCredentials: нет такого пользователя или неверный пароль (не различаются).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound: только для операторских утилит, не для входа.
	ErrUserNotFound = errors.New("user not found")

	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrNothingToUpdate = errors.New("nothing to update")
	// ErrRetrievalFailed: секрет записи не удалось расшифровать.
	ErrRetrievalFailed = errors.New("retrieval failed")
)
