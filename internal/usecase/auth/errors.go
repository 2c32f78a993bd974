package auth

import "errors"

var (
	// ErrInvalidInput возвращается, когда форма не прошла проверку (запрос не отправлялся)
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrAuthFailed возвращается, когда API отклонил вход или регистрацию
	ErrAuthFailed = errors.New("auth: authentication failed")

	// ErrInvalidResponse возвращается, когда в ответе API нет пользователя или токена
	ErrInvalidResponse = errors.New("auth: invalid auth response")

	// ErrInProgress возвращается, когда вход уже выполняется
	ErrInProgress = errors.New("auth: authentication already in progress")

	// ErrInternal возвращается при ошибке записи сессии
	ErrInternal = errors.New("auth: internal error")
)
