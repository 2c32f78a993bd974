package session

import "errors"

var (
	// ErrInvalidInput возвращается при попытке сохранить неполную сессию
	ErrInvalidInput = errors.New("session: invalid input data")

	// ErrStorage возвращается при ошибке хранилища
	ErrStorage = errors.New("session: storage error")
)
