package session

import "errors"

var (
	// ErrBackend возвращается при ошибке нижележащего хранилища (файл, redis)
	ErrBackend = errors.New("session.storage: backend error")

	// ErrCorruptedFile возвращается, когда файл сессии не является JSON объектом
	ErrCorruptedFile = errors.New("session.storage: corrupted session file")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("session.storage: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("session.storage: failed to execute query")
)
