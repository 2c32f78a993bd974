package marketplace

import (
	"context"
	"time"
)

// TokenSource источник токена авторизации (хранилище сессии)
type TokenSource interface {
	GetToken(ctx context.Context) (*string, error)
}

// SessionClearer полный выход при 401
type SessionClearer interface {
	Clear(ctx context.Context) error
}

// Navigator выполняет переход на маршрут фронтенда (аналог window.location)
type Navigator interface {
	Navigate(route string)
}

// RequestObserver сборщик метрик запросов
type RequestObserver interface {
	ObserveRequest(method string, status int, duration time.Duration)
	IncForcedLogout()
	IncNetworkError()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
