package search_services

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// MarketplaceClient интерфейс клиента API маркетплейса
type MarketplaceClient interface {
	SearchServices(ctx context.Context, query string) ([]domain.Service, error)
	ListServices(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
