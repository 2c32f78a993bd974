package render_invoice

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// MarketplaceClient интерфейс клиента API маркетплейса
type MarketplaceClient interface {
	GetReservation(ctx context.Context, id domain.ID) (*domain.Reservation, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
