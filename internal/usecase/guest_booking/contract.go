package guest_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
	"github.com/m04kA/SMC-MarketplaceClient/internal/integrations/marketplace"
)

// MarketplaceClient интерфейс клиента API маркетплейса
type MarketplaceClient interface {
	GetService(ctx context.Context, id domain.ID) (*domain.Service, error)
	CreatePublicReservation(ctx context.Context, input *marketplace.PublicReservationInput) (*domain.Reservation, error)
}

// Validator интерфейс проверки форм
type Validator interface {
	Struct(s interface{}) error
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
