package update_agency_profile

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
	"github.com/m04kA/SMC-MarketplaceClient/internal/integrations/marketplace"
)

// MarketplaceClient интерфейс клиента API маркетплейса
type MarketplaceClient interface {
	UpdateAgencyProfile(ctx context.Context, agencyID domain.ID, input *marketplace.AgencyProfileInput) (*domain.Agency, error)
}

// SessionStore интерфейс доступа к сохраненной сессии
type SessionStore interface {
	GetAgencyID(ctx context.Context) (*domain.ID, error)
	UpdateAgency(ctx context.Context, agency *domain.Agency) error
}

// Validator интерфейс проверки форм
type Validator interface {
	Struct(s interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
