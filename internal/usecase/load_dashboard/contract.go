package load_dashboard

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// MarketplaceClient интерфейс клиента API маркетплейса
type MarketplaceClient interface {
	// Агентство
	AgencyStats(ctx context.Context, agencyID domain.ID) (*domain.AgencyStats, error)
	AgencyServices(ctx context.Context, agencyID domain.ID) ([]domain.Service, error)
	AgencyReservations(ctx context.Context, agencyID domain.ID, filter domain.ReservationFilter) ([]domain.Reservation, error)

	// Клиент
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListServices(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error)
	ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error)

	// Администратор
	AdminAnalytics(ctx context.Context) (*domain.CommissionAnalytics, error)
	AdminUsers(ctx context.Context) ([]domain.User, error)
	AdminAgencies(ctx context.Context) ([]domain.Agency, error)
}

// SessionStore интерфейс доступа к сохраненной сессии
type SessionStore interface {
	GetRole(ctx context.Context) (*domain.Role, error)
	GetAgencyID(ctx context.Context) (*domain.ID, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
