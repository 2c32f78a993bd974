package load_dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// UseCase загрузка дашборда по роли из сессии
type UseCase struct {
	client  MarketplaceClient
	session SessionStore
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client MarketplaceClient, session SessionStore, logger Logger) *UseCase {
	return &UseCase{
		client:  client,
		session: session,
		logger:  logger,
	}
}

// Execute загружает данные дашборда текущего пользователя
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Роль из сессии
	role, err := uc.session.GetRole(ctx)
	if err != nil {
		uc.logger.Error("LoadDashboard: failed to read role: %v", err)
		return nil, fmt.Errorf("%w: read role: %v", ErrInternal, err)
	}
	if role == nil {
		return nil, ErrNotAuthenticated
	}

	uc.logger.Info("LoadDashboard: role=%s", *role)
	resp := &Response{Role: *role, Route: domain.LandingRoute(*role)}

	// 2. Данные раздела роли
	switch *role {
	case domain.RoleAgency:
		resp.Agency, err = uc.loadAgency(ctx)
	case domain.RoleClient:
		resp.Client, err = uc.loadClient(ctx)
	case domain.RoleAdmin:
		resp.Admin, err = uc.loadAdmin(ctx)
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// loadAgency запросы агентства независимы и выполняются параллельно
func (uc *UseCase) loadAgency(ctx context.Context) (*AgencyDashboard, error) {
	agencyID, err := uc.session.GetAgencyID(ctx)
	if err != nil {
		uc.logger.Error("LoadDashboard: failed to read agency id: %v", err)
		return nil, fmt.Errorf("%w: read agency id: %v", ErrInternal, err)
	}
	if agencyID == nil {
		uc.logger.Warn("LoadDashboard: agency role without agency id")
		return nil, ErrMissingAgencyID
	}

	dash := &AgencyDashboard{AgencyID: *agencyID}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := uc.client.AgencyStats(gctx, *agencyID)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		dash.Stats = stats
		return nil
	})
	g.Go(func() error {
		services, err := uc.client.AgencyServices(gctx, *agencyID)
		if err != nil {
			return fmt.Errorf("services: %w", err)
		}
		dash.Services = services
		return nil
	})
	g.Go(func() error {
		reservations, err := uc.client.AgencyReservations(gctx, *agencyID, domain.ReservationFilter{})
		if err != nil {
			return fmt.Errorf("reservations: %w", err)
		}
		dash.Reservations = reservations
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Warn("LoadDashboard: agency=%s: %v", *agencyID, err)
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return dash, nil
}

// loadClient категории, затем каталог, затем бронирования клиента
func (uc *UseCase) loadClient(ctx context.Context) (*ClientDashboard, error) {
	categories, err := uc.client.ListCategories(ctx)
	if err != nil {
		uc.logger.Warn("LoadDashboard: categories: %v", err)
		return nil, fmt.Errorf("%w: categories: %w", ErrRequestFailed, err)
	}

	services, err := uc.client.ListServices(ctx, domain.ServiceFilter{})
	if err != nil {
		uc.logger.Warn("LoadDashboard: services: %v", err)
		return nil, fmt.Errorf("%w: services: %w", ErrRequestFailed, err)
	}

	reservations, err := uc.client.ListReservations(ctx, domain.ReservationFilter{})
	if err != nil {
		uc.logger.Warn("LoadDashboard: reservations: %v", err)
		return nil, fmt.Errorf("%w: reservations: %w", ErrRequestFailed, err)
	}

	return &ClientDashboard{
		Categories:   categories,
		Services:     services,
		Reservations: reservations,
	}, nil
}

func (uc *UseCase) loadAdmin(ctx context.Context) (*AdminDashboard, error) {
	dash := &AdminDashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		analytics, err := uc.client.AdminAnalytics(gctx)
		if err != nil {
			return fmt.Errorf("analytics: %w", err)
		}
		dash.Analytics = analytics
		return nil
	})
	g.Go(func() error {
		users, err := uc.client.AdminUsers(gctx)
		if err != nil {
			return fmt.Errorf("users: %w", err)
		}
		dash.Users = users
		return nil
	})
	g.Go(func() error {
		agencies, err := uc.client.AdminAgencies(gctx)
		if err != nil {
			return fmt.Errorf("agencies: %w", err)
		}
		dash.Agencies = agencies
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Warn("LoadDashboard: admin: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return dash, nil
}
