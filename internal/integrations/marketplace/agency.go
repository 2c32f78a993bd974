package marketplace

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// AgencyStats GET /agencies/{agency_id}/stats
func (c *Client) AgencyStats(ctx context.Context, agencyID domain.ID) (*domain.AgencyStats, error) {
	var stats domain.AgencyStats
	if err := c.call(ctx, Request{Method: http.MethodGet, Path: "/agencies/" + escape(agencyID) + "/stats"}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AgencyServices GET /agencies/{agency_id}/services
func (c *Client) AgencyServices(ctx context.Context, agencyID domain.ID) ([]domain.Service, error) {
	var services []domain.Service
	if err := c.call(ctx, Request{Method: http.MethodGet, Path: "/agencies/" + escape(agencyID) + "/services"}, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// AgencyReservations GET /agencies/{agency_id}/reservations
func (c *Client) AgencyReservations(ctx context.Context, agencyID domain.ID, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	req := Request{
		Method: http.MethodGet,
		Path:   "/agencies/" + escape(agencyID) + "/reservations",
		Query:  reservationQuery(filter),
	}
	if err := c.call(ctx, req, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// UpdateAgencyProfile PUT /agencies/{agency_id}
func (c *Client) UpdateAgencyProfile(ctx context.Context, agencyID domain.ID, input *AgencyProfileInput) (*domain.Agency, error) {
	var agency domain.Agency
	req := Request{Method: http.MethodPut, Path: "/agencies/" + escape(agencyID), Body: input}
	if err := c.call(ctx, req, &agency); err != nil {
		return nil, err
	}
	return &agency, nil
}
