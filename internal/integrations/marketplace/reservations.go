package marketplace

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// ListReservations GET /reservations (бронирования текущего пользователя)
func (c *Client) ListReservations(ctx context.Context, filter domain.ReservationFilter) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	req := Request{Method: http.MethodGet, Path: "/reservations", Query: reservationQuery(filter)}
	if err := c.call(ctx, req, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// CreateReservation POST /reservations
func (c *Client) CreateReservation(ctx context.Context, input *ReservationInput) (*domain.Reservation, error) {
	var reservation domain.Reservation
	if err := c.call(ctx, Request{Method: http.MethodPost, Path: "/reservations", Body: input}, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetReservation GET /reservations/{id}
func (c *Client) GetReservation(ctx context.Context, id domain.ID) (*domain.Reservation, error) {
	var reservation domain.Reservation
	if err := c.call(ctx, Request{Method: http.MethodGet, Path: "/reservations/" + escape(id)}, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateReservation PUT /reservations/{id}
func (c *Client) UpdateReservation(ctx context.Context, id domain.ID, input *ReservationInput) (*domain.Reservation, error) {
	var reservation domain.Reservation
	if err := c.call(ctx, Request{Method: http.MethodPut, Path: "/reservations/" + escape(id), Body: input}, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// DeleteReservation DELETE /reservations/{id}
func (c *Client) DeleteReservation(ctx context.Context, id domain.ID) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/reservations/" + escape(id)}, nil)
}

// UpdateReservationStatus PATCH /reservations/{id}/status
// Переход запрашивается клиентом, применяет его backend
func (c *Client) UpdateReservationStatus(ctx context.Context, id domain.ID, status domain.ReservationStatus) (*domain.Reservation, error) {
	var reservation domain.Reservation
	req := Request{
		Method: http.MethodPatch,
		Path:   "/reservations/" + escape(id) + "/status",
		Body:   StatusUpdate{Status: status},
	}
	if err := c.call(ctx, req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CancelReservation POST /reservations/{id}/cancel
func (c *Client) CancelReservation(ctx context.Context, id domain.ID, reason string) (*domain.Reservation, error) {
	var reservation domain.Reservation
	req := Request{
		Method: http.MethodPost,
		Path:   "/reservations/" + escape(id) + "/cancel",
		Body:   CancelInput{Reason: reason},
	}
	if err := c.call(ctx, req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// CreatePublicReservation POST /reservations/public (гость, без токена)
func (c *Client) CreatePublicReservation(ctx context.Context, input *PublicReservationInput) (*domain.Reservation, error) {
	var reservation domain.Reservation
	req := Request{Method: http.MethodPost, Path: "/reservations/public", Body: input, Public: true}
	if err := c.call(ctx, req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// GetPublicReservation GET /reservations/public/{id}
func (c *Client) GetPublicReservation(ctx context.Context, id domain.ID) (*domain.Reservation, error) {
	var reservation domain.Reservation
	req := Request{Method: http.MethodGet, Path: "/reservations/public/" + escape(id), Public: true}
	if err := c.call(ctx, req, &reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

func reservationQuery(f domain.ReservationFilter) url.Values {
	q := url.Values{}
	if f.Status != nil {
		q.Set("status", string(*f.Status))
	}
	if f.ServiceID != nil {
		q.Set("service_id", f.ServiceID.String())
	}
	if f.From != nil {
		q.Set("from", f.From.Format(domain.DateFormat))
	}
	if f.To != nil {
		q.Set("to", f.To.Format(domain.DateFormat))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	return q
}
