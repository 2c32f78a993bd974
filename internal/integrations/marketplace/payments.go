package marketplace

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// CreatePayment POST /payments
func (c *Client) CreatePayment(ctx context.Context, input *PaymentInput) (*domain.Payment, error) {
	var payment domain.Payment
	if err := c.call(ctx, Request{Method: http.MethodPost, Path: "/payments", Body: input}, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetInvoice GET /reservations/{id}/invoice
func (c *Client) GetInvoice(ctx context.Context, reservationID domain.ID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	req := Request{Method: http.MethodGet, Path: "/reservations/" + escape(reservationID) + "/invoice"}
	if err := c.call(ctx, req, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}
