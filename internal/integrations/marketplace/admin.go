package marketplace

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// AdminUsers GET /admin/users
func (c *Client) AdminUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.call(ctx, Request{Method: http.MethodGet, Path: "/admin/users"}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser DELETE /admin/users/{id}
func (c *Client) DeleteUser(ctx context.Context, id domain.ID) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/admin/users/" + escape(id)}, nil)
}

// AdminAgencies GET /admin/agencies
func (c *Client) AdminAgencies(ctx context.Context) ([]domain.Agency, error) {
	var agencies []domain.Agency
	if err := c.call(ctx, Request{Method: http.MethodGet, Path: "/admin/agencies"}, &agencies); err != nil {
		return nil, err
	}
	return agencies, nil
}

// DeleteAgency DELETE /admin/agencies/{id}
func (c *Client) DeleteAgency(ctx context.Context, id domain.ID) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/admin/agencies/" + escape(id)}, nil)
}

// AdminAnalytics GET /admin/analytics
func (c *Client) AdminAnalytics(ctx context.Context) (*domain.CommissionAnalytics, error) {
	var analytics domain.CommissionAnalytics
	if err := c.call(ctx, Request{Method: http.MethodGet, Path: "/admin/analytics"}, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// AdminTransactions GET /admin/transactions
func (c *Client) AdminTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	if err := c.call(ctx, Request{Method: http.MethodGet, Path: "/admin/transactions"}, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
