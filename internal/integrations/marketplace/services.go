package marketplace

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// ListServices GET /services с фильтрами
func (c *Client) ListServices(ctx context.Context, filter domain.ServiceFilter) ([]domain.Service, error) {
	var services []domain.Service
	req := Request{Method: http.MethodGet, Path: "/services", Query: serviceQuery(filter)}
	if err := c.call(ctx, req, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// SearchServices GET /services/search?q=
func (c *Client) SearchServices(ctx context.Context, query string) ([]domain.Service, error) {
	var services []domain.Service
	req := Request{
		Method: http.MethodGet,
		Path:   "/services/search",
		Query:  url.Values{"q": {query}},
	}
	if err := c.call(ctx, req, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetService GET /services/{id}
func (c *Client) GetService(ctx context.Context, id domain.ID) (*domain.Service, error) {
	var service domain.Service
	if err := c.call(ctx, Request{Method: http.MethodGet, Path: "/services/" + escape(id)}, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// CreateService POST /services
func (c *Client) CreateService(ctx context.Context, input *ServiceInput) (*domain.Service, error) {
	var service domain.Service
	if err := c.call(ctx, Request{Method: http.MethodPost, Path: "/services", Body: input}, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// UpdateService PUT /services/{id}
func (c *Client) UpdateService(ctx context.Context, id domain.ID, input *ServiceInput) (*domain.Service, error) {
	var service domain.Service
	if err := c.call(ctx, Request{Method: http.MethodPut, Path: "/services/" + escape(id), Body: input}, &service); err != nil {
		return nil, err
	}
	return &service, nil
}

// DeleteService DELETE /services/{id}
func (c *Client) DeleteService(ctx context.Context, id domain.ID) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: "/services/" + escape(id)}, nil)
}

// ListCategories GET /categories
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.call(ctx, Request{Method: http.MethodGet, Path: "/categories"}, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func serviceQuery(f domain.ServiceFilter) url.Values {
	q := url.Values{}
	if f.Query != "" {
		q.Set("search", f.Query)
	}
	if !f.CategoryID.IsZero() {
		q.Set("category_id", f.CategoryID.String())
	}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.MinPrice != nil {
		q.Set("min_price", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		q.Set("max_price", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	return q
}
