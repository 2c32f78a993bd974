package render_invoice

import "github.com/m04kA/SMC-MarketplaceClient/internal/domain"

// Response документ счета
type Response struct {
	Reservation *domain.Reservation
	Markdown    string
	HTML        string
}
