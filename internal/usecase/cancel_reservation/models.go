package cancel_reservation

import "github.com/m04kA/SMC-MarketplaceClient/internal/domain"

// Request модель запроса на отмену бронирования
type Request struct {
	ReservationID domain.ID
	Reason        string // причина отмены (опционально)

	// Force пропускает проверку срока отмены на клиенте (решение остается за backend)
	Force bool
}
