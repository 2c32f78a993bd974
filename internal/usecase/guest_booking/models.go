package guest_booking

import "github.com/m04kA/SMC-MarketplaceClient/internal/domain"

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation   *domain.Reservation
	Service       *domain.Service
	EstimatedCost float64 // оценка на клиенте; итоговую сумму считает backend
}
