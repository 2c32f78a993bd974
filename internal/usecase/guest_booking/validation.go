package guest_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
	"github.com/m04kA/SMC-MarketplaceClient/internal/integrations/marketplace"
)

// validateDate дата бронирования не раньше сегодняшнего дня
func validateDate(input *marketplace.PublicReservationInput, now time.Time) error {
	date, err := time.ParseInLocation(domain.DateFormat, input.ReservationDate, now.Location())
	if err != nil {
		return fmt.Errorf("%w: reservation_date: %v", ErrInvalidInput, err)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return ErrDateInPast
	}
	return nil
}

// validateService услуга активна и вмещает указанное число участников
func validateService(service *domain.Service, people int) error {
	if !service.IsBookable() {
		return ErrServiceUnavailable
	}
	if service.MaxParticipants > 0 && people > service.MaxParticipants {
		return fmt.Errorf("%w: %d > %d", ErrTooManyPeople, people, service.MaxParticipants)
	}
	return nil
}
