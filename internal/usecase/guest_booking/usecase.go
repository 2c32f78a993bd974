package guest_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceClient/internal/integrations/marketplace"
)

// UseCase бронирование гостем без входа в систему
type UseCase struct {
	client       MarketplaceClient
	validator    Validator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client MarketplaceClient, validator Validator, logger Logger) *UseCase {
	return NewUseCaseWithTimeProvider(client, validator, &RealTimeProvider{}, logger)
}

// NewUseCaseWithTimeProvider создает use case с кастомным провайдером времени (для тестов)
func NewUseCaseWithTimeProvider(client MarketplaceClient, validator Validator, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		validator:    validator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute создает гостевое бронирование
func (uc *UseCase) Execute(ctx context.Context, input *marketplace.PublicReservationInput) (*Response, error) {
	uc.logger.Info("GuestBooking: service=%s, date=%s, people=%d",
		input.ServiceID, input.ReservationDate, input.NumberOfPeople)

	// 1. Проверка формы гостя
	if err := uc.validator.Struct(input); err != nil {
		uc.logger.Warn("GuestBooking: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверка даты
	if err := validateDate(input, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GuestBooking: invalid date %s: %v", input.ReservationDate, err)
		return nil, err
	}

	// 3. Получаем услугу
	service, err := uc.client.GetService(ctx, input.ServiceID)
	if err != nil {
		uc.logger.Warn("GuestBooking: failed to get service=%s: %v", input.ServiceID, err)
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	// 4. Услуга доступна для бронирования
	if err := validateService(service, input.NumberOfPeople); err != nil {
		uc.logger.Warn("GuestBooking: service=%s rejected: %v", input.ServiceID, err)
		return nil, err
	}

	// 5. Создаем бронирование
	reservation, err := uc.client.CreatePublicReservation(ctx, input)
	if err != nil {
		uc.logger.Warn("GuestBooking: create failed for service=%s: %v", input.ServiceID, err)
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	uc.logger.Info("GuestBooking: reservation=%s created for %s", reservation.ID, input.GuestEmail)
	return &Response{
		Reservation:   reservation,
		Service:       service,
		EstimatedCost: service.PriceFor(input.NumberOfPeople),
	}, nil
}
