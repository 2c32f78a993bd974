package cancel_reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// UseCase use case для отмены бронирования клиентом
type UseCase struct {
	client       MarketplaceClient
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс дат бронирования (nil - локальный)
func NewUseCase(client MarketplaceClient, location *time.Location, logger Logger) *UseCase {
	return NewUseCaseWithTimeProvider(client, &RealTimeProvider{}, location, logger)
}

// NewUseCaseWithTimeProvider создает use case с кастомным провайдером времени (для тестов)
func NewUseCaseWithTimeProvider(client MarketplaceClient, timeProvider TimeProvider, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		client:       client,
		timeProvider: timeProvider,
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет отмену бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("CancelReservation: reservation=%s, force=%t", req.ReservationID, req.Force)

	// 1. Валидация входных данных
	if req.ReservationID.IsZero() {
		return nil, fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	// 2. Получаем бронирование
	reservation, err := uc.client.GetReservation(ctx, req.ReservationID)
	if err != nil {
		uc.logger.Warn("CancelReservation: failed to get reservation=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	// 3. Проверяем статус
	if !reservation.CanBeCancelled() {
		uc.logger.Warn("CancelReservation: reservation=%s has status %s", req.ReservationID, reservation.Status)
		return nil, fmt.Errorf("%w: status %s", ErrNotCancellable, reservation.Status)
	}

	// 4. Проверка срока, рекомендательная
	if !req.Force {
		if err := uc.checkDeadline(reservation); err != nil {
			return nil, err
		}
	}

	// 5. Отмена
	cancelled, err := uc.client.CancelReservation(ctx, req.ReservationID, req.Reason)
	if err != nil {
		uc.logger.Warn("CancelReservation: reservation=%s rejected: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	uc.logger.Info("CancelReservation: reservation=%s cancelled", req.ReservationID)
	return cancelled, nil
}

// checkDeadline отмена разрешена, пока до даты бронирования не меньше 3 дней
func (uc *UseCase) checkDeadline(reservation *domain.Reservation) error {
	deadline, err := reservation.CancellationDeadline(uc.location)
	if err != nil {
		uc.logger.Error("CancelReservation: invalid date %q for reservation=%s: %v",
			reservation.ReservationDate, reservation.ID, err)
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	now := uc.timeProvider.Now().In(uc.location)
	if now.After(deadline) {
		uc.logger.Warn("CancelReservation: reservation=%s deadline %s passed",
			reservation.ID, deadline.Format(time.RFC3339))
		return ErrTooLateToCancel
	}
	return nil
}
