package render_invoice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// UseCase формирование счета по бронированию в HTML
type UseCase struct {
	client       MarketplaceClient
	markdown     goldmark.Markdown
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client MarketplaceClient, logger Logger) *UseCase {
	return NewUseCaseWithTimeProvider(client, &RealTimeProvider{}, logger)
}

// NewUseCaseWithTimeProvider создает use case с кастомным провайдером времени (для тестов)
func NewUseCaseWithTimeProvider(client MarketplaceClient, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		markdown:     goldmark.New(goldmark.WithExtensions(extension.Table)),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute загружает бронирование и формирует счет
func (uc *UseCase) Execute(ctx context.Context, reservationID domain.ID) (*Response, error) {
	uc.logger.Info("RenderInvoice: reservation=%s", reservationID)

	// 1. Валидация входных данных
	if reservationID.IsZero() {
		return nil, fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}

	// 2. Получаем бронирование
	reservation, err := uc.client.GetReservation(ctx, reservationID)
	if err != nil {
		uc.logger.Warn("RenderInvoice: failed to get reservation=%s: %v", reservationID, err)
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	// 3. Формируем документ
	return uc.Render(reservation)
}

// Render формирует счет по уже загруженному бронированию
func (uc *UseCase) Render(reservation *domain.Reservation) (*Response, error) {
	md := buildMarkdown(reservation, uc.timeProvider.Now())

	var buf bytes.Buffer
	if err := uc.markdown.Convert([]byte(md), &buf); err != nil {
		uc.logger.Error("RenderInvoice: failed to render reservation=%s: %v", reservation.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	return &Response{
		Reservation: reservation,
		Markdown:    md,
		HTML:        buf.String(),
	}, nil
}
