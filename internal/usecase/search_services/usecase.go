package search_services

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// UseCase поиск услуг при вводе запроса
// Каждый вызов получает возрастающий номер. Результат показывается только
// для последнего начатого поиска, остальные возвращают ErrSuperseded.
type UseCase struct {
	client  MarketplaceClient
	limiter *rate.Limiter
	latest  atomic.Uint64
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
// ratePerSecond <= 0 отключает ограничение частоты запросов
func NewUseCase(client MarketplaceClient, ratePerSecond float64, burst int, logger Logger) *UseCase {
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}
	if burst < 1 {
		burst = 1
	}
	return &UseCase{
		client:  client,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// Execute выполняет поиск
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Регистрируем поиск
	id := uc.latest.Add(1)
	query := strings.TrimSpace(req.Query)

	// 2. Ждем разрешения лимитера; если за это время начат новый поиск, не отправляем
	if err := uc.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if uc.latest.Load() != id {
		uc.logger.Info("SearchServices: request #%d dropped before sending", id)
		return nil, ErrSuperseded
	}

	// 3. Запрос к API
	var (
		services []domain.Service
		err      error
	)
	if query == "" {
		services, err = uc.client.ListServices(ctx, req.Filter)
	} else {
		services, err = uc.client.SearchServices(ctx, query)
	}

	// 4. Ответ устаревшего поиска отбрасывается вместе с его ошибкой
	if uc.latest.Load() != id {
		uc.logger.Info("SearchServices: response of request #%d discarded", id)
		return nil, ErrSuperseded
	}
	if err != nil {
		uc.logger.Warn("SearchServices: request #%d query=%q failed: %v", id, query, err)
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	return &Response{RequestID: id, Services: services}, nil
}
