package update_agency_profile

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
	"github.com/m04kA/SMC-MarketplaceClient/internal/integrations/marketplace"
)

// UseCase изменение профиля агентства текущего пользователя
type UseCase struct {
	client    MarketplaceClient
	session   SessionStore
	validator Validator
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client MarketplaceClient, session SessionStore, validator Validator, logger Logger) *UseCase {
	return &UseCase{
		client:    client,
		session:   session,
		validator: validator,
		logger:    logger,
	}
}

// Execute отправляет профиль и обновляет агентство в сессии
// agency_id берется только из сессии; id пользователя не подставляется
func (uc *UseCase) Execute(ctx context.Context, input *marketplace.AgencyProfileInput) (*domain.Agency, error) {
	// 1. Идентификатор агентства из сессии, без него запрос не отправляется
	agencyID, err := uc.session.GetAgencyID(ctx)
	if err != nil {
		uc.logger.Error("UpdateAgencyProfile: failed to read agency id: %v", err)
		return nil, fmt.Errorf("%w: read agency id: %v", ErrInternal, err)
	}
	if agencyID == nil {
		uc.logger.Warn("UpdateAgencyProfile: no agency id in session")
		return nil, ErrMissingAgencyID
	}

	uc.logger.Info("UpdateAgencyProfile: agency=%s", *agencyID)

	// 2. Проверка формы
	if err := uc.validator.Struct(input); err != nil {
		uc.logger.Warn("UpdateAgencyProfile: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Запрос к API
	agency, err := uc.client.UpdateAgencyProfile(ctx, *agencyID, input)
	if err != nil {
		uc.logger.Warn("UpdateAgencyProfile: agency=%s rejected: %v", *agencyID, err)
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if agency.ID.IsZero() {
		agency.ID = *agencyID
	}

	// 4. Обновляем агентство в сессии
	if err := uc.session.UpdateAgency(ctx, agency); err != nil {
		uc.logger.Error("UpdateAgencyProfile: failed to store agency=%s: %v", agency.ID, err)
		return nil, fmt.Errorf("%w: store agency: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateAgencyProfile: agency=%s updated", agency.ID)
	return agency, nil
}
