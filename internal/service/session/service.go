package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
	"github.com/m04kA/SMC-MarketplaceClient/pkg/ptr"
)

// Service типизированный доступ к сессии в постоянном хранилище
// Ничего не кэширует: каждое чтение идет в хранилище, так как оно может
// быть очищено извне (например, после 401).
type Service struct {
	store  Store
	logger Logger
}

// NewService создает сервис доступа к сессии
func NewService(store Store, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetUser читает пользователя из хранилища
// Поврежденный JSON удаляется из хранилища, вызывающий получает nil без ошибки
func (s *Service) GetUser(ctx context.Context) (*domain.User, error) {
	var user *domain.User
	found, err := s.readJSON(ctx, domain.KeyUser, &user)
	if err != nil || !found {
		return nil, err
	}
	return user, nil
}

// GetAgency читает агентство из хранилища, с тем же самовосстановлением что и GetUser
func (s *Service) GetAgency(ctx context.Context) (*domain.Agency, error) {
	var agency *domain.Agency
	found, err := s.readJSON(ctx, domain.KeyAgency, &agency)
	if err != nil || !found {
		return nil, err
	}
	return agency, nil
}

// GetRole читает роль; неизвестная роль трактуется как отсутствующая
func (s *Service) GetRole(ctx context.Context) (*domain.Role, error) {
	raw, err := s.readString(ctx, domain.KeyRole)
	if err != nil || raw == nil {
		return nil, err
	}
	role, err := domain.ParseRole(*raw)
	if err != nil {
		s.logger.Warn("GetRole: unknown role %q in storage", *raw)
		return nil, nil
	}
	return ptr.Ptr(role), nil
}

// GetToken читает токен авторизации
func (s *Service) GetToken(ctx context.Context) (*string, error) {
	return s.readString(ctx, domain.KeyToken)
}

// GetClientID читает client_id
func (s *Service) GetClientID(ctx context.Context) (*domain.ID, error) {
	return s.readID(ctx, domain.KeyClientID)
}

// GetAgencyID читает agency_id
func (s *Service) GetAgencyID(ctx context.Context) (*domain.ID, error) {
	return s.readID(ctx, domain.KeyAgencyID)
}

// IsAuthenticated true, если в хранилище есть и пользователь, и токен
// Ошибка хранилища трактуется как отсутствие сессии
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	user, err := s.GetUser(ctx)
	if err != nil {
		s.logger.Error("IsAuthenticated: failed to read user: %v", err)
		return false
	}
	token, err := s.GetToken(ctx)
	if err != nil {
		s.logger.Error("IsAuthenticated: failed to read token: %v", err)
		return false
	}
	return user != nil && token != nil
}

// Snapshot читает сессию целиком
func (s *Service) Snapshot(ctx context.Context) (*domain.Session, error) {
	user, err := s.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	token, err := s.GetToken(ctx)
	if err != nil {
		return nil, err
	}
	role, err := s.GetRole(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Session{User: user, Token: token, Role: role}, nil
}

// SetUser сохраняет сессию после успешного входа
//
// user, token и role пишутся всегда. Дальше по роли:
//   - agency с данными агентства: пишутся agency_id и agency, client_id удаляется;
//   - client: пишется client_id, agency_id и agency удаляются;
//   - прочие роли (и agency без данных агентства): удаляются ключи обеих ролей.
//
// Так клиент, вошедший после агентства в том же хранилище, не получает чужую идентичность.
func (s *Service) SetUser(ctx context.Context, req SetUserRequest) error {
	if req.User == nil {
		return fmt.Errorf("%w: user is required", ErrInvalidInput)
	}
	if req.Token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	userJSON, err := json.Marshal(req.User)
	if err != nil {
		return fmt.Errorf("%w: marshal user: %v", ErrInvalidInput, err)
	}

	if err := s.set(ctx, domain.KeyUser, string(userJSON)); err != nil {
		return err
	}
	if err := s.set(ctx, domain.KeyToken, req.Token); err != nil {
		return err
	}
	if err := s.set(ctx, domain.KeyRole, string(req.Role)); err != nil {
		return err
	}

	switch {
	case req.Role == domain.RoleAgency && req.Agency != nil:
		if err := s.writeAgency(ctx, req.Agency); err != nil {
			return err
		}
		if err := s.remove(ctx, domain.KeyClientID); err != nil {
			return err
		}
	case req.Role == domain.RoleClient:
		if err := s.set(ctx, domain.KeyClientID, req.User.ID.String()); err != nil {
			return err
		}
		if err := s.removeAll(ctx, domain.KeyAgencyID, domain.KeyAgency); err != nil {
			return err
		}
	default:
		if err := s.removeAll(ctx, domain.KeyAgencyID, domain.KeyAgency, domain.KeyClientID); err != nil {
			return err
		}
	}

	s.logger.Info("SetUser: session stored for user=%s role=%s", req.User.ID, req.Role)
	return nil
}

// UpdateUser перезаписывает сохраненного пользователя (после редактирования профиля)
func (s *Service) UpdateUser(ctx context.Context, user *domain.User) error {
	if user == nil {
		return fmt.Errorf("%w: user is required", ErrInvalidInput)
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: marshal user: %v", ErrInvalidInput, err)
	}
	return s.set(ctx, domain.KeyUser, string(data))
}

// UpdateAgency перезаписывает сохраненное агентство и agency_id
func (s *Service) UpdateAgency(ctx context.Context, agency *domain.Agency) error {
	if agency == nil || agency.ID.IsZero() {
		return fmt.Errorf("%w: agency with id is required", ErrInvalidInput)
	}
	return s.writeAgency(ctx, agency)
}

// Clear удаляет все ключи сессии (полный выход)
// Идемпотентна; пытается удалить каждый ключ, даже если предыдущий не удалился
func (s *Service) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range domain.SessionKeys {
		if err := s.store.Remove(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("%w: remove %s: %v", ErrStorage, key, err))
		}
	}
	if len(errs) > 0 {
		s.logger.Error("Clear: failed to remove %d session keys", len(errs))
		return errors.Join(errs...)
	}
	return nil
}

func (s *Service) writeAgency(ctx context.Context, agency *domain.Agency) error {
	data, err := json.Marshal(agency)
	if err != nil {
		return fmt.Errorf("%w: marshal agency: %v", ErrInvalidInput, err)
	}
	if err := s.set(ctx, domain.KeyAgencyID, agency.ID.String()); err != nil {
		return err
	}
	return s.set(ctx, domain.KeyAgency, string(data))
}

// readJSON читает и разбирает JSON значение
// found=false если ключ отсутствует или значение было повреждено и удалено
func (s *Service) readJSON(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: get %s: %v", ErrStorage, key, err)
	}
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn("readJSON: corrupted %q entry removed: %v", key, err)
		if rmErr := s.store.Remove(ctx, key); rmErr != nil {
			s.logger.Error("readJSON: failed to remove corrupted %q entry: %v", key, rmErr)
		}
		return false, nil
	}
	return true, nil
}

func (s *Service) readString(ctx context.Context, key string) (*string, error) {
	raw, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrStorage, key, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	return &raw, nil
}

func (s *Service) readID(ctx context.Context, key string) (*domain.ID, error) {
	raw, err := s.readString(ctx, key)
	if err != nil || raw == nil {
		return nil, err
	}
	id := domain.ID(*raw)
	return &id, nil
}

func (s *Service) set(ctx context.Context, key, value string) error {
	if err := s.store.Set(ctx, key, value); err != nil {
		s.logger.Error("set: failed to write %q: %v", key, err)
		return fmt.Errorf("%w: set %s: %v", ErrStorage, key, err)
	}
	return nil
}

func (s *Service) remove(ctx context.Context, key string) error {
	if err := s.store.Remove(ctx, key); err != nil {
		s.logger.Error("remove: failed to remove %q: %v", key, err)
		return fmt.Errorf("%w: remove %s: %v", ErrStorage, key, err)
	}
	return nil
}

func (s *Service) removeAll(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := s.remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
