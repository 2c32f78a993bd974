package auth

import (
	"context"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
	"github.com/m04kA/SMC-MarketplaceClient/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceClient/internal/service/session"
)

// API интерфейс клиента маркетплейса
type API interface {
	Login(ctx context.Context, req *marketplace.LoginRequest) (*domain.AuthPayload, error)
	Register(ctx context.Context, req *marketplace.RegisterRequest) (*domain.AuthPayload, error)
	Logout(ctx context.Context) error
}

// SessionStore интерфейс доступа к сохраненной сессии
type SessionStore interface {
	SetUser(ctx context.Context, req session.SetUserRequest) error
	Clear(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	GetUser(ctx context.Context) (*domain.User, error)
	GetRole(ctx context.Context) (*domain.Role, error)
}

// Validator интерфейс проверки форм
type Validator interface {
	Struct(s interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
