package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
	"github.com/m04kA/SMC-MarketplaceClient/internal/integrations/marketplace"
	"github.com/m04kA/SMC-MarketplaceClient/internal/service/session"
	"github.com/m04kA/SMC-MarketplaceClient/pkg/ptr"
)

const invalidResponseMessage = "Réponse invalide du serveur"

// Container состояние авторизации приложения
// Единственный владелец перехода anonymous -> authenticating -> authenticated/error.
// Источник истины о сессии - хранилище, состояние в памяти только для отображения.
type Container struct {
	api       API
	session   SessionStore
	validator Validator
	logger    Logger

	mu        sync.Mutex
	state     State
	listeners map[uint64]Listener
	nextID    uint64
}

// NewContainer создает контейнер в состоянии anonymous
func NewContainer(api API, session SessionStore, validator Validator, logger Logger) *Container {
	return &Container{
		api:       api,
		session:   session,
		validator: validator,
		logger:    logger,
		state:     State{Status: StatusAnonymous},
		listeners: make(map[uint64]Listener),
	}
}

// Login выполняет вход
func (c *Container) Login(ctx context.Context, req *marketplace.LoginRequest) (*domain.AuthPayload, error) {
	c.logger.Info("Login: email=%s", req.Email)

	// 1. Проверка формы, при ошибке запрос не отправляется
	if err := c.validator.Struct(req); err != nil {
		c.logger.Warn("Login: validation failed: %v", err)
		if busyErr := c.failInput(err.Error()); busyErr != nil {
			return nil, busyErr
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Переход в authenticating
	if err := c.begin(); err != nil {
		return nil, err
	}

	// 3. Запрос к API
	payload, err := c.api.Login(ctx, req)
	if err != nil {
		c.logger.Warn("Login: rejected for email=%s: %v", req.Email, err)
		c.fail(marketplace.MessageOf(err))
		return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	// 4. Сохранение сессии и уведомление подписчиков
	return c.complete(ctx, EventLogin, payload)
}

// Register выполняет регистрацию клиента или агентства
func (c *Container) Register(ctx context.Context, req *marketplace.RegisterRequest) (*domain.AuthPayload, error) {
	c.logger.Info("Register: email=%s, role=%s", req.Email, req.Role)

	// 1. Проверка формы
	if err := c.validator.Struct(req); err != nil {
		c.logger.Warn("Register: validation failed: %v", err)
		if busyErr := c.failInput(err.Error()); busyErr != nil {
			return nil, busyErr
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Переход в authenticating
	if err := c.begin(); err != nil {
		return nil, err
	}

	// 3. Запрос к API
	payload, err := c.api.Register(ctx, req)
	if err != nil {
		c.logger.Warn("Register: rejected for email=%s: %v", req.Email, err)
		c.fail(marketplace.MessageOf(err))
		return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}

	// 4. Сохранение сессии и уведомление подписчиков
	return c.complete(ctx, EventRegister, payload)
}

// Logout завершает сессию
// Ошибка POST /logout не мешает выходу: хранилище очищается в любом случае
func (c *Container) Logout(ctx context.Context) error {
	// 1. Сообщаем backend, если есть что завершать
	if c.session.IsAuthenticated(ctx) {
		if err := c.api.Logout(ctx); err != nil {
			c.logger.Warn("Logout: server logout failed, clearing local session anyway: %v", err)
		}
	}

	// 2. Полная очистка хранилища
	clearErr := c.session.Clear(ctx)
	if clearErr != nil {
		c.logger.Error("Logout: failed to clear session: %v", clearErr)
	}

	// 3. Состояние и подписчики
	c.mu.Lock()
	c.state = State{Status: StatusAnonymous}
	c.mu.Unlock()
	c.notify(Event{Type: EventLogout})

	if clearErr != nil {
		return fmt.Errorf("%w: clear session: %v", ErrInternal, clearErr)
	}
	c.logger.Info("Logout: session cleared")
	return nil
}

// State возвращает текущее состояние
// Если хранилище очищено извне (401, выход в другой вкладке), состояние становится anonymous
func (c *Container) State(ctx context.Context) State {
	c.mu.Lock()
	st := c.state
	c.mu.Unlock()

	if st.Status != StatusAuthenticated || c.session.IsAuthenticated(ctx) {
		return st
	}

	c.logger.Info("State: session is gone from storage, switching to anonymous")
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Status == StatusAuthenticated {
		c.state = State{Status: StatusAnonymous}
	}
	return c.state
}

// Restore поднимает состояние из хранилища при старте приложения
func (c *Container) Restore(ctx context.Context) (State, error) {
	if !c.session.IsAuthenticated(ctx) {
		c.mu.Lock()
		c.state = State{Status: StatusAnonymous}
		c.mu.Unlock()
		return State{Status: StatusAnonymous}, nil
	}

	user, err := c.session.GetUser(ctx)
	if err != nil {
		return State{}, fmt.Errorf("%w: read user: %v", ErrInternal, err)
	}
	if user == nil {
		return State{Status: StatusAnonymous}, nil
	}
	role, err := c.session.GetRole(ctx)
	if err != nil {
		return State{}, fmt.Errorf("%w: read role: %v", ErrInternal, err)
	}

	st := State{Status: StatusAuthenticated, User: user, Role: role}
	c.mu.Lock()
	c.state = st
	c.mu.Unlock()

	c.logger.Info("Restore: session restored for user=%s", user.ID)
	return st, nil
}

// Subscribe регистрирует обработчик событий; возвращает функцию отписки
func (c *Container) Subscribe(fn Listener) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// RedirectTarget маршрут после входа по сохраненной роли
// Без сессии ведет на страницу входа
func (c *Container) RedirectTarget(ctx context.Context) string {
	if !c.session.IsAuthenticated(ctx) {
		return domain.RouteLogin
	}
	role, err := c.session.GetRole(ctx)
	if err != nil {
		c.logger.Error("RedirectTarget: failed to read role: %v", err)
		return domain.RouteHome
	}
	if role == nil {
		return domain.RouteHome
	}
	return domain.LandingRoute(*role)
}

// begin переводит контейнер в authenticating
func (c *Container) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Status == StatusAuthenticating {
		return ErrInProgress
	}
	c.state = State{Status: StatusAuthenticating}
	return nil
}

// complete сохраняет сессию, уведомляет подписчиков и переводит в authenticated
func (c *Container) complete(ctx context.Context, event EventType, payload *domain.AuthPayload) (*domain.AuthPayload, error) {
	if payload == nil || payload.User == nil || payload.Token == "" {
		c.logger.Error("complete: %s response has no user or token", event)
		c.fail(invalidResponseMessage)
		return nil, ErrInvalidResponse
	}

	req := session.FromAuthPayload(payload)
	if err := c.session.SetUser(ctx, req); err != nil {
		c.logger.Error("complete: failed to store session for user=%s: %v", payload.User.ID, err)
		c.fail(invalidResponseMessage)
		if errors.Is(err, session.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		return nil, fmt.Errorf("%w: store session: %v", ErrInternal, err)
	}

	c.notify(Event{Type: event, Payload: payload})

	c.mu.Lock()
	c.state = State{Status: StatusAuthenticated, User: payload.User, Role: ptr.Ptr(req.Role)}
	c.mu.Unlock()

	c.logger.Info("complete: %s succeeded for user=%s role=%s", event, payload.User.ID, req.Role)
	return payload, nil
}

// failInput переводит в error из-за невалидной формы
// Идущий вход не прерывается: состояние authenticating сохраняется
func (c *Container) failInput(message string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Status == StatusAuthenticating {
		return ErrInProgress
	}
	c.state = State{Status: StatusError, Error: message}
	return nil
}

func (c *Container) fail(message string) {
	c.mu.Lock()
	c.state = State{Status: StatusError, Error: message}
	c.mu.Unlock()
}

// notify вызывает подписчиков вне блокировки
func (c *Container) notify(e Event) {
	c.mu.Lock()
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(e)
	}
}
