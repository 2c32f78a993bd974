package auth

import "github.com/m04kA/SMC-MarketplaceClient/internal/domain"

// Status состояние контейнера авторизации
type Status string

const (
	StatusAnonymous      Status = "anonymous"
	StatusAuthenticating Status = "authenticating"
	StatusAuthenticated  Status = "authenticated"
	StatusError          Status = "error"
)

// State снимок состояния для отображения
type State struct {
	Status Status
	User   *domain.User
	Role   *domain.Role
	Error  string // сообщение для пользователя, только в StatusError
}

// IsAuthenticated возвращает true в состоянии authenticated
func (s State) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}

// EventType тип события авторизации
type EventType string

const (
	EventLogin    EventType = "login"
	EventRegister EventType = "register"
	EventLogout   EventType = "logout"
)

// Event событие для подписчиков
// Payload заполнен для login и register, для logout равен nil
type Event struct {
	Type    EventType
	Payload *domain.AuthPayload
}

// Listener обработчик событий авторизации
type Listener func(Event)
