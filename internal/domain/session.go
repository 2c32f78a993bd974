package domain

import "errors"

// ErrUnknownRole возвращается при разборе неизвестной роли
var ErrUnknownRole = errors.New("unknown role")

// Role роль пользователя маркетплейса
type Role string

const (
	RoleClient Role = "client"
	RoleAgency Role = "agency"
	RoleAdmin  Role = "admin"
)

// ParseRole разбирает строку в роль
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleClient, RoleAgency, RoleAdmin:
		return r, nil
	default:
		return "", ErrUnknownRole
	}
}

// IsValid возвращает true для известных ролей
func (r Role) IsValid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// User пользователь (кэш данных backend, только для чтения)
type User struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Agency агентство, присутствует только для роли agency
type Agency struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description,omitempty"`
	Logo        string `json:"logo,omitempty"`
}

// Session клиентская копия сессии
type Session struct {
	User  *User
	Token *string
	Role  *Role
}

// IsAuthenticated возвращает true, если есть и пользователь, и токен
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.User != nil && s.Token != nil
}

// AuthPayload ответ login/register: { user, token, role, agency? }
type AuthPayload struct {
	User   *User   `json:"user"`
	Token  string  `json:"token"`
	Role   Role    `json:"role"`
	Agency *Agency `json:"agency,omitempty"`
}

// EffectiveRole роль из ответа, а при ее отсутствии роль пользователя
func (p *AuthPayload) EffectiveRole() Role {
	if p.Role != "" {
		return p.Role
	}
	if p.User != nil {
		return p.User.Role
	}
	return ""
}
