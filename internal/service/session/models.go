package session

import "github.com/m04kA/SMC-MarketplaceClient/internal/domain"

// SetUserRequest данные для сохранения сессии после login/register
type SetUserRequest struct {
	User   *domain.User
	Token  string
	Role   domain.Role
	Agency *domain.Agency
}

// FromAuthPayload строит запрос из ответа login/register
func FromAuthPayload(p *domain.AuthPayload) SetUserRequest {
	return SetUserRequest{
		User:   p.User,
		Token:  p.Token,
		Role:   p.EffectiveRole(),
		Agency: p.Agency,
	}
}
