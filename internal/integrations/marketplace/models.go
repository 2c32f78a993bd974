package marketplace

import (
	"bytes"
	"encoding/json"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

// LoginRequest учетные данные для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest данные регистрации
// Для агентства дополнительно передается название агентства
type RegisterRequest struct {
	Name                 string      `json:"name" validate:"required,max=255"`
	Email                string      `json:"email" validate:"required,email"`
	Password             string      `json:"password" validate:"required,min=8"`
	PasswordConfirmation string      `json:"password_confirmation" validate:"required,eqfield=Password"`
	Role                 domain.Role `json:"role" validate:"required,oneof=client agency"`
	Phone                string      `json:"phone,omitempty"`
	AgencyName           string      `json:"agency_name,omitempty" validate:"required_if=Role agency"`
}

// ServiceInput данные для создания или изменения услуги
type ServiceInput struct {
	Title           string               `json:"title" validate:"required,max=255"`
	Description     string               `json:"description,omitempty"`
	Price           float64              `json:"price" validate:"gte=0"`
	CategoryID      domain.ID            `json:"category_id,omitempty"`
	Location        string               `json:"location,omitempty"`
	Duration        int                  `json:"duration,omitempty" validate:"gte=0"`
	MaxParticipants int                  `json:"max_participants,omitempty" validate:"gte=0"`
	Dates           []string             `json:"dates,omitempty"`
	Status          domain.ServiceStatus `json:"status,omitempty"`
}

// ReservationInput данные бронирования авторизованным клиентом
type ReservationInput struct {
	ServiceID       domain.ID `json:"service_id" validate:"required"`
	ReservationDate string    `json:"reservation_date" validate:"required,datetime=2006-01-02"`
	StartTime       string    `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	NumberOfPeople  int       `json:"number_of_people" validate:"required,min=1"`
	SpecialRequests string    `json:"special_requests,omitempty" validate:"max=1000"`
}

// PublicReservationInput гостевое бронирование без входа
type PublicReservationInput struct {
	ReservationInput
	GuestName  string `json:"guest_name" validate:"required,max=255"`
	GuestEmail string `json:"guest_email" validate:"required,email"`
	GuestPhone string `json:"guest_phone" validate:"required,min=6,max=32"`
}

// StatusUpdate запрос смены статуса бронирования
type StatusUpdate struct {
	Status domain.ReservationStatus `json:"status"`
}

// CancelInput запрос отмены бронирования
type CancelInput struct {
	Reason string `json:"reason,omitempty"`
}

// AgencyProfileInput данные профиля агентства
type AgencyProfileInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description,omitempty" validate:"max=2000"`
	Logo        string `json:"logo,omitempty" validate:"omitempty,url"`
}

// PaymentInput запрос на оплату бронирования
type PaymentInput struct {
	ReservationID domain.ID `json:"reservation_id"`
	Method        string    `json:"method"`
	Token         string    `json:"payment_token,omitempty"`
}

// unwrapData снимает обертку { "data": ... }, если она есть
// Backend отдает часть ресурсов как есть, часть внутри data (в т.ч. с пагинацией)
func unwrapData(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return raw
	}
	data, ok := envelope["data"]
	if !ok {
		return raw
	}
	inner := bytes.TrimSpace(data)
	if len(inner) > 0 && (inner[0] == '[' || inner[0] == '{') {
		return inner
	}
	return raw
}
