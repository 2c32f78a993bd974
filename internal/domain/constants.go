package domain

import "time"

// Ключи постоянного хранилища сессии
// Формат совпадает с ключами localStorage веб-клиента
const (
	KeyUser     = "user"
	KeyToken    = "token"
	KeyRole     = "role"
	KeyAgencyID = "agency_id"
	KeyAgency   = "agency"
	KeyClientID = "client_id"
)

// SessionKeys все ключи сессии, удаляемые при выходе
var SessionKeys = []string{
	KeyUser,
	KeyToken,
	KeyRole,
	KeyAgencyID,
	KeyAgency,
	KeyClientID,
}

// CancellationWindow за сколько до даты бронирования клиент еще может отменить
// Проверка рекомендательная, окончательно решает backend
const CancellationWindow = 3 * 24 * time.Hour

// Business validation constants
const (
	MinPeoplePerReservation    = 1
	MaxSpecialRequestsLength   = 1000
	MaxAgencyDescriptionLength = 2000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
