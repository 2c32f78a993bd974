package domain

import (
	"fmt"
	"time"
)

// ReservationStatus статус бронирования
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

// ParseReservationStatus разбирает строку в статус бронирования
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch st := ReservationStatus(s); st {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return st, nil
	default:
		return "", fmt.Errorf("invalid reservation status %q", s)
	}
}

// Reservation бронирование услуги
// Авторизованный клиент указывается через User, гость через контактные поля
type Reservation struct {
	ID              ID                `json:"id"`
	Service         *Service          `json:"service,omitempty"`
	ServiceID       ID                `json:"service_id,omitempty"`
	User            *User             `json:"user,omitempty"`
	GuestName       string            `json:"guest_name,omitempty"`
	GuestEmail      string            `json:"guest_email,omitempty"`
	GuestPhone      string            `json:"guest_phone,omitempty"`
	ReservationDate string            `json:"reservation_date"` // YYYY-MM-DD
	StartTime       string            `json:"start_time,omitempty"`
	NumberOfPeople  int               `json:"number_of_people"`
	TotalPrice      float64           `json:"total_price"`
	Status          ReservationStatus `json:"status"`
	SpecialRequests string            `json:"special_requests,omitempty"`
}

// IsGuest возвращает true для гостевого бронирования
func (r *Reservation) IsGuest() bool {
	return r.User == nil && r.GuestEmail != ""
}

// IsActive возвращает true, если бронирование не отменено и не завершено
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeConfirmed возвращает true, если можно запросить подтверждение
func (r *Reservation) CanBeConfirmed() bool {
	return r.Status == StatusPending
}

// CanBeCancelled возвращает true, если можно запросить отмену
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanTransitionTo проверяет, может ли клиент запросить переход в статус
// Окончательное решение всегда за backend
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch next {
	case StatusConfirmed:
		return r.CanBeConfirmed()
	case StatusCancelled:
		return r.CanBeCancelled()
	case StatusCompleted:
		return r.Status == StatusConfirmed
	default:
		return false
	}
}

// Date возвращает дату бронирования
// Backend может прислать дату с временем ("2026-10-20T00:00:00.000000Z"), берется календарная часть
func (r *Reservation) Date(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	raw := r.ReservationDate
	if n := len(DateFormat); len(raw) > n && (raw[n] == 'T' || raw[n] == ' ') {
		raw = raw[:n]
	}
	return time.ParseInLocation(DateFormat, raw, loc)
}

// CancellationDeadline последний момент, когда отмена разрешена клиентом
func (r *Reservation) CancellationDeadline(loc *time.Location) (time.Time, error) {
	date, err := r.Date(loc)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(-CancellationWindow), nil
}

// ReservationFilter фильтр списка бронирований
type ReservationFilter struct {
	Status    *ReservationStatus
	ServiceID *ID
	From      *time.Time
	To        *time.Time
	Page      int
}
