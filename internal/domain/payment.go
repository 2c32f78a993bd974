package domain

import "time"

// PaymentStatus статус платежа
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Payment платеж за бронирование (проводится backend)
type Payment struct {
	ID            ID            `json:"id"`
	ReservationID ID            `json:"reservation_id"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency,omitempty"`
	Method        string        `json:"method,omitempty"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	CreatedAt     *time.Time    `json:"created_at,omitempty"`
}

// Invoice счет по бронированию
type Invoice struct {
	ID          ID           `json:"id"`
	Number      string       `json:"number"`
	IssuedAt    string       `json:"issued_at"`
	Reservation *Reservation `json:"reservation,omitempty"`
	Amount      float64      `json:"amount"`
	Currency    string       `json:"currency,omitempty"`
	Status      string       `json:"status,omitempty"`
}

// Transaction транзакция платформы с комиссией (для администратора)
type Transaction struct {
	ID            ID         `json:"id"`
	ReservationID ID         `json:"reservation_id"`
	Agency        *Agency    `json:"agency,omitempty"`
	Amount        float64    `json:"amount"`
	Commission    float64    `json:"commission"`
	Status        string     `json:"status"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}
