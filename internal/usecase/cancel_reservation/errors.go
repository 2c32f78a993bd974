package cancel_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при пустом идентификаторе бронирования
	ErrInvalidInput = errors.New("cancel_reservation: invalid input data")

	// ErrNotCancellable возвращается для бронирований не в статусе pending/confirmed
	ErrNotCancellable = errors.New("cancel_reservation: reservation cannot be cancelled in its current status")

	// ErrTooLateToCancel возвращается, когда до даты бронирования меньше 3 дней
	ErrTooLateToCancel = errors.New("cancel_reservation: too late to cancel")

	// ErrInvalidDate возвращается, когда backend прислал дату в неизвестном формате
	ErrInvalidDate = errors.New("cancel_reservation: invalid reservation date")

	// ErrRequestFailed возвращается, когда API отклонил запрос
	ErrRequestFailed = errors.New("cancel_reservation: request failed")
)
