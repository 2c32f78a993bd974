package guest_booking

import "errors"

var (
	// ErrInvalidInput возвращается, когда форма гостя не прошла проверку
	ErrInvalidInput = errors.New("guest_booking: invalid input data")

	// ErrDateInPast возвращается для даты раньше сегодняшней
	ErrDateInPast = errors.New("guest_booking: reservation date is in the past")

	// ErrServiceUnavailable возвращается, когда услуга не принимает бронирования
	ErrServiceUnavailable = errors.New("guest_booking: service is not available for booking")

	// ErrTooManyPeople возвращается, когда участников больше, чем допускает услуга
	ErrTooManyPeople = errors.New("guest_booking: too many participants")

	// ErrRequestFailed возвращается, когда API вернул ошибку
	ErrRequestFailed = errors.New("guest_booking: request failed")
)
