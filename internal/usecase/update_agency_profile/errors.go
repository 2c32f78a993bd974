package update_agency_profile

import "errors"

var (
	// ErrMissingAgencyID возвращается, когда в сессии нет agency_id
	ErrMissingAgencyID = errors.New("update_agency_profile: agency id is missing from session")

	// ErrInvalidInput возвращается при некорректных данных профиля
	ErrInvalidInput = errors.New("update_agency_profile: invalid input data")

	// ErrRequestFailed возвращается, когда API отклонил изменение
	ErrRequestFailed = errors.New("update_agency_profile: request failed")

	// ErrInternal возвращается при ошибке чтения или записи сессии
	ErrInternal = errors.New("update_agency_profile: internal error")
)
