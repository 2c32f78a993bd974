package load_dashboard

import "errors"

var (
	// ErrNotAuthenticated возвращается, когда в сессии нет роли
	ErrNotAuthenticated = errors.New("load_dashboard: not authenticated")

	// ErrMissingAgencyID возвращается, когда у агентства нет agency_id в сессии
	ErrMissingAgencyID = errors.New("load_dashboard: agency id is missing from session")

	// ErrRequestFailed возвращается, когда один из запросов дашборда завершился ошибкой
	ErrRequestFailed = errors.New("load_dashboard: request failed")

	// ErrInternal возвращается при ошибке чтения сессии
	ErrInternal = errors.New("load_dashboard: internal error")
)
