package search_services

import "errors"

var (
	// ErrSuperseded возвращается, когда после запроса был начат более новый поиск
	// Результат такого запроса нельзя показывать
	ErrSuperseded = errors.New("search_services: superseded by a newer search")

	// ErrRequestFailed возвращается, когда API вернул ошибку
	ErrRequestFailed = errors.New("search_services: request failed")
)
