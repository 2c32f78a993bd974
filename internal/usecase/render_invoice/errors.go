package render_invoice

import "errors"

var (
	// ErrInvalidInput возвращается при пустом идентификаторе бронирования
	ErrInvalidInput = errors.New("render_invoice: invalid input data")

	// ErrRequestFailed возвращается, когда API вернул ошибку
	ErrRequestFailed = errors.New("render_invoice: request failed")

	// ErrRender возвращается при ошибке преобразования Markdown в HTML
	ErrRender = errors.New("render_invoice: render failed")
)
