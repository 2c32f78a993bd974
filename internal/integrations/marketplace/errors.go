package marketplace

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnauthorized возвращается на 401; сессия к этому моменту уже очищена
	ErrUnauthorized = errors.New("marketplace: unauthorized")

	// ErrNetwork возвращается, когда ответ не был получен
	ErrNetwork = errors.New("marketplace: network error")

	// ErrHTTPStatus возвращается на прочие ответы вне 2xx
	ErrHTTPStatus = errors.New("marketplace: unexpected status")

	// ErrDecode возвращается, когда тело успешного ответа не разбирается
	ErrDecode = errors.New("marketplace: invalid response body")

	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса)
	ErrInternal = errors.New("marketplace: internal error")
)

// Kind класс ошибки API
type Kind string

const (
	KindNetwork      Kind = "network"
	KindUnauthorized Kind = "unauthorized"
	KindValidation   Kind = "validation"
	KindHTTP         Kind = "http"
	KindDecode       Kind = "decode"
	KindInternal     Kind = "internal"
)

// APIError единственная форма ошибки, которую отдает клиент
// Error() возвращает готовое для показа пользователю сообщение
type APIError struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string][]string // ошибки валидации по полям, если backend их прислал
	Cause   error
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap позволяет проверять класс ошибки через errors.Is(err, ErrUnauthorized)
// и исходную причину (например, context.Canceled)
func (e *APIError) Unwrap() []error {
	var sentinel error
	switch e.Kind {
	case KindNetwork:
		sentinel = ErrNetwork
	case KindUnauthorized:
		sentinel = ErrUnauthorized
	case KindValidation, KindHTTP:
		sentinel = ErrHTTPStatus
	case KindDecode:
		sentinel = ErrDecode
	default:
		sentinel = ErrInternal
	}
	if e.Cause != nil {
		return []error{sentinel, e.Cause}
	}
	return []error{sentinel}
}

// MessageOf сообщение для показа пользователю по любой ошибке
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// errorBody тело ошибки backend: { message?, error?, errors? }
// errors приходит либо объектом { поле: строка | [строки] }, либо массивом строк
type errorBody struct {
	Message string          `json:"message"`
	Error   interface{}     `json:"error"`
	Errors  json.RawMessage `json:"errors"`
}

// fieldErrors нормализует errors в форме объекта
func (b *errorBody) fieldErrors() map[string][]string {
	var raw map[string]interface{}
	if err := json.Unmarshal(b.Errors, &raw); err != nil || len(raw) == 0 {
		return nil
	}
	fields := make(map[string][]string, len(raw))
	for field, v := range raw {
		if msgs := stringsOf(v); len(msgs) > 0 {
			fields[field] = msgs
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// listErrors сообщения из errors в форме массива
func (b *errorBody) listErrors() []string {
	var raw []interface{}
	if err := json.Unmarshal(b.Errors, &raw); err != nil {
		return nil
	}
	return stringsOf(raw)
}

// message выбирает текст: message, затем error, затем ошибки полей или список ошибок, затем "Erreur <status>"
func (b *errorBody) message(status int, fields map[string][]string, list []string) string {
	if strings.TrimSpace(b.Message) != "" {
		return b.Message
	}
	if s, ok := b.Error.(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	if joined := joinFieldErrors(fields); joined != "" {
		return joined
	}
	if len(list) > 0 {
		return strings.Join(list, ", ")
	}
	return fmt.Sprintf("Erreur %d", status)
}

func stringsOf(v interface{}) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []interface{}:
		var out []string
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// joinFieldErrors склеивает ошибки полей в порядке имен полей
func joinFieldErrors(fields map[string][]string) string {
	if len(fields) == 0 {
		return ""
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var msgs []string
	for _, name := range names {
		msgs = append(msgs, fields[name]...)
	}
	return strings.Join(msgs, ", ")
}
