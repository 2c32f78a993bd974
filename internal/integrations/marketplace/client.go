package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-MarketplaceClient/internal/domain"
)

const headerRequestID = "X-Request-ID"

// Session хранилище сессии, с которым работает клиент
type Session interface {
	TokenSource
	SessionClearer
}

// Client единая точка обращения к API маркетплейса
// Прикладывает токен, нормализует ошибки, при 401 очищает сессию и уводит на /login
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    Session
	navigator  Navigator
	observer   RequestObserver
	log        Logger

	// unauthorizedMu сериализует принудительный выход при параллельных 401
	unauthorizedMu sync.Mutex
}

// Option дополнительная настройка клиента
type Option func(c *Client)

// WithObserver подключает сбор метрик
func WithObserver(o RequestObserver) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// WithHTTPClient подменяет http.Client (для тестов и кастомного транспорта)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient создает новый экземпляр клиента
// timeout = 0 означает отсутствие таймаута
func NewClient(baseURL string, timeout time.Duration, session Session, navigator Navigator, log Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		session:   session,
		navigator: navigator,
		log:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request описание запроса к API
type Request struct {
	Method  string
	Path    string // относительный путь от base URL или абсолютный http(s) URL
	Query   url.Values
	Body    interface{}
	Headers map[string]string // перекрывают заголовки по умолчанию

	// Public запрос без токена (login, register, гостевые бронирования)
	Public bool
}

// Do выполняет запрос и декодирует JSON ответа в out (nil - ответ отбрасывается)
// Любая ошибка возвращается как *APIError
func (c *Client) Do(ctx context.Context, req Request, out interface{}) error {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target, err := c.resolveURL(req.Path, req.Query)
	if err != nil {
		return &APIError{Kind: KindInternal, Message: "Erreur: URL invalide", Cause: err}
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return &APIError{Kind: KindInternal, Message: "Erreur: données invalides", Cause: err}
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &APIError{Kind: KindInternal, Message: "Erreur: requête invalide", Cause: err}
	}

	sentToken := c.setHeaders(ctx, httpReq, req)

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if c.observer != nil {
			c.observer.IncNetworkError()
		}
		c.log.Error("Do: %s %s - network error: %v", method, target, err)
		return &APIError{
			Kind:    KindNetwork,
			Message: "Erreur réseau: impossible de contacter le serveur",
			Cause:   err,
		}
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(resp.Body)
	if c.observer != nil {
		c.observer.ObserveRequest(method, resp.StatusCode, time.Since(started))
	}
	if readErr != nil {
		c.log.Error("Do: %s %s - failed to read body: %v", method, target, readErr)
		return &APIError{
			Kind:    KindNetwork,
			Status:  resp.StatusCode,
			Message: "Erreur réseau: réponse interrompue",
			Cause:   readErr,
		}
	}

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return c.handleUnauthorized(ctx, resp, respBody, sentToken)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		apiErr := parseErrorResponse(resp, respBody)
		c.log.Warn("Do: %s %s - status %d: %s", method, target, resp.StatusCode, apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		c.log.Error("Do: %s %s - failed to decode response: %v", method, target, err)
		return &APIError{
			Kind:    KindDecode,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("Erreur %d: réponse invalide du serveur", resp.StatusCode),
			Cause:   err,
		}
	}
	return nil
}

// setHeaders выставляет заголовки; возвращает приложенный токен или ""
func (c *Client) setHeaders(ctx context.Context, httpReq *http.Request, req Request) string {
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(headerRequestID, uuid.NewString())

	sentToken := ""
	if !req.Public && c.session != nil {
		token, err := c.session.GetToken(ctx)
		if err != nil {
			c.log.Warn("setHeaders: failed to read token, sending anonymous request: %v", err)
		} else if token != nil {
			httpReq.Header.Set("Authorization", "Bearer "+*token)
			sentToken = *token
		}
	}

	// Заголовки вызывающего побеждают при конфликте
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	return sentToken
}

// handleUnauthorized очищает сессию и уводит на /login, затем возвращает ошибку
// Анонимный запрос с 401 (например, неверный пароль при входе) сессию не трогает.
// Выход выполняется только если в хранилище все еще тот токен, с которым ушел запрос:
// параллельные 401 дают один выход, а поздний 401 старого токена не стирает новую сессию.
func (c *Client) handleUnauthorized(ctx context.Context, resp *http.Response, body []byte, sentToken string) error {
	apiErr := parseErrorResponse(resp, body)
	apiErr.Kind = KindUnauthorized

	if sentToken == "" {
		c.log.Warn("handleUnauthorized: anonymous request rejected: %s", apiErr.Message)
		return apiErr
	}

	c.unauthorizedMu.Lock()
	defer c.unauthorizedMu.Unlock()

	if c.session != nil {
		current, err := c.session.GetToken(ctx)
		if err != nil {
			c.log.Error("handleUnauthorized: failed to read token: %v", err)
		} else if current == nil || *current != sentToken {
			c.log.Warn("handleUnauthorized: rejected token is no longer stored, session kept")
			return apiErr
		}
	}

	c.log.Warn("handleUnauthorized: token rejected, clearing session and redirecting to %s", domain.RouteLogin)
	if c.session != nil {
		if err := c.session.Clear(ctx); err != nil {
			c.log.Error("handleUnauthorized: failed to clear session: %v", err)
		}
	}
	if c.observer != nil {
		c.observer.IncForcedLogout()
	}
	if c.navigator != nil {
		c.navigator.Navigate(domain.RouteLogin)
	}
	return apiErr
}

// resolveURL склеивает относительный путь с base URL; абсолютный URL не меняется
func (c *Client) resolveURL(path string, query url.Values) (string, error) {
	var raw string
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		raw = path
	} else {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		raw = c.baseURL + path
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// parseErrorResponse строит APIError по ответу вне 2xx
// Неразбираемое тело дает "Erreur <status>: <statusText>"
func parseErrorResponse(resp *http.Response, body []byte) *APIError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return &APIError{
			Kind:    KindHTTP,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("Erreur %d: %s", resp.StatusCode, statusText(resp)),
		}
	}

	fields := eb.fieldErrors()
	list := eb.listErrors()
	kind := KindHTTP
	if len(fields) > 0 || len(list) > 0 {
		kind = KindValidation
	}
	return &APIError{
		Kind:    kind,
		Status:  resp.StatusCode,
		Message: eb.message(resp.StatusCode, fields, list),
		Fields:  fields,
	}
}

func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
