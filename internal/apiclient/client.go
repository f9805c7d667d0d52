// Package apiclient HTTP-клиент REST-бэкенда админки.
//
// Каждый запрос получает заголовок Authorization: Bearer <token>, если в сессии
// есть токен. На любой ответ 401 клиент синхронно сбрасывает сессию, переводит
// навигацию на корень и возвращает ошибку вызывающему. Повторов и backoff нет.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/payroll-admin-console/internal/lib/sl"
	"github.com/magabrotheeeer/payroll-admin-console/internal/session"
)

// RootPath точка входа консоли, куда уводит 401.
const RootPath = "/"

// maxErrorBody сколько байт тела ошибки читается для поиска сообщения.
const maxErrorBody = 64 << 10

// Navigator переводит консоль на другой путь.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc адаптер функции к Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Client клиент бэкенда.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Session
	navigator  Navigator
	log        *slog.Logger
	metrics    *Metrics
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient подменяет http.Client, например для тестов.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout задаёт таймаут запроса. По умолчанию таймаута нет.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithNavigator задаёт, куда уходит навигация при 401.
func WithNavigator(n Navigator) Option {
	return func(c *Client) { c.navigator = n }
}

// WithMetrics включает метрики запросов.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New создаёт клиент для baseURL вида https://host/api.
func New(baseURL string, sess *session.Session, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		session:    sess,
		navigator:  NavigatorFunc(func(string) {}),
		log:        log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetNavigator меняет навигатор после создания клиента. Стор создаётся
// позже клиента, поэтому связывание идёт в два шага.
func (c *Client) SetNavigator(n Navigator) {
	c.navigator = n
}

// envelope обёртка {success, data, message, error} каждого ответа.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// request описание одного вызова. route шаблон пути для метрик.
type request struct {
	method string
	route  string
	path   string
	query  url.Values
	body   any
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, string, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	var body io.Reader
	if r.body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(r.body); err != nil {
			return nil, "", err
		}
		body = &buf
	}
	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, "", err
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, requestID, nil
}

// do выполняет запрос и раскладывает data в out (если out не nil).
// Возвращает обёртку ответа, чтобы вызывающий мог прочитать message.
func (c *Client) do(ctx context.Context, r request, out any) (*envelope, error) {
	const op = "apiclient.do"

	req, requestID, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log := c.log.With(
		sl.Op(op),
		slog.String("method", r.method),
		slog.String("route", r.route),
		slog.String("request_id", requestID),
	)
	log.Debug("api request", slog.String("url", req.URL.String()))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(r.method, r.route, 0, time.Since(start))
		log.Warn("api request failed", sl.Err(err))
		return nil, &APIError{Err: err}
	}
	defer resp.Body.Close()
	c.metrics.observe(r.method, r.route, resp.StatusCode, time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		env := readErrorBody(resp.Body)
		c.unauthorized(ctx, log)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message, Detail: env.Error}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		env := readErrorBody(resp.Body)
		log.Warn("api request rejected", slog.Int("status", resp.StatusCode), slog.String("message", env.Message))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message, Detail: env.Error}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		log.Warn("failed to decode response", sl.Err(err))
		return nil, &APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("%s: decode envelope: %w", op, err)}
	}
	if !env.Success {
		log.Warn("api request unsuccessful", slog.String("message", env.Message))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message, Detail: env.Error}
	}
	if out != nil && len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, out); err != nil {
			log.Warn("failed to decode response data", sl.Err(err))
			return nil, &APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("%s: decode data: %w", op, err)}
		}
	}
	return &env, nil
}

// unauthorized сбрасывает сессию и уводит на корень. Выполняется до того,
// как ошибка вернётся вызывающему.
func (c *Client) unauthorized(ctx context.Context, log *slog.Logger) {
	log.Warn("session rejected by backend, logging out")
	if err := c.session.Clear(context.WithoutCancel(ctx)); err != nil {
		log.Error("failed to clear session", sl.Err(err))
	}
	c.navigator.Navigate(RootPath)
}

func readErrorBody(r io.Reader) envelope {
	var env envelope
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return env
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return envelope{}
	}
	return env
}

// IsUnauthorized сокращение для errors.Is(err, ErrUnauthorized).
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
