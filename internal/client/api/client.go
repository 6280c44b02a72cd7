package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/iudanet/habittracker/pkg/api"
)

const (
	// DefaultTimeout ограничивает один HTTP запрос целиком
	DefaultTimeout = 30 * time.Second

	// HeaderAPIKey статический идентификатор клиентского сервиса
	HeaderAPIKey = "X-API-Key"

	maxRedirects     = 10
	maxErrorBodySize = 512
)

// Option настраивает transport, общий для Client и AuthClient
type Option func(*transport)

// WithAPIKey sets the static X-API-Key header sent with every request
func WithAPIKey(key string) Option {
	return func(t *transport) {
		t.apiKey = key
	}
}

// WithTimeout overrides the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(t *transport) {
		if d > 0 {
			t.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(t *transport) {
		if c != nil {
			t.httpClient = c
		}
	}
}

// WithRateLimit caps outgoing requests to r per second with the given burst.
// A non-positive r disables limiting.
func WithRateLimit(r float64, burst int) Option {
	return func(t *transport) {
		if r <= 0 {
			t.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		t.limiter = rate.NewLimiter(rate.Limit(r), burst)
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *slog.Logger) Option {
	return func(t *transport) {
		if l != nil {
			t.logger = l
		}
	}
}

// transport отправляет один HTTP запрос и ничего не знает о сессии
type transport struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	baseURL    string
	apiKey     string
}

// request описывает запрос так, чтобы его можно было повторить байт в байт
type request struct {
	op          string
	method      string
	path        string
	contentType string
	body        []byte
	okStatus    []int
}

func newTransport(baseURL string, opts ...Option) *transport {
	t := &transport{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  slog.New(slog.DiscardHandler),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(t)
	}

	// Настройка обработки редиректов
	t.httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		// Ограничиваем количество редиректов
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		// Копируем заголовки авторизации при редиректе
		for _, h := range []string{"Authorization", HeaderAPIKey} {
			if v := via[0].Header.Get(h); v != "" {
				req.Header.Set(h, v)
			}
		}
		return nil
	}

	return t
}

func jsonRequest(op, method, path string, body any, okStatus ...int) (request, error) {
	req := request{op: op, method: method, path: path, okStatus: okStatus}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return request{}, fmt.Errorf("%s: failed to marshal request body: %w", op, err)
		}
		req.body = data
		req.contentType = "application/json"
	}
	return req, nil
}

// send performs one HTTP round trip. token may be empty.
func (t *transport) send(ctx context.Context, r request, token string) (int, []byte, error) {
	target, err := url.Parse(t.baseURL + r.path)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return 0, nil, fmt.Errorf("%w: %s %q", ErrInvalidRequest, r.op, t.baseURL+r.path)
	}

	var bodyReader io.Reader
	if r.body != nil {
		bodyReader = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target.String(), bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %s: %v", ErrInvalidRequest, r.op, err)
	}

	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if t.apiKey != "" {
		req.Header.Set(HeaderAPIKey, t.apiKey)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return 0, nil, &NetworkError{Err: err}
		}
	}

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.DebugContext(ctx, "request failed", "op", r.op, "method", r.method, "path", r.path, "error", err)
		return 0, nil, &NetworkError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &NetworkError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	t.logger.DebugContext(ctx, "request done",
		"op", r.op,
		"method", r.method,
		"path", r.path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return resp.StatusCode, respBody, nil
}

func (r request) accepts(status int) bool {
	return slices.Contains(r.okStatus, status)
}

// serverError builds a ServerError, taking the message from an ErrorResponse
// body when the server sent one
func serverError(op string, status int, body []byte) *ServerError {
	e := &ServerError{Op: op, Status: status}

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		e.Message = errResp.Message
		if e.Message == "" {
			e.Message = errResp.Error
		}
		return e
	}

	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBodySize {
		msg = msg[:maxErrorBodySize]
	}
	e.Message = msg
	return e
}

func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodingError{Err: err}
	}
	return nil
}
