package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"wrapads/internal/metrics"
	"wrapads/internal/models"
	"wrapads/internal/session"
)

const maxResponseBytes = 4 << 20

var ErrUnexpectedResponse = errors.New("unexpected marketplace response")

// APIError is a request the marketplace API answered with an error status
// or an error envelope.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("marketplace api: status=%d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("marketplace api: status=%d", e.StatusCode)
}

// IsNotFound reports a 404, or an error whose message says "not found".
// Profile pages use it to switch into profile-creation mode.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusNotFound ||
		strings.Contains(strings.ToLower(apiErr.Message), "not found")
}

// ErrorMessage extracts the human-readable message of an API error, or
// returns fallback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return apiErr.Message
	}
	return fallback
}

// TransportError is a request that never got a response from the
// marketplace API.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("marketplace %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []any           `json:"errors"`
}

// MarketplaceClient wraps the marketplace REST API. Every method decodes
// the envelope's data into one declared shape and fails with
// ErrUnexpectedResponse when the payload does not match it.
type MarketplaceClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

func NewMarketplaceClient(baseURL string) *MarketplaceClient {
	return &MarketplaceClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     zap.NewNop(),
	}
}

func (c *MarketplaceClient) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

func (c *MarketplaceClient) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// SetRateLimit caps outbound calls at rps requests per second. Zero or a
// negative value disables the limit.
func (c *MarketplaceClient) SetRateLimit(rps float64, burst int) {
	if rps <= 0 {
		c.limiter = nil
		return
	}
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
}

func (c *MarketplaceClient) SetLogger(logger *zap.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   any
}

// do sends one request and decodes the envelope. When out is non-nil the
// envelope must carry data that decodes into it.
func (c *MarketplaceClient) do(ctx context.Context, rc call, out any) error {
	if strings.TrimSpace(c.baseURL) == "" {
		return errors.New("marketplace baseURL is required")
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("marketplace %s: %w", rc.op, err)
		}
	}

	u, err := url.Parse(c.baseURL + rc.path)
	if err != nil {
		return err
	}
	if len(rc.query) > 0 {
		u.RawQuery = rc.query.Encode()
	}

	var body io.Reader
	if rc.body != nil {
		b, err := json.Marshal(rc.body)
		if err != nil {
			return fmt.Errorf("marketplace %s: encode body: %w", rc.op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, rc.method, u.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if rc.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := session.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.TrackUpstream(rc.op, 0, time.Since(start))
		c.logger.Warn("marketplace request failed", zap.String("operation", rc.op), zap.Error(err))
		return &TransportError{Op: rc.op, Err: err}
	}
	defer resp.Body.Close()
	metrics.TrackUpstream(rc.op, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("marketplace %s: read body: %w", rc.op, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("%w: %s: invalid json: %v", ErrUnexpectedResponse, rc.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || env.Status == models.ResponseStatusError {
		c.logger.Debug("marketplace returned error",
			zap.String("operation", rc.op),
			zap.Int("status", resp.StatusCode),
			zap.String("message", env.Message),
		)
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message, Errors: env.Errors}
	}
	if env.Status != models.ResponseStatusSuccess {
		return fmt.Errorf("%w: %s: envelope status %q", ErrUnexpectedResponse, rc.op, env.Status)
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return fmt.Errorf("%w: %s: missing data", ErrUnexpectedResponse, rc.op)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnexpectedResponse, rc.op, err)
	}
	return nil
}

func shapeError(op, detail string) error {
	return fmt.Errorf("%w: %s: %s", ErrUnexpectedResponse, op, detail)
}

func pathID(id string) string {
	return url.PathEscape(id)
}

func statusQuery(status string) url.Values {
	if status == "" {
		return nil
	}
	return url.Values{"status": []string{status}}
}
