// Package client is the single entry point for every read and write
// against the university/review/request domain. It owns the caching
// policy, in-flight request de-duplication, and the fallback to the
// embedded sample dataset; view components call it and nothing else.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/studykorea/uniclient/cache"
	"github.com/studykorea/uniclient/config"
	"github.com/studykorea/uniclient/model"
	"github.com/studykorea/uniclient/validation"
)

const (
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultPageSize is the canonical page size; only requests with this
	// size (and no filters, first page) are eligible for whole-list caching.
	DefaultPageSize = 10
)

// Logger is the observability hook. Normalization and envelope parsing
// stay silent; everything worth logging happens at this layer.
type Logger interface {
	Printf(format string, v ...any)
}

// Config holds configuration for the data access client.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	PageSize    int
	RetryConfig *RetryConfig // Optional custom retry config
	Redis       *cache.Redis // Optional second cache tier
	Logger      Logger       // Defaults to the stdlib logger
	HTTPClient  *http.Client // Overridable for tests
}

// RetryConfig holds retry configuration for failed requests.
type RetryConfig struct {
	MaxRetries     int           // Maximum number of retry attempts (default: 2)
	InitialBackoff time.Duration // Initial backoff duration (default: 500ms)
	MaxBackoff     time.Duration // Maximum backoff duration (default: 30s)
}

// DefaultRetryConfig returns the default retry configuration: 2 retries
// with exponential backoff.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     2,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     30 * time.Second,
	}
}

// Client is the data access layer. All exported methods are safe for
// concurrent use.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	retryConfig RetryConfig
	pageSize    int
	logger      Logger

	store    *cache.Store
	redis    *cache.Redis
	validate *validation.Validator

	group singleflight.Group

	// mu guards the sequence counters and the local request log.
	mu     sync.Mutex
	issued map[string]uint64

	requests      []model.UniversityRequest
	nextRequestID int
}

// New creates a data access client.
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = DefaultPageSize
	}
	retryConfig := DefaultRetryConfig()
	if cfg.RetryConfig != nil {
		retryConfig = *cfg.RetryConfig
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:       cfg.BaseURL,
		httpClient:    httpClient,
		retryConfig:   retryConfig,
		pageSize:      cfg.PageSize,
		logger:        logger,
		store:         cache.NewStore(),
		redis:         cfg.Redis,
		validate:      validation.NewValidator(),
		issued:        make(map[string]uint64),
		nextRequestID: 1,
	}
}

// NewFromEnv builds a client from the process environment. A Redis URL
// that fails to connect is logged and skipped rather than fatal: the
// memory tier alone satisfies every contract.
func NewFromEnv(env *config.EnviornmentVariable) *Client {
	cfg := Config{
		BaseURL:  env.API_BASE_URL,
		Timeout:  time.Duration(env.HTTP_TIMEOUT_SECONDS) * time.Second,
		PageSize: env.DEFAULT_PAGE_SIZE,
	}
	if env.REDIS_URL != "" {
		redisTier, err := cache.NewRedis(env.REDIS_URL)
		if err != nil {
			log.Printf("[Client] Redis tier unavailable, continuing without it: %v", err)
		} else {
			cfg.Redis = redisTier
		}
	}
	return New(cfg)
}

// IsRetryableStatusCode checks if an HTTP status code should trigger a
// retry. Retryable codes: 408 (Timeout), 429 (Rate Limit), 5xx.
func IsRetryableStatusCode(statusCode int) bool {
	return statusCode == 408 || statusCode == 429 || statusCode >= 500
}

// CalculateBackoff returns the backoff duration for a given retry attempt:
// initialBackoff * 2^attempt, capped at maxBackoff.
func CalculateBackoff(attempt int, config RetryConfig) time.Duration {
	backoff := config.InitialBackoff * time.Duration(1<<uint(attempt))
	if backoff > config.MaxBackoff {
		return config.MaxBackoff
	}
	return backoff
}

// ParseRetryAfter extracts the Retry-After header value from a response.
// Returns 0 if the header is not present or cannot be parsed.
func ParseRetryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}

	retryAfter := resp.Header.Get("Retry-After")
	if retryAfter == "" {
		return 0
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		duration := time.Until(t)
		if duration > 0 {
			return duration
		}
	}

	return 0
}

// getBody performs a GET with retries and returns the raw response body.
// Transport failures come back as CategoryUnreachable, failed statuses as
// their mapped category.
func (c *Client) getBody(ctx context.Context, endpoint string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil)
}

// postJSON performs a POST with a JSON body and returns the raw response
// body.
func (c *Client) postJSON(ctx context.Context, endpoint string, body any) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, endpoint, data)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	url := c.baseURL + endpoint

	var lastErr error
	for attempt := 0; attempt <= c.retryConfig.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := CalculateBackoff(attempt-1, c.retryConfig)
			if wait := retryAfterFor(lastErr); wait > backoff {
				backoff = wait
			}
			c.logger.Printf("[Client] Retrying %s %s in %v (attempt %d/%d)",
				method, endpoint, backoff, attempt, c.retryConfig.MaxRetries)
			select {
			case <-ctx.Done():
				return nil, unreachable(ctx.Err())
			case <-time.After(backoff):
			}
		}

		respBody, err := c.doOnce(ctx, method, url, body)
		if err == nil {
			return respBody, nil
		}
		lastErr = err
		if !retryable(err) {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, method, url string, body []byte) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, unreachable(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, unreachable(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			Category:   categorize(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Message:    envelopeMessage(respBody),
		}
		apiErr.retryAfter = ParseRetryAfter(resp)
		return nil, apiErr
	}

	return respBody, nil
}

// retryable treats transport failures and retryable statuses as worth
// another attempt.
func retryable(err error) bool {
	apiErr, ok := err.(*APIError)
	if !ok {
		return false
	}
	if apiErr.Category == CategoryUnreachable {
		return true
	}
	return IsRetryableStatusCode(apiErr.StatusCode)
}

func retryAfterFor(err error) time.Duration {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.retryAfter
	}
	return 0
}

// envelopeMessage pulls the backend's message out of a failed body, when
// there is one worth showing in logs.
func envelopeMessage(body []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}
