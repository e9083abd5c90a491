package gmaps

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Doer sends one HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client holds the credential and the shared execution engine: per-group
// rate limiting, retries with backoff, circuit breaking, caching and
// de-duplication. It is immutable after New and safe for concurrent use.
type Client struct {
	key        string
	transport  Doer
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string

	rateLimits map[API]RateLimitPolicy
	limiters   *RateLimiterRegistry

	retryPolicy RetryPolicy
	rand        func() float64
	sleep       func(context.Context, time.Duration) error

	breakerConfig *CircuitBreakerConfig
	breakers      *circuitBreakers

	cache    Cache
	cacheTTL time.Duration

	dedup *deduplicator

	metrics      *MetricsCollector
	logger       Logger
	requestIDGen func() string

	closed atomic.Bool
}

// New builds a client for credential key. Options are applied in order and
// the result is validated once; New is the only place configuration can
// fail.
func New(key string, options ...Option) (*Client, error) {
	httpClient := &http.Client{}
	client := &Client{
		key:          key,
		transport:    httpClient,
		httpClient:   httpClient,
		timeout:      30 * time.Second,
		userAgent:    "gmaps-go/" + Version,
		rateLimits:   make(map[API]RateLimitPolicy),
		retryPolicy:  DefaultRetryPolicy(),
		sleep:        sleep,
		cacheTTL:     5 * time.Minute,
		logger:       nopLogger{},
		requestIDGen: uuid.NewString,
	}

	for _, option := range options {
		option(client)
	}

	if err := client.ValidateConfiguration(); err != nil {
		return nil, err
	}

	client.limiters = NewRateLimiterRegistry(client.rateLimits)
	client.limiters.metrics = client.metrics
	if client.breakerConfig != nil {
		client.breakers = newCircuitBreakers(*client.breakerConfig, client.logger, client.metrics)
	}

	return client, nil
}

// MustNew is New that panics on invalid configuration.
func MustNew(key string, options ...Option) *Client {
	c, err := New(key, options...)
	if err != nil {
		panic(err)
	}
	return c
}

// Close releases idle connections of the client's own transport and makes
// every later call fail with ErrClientClosed. It is safe to call twice.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.httpClient != nil {
		c.httpClient.CloseIdleConnections()
	}
	if c.cache != nil {
		c.cache.Clear()
	}
	return nil
}

// RetryPolicy returns the effective retry policy.
func (c *Client) RetryPolicy() RetryPolicy {
	return c.retryPolicy
}

// RateLimiter returns the bucket for api, or nil when it is unthrottled.
func (c *Client) RateLimiter(api API) *RateLimiter {
	return c.limiters.Limiter(api)
}

// Get runs a GET call to ep and decodes the body into T.
func Get[T any, PT interface {
	*T
	Enveloped
}](ctx context.Context, c *Client, ep Endpoint, q *Query) (PT, error) {
	ep.Method = http.MethodGet
	body, err := c.fetch(ctx, ep, q, nil)
	if err != nil {
		return nil, err
	}
	out, err := decodeInto[T](ep, body)
	if err != nil {
		return nil, err
	}
	return PT(out), nil
}

// Post runs a POST call to ep with payload encoded as JSON.
func Post[T any, PT interface {
	*T
	Enveloped
}](ctx context.Context, c *Client, ep Endpoint, q *Query, payload any) (PT, error) {
	ep.Method = http.MethodPost
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, &Error{
			Kind:      KindValidation,
			Message:   "request body cannot be encoded",
			Cause:     err,
			API:       ep.API,
			Endpoint:  ep.URL,
			Timestamp: time.Now(),
		}
	}
	body, err := c.fetch(ctx, ep, q, data)
	if err != nil {
		return nil, err
	}
	out, err := decodeInto[T](ep, body)
	if err != nil {
		return nil, err
	}
	return PT(out), nil
}

// fetch validates q, consults the cache and de-duplicator and otherwise
// runs the retry loop. The body it returns has a success or empty status.
func (c *Client) fetch(ctx context.Context, ep Endpoint, q *Query, payload []byte) ([]byte, error) {
	if c.closed.Load() {
		return nil, &Error{
			Kind:      KindClosed,
			Message:   "client is closed",
			API:       ep.API,
			Endpoint:  ep.URL,
			Timestamp: time.Now(),
		}
	}
	if q == nil {
		q = NewQuery()
	}

	raw, err := q.Encode(c.key)
	if err != nil {
		if e, ok := AsError(err); ok {
			e.API = ep.API
			e.Endpoint = ep.URL
		}
		c.metrics.RecordError(ep.API.String(), KindValidation.String())
		return nil, err
	}

	requestID := c.requestIDGen()
	api := ep.API.String()
	key := ep.method() + " " + ep.URL + "?" + q.canonical()
	target := ep.URL
	if raw != "" {
		target += "?" + raw
	}

	start := time.Now()
	c.metrics.RecordRequestStart(api)
	defer c.metrics.RecordRequestEnd(api)

	c.logger.Debug("Starting request", "requestID", requestID, "api", api, "method", ep.method(), "endpoint", ep.URL)

	idempotent := ep.method() == http.MethodGet
	if c.cache != nil && idempotent {
		if body, ok := c.cache.Get(key); ok {
			c.metrics.RecordCacheHit(api)
			c.metrics.RecordRequest(api, "cache", time.Since(start))
			c.logger.Debug("Cache hit", "requestID", requestID, "api", api)
			return body, nil
		}
		c.metrics.RecordCacheMiss(api)
	}

	var body []byte
	if c.dedup != nil && idempotent {
		var shared bool
		body, shared, err = c.dedup.do(ctx, key, func(ctx context.Context) ([]byte, error) {
			return c.execute(ctx, ep, target, payload, requestID)
		})
		if shared {
			c.metrics.RecordDeduplicationHit(api)
			c.logger.Debug("Deduplication hit", "requestID", requestID, "api", api)
		}
		if err != nil && ctx.Err() != nil {
			if _, ok := AsError(err); !ok {
				err = canceledError(ep, requestID, 0, c.retryPolicy.MaxAttempts, err)
			}
		}
	} else {
		body, err = c.execute(ctx, ep, target, payload, requestID)
	}

	if err != nil {
		kind := "error"
		if e, ok := AsError(err); ok {
			kind = e.Kind.String()
		}
		c.metrics.RecordError(api, kind)
		c.metrics.RecordRequest(api, "error", time.Since(start))
		return nil, err
	}

	c.metrics.RecordRequest(api, "success", time.Since(start))
	if c.cache != nil && idempotent {
		c.cache.Set(key, body, c.cacheTTL)
		c.metrics.RecordCacheSize(c.cache.Len())
	}
	return body, nil
}
