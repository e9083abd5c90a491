package gmaps

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*Client)

// WithRateLimit throttles api to requests calls per interval. Use APIAll
// to cap the combined rate of every group.
func WithRateLimit(api API, requests int, per time.Duration) Option {
	return WithRateLimitPolicy(api, RateLimitPolicy{Requests: requests, Per: per})
}

// WithRateLimitPolicy throttles api with policy.
func WithRateLimitPolicy(api API, policy RateLimitPolicy) Option {
	return func(c *Client) {
		c.rateLimits[api] = policy
	}
}

// WithRetryPolicy replaces the retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) {
		c.retryPolicy = p
	}
}

// WithMaxAttempts sets how many attempts a call may make, counting the first.
func WithMaxAttempts(n int) Option {
	return func(c *Client) {
		c.retryPolicy.MaxAttempts = n
	}
}

// WithBaseDelay sets the wait after the first failure.
func WithBaseDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryPolicy.BaseDelay = d
	}
}

// WithMaxDelay caps each backoff wait.
func WithMaxDelay(d time.Duration) Option {
	return func(c *Client) {
		c.retryPolicy.MaxDelay = d
	}
}

// WithJitter sets the jitter factor for backoff (0.0 to 1.0)
func WithJitter(f float64) Option {
	return func(c *Client) {
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		c.retryPolicy.Jitter = f
	}
}

// WithTimeout bounds each attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
		if client == nil {
			c.transport = nil
			return
		}
		c.transport = client
	}
}

// WithTransport sets an arbitrary Doer, typically a test double.
func WithTransport(d Doer) Option {
	return func(c *Client) {
		c.transport = d
		if hc, ok := d.(*http.Client); ok {
			c.httpClient = hc
		} else {
			c.httpClient = nil
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the diagnostics sink.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithZerolog logs through l.
func WithZerolog(l zerolog.Logger) Option {
	return WithLogger(NewZerologLogger(l))
}

// WithMetrics enables Prometheus metrics collection
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// WithCircuitBreaker keeps one breaker per API group.
func WithCircuitBreaker(config CircuitBreakerConfig) Option {
	return func(c *Client) {
		cfg := config
		c.breakerConfig = &cfg
	}
}

// WithCache enables caching with the default in-memory cache
func WithCache(ttl time.Duration) Option {
	return WithCustomCache(NewInMemoryCache(), ttl)
}

// WithCustomCache sets a custom cache implementation
func WithCustomCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithDeduplication merges concurrent identical GET calls. The merged
// execution runs until it finishes or every waiting caller has given up.
func WithDeduplication() Option {
	return func(c *Client) {
		c.dedup = &deduplicator{}
	}
}

// WithRequestIDGenerator sets a custom function for generating request IDs
func WithRequestIDGenerator(gen func() string) Option {
	return func(c *Client) {
		c.requestIDGen = gen
	}
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

func structValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateConfiguration reports every configuration problem at once.
func (c *Client) ValidateConfiguration() error {
	var errs []string

	errs = append(errs, c.validateCredential()...)
	errs = append(errs, c.validateRetryConfig()...)
	errs = append(errs, c.validateRateLimitConfig()...)
	errs = append(errs, c.validateCacheConfig()...)
	errs = append(errs, c.validateCircuitBreakerConfig()...)
	errs = append(errs, c.validateTransportConfig()...)

	if len(errs) > 0 {
		return &Error{
			Kind:      KindValidation,
			Message:   "configuration validation failed",
			Cause:     fmt.Errorf("validation errors: %s", strings.Join(errs, "; ")),
			Timestamp: time.Now(),
		}
	}
	return nil
}

func (c *Client) validateCredential() []string {
	if strings.TrimSpace(c.key) == "" {
		return []string{"credential must not be empty"}
	}
	return nil
}

func (c *Client) validateRetryConfig() []string {
	errs := structErrors("retry", c.retryPolicy)
	if c.timeout <= 0 {
		errs = append(errs, "timeout must be positive")
	}
	return errs
}

func (c *Client) validateRateLimitConfig() []string {
	var errs []string
	apis := make([]API, 0, len(c.rateLimits))
	for api := range c.rateLimits {
		apis = append(apis, api)
	}
	sort.Slice(apis, func(i, j int) bool { return apis[i] < apis[j] })

	for _, api := range apis {
		if _, known := apiTable.Encode(api); !known {
			errs = append(errs, fmt.Sprintf("rate limit configured for unknown API %s", api))
			continue
		}
		errs = append(errs, structErrors("rateLimit["+api.String()+"]", c.rateLimits[api])...)
	}
	return errs
}

func (c *Client) validateCacheConfig() []string {
	if c.cache != nil && c.cacheTTL <= 0 {
		return []string{"cacheTTL must be positive when cache is enabled"}
	}
	return nil
}

func (c *Client) validateCircuitBreakerConfig() []string {
	if c.breakerConfig == nil {
		return nil
	}
	return structErrors("circuitBreaker", *c.breakerConfig)
}

func (c *Client) validateTransportConfig() []string {
	var errs []string
	if c.transport == nil {
		errs = append(errs, "transport cannot be nil")
	}
	if c.logger == nil {
		errs = append(errs, "logger cannot be nil")
	}
	if c.requestIDGen == nil {
		errs = append(errs, "request ID generator cannot be nil")
	}
	return errs
}

// ValidateStruct checks v against its validate tags and reports every
// violation in one KindValidation error.
func ValidateStruct(name string, v interface{}) error {
	errs := structErrors(name, v)
	if len(errs) == 0 {
		return nil
	}
	return validationError("%s", strings.Join(errs, "; "))
}

// structErrors runs the struct validator and renders failures as
// "prefix.Field must satisfy tag=param".
func structErrors(prefix string, v interface{}) []string {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{prefix + ": " + err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out = append(out, fmt.Sprintf("%s.%s must satisfy %s (got %v)", prefix, fe.Field(), rule, fe.Value()))
	}
	return out
}
