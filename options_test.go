package gmaps

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func TestWithRetryOptions(t *testing.T) {
	client := MustNew("k",
		WithMaxAttempts(7),
		WithBaseDelay(200*time.Millisecond),
		WithMaxDelay(10*time.Second),
		WithJitter(0.25),
	)

	want := RetryPolicy{MaxAttempts: 7, BaseDelay: 200 * time.Millisecond, MaxDelay: 10 * time.Second, Jitter: 0.25}
	if client.RetryPolicy() != want {
		t.Errorf("Expected %+v, got %+v", want, client.RetryPolicy())
	}
}

func TestWithRetryPolicy(t *testing.T) {
	p := RetryPolicy{MaxAttempts: 2, BaseDelay: time.Second, MaxDelay: time.Second}
	client := MustNew("k", WithRetryPolicy(p))

	if client.RetryPolicy() != p {
		t.Errorf("Expected %+v, got %+v", p, client.RetryPolicy())
	}
}

func TestWithJitterClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{3, 1},
	}
	for _, tt := range tests {
		client := MustNew("k", WithJitter(tt.in))
		if client.retryPolicy.Jitter != tt.want {
			t.Errorf("WithJitter(%v): expected %v, got %v", tt.in, tt.want, client.retryPolicy.Jitter)
		}
	}
}

func TestWithRateLimit(t *testing.T) {
	client := MustNew("k",
		WithRateLimit(APIAll, 50, time.Second),
		WithRateLimit(APIDirections, 10, time.Second),
		WithRateLimitPolicy(APIPlaces, RateLimitPolicy{Requests: 100, Per: time.Minute}),
	)

	if rl := client.RateLimiter(APIAll); rl == nil || rl.Capacity() != 50 {
		t.Errorf("Expected aggregate bucket of 50, got %v", rl)
	}
	if rl := client.RateLimiter(APIDirections); rl == nil || rl.Capacity() != 10 {
		t.Errorf("Expected directions bucket of 10, got %v", rl)
	}
	if rl := client.RateLimiter(APIPlaces); rl == nil || rl.Capacity() != 100 {
		t.Errorf("Expected places bucket of 100, got %v", rl)
	}
	if client.RateLimiter(APIGeocoding) != nil {
		t.Error("Expected geocoding to be unthrottled")
	}
}

func TestWithRateLimitLastWins(t *testing.T) {
	client := MustNew("k",
		WithRateLimit(APIElevation, 10, time.Second),
		WithRateLimit(APIElevation, 3, time.Second),
	)

	if rl := client.RateLimiter(APIElevation); rl.Capacity() != 3 {
		t.Errorf("Expected capacity 3, got %v", rl.Capacity())
	}
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Minute}
	client := MustNew("k", WithHTTPClient(hc))

	if client.transport != hc || client.httpClient != hc {
		t.Error("Expected the supplied HTTP client to be used")
	}
}

func TestWithTransport(t *testing.T) {
	tr := newScriptedTransport(reply{body: okBody})
	client := MustNew("k", WithTransport(tr))

	if client.transport != tr {
		t.Error("Expected the supplied transport to be used")
	}
	if client.httpClient != nil {
		t.Error("Expected no owned HTTP client for a custom transport")
	}
}

func TestWithTimeoutAndUserAgent(t *testing.T) {
	client := MustNew("k", WithTimeout(5*time.Second), WithUserAgent("agent/1"))

	if client.timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", client.timeout)
	}
	if client.userAgent != "agent/1" {
		t.Errorf("Expected agent/1, got %q", client.userAgent)
	}
}

func TestWithZerolog(t *testing.T) {
	var buf bytes.Buffer
	client := MustNew("k", WithZerolog(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	client.logger.Info("hello", "api", "geocoding")

	out := buf.String()
	if !strings.Contains(out, `"message":"hello"`) || !strings.Contains(out, `"api":"geocoding"`) {
		t.Errorf("Unexpected log output %s", out)
	}
}

func TestWithMetricsCollector(t *testing.T) {
	collector := NewMetricsCollectorWithRegistry(prometheus.NewRegistry())
	client := MustNew("k", WithMetricsCollector(collector))

	if client.metrics != collector {
		t.Error("Expected the supplied collector")
	}
	if client.limiters.metrics != collector {
		t.Error("Expected the limiter registry to share the collector")
	}
}

func TestWithCircuitBreakerCopiesConfig(t *testing.T) {
	cfg := DefaultCircuitBreakerConfig()
	opt := WithCircuitBreaker(cfg)
	cfg.ConsecutiveFailures = 0

	client := MustNew("k", opt)
	if client.breakerConfig.ConsecutiveFailures != 5 {
		t.Errorf("Expected config captured at option creation, got %d", client.breakerConfig.ConsecutiveFailures)
	}
	if client.breakers == nil {
		t.Error("Expected breakers to be built")
	}
}

func TestWithCache(t *testing.T) {
	client := MustNew("k", WithCache(time.Minute))

	if _, ok := client.cache.(*InMemoryCache); !ok {
		t.Errorf("Expected in-memory cache, got %T", client.cache)
	}
	if client.cacheTTL != time.Minute {
		t.Errorf("Expected ttl 1m, got %v", client.cacheTTL)
	}
}

func TestWithRequestIDGenerator(t *testing.T) {
	client := MustNew("k", WithRequestIDGenerator(func() string { return "fixed" }))

	if got := client.requestIDGen(); got != "fixed" {
		t.Errorf("Expected fixed, got %q", got)
	}
}

func TestStructErrorsFormat(t *testing.T) {
	errs := structErrors("retry", RetryPolicy{MaxAttempts: 0, BaseDelay: time.Second, MaxDelay: time.Second})

	if len(errs) != 1 {
		t.Fatalf("Expected 1 error, got %v", errs)
	}
	if errs[0] != "retry.MaxAttempts must satisfy gte=1 (got 0)" {
		t.Errorf("Unexpected message %q", errs[0])
	}
}
