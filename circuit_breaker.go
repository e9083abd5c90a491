package gmaps

import (
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// CircuitBreakerConfig configures the breaker kept for each API group.
type CircuitBreakerConfig struct {
	// ConsecutiveFailures trips the breaker.
	ConsecutiveFailures uint32 `validate:"gt=0"`
	// MaxRequests is the number of probes allowed while half-open.
	MaxRequests uint32 `validate:"gt=0"`
	// Interval clears failure counts while closed. 0 never clears them.
	Interval time.Duration `validate:"gte=0"`
	// Timeout is how long the breaker stays open.
	Timeout time.Duration `validate:"gt=0"`
}

// DefaultCircuitBreakerConfig trips after 5 consecutive transient failures
// and probes again after 30 seconds.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		ConsecutiveFailures: 5,
		MaxRequests:         1,
		Interval:            time.Minute,
		Timeout:             30 * time.Second,
	}
}

// circuitBreakers holds one breaker per API group. Only transient failures
// count against a breaker; terminal API answers prove the service is up.
type circuitBreakers struct {
	breakers map[API]*gobreaker.CircuitBreaker[[]byte]
}

func newCircuitBreakers(cfg CircuitBreakerConfig, logger Logger, metrics *MetricsCollector) *circuitBreakers {
	cbs := &circuitBreakers{breakers: make(map[API]*gobreaker.CircuitBreaker[[]byte])}
	for _, api := range APIs() {
		if api == APIAll {
			continue
		}
		metrics.RecordCircuitBreakerState(api.String(), 0)
		cbs.breakers[api] = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
			Name:        api.String(),
			MaxRequests: cfg.MaxRequests,
			Interval:    cfg.Interval,
			Timeout:     cfg.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
			},
			IsSuccessful: func(err error) bool {
				return err == nil || !IsRetryable(err)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Circuit breaker state changed", "api", name, "from", from.String(), "to", to.String())
				metrics.RecordCircuitBreakerState(name, breakerStateValue(to))
			},
		})
	}
	return cbs
}

// execute runs fn through the breaker for api. A missing breaker set runs
// fn directly.
func (c *circuitBreakers) execute(api API, fn func() ([]byte, error)) ([]byte, error) {
	if c == nil {
		return fn()
	}
	cb, ok := c.breakers[api]
	if !ok {
		return fn()
	}
	body, err := cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, &Error{
			Kind:      KindCircuitOpen,
			Message:   "circuit breaker is not admitting calls",
			Cause:     err,
			API:       api,
			Timestamp: time.Now(),
		}
	}
	return body, err
}

// state returns the current state of api's breaker.
func (c *circuitBreakers) state(api API) gobreaker.State {
	if c == nil {
		return gobreaker.StateClosed
	}
	if cb, ok := c.breakers[api]; ok {
		return cb.State()
	}
	return gobreaker.StateClosed
}

func breakerStateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
