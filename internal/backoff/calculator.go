package backoff

import (
	"time"
)

// Calculator binds a Strategy to a fixed base, max and jitter.
type Calculator struct {
	strategy Strategy
	base     time.Duration
	max      time.Duration
	jitter   float64
}

// NewCalculator creates a calculator. A nil strategy means exponential.
func NewCalculator(strategy Strategy, base, max time.Duration, jitter float64) *Calculator {
	if strategy == nil {
		strategy = ExponentialStrategy{}
	}
	return &Calculator{
		strategy: strategy,
		base:     base,
		max:      max,
		jitter:   jitter,
	}
}

// Delay returns the wait before retry attempt (1-based).
func (c *Calculator) Delay(attempt int) time.Duration {
	return c.strategy.Calculate(attempt, c.base, c.max, c.jitter)
}

// Schedule returns the delays for attempts 1..n.
func (c *Calculator) Schedule(n int) []time.Duration {
	out := make([]time.Duration, 0, n)
	for k := 1; k <= n; k++ {
		out = append(out, c.Delay(k))
	}
	return out
}

// Strategy returns the configured strategy.
func (c *Calculator) Strategy() Strategy {
	return c.strategy
}
