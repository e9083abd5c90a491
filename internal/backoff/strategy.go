package backoff

import (
	"math/rand"
	"time"
)

// Strategy computes the delay to wait before retry attempt number attempt
// (1-based: attempt 1 is the wait after the first failure).
type Strategy interface {
	Calculate(attempt int, base, max time.Duration, jitter float64) time.Duration
}

// ExponentialStrategy doubles the delay on every attempt up to max. Jitter
// only ever lengthens a delay and the result is capped at max, so the
// sequence of delays never decreases for jitter in [0, 1].
type ExponentialStrategy struct {
	// Rand returns a value in [0, 1). Nil uses math/rand.
	Rand func() float64
}

// Calculate implements Strategy.
func (s ExponentialStrategy) Calculate(attempt int, base, max time.Duration, jitter float64) time.Duration {
	if base <= 0 {
		return 0
	}
	if max < base {
		max = base
	}
	if attempt < 1 {
		attempt = 1
	}

	// 2^62 overflows any duration anyway.
	if attempt > 62 {
		attempt = 62
	}

	delay := float64(base) * pow(2, attempt-1)
	if delay > float64(max) || delay < 0 {
		return max
	}

	jitter = clampJitter(jitter)
	if jitter > 0 {
		r := rand.Float64
		if s.Rand != nil {
			r = s.Rand
		}
		delay += delay * jitter * r()
		if delay > float64(max) {
			return max
		}
	}
	return time.Duration(delay)
}

func clampJitter(jitter float64) float64 {
	if jitter < 0 {
		return 0
	}
	if jitter > 1 {
		return 1
	}
	return jitter
}

func pow(base float64, exponent int) float64 {
	result := 1.0
	for i := 0; i < exponent; i++ {
		result *= base
	}
	return result
}
