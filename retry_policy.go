package gmaps

import (
	"time"

	"github.com/ambiyansyah-risyal/gmaps/internal/backoff"
)

// RetryPolicy bounds how often and how patiently a call is retried.
type RetryPolicy struct {
	// MaxAttempts counts the first try. 1 disables retries.
	MaxAttempts int `validate:"gte=1,lte=100"`
	// BaseDelay is the wait after the first failure.
	BaseDelay time.Duration `validate:"gt=0"`
	// MaxDelay caps every wait.
	MaxDelay time.Duration `validate:"gtefield=BaseDelay"`
	// Jitter lengthens each wait by up to this fraction. 0 disables it.
	Jitter float64 `validate:"gte=0,lte=1"`
}

// DefaultRetryPolicy returns 5 attempts with waits of 1s, 2s, 4s, 8s
// capped at 32s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   time.Second,
		MaxDelay:    32 * time.Second,
	}
}

// Delay returns the wait before retrying after failed attempt k (1-based).
func (p RetryPolicy) Delay(k int) time.Duration {
	return p.calculator(nil).Delay(k)
}

// Schedule returns the waits between the attempts of one call, without
// jitter: MaxAttempts-1 entries.
func (p RetryPolicy) Schedule() []time.Duration {
	if p.MaxAttempts <= 1 {
		return nil
	}
	calc := backoff.NewCalculator(backoff.ExponentialStrategy{}, p.BaseDelay, p.MaxDelay, 0)
	return calc.Schedule(p.MaxAttempts - 1)
}

func (p RetryPolicy) calculator(rnd func() float64) *backoff.Calculator {
	return backoff.NewCalculator(backoff.ExponentialStrategy{Rand: rnd}, p.BaseDelay, p.MaxDelay, p.Jitter)
}
