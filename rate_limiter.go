package gmaps

import (
	"context"
	"math"
	"sync/atomic"
	"time"
)

// RateLimitPolicy admits at most Requests calls per Per interval, with
// bursts up to Requests.
type RateLimitPolicy struct {
	Requests int           `validate:"gt=0"`
	Per      time.Duration `validate:"gt=0"`
}

// RateLimiter is a token bucket with fractional refill. The bucket state is
// an immutable snapshot swapped with a single compare-and-swap, so refill
// and consume happen together and tokens always stay within [0, capacity].
type RateLimiter struct {
	capacity float64
	// tokens per nanosecond
	rate  float64
	state atomic.Pointer[bucketState]
	now   func() time.Time
}

type bucketState struct {
	tokens float64
	last   int64
}

// NewRateLimiter creates a full bucket for policy.
func NewRateLimiter(policy RateLimitPolicy) *RateLimiter {
	return newRateLimiter(policy, time.Now)
}

func newRateLimiter(policy RateLimitPolicy, now func() time.Time) *RateLimiter {
	rl := &RateLimiter{
		capacity: float64(policy.Requests),
		rate:     float64(policy.Requests) / float64(policy.Per),
		now:      now,
	}
	rl.state.Store(&bucketState{tokens: rl.capacity, last: now().UnixNano()})
	return rl
}

// Capacity returns the bucket size.
func (rl *RateLimiter) Capacity() float64 {
	return rl.capacity
}

// Allow consumes a token if one is available, without blocking.
func (rl *RateLimiter) Allow() bool {
	return rl.reserve() == 0
}

// Wait blocks until a token is consumed or ctx is done. A wait that ends
// with ctx's error has not consumed a token.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	for {
		wait := rl.reserve()
		if wait == 0 {
			return nil
		}
		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// Tokens returns the tokens available right now.
func (rl *RateLimiter) Tokens() float64 {
	cur := rl.state.Load()
	return rl.refilled(cur, rl.now().UnixNano())
}

// reserve consumes a token and returns 0, or returns how long until one
// will be available without changing the bucket.
func (rl *RateLimiter) reserve() time.Duration {
	for {
		cur := rl.state.Load()
		now := rl.now().UnixNano()
		tokens := rl.refilled(cur, now)

		if tokens < 1 {
			need := (1 - tokens) / rl.rate
			return time.Duration(math.Ceil(need))
		}

		last := now
		if last < cur.last {
			last = cur.last
		}
		next := &bucketState{tokens: tokens - 1, last: last}
		if rl.state.CompareAndSwap(cur, next) {
			return 0
		}
	}
}

// refund returns one token, never exceeding capacity.
func (rl *RateLimiter) refund() {
	for {
		cur := rl.state.Load()
		now := rl.now().UnixNano()
		tokens := math.Min(rl.refilled(cur, now)+1, rl.capacity)
		last := now
		if last < cur.last {
			last = cur.last
		}
		if rl.state.CompareAndSwap(cur, &bucketState{tokens: tokens, last: last}) {
			return
		}
	}
}

func (rl *RateLimiter) refilled(s *bucketState, now int64) float64 {
	elapsed := now - s.last
	if elapsed <= 0 {
		return s.tokens
	}
	return math.Min(s.tokens+float64(elapsed)*rl.rate, rl.capacity)
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
