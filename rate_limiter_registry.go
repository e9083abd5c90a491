package gmaps

import (
	"context"
	"time"
)

// RateLimiterRegistry holds one bucket per configured API group. It is
// built once by New and read-only afterwards.
type RateLimiterRegistry struct {
	limiters map[API]*RateLimiter
	metrics  *MetricsCollector
}

// NewRateLimiterRegistry creates a registry from policies.
func NewRateLimiterRegistry(policies map[API]RateLimitPolicy) *RateLimiterRegistry {
	r := &RateLimiterRegistry{limiters: make(map[API]*RateLimiter, len(policies))}
	for api, p := range policies {
		r.limiters[api] = NewRateLimiter(p)
	}
	return r
}

// Limiter returns the bucket for api, or nil when api is unthrottled.
func (r *RateLimiterRegistry) Limiter(api API) *RateLimiter {
	if r == nil {
		return nil
	}
	return r.limiters[api]
}

// Allow consumes a token from every configured bucket among apis, or from
// none of them.
func (r *RateLimiterRegistry) Allow(apis ...API) bool {
	var taken []*RateLimiter
	for _, api := range apis {
		rl := r.Limiter(api)
		if rl == nil {
			continue
		}
		if !rl.Allow() {
			for _, t := range taken {
				t.refund()
			}
			return false
		}
		taken = append(taken, rl)
	}
	return true
}

// Acquire waits for a token from each configured bucket among apis, in
// order. If ctx ends mid-way, tokens already taken are returned.
func (r *RateLimiterRegistry) Acquire(ctx context.Context, apis ...API) error {
	var taken []*RateLimiter
	for _, api := range apis {
		rl := r.Limiter(api)
		if rl == nil {
			continue
		}

		start := time.Now()
		if err := rl.Wait(ctx); err != nil {
			for _, t := range taken {
				t.refund()
			}
			return err
		}
		if r.metrics != nil {
			r.metrics.RecordRateLimiterWait(api.String(), time.Since(start))
			r.metrics.RecordRateLimiterTokens(api.String(), rl.Tokens())
		}
		taken = append(taken, rl)
	}
	return nil
}
