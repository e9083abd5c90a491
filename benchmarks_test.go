package gmaps

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

// staticDoer answers every request with the same 200 body and keeps no
// history.
type staticDoer string

func (s staticDoer) Do(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(string(s))),
		Request:    req,
	}, nil
}

func BenchmarkQueryEncode(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q := NewQuery().
			Set("origin", "Toronto").
			Set("destination", "Montreal").
			Set("waypoints", "optimize:true|Kingston|Ottawa").
			Set("mode", "driving").
			Exclusive("arrival_time", "departure_time")
		if _, err := q.Encode("benchmark-key"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRegistryAcquire(b *testing.B) {
	reg := NewRateLimiterRegistry(map[API]RateLimitPolicy{
		APIAll:       {Requests: 1 << 30, Per: time.Second},
		APIGeocoding: {Requests: 1 << 30, Per: time.Second},
	})
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if err := reg.Acquire(ctx, APIAll, APIGeocoding); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

func BenchmarkClientGet(b *testing.B) {
	cases := []struct {
		name string
		opts []Option
	}{
		{"Plain", nil},
		{"Cached", []Option{WithCache(time.Minute)}},
		{"Deduplicated", []Option{WithDeduplication()}},
		{"Breaker", []Option{WithCircuitBreaker(DefaultCircuitBreakerConfig())}},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			opts := append([]Option{WithTransport(staticDoer(okBody))}, tc.opts...)
			client, err := New("benchmark-key", opts...)
			if err != nil {
				b.Fatal(err)
			}
			defer client.Close()
			ctx := context.Background()

			b.ReportAllocs()
			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if _, err := Get[testResponse](ctx, client, testEndpoint, geocodeQuery()); err != nil {
						b.Error(err)
						return
					}
				}
			})
		})
	}
}
