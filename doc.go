// Package gmaps is a client for the Google Maps Platform web services.
//
// Every endpoint package (directions, distancematrix, elevation, geocoding,
// timezone, places, geolocation, roads) funnels its calls through the shared
// engine in this package:
//
//   - Per API group token bucket rate limiting, plus an umbrella APIAll bucket
//   - Retries with capped exponential backoff and optional upward jitter
//   - Deterministic, validated query strings (sorted keys, credential last)
//   - Typed decoding of the status envelope into a single *Error taxonomy
//   - Optional circuit breaker per API group, response cache and in-flight
//     de-duplication
//   - Prometheus metrics and zerolog based structured logging
//
// Typical usage:
//
//	client, err := gmaps.New(apiKey,
//	    gmaps.WithRateLimit(gmaps.APIAll, 50, time.Second),
//	    gmaps.WithRateLimit(gmaps.APIDirections, 10, time.Second),
//	    gmaps.WithMaxAttempts(5),
//	    gmaps.WithCache(10*time.Minute),
//	)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	resp, err := geocoding.NewRequest(client).
//	    WithAddress("1600 Amphitheatre Parkway, Mountain View, CA").
//	    Execute(ctx)
//
// A call yields either a typed response or one *gmaps.Error. A response
// whose status is ZERO_RESULTS is a success with no results; check
// resp.Empty(). Use errors.Is with the sentinels (ErrQuotaExceeded,
// ErrRetriesExhausted, ...) to branch on failures.
//
// The gmaps command in cmd/gmaps exposes the same calls on the command line,
// configured from a YAML file and GMAPS_* environment variables.
package gmaps
