package gmaps

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"
)

const (
	okBody          = `{"status":"OK","results":[{"name":"first"}]}`
	zeroResultsBody = `{"status":"ZERO_RESULTS","results":[]}`
	unknownBody     = `{"status":"UNKNOWN_ERROR","results":[]}`
	deniedBody      = `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid.","results":[]}`
)

var testEndpoint = Endpoint{API: APIGeocoding, URL: "https://maps.example.test/geocode/json"}

type testResponse struct {
	Envelope
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}

type reply struct {
	status int
	body   string
	err    error
}

// scriptedTransport answers with replies in order; the last one repeats.
type scriptedTransport struct {
	mu       sync.Mutex
	replies  []reply
	requests []*http.Request
	delay    time.Duration
}

func newScriptedTransport(replies ...reply) *scriptedTransport {
	return &scriptedTransport{replies: replies}
}

func (s *scriptedTransport) Do(req *http.Request) (*http.Response, error) {
	s.mu.Lock()
	idx := len(s.requests)
	s.requests = append(s.requests, req)
	r := s.replies[len(s.replies)-1]
	if idx < len(s.replies) {
		r = s.replies[idx]
	}
	delay := s.delay
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	status := r.status
	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(r.body)),
		Request:    req,
	}, nil
}

func (s *scriptedTransport) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *scriptedTransport) lastURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return ""
	}
	return s.requests[len(s.requests)-1].URL.String()
}

type sleepRecorder struct {
	mu    sync.Mutex
	slept []time.Duration
}

func (r *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.slept = append(r.slept, d)
	r.mu.Unlock()
	return ctx.Err()
}

func (r *sleepRecorder) total() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum time.Duration
	for _, d := range r.slept {
		sum += d
	}
	return sum
}

func newTestClient(t *testing.T, tr Doer, opts ...Option) (*Client, *sleepRecorder) {
	t.Helper()
	all := append([]Option{WithTransport(tr), WithRequestIDGenerator(func() string { return "req-1" })}, opts...)
	client, err := New("test-key", all...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	rec := &sleepRecorder{}
	client.sleep = rec.sleep
	return client, rec
}

func geocodeQuery() *Query {
	return NewQuery().Set("address", "1600 Amphitheatre Pkwy")
}
