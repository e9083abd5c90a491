// Package maptest provides a canned transport for exercising request
// builders without a network.
package maptest

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/ambiyansyah-risyal/gmaps"
)

// Transport answers every request with the same status and body and
// records what it was sent.
type Transport struct {
	Status int
	Body   string

	mu       sync.Mutex
	requests []*http.Request
	payloads []string
}

// New returns a transport answering 200 with body.
func New(body string) *Transport {
	return &Transport{Status: http.StatusOK, Body: body}
}

// Do implements gmaps.Doer.
func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	var payload string
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		payload = string(b)
	}

	t.mu.Lock()
	t.requests = append(t.requests, req)
	t.payloads = append(t.payloads, payload)
	t.mu.Unlock()

	return &http.Response{
		StatusCode: t.Status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(t.Body)),
		Request:    req,
	}, nil
}

// Calls returns the number of requests seen.
func (t *Transport) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.requests)
}

// Last returns the most recent request, or nil.
func (t *Transport) Last() *http.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.requests) == 0 {
		return nil
	}
	return t.requests[len(t.requests)-1]
}

// LastQuery returns the decoded query of the most recent request.
func (t *Transport) LastQuery() url.Values {
	req := t.Last()
	if req == nil {
		return nil
	}
	return req.URL.Query()
}

// LastPayload returns the body of the most recent request.
func (t *Transport) LastPayload() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.payloads) == 0 {
		return ""
	}
	return t.payloads[len(t.payloads)-1]
}

// Client builds a client with key "test-key" that sends through tr and
// never retries.
func Client(tb testing.TB, tr *Transport, opts ...gmaps.Option) *gmaps.Client {
	tb.Helper()
	all := append([]gmaps.Option{gmaps.WithTransport(tr), gmaps.WithMaxAttempts(1)}, opts...)
	c, err := gmaps.New("test-key", all...)
	if err != nil {
		tb.Fatalf("gmaps.New: %v", err)
	}
	return c
}
