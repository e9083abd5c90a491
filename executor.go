package gmaps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

// maxBodySize bounds how much of a response is read.
const maxBodySize = 16 << 20

// execute is the retry loop: admit through the rate limiters, run one
// attempt through the breaker, and on a transient failure wait out the
// backoff and go again until the attempt budget is spent.
func (c *Client) execute(ctx context.Context, ep Endpoint, target string, payload []byte, requestID string) ([]byte, error) {
	maxAttempts := c.retryPolicy.MaxAttempts
	calc := c.retryPolicy.calculator(c.rand)
	api := ep.API.String()

	for attempt := 1; ; attempt++ {
		if err := c.limiters.Acquire(ctx, APIAll, ep.API); err != nil {
			return nil, canceledError(ep, requestID, attempt, maxAttempts, err)
		}

		body, err := c.breakers.execute(ep.API, func() ([]byte, error) {
			return c.attempt(ctx, ep, target, payload)
		})
		if err == nil {
			if attempt > 1 {
				c.logger.Info("Request succeeded after retry", "requestID", requestID, "api", api, "attempt", attempt)
			}
			return body, nil
		}

		e, ok := AsError(err)
		if !ok {
			e = &Error{Kind: KindTransport, Message: "request failed", Cause: err, Timestamp: time.Now()}
		}
		e.API = ep.API
		e.Endpoint = ep.URL
		e.RequestID = requestID
		e.Attempt = attempt
		e.MaxAttempts = maxAttempts

		if !e.Retryable() {
			c.logger.Debug("Request failed", "requestID", requestID, "api", api, "attempt", attempt, "error", e.Error())
			return nil, e
		}

		if attempt >= maxAttempts {
			c.logger.Error("Retries exhausted", "requestID", requestID, "api", api, "attempts", attempt, "error", e.Error())
			return nil, &Error{
				Kind:        KindRetriesExhausted,
				APIKind:     e.APIKind,
				Status:      e.Status,
				RawStatus:   e.RawStatus,
				StatusCode:  e.StatusCode,
				Message:     fmt.Sprintf("giving up after %d attempt(s)", attempt),
				Cause:       e,
				API:         ep.API,
				Endpoint:    ep.URL,
				RequestID:   requestID,
				Attempt:     attempt,
				MaxAttempts: maxAttempts,
				Timestamp:   time.Now(),
			}
		}

		delay := calc.Delay(attempt)
		c.metrics.RecordRetry(api, attempt)
		c.logger.Warn("Retrying request", "requestID", requestID, "api", api, "attempt", attempt, "delay", delay.String(), "error", e.Error())

		if err := c.sleep(ctx, delay); err != nil {
			return nil, canceledError(ep, requestID, attempt, maxAttempts, err)
		}
	}
}

// attempt performs one HTTP exchange bounded by the per-attempt timeout
// and classifies the answer.
func (c *Client) attempt(ctx context.Context, ep Endpoint, target string, payload []byte) ([]byte, error) {
	actx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(actx, ep.method(), target, reqBody)
	if err != nil {
		return nil, &Error{Kind: KindValidation, Message: "invalid request URL", Cause: redact(err), Timestamp: time.Now()}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.transport.Do(req)
	if err != nil {
		return nil, transportError(ctx, actx, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, transportError(ctx, actx, "reading response body failed", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, httpStatusError(ep, resp.StatusCode, body)
	}
	if err := classifyEnvelope(ep, body); err != nil {
		return nil, err
	}
	return body, nil
}

func transportError(parent, attemptCtx context.Context, msg string, err error) *Error {
	if parent.Err() != nil {
		return &Error{Kind: KindCanceled, Message: "call abandoned by caller", Cause: parent.Err(), Timestamp: time.Now()}
	}
	if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
		msg = "attempt timed out"
	}
	return &Error{Kind: KindTransport, Message: msg, Cause: redact(err), Timestamp: time.Now()}
}

func canceledError(ep Endpoint, requestID string, attempt, maxAttempts int, cause error) *Error {
	return &Error{
		Kind:        KindCanceled,
		Message:     "call abandoned by caller",
		Cause:       cause,
		API:         ep.API,
		Endpoint:    ep.URL,
		RequestID:   requestID,
		Attempt:     attempt,
		MaxAttempts: maxAttempts,
		Timestamp:   time.Now(),
	}
}

var credentialPattern = regexp.MustCompile(`([?&]` + CredentialKey + `=)[^&\s"]*`)

// redact strips the credential from URLs embedded in transport errors.
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = redactURL(uerr.URL)
	}
	return err
}

func redactURL(s string) string {
	return credentialPattern.ReplaceAllString(s, "${1}REDACTED")
}
