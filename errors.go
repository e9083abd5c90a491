package gmaps

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind is the top-level failure category of a call.
type ErrorKind uint8

const (
	// KindValidation: the request was rejected before any network activity.
	KindValidation ErrorKind = iota + 1
	// KindTransport: connection failure, per-attempt timeout or an
	// unreadable response.
	KindTransport
	// KindAPI: the service answered with a non-success status.
	KindAPI
	// KindDecode: the response body did not have the expected shape.
	KindDecode
	// KindRetriesExhausted: the retry budget ran out; Cause holds the last error.
	KindRetriesExhausted
	// KindCanceled: the caller's context ended the call.
	KindCanceled
	// KindCircuitOpen: the breaker for the API group is refusing calls.
	KindCircuitOpen
	// KindClosed: the call was made after Client.Close.
	KindClosed
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindTransport:
		return "TransportError"
	case KindAPI:
		return "APIError"
	case KindDecode:
		return "DecodeError"
	case KindRetriesExhausted:
		return "RetriesExhausted"
	case KindCanceled:
		return "Canceled"
	case KindCircuitOpen:
		return "CircuitOpen"
	case KindClosed:
		return "ClientClosed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// APIErrorKind refines KindAPI.
type APIErrorKind uint8

const (
	APIErrorNone APIErrorKind = iota
	// APIQuotaExceeded covers OVER_QUERY_LIMIT, OVER_DAILY_LIMIT and RESOURCE_EXHAUSTED.
	APIQuotaExceeded
	// APIRequestDenied covers REQUEST_DENIED, PERMISSION_DENIED and HTTP 401/403.
	APIRequestDenied
	// APIInvalidRequest covers INVALID_REQUEST, INVALID_ARGUMENT, NOT_FOUND,
	// the MAX_*_EXCEEDED family and other HTTP 4xx answers.
	APIInvalidRequest
	// APIUnknownError is the service's own transient failure (UNKNOWN_ERROR).
	APIUnknownError
	// APIServerError is an HTTP 429 or 5xx answer.
	APIServerError
	// APIUnrecognizedStatus is a status token outside the known vocabulary.
	APIUnrecognizedStatus
)

func (k APIErrorKind) String() string {
	switch k {
	case APIErrorNone:
		return "none"
	case APIQuotaExceeded:
		return "quota_exceeded"
	case APIRequestDenied:
		return "request_denied"
	case APIInvalidRequest:
		return "invalid_request"
	case APIUnknownError:
		return "unknown_error"
	case APIServerError:
		return "server_error"
	case APIUnrecognizedStatus:
		return "unrecognized_status"
	default:
		return fmt.Sprintf("APIErrorKind(%d)", uint8(k))
	}
}

// Retryable reports whether a fresh attempt may succeed.
func (k APIErrorKind) Retryable() bool {
	return k == APIUnknownError || k == APIServerError
}

// Error is the single concrete error type returned by the client.
type Error struct {
	Kind ErrorKind
	// APIKind is set when Kind is KindAPI, or when Kind is
	// KindRetriesExhausted and the last attempt failed with an API error.
	APIKind    APIErrorKind
	Status     Status
	RawStatus  string
	StatusCode int
	Message    string
	Cause      error

	API         API
	Endpoint    string
	RequestID   string
	Attempt     int
	MaxAttempts int
	Timestamp   time.Time
}

// Sentinel errors for errors.Is matching. They carry only a kind.
var (
	ErrValidation       = &Error{Kind: KindValidation}
	ErrTransport        = &Error{Kind: KindTransport}
	ErrAPI              = &Error{Kind: KindAPI}
	ErrDecode           = &Error{Kind: KindDecode}
	ErrRetriesExhausted = &Error{Kind: KindRetriesExhausted}
	ErrCanceled         = &Error{Kind: KindCanceled}
	ErrCircuitOpen      = &Error{Kind: KindCircuitOpen}
	ErrClientClosed     = &Error{Kind: KindClosed}

	ErrQuotaExceeded  = &Error{Kind: KindAPI, APIKind: APIQuotaExceeded}
	ErrRequestDenied  = &Error{Kind: KindAPI, APIKind: APIRequestDenied}
	ErrInvalidRequest = &Error{Kind: KindAPI, APIKind: APIInvalidRequest}
	ErrUnknownError   = &Error{Kind: KindAPI, APIKind: APIUnknownError}
	ErrServerError    = &Error{Kind: KindAPI, APIKind: APIServerError}
)

// Error implements error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	label := e.Kind.String()
	if e.Kind == KindAPI && e.APIKind != APIErrorNone {
		label = fmt.Sprintf("%s(%s)", label, e.APIKind)
	}

	msg := label + ": " + e.Message
	if e.RawStatus != "" {
		msg += " [" + e.RawStatus + "]"
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	if e.RequestID != "" {
		msg = fmt.Sprintf("[%s] %s", e.RequestID, msg)
	}
	if e.Attempt > 0 {
		msg = fmt.Sprintf("%s (attempt %d/%d)", msg, e.Attempt, e.MaxAttempts)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches sentinels by Kind, and by APIKind when the target sets one.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return t.APIKind == APIErrorNone || e.APIKind == t.APIKind
}

// Retryable reports whether this failure should trigger another attempt.
func (e *Error) Retryable() bool {
	if e == nil {
		return false
	}
	switch e.Kind {
	case KindTransport:
		return true
	case KindAPI:
		return e.APIKind.Retryable()
	default:
		return false
	}
}

// DebugInfo renders a multi-line string with diagnostic context.
func (e *Error) DebugInfo() string {
	if e == nil {
		return "Error: <nil>"
	}
	info := fmt.Sprintf("Error Kind: %s\n", e.Kind)
	if e.APIKind != APIErrorNone {
		info += fmt.Sprintf("API Error Kind: %s\n", e.APIKind)
	}
	info += fmt.Sprintf("Message: %s\n", e.Message)
	if e.RawStatus != "" {
		info += fmt.Sprintf("Status: %s\n", e.RawStatus)
	}
	if e.RequestID != "" {
		info += fmt.Sprintf("Request ID: %s\n", e.RequestID)
	}
	if e.API != APIAll {
		info += fmt.Sprintf("API: %s\n", e.API)
	}
	if e.Endpoint != "" {
		info += fmt.Sprintf("Endpoint: %s\n", e.Endpoint)
	}
	if e.StatusCode > 0 {
		info += fmt.Sprintf("Status Code: %d\n", e.StatusCode)
	}
	if e.Attempt > 0 {
		info += fmt.Sprintf("Attempt: %d/%d\n", e.Attempt, e.MaxAttempts)
	}
	if !e.Timestamp.IsZero() {
		info += fmt.Sprintf("Timestamp: %s\n", e.Timestamp.Format(time.RFC3339))
	}
	if e.Cause != nil {
		info += fmt.Sprintf("Cause: %v\n", e.Cause)
	}
	return info
}

// IsRetryable reports whether err is a transient failure that a fresh
// attempt may fix. Context cancellation is never retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Retryable()
	}
	return false
}

// IsTransient is an alias of IsRetryable.
func IsTransient(err error) bool {
	return IsRetryable(err)
}

// AsError extracts the *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func validationError(format string, args ...any) *Error {
	return &Error{
		Kind:      KindValidation,
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now(),
	}
}

// ValidationErrorf builds a KindValidation error. Endpoint packages use it
// for cross-field rules that do not fit a single Field.
func ValidationErrorf(format string, args ...any) error {
	return validationError(format, args...)
}
