package gmaps

import (
	"time"

	"github.com/goccy/go-json"
)

// Envelope is embedded by every typed response. It keeps the raw status
// token so unknown statuses remain visible.
type Envelope struct {
	RawStatus string `json:"status"`
	Message   string `json:"error_message,omitempty"`
}

// Status decodes the envelope status.
func (e Envelope) Status() Status {
	return DecodeStatus(e.RawStatus).Value
}

// Empty reports a valid call that matched nothing.
func (e Envelope) Empty() bool {
	return e.Status().Outcome() == OutcomeEmpty
}

// StatusToken implements Enveloped.
func (e Envelope) StatusToken() string {
	return e.RawStatus
}

// ErrorMessage implements Enveloped.
func (e Envelope) ErrorMessage() string {
	return e.Message
}

// Enveloped is implemented by every typed response.
type Enveloped interface {
	StatusToken() string
	ErrorMessage() string
}

// classifyEnvelope inspects only the status part of body. It returns nil
// for success and empty results, and the matching *Error otherwise.
func classifyEnvelope(ep Endpoint, body []byte) error {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &Error{
			Kind:      KindDecode,
			Message:   "response is not a JSON object",
			Cause:     err,
			API:       ep.API,
			Endpoint:  ep.URL,
			Timestamp: time.Now(),
		}
	}
	if env.RawStatus == "" {
		if ep.Statusless {
			return nil
		}
		return &Error{
			Kind:      KindDecode,
			Message:   "response has no status",
			API:       ep.API,
			Endpoint:  ep.URL,
			Timestamp: time.Now(),
		}
	}
	return statusError(ep, env.RawStatus, env.Message)
}

// statusError maps a status token onto the taxonomy, or returns nil for
// success and empty results.
func statusError(ep Endpoint, token, message string) error {
	decoded := DecodeStatus(token)
	kind := decoded.Value.APIErrorKind()
	if kind == APIErrorNone {
		return nil
	}
	if message == "" {
		message = "service returned " + decoded.Raw
	}
	return &Error{
		Kind:      KindAPI,
		APIKind:   kind,
		Status:    decoded.Value,
		RawStatus: decoded.Raw,
		Message:   message,
		API:       ep.API,
		Endpoint:  ep.URL,
		Timestamp: time.Now(),
	}
}

// httpStatusError classifies a non-2xx HTTP answer.
func httpStatusError(ep Endpoint, code int, body []byte) *Error {
	kind := APIInvalidRequest
	switch {
	case code == 429 || code >= 500:
		kind = APIServerError
	case code == 401 || code == 403:
		kind = APIRequestDenied
	}

	msg := "unexpected HTTP status"
	// Services often explain themselves in the body.
	var env struct {
		Message string `json:"error_message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &env) == nil {
		if env.Message != "" {
			msg = env.Message
		} else if env.Error.Message != "" {
			msg = env.Error.Message
		}
	}

	return &Error{
		Kind:       KindAPI,
		APIKind:    kind,
		StatusCode: code,
		Message:    msg,
		API:        ep.API,
		Endpoint:   ep.URL,
		Timestamp:  time.Now(),
	}
}

// decodeInto decodes a body whose envelope was already classified.
func decodeInto[T any](ep Endpoint, body []byte) (*T, error) {
	out := new(T)
	if err := json.Unmarshal(body, out); err != nil {
		return nil, &Error{
			Kind:      KindDecode,
			Message:   "response does not match the expected shape",
			Cause:     err,
			API:       ep.API,
			Endpoint:  ep.URL,
			Timestamp: time.Now(),
		}
	}
	return out, nil
}

// Decode classifies and decodes a raw response body. It is the offline
// counterpart of Get, useful for replaying recorded responses.
func Decode[T any, PT interface {
	*T
	Enveloped
}](ep Endpoint, body []byte) (PT, error) {
	if err := classifyEnvelope(ep, body); err != nil {
		return nil, err
	}
	out, err := decodeInto[T](ep, body)
	if err != nil {
		return nil, err
	}
	return PT(out), nil
}
