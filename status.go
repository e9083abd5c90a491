package gmaps

import (
	"github.com/ambiyansyah-risyal/gmaps/internal/enum"
)

// Status is the envelope-level status token returned by the web services.
type Status uint8

const (
	StatusUnrecognized Status = iota
	StatusOK
	StatusZeroResults
	StatusNotFound
	StatusInvalidRequest
	StatusInvalidArgument
	StatusOverQueryLimit
	StatusOverDailyLimit
	StatusResourceExhausted
	StatusRequestDenied
	StatusPermissionDenied
	StatusUnknownError
	StatusMaxElementsExceeded
	StatusMaxDimensionsExceeded
	StatusMaxWaypointsExceeded
	StatusMaxRouteLengthExceeded
)

var statusTable = enum.New("status", StatusUnrecognized,
	enum.P("OK", StatusOK),
	enum.P("ZERO_RESULTS", StatusZeroResults),
	enum.P("NOT_FOUND", StatusNotFound),
	enum.P("INVALID_REQUEST", StatusInvalidRequest),
	enum.P("INVALID_ARGUMENT", StatusInvalidArgument),
	enum.P("OVER_QUERY_LIMIT", StatusOverQueryLimit),
	enum.P("OVER_DAILY_LIMIT", StatusOverDailyLimit),
	enum.P("RESOURCE_EXHAUSTED", StatusResourceExhausted),
	enum.P("REQUEST_DENIED", StatusRequestDenied),
	enum.P("PERMISSION_DENIED", StatusPermissionDenied),
	enum.P("UNKNOWN_ERROR", StatusUnknownError),
	enum.P("MAX_ELEMENTS_EXCEEDED", StatusMaxElementsExceeded),
	enum.P("MAX_DIMENSIONS_EXCEEDED", StatusMaxDimensionsExceeded),
	enum.P("MAX_WAYPOINTS_EXCEEDED", StatusMaxWaypointsExceeded),
	enum.P("MAX_ROUTE_LENGTH_EXCEEDED", StatusMaxRouteLengthExceeded),
)

func (s Status) String() string {
	return statusTable.Text(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(b []byte) error {
	*s = statusTable.Decode(string(b)).Value
	return nil
}

// DecodeStatus decodes a status token, keeping the raw token.
func DecodeStatus(token string) enum.Decoded[Status] {
	return statusTable.Decode(token)
}

// Outcome is the three-way classification of a status.
type Outcome uint8

const (
	OutcomeSuccess Outcome = iota
	OutcomeEmpty
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeEmpty:
		return "empty"
	default:
		return "error"
	}
}

// Outcome classifies the status.
func (s Status) Outcome() Outcome {
	switch s {
	case StatusOK:
		return OutcomeSuccess
	case StatusZeroResults:
		return OutcomeEmpty
	default:
		return OutcomeError
	}
}

// APIErrorKind maps an error status onto the error taxonomy. It returns
// APIErrorNone for success and empty statuses.
func (s Status) APIErrorKind() APIErrorKind {
	switch s {
	case StatusOK, StatusZeroResults:
		return APIErrorNone
	case StatusOverQueryLimit, StatusOverDailyLimit, StatusResourceExhausted:
		return APIQuotaExceeded
	case StatusRequestDenied, StatusPermissionDenied:
		return APIRequestDenied
	case StatusInvalidRequest, StatusInvalidArgument, StatusNotFound,
		StatusMaxElementsExceeded, StatusMaxDimensionsExceeded,
		StatusMaxWaypointsExceeded, StatusMaxRouteLengthExceeded:
		return APIInvalidRequest
	case StatusUnknownError:
		return APIUnknownError
	default:
		return APIUnrecognizedStatus
	}
}

// ElementStatus is the per-element status in batch responses.
type ElementStatus uint8

const (
	ElementStatusUnrecognized ElementStatus = iota
	ElementStatusOK
	ElementStatusNotFound
	ElementStatusZeroResults
	ElementStatusMaxRouteLengthExceeded
)

var elementStatusTable = enum.New("element_status", ElementStatusUnrecognized,
	enum.P("OK", ElementStatusOK),
	enum.P("NOT_FOUND", ElementStatusNotFound),
	enum.P("ZERO_RESULTS", ElementStatusZeroResults),
	enum.P("MAX_ROUTE_LENGTH_EXCEEDED", ElementStatusMaxRouteLengthExceeded),
)

func (s ElementStatus) String() string {
	return elementStatusTable.Text(s)
}

// DecodeElementStatus decodes an element status token.
func DecodeElementStatus(token string) enum.Decoded[ElementStatus] {
	return elementStatusTable.Decode(token)
}

// Outcome classifies the element independently of its siblings.
func (s ElementStatus) Outcome() Outcome {
	switch s {
	case ElementStatusOK:
		return OutcomeSuccess
	case ElementStatusZeroResults:
		return OutcomeEmpty
	default:
		return OutcomeError
	}
}
