package gmaps

import (
	"strings"
)

type locationKind uint8

const (
	locationAddress locationKind = iota + 1
	locationPoint
	locationPlaceID
	locationPolyline
)

// Location is a waypoint given as an address, a coordinate, a place ID or
// an encoded polyline. The zero value is invalid.
type Location struct {
	kind  locationKind
	text  string
	point LatLng
}

// Address returns a location resolved by the service from free text.
func Address(s string) Location {
	return Location{kind: locationAddress, text: s}
}

// Point returns a coordinate location.
func Point(ll LatLng) Location {
	return Location{kind: locationPoint, point: ll}
}

// PlaceID returns a location identified by a place ID.
func PlaceID(id string) Location {
	return Location{kind: locationPlaceID, text: id}
}

// EncodedPolyline returns a location list given as an encoded polyline.
func EncodedPolyline(p string) Location {
	return Location{kind: locationPolyline, text: p}
}

// ParseLocation interprets s as a coordinate when it parses as one, a place
// ID when prefixed with "place_id:", and an address otherwise.
func ParseLocation(s string) Location {
	if id, ok := strings.CutPrefix(s, "place_id:"); ok {
		return PlaceID(id)
	}
	if ll, err := ParseLatLng(s); err == nil {
		return Point(ll)
	}
	return Address(s)
}

// IsZero reports whether l was never set.
func (l Location) IsZero() bool {
	return l.kind == 0
}

// Validate rejects empty addresses and place IDs and out-of-range points.
func (l Location) Validate() error {
	switch l.kind {
	case locationAddress:
		if strings.TrimSpace(l.text) == "" {
			return validationError("address must not be empty")
		}
	case locationPlaceID:
		if strings.TrimSpace(l.text) == "" {
			return validationError("place id must not be empty")
		}
	case locationPolyline:
		if l.text == "" {
			return validationError("encoded polyline must not be empty")
		}
	case locationPoint:
		return l.point.Validate()
	default:
		return validationError("location is not set")
	}
	return nil
}

// String renders the wire form.
func (l Location) String() string {
	switch l.kind {
	case locationAddress:
		return l.text
	case locationPoint:
		return l.point.String()
	case locationPlaceID:
		return "place_id:" + l.text
	case locationPolyline:
		return "enc:" + l.text + ":"
	default:
		return ""
	}
}

// ValidateLocations validates every location and requires at least min.
func ValidateLocations(field string, locs []Location, min, max int) error {
	if len(locs) < min {
		return validationError("%s: at least %d location(s) required, got %d", field, min, len(locs))
	}
	if max > 0 && len(locs) > max {
		return validationError("%s: at most %d location(s) allowed, got %d", field, max, len(locs))
	}
	for i, l := range locs {
		if err := l.Validate(); err != nil {
			return validationError("%s[%d]: %s", field, i, messageOf(err))
		}
	}
	return nil
}

// JoinLocations renders locations separated by "|".
func JoinLocations(locs []Location) string {
	parts := make([]string, len(locs))
	for i, l := range locs {
		parts[i] = l.String()
	}
	return JoinPipe(parts...)
}

func messageOf(err error) string {
	if e, ok := AsError(err); ok {
		return e.Message
	}
	return err.Error()
}
