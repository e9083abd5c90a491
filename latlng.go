package gmaps

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CoordinatePrecision is the number of decimal places sent on the wire.
const CoordinatePrecision = 7

var (
	minLat = decimal.NewFromInt(-90)
	maxLat = decimal.NewFromInt(90)
	minLng = decimal.NewFromInt(-180)
	maxLng = decimal.NewFromInt(180)
)

// LatLng is a WGS84 coordinate pair held as exact decimals, so equal
// coordinates always serialize to the same text.
type LatLng struct {
	Lat decimal.Decimal `json:"lat"`
	Lng decimal.Decimal `json:"lng"`
}

// NewLatLng builds a validated coordinate from floats.
func NewLatLng(lat, lng float64) (LatLng, error) {
	for _, f := range []float64{lat, lng} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return LatLng{}, validationError("coordinate %v is not a finite number", f)
		}
	}
	ll := LatLng{Lat: decimal.NewFromFloat(lat), Lng: decimal.NewFromFloat(lng)}
	if err := ll.Validate(); err != nil {
		return LatLng{}, err
	}
	return ll, nil
}

// MustLatLng is NewLatLng that panics on invalid input. Intended for
// constants and tests.
func MustLatLng(lat, lng float64) LatLng {
	ll, err := NewLatLng(lat, lng)
	if err != nil {
		panic(err)
	}
	return ll
}

// ParseLatLng parses "lat,lng".
func ParseLatLng(s string) (LatLng, error) {
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return LatLng{}, validationError("coordinate %q is not in lat,lng form", s)
	}
	lat, err := decimal.NewFromString(strings.TrimSpace(latStr))
	if err != nil {
		return LatLng{}, validationError("latitude %q: %v", latStr, err)
	}
	lng, err := decimal.NewFromString(strings.TrimSpace(lngStr))
	if err != nil {
		return LatLng{}, validationError("longitude %q: %v", lngStr, err)
	}
	ll := LatLng{Lat: lat, Lng: lng}
	if err := ll.Validate(); err != nil {
		return LatLng{}, err
	}
	return ll, nil
}

// Validate checks the coordinate ranges.
func (l LatLng) Validate() error {
	if l.Lat.LessThan(minLat) || l.Lat.GreaterThan(maxLat) {
		return validationError("latitude %s out of range [-90, 90]", l.Lat)
	}
	if l.Lng.LessThan(minLng) || l.Lng.GreaterThan(maxLng) {
		return validationError("longitude %s out of range [-180, 180]", l.Lng)
	}
	return nil
}

// String renders "lat,lng" rounded to 7 places with trailing zeros trimmed.
func (l LatLng) String() string {
	return formatCoordinate(l.Lat) + "," + formatCoordinate(l.Lng)
}

// Float64 returns the coordinate as floats.
func (l LatLng) Float64() (lat, lng float64) {
	return l.Lat.InexactFloat64(), l.Lng.InexactFloat64()
}

// MarshalJSON writes the coordinate as JSON numbers.
func (l LatLng) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"lat":%s,"lng":%s}`, formatCoordinate(l.Lat), formatCoordinate(l.Lng))), nil
}

func formatCoordinate(d decimal.Decimal) string {
	return d.Round(CoordinatePrecision).String()
}

// Bounds is a viewport given by its south-west and north-east corners.
type Bounds struct {
	SouthWest LatLng `json:"southwest"`
	NorthEast LatLng `json:"northeast"`
}

// String renders "sw_lat,sw_lng|ne_lat,ne_lng".
func (b Bounds) String() string {
	return b.SouthWest.String() + "|" + b.NorthEast.String()
}

// Validate checks both corners.
func (b Bounds) Validate() error {
	if err := b.SouthWest.Validate(); err != nil {
		return err
	}
	return b.NorthEast.Validate()
}
