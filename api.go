package gmaps

import (
	"github.com/ambiyansyah-risyal/gmaps/internal/enum"
)

// API names a logical API group. Each group may carry its own rate limit
// and circuit breaker; every call is also admitted through APIAll.
type API uint8

const (
	// APIAll is the umbrella group every request is throttled under.
	APIAll API = iota
	APIDirections
	APIDistanceMatrix
	APIElevation
	APIGeocoding
	APITimeZone
	APIPlaces
	APIRoads
	APIGeolocation
	// APIUnknown is the fallback for unrecognized group names.
	APIUnknown API = 255
)

var apiTable = enum.New("api", APIUnknown,
	enum.P("all", APIAll),
	enum.P("directions", APIDirections),
	enum.P("distance_matrix", APIDistanceMatrix),
	enum.P("elevation", APIElevation),
	enum.P("geocoding", APIGeocoding),
	enum.P("time_zone", APITimeZone),
	enum.P("places", APIPlaces),
	enum.P("roads", APIRoads),
	enum.P("geolocation", APIGeolocation),
)

// String returns the configuration name of the group.
func (a API) String() string {
	return apiTable.Text(a)
}

// MarshalText implements encoding.TextMarshaler.
func (a API) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode
// to APIUnknown.
func (a *API) UnmarshalText(b []byte) error {
	*a = apiTable.Decode(string(b)).Value
	return nil
}

// ParseAPI resolves a configuration name such as "directions".
func ParseAPI(s string) (API, bool) {
	return apiTable.Lookup(s)
}

// APIs returns every known group.
func APIs() []API {
	return apiTable.Variants()
}

// Endpoint describes where and how a request is sent.
type Endpoint struct {
	// API is the group the endpoint is throttled and broken under.
	API API
	// URL is the service URL without query string.
	URL string
	// Method defaults to GET.
	Method string
	// Statusless marks services whose success bodies carry no status token.
	Statusless bool
}

func (e Endpoint) method() string {
	if e.Method == "" {
		return "GET"
	}
	return e.Method
}

// Service URLs.
const (
	DirectionsURL     = "https://maps.googleapis.com/maps/api/directions/json"
	DistanceMatrixURL = "https://maps.googleapis.com/maps/api/distancematrix/json"
	ElevationURL      = "https://maps.googleapis.com/maps/api/elevation/json"
	GeocodingURL      = "https://maps.googleapis.com/maps/api/geocode/json"
	TimeZoneURL       = "https://maps.googleapis.com/maps/api/timezone/json"
	PlacesTextURL     = "https://maps.googleapis.com/maps/api/place/textsearch/json"
	PlacesNearbyURL   = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	PlaceDetailsURL   = "https://maps.googleapis.com/maps/api/place/details/json"
	AutocompleteURL   = "https://maps.googleapis.com/maps/api/place/autocomplete/json"
	QueryCompleteURL  = "https://maps.googleapis.com/maps/api/place/queryautocomplete/json"
	SnapToRoadsURL    = "https://roads.googleapis.com/v1/snapToRoads"
	NearestRoadsURL   = "https://roads.googleapis.com/v1/nearestRoads"
	GeolocationURL    = "https://www.googleapis.com/geolocation/v1/geolocate"
)
