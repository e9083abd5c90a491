package directions

import (
	"strconv"
	"time"

	"github.com/ambiyansyah-risyal/gmaps/internal/enum"
)

// TravelMode selects how the route is travelled. The zero value leaves the
// choice to the service, which defaults to driving.
type TravelMode uint8

const (
	TravelModeUnknown TravelMode = iota
	TravelModeDriving
	TravelModeWalking
	TravelModeBicycling
	TravelModeTransit
)

var travelModeTable = enum.New("travel mode", TravelModeUnknown,
	enum.P("driving", TravelModeDriving),
	enum.P("walking", TravelModeWalking),
	enum.P("bicycling", TravelModeBicycling),
	enum.P("transit", TravelModeTransit),
)

func (m TravelMode) String() string {
	return travelModeTable.Text(m)
}

func (m TravelMode) Token() (string, bool) {
	return travelModeTable.Encode(m)
}

func (m TravelMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *TravelMode) UnmarshalText(b []byte) error {
	*m = travelModeTable.Decode(string(b)).Value
	return nil
}

// ParseTravelMode resolves a mode name such as "transit".
func ParseTravelMode(s string) (TravelMode, bool) {
	return travelModeTable.Lookup(s)
}

// Avoid is a route restriction.
type Avoid uint8

const (
	AvoidUnknown Avoid = iota
	AvoidTolls
	AvoidHighways
	AvoidFerries
	AvoidIndoor
)

var avoidTable = enum.New("avoid", AvoidUnknown,
	enum.P("tolls", AvoidTolls),
	enum.P("highways", AvoidHighways),
	enum.P("ferries", AvoidFerries),
	enum.P("indoor", AvoidIndoor),
)

func (a Avoid) String() string {
	return avoidTable.Text(a)
}

func (a Avoid) Token() (string, bool) {
	return avoidTable.Encode(a)
}

// ParseAvoid resolves a restriction name such as "tolls".
func ParseAvoid(s string) (Avoid, bool) {
	return avoidTable.Lookup(s)
}

// UnitSystem controls how distances are rendered in text fields. Values
// are always metric.
type UnitSystem uint8

const (
	UnitSystemUnknown UnitSystem = iota
	UnitSystemMetric
	UnitSystemImperial
)

var unitSystemTable = enum.New("unit system", UnitSystemUnknown,
	enum.P("metric", UnitSystemMetric),
	enum.P("imperial", UnitSystemImperial),
)

func (u UnitSystem) String() string {
	return unitSystemTable.Text(u)
}

func (u UnitSystem) Token() (string, bool) {
	return unitSystemTable.Encode(u)
}

// TrafficModel picks the assumption used for duration_in_traffic.
type TrafficModel uint8

const (
	TrafficModelUnknown TrafficModel = iota
	TrafficModelBestGuess
	TrafficModelPessimistic
	TrafficModelOptimistic
)

var trafficModelTable = enum.New("traffic model", TrafficModelUnknown,
	enum.P("best_guess", TrafficModelBestGuess),
	enum.P("pessimistic", TrafficModelPessimistic),
	enum.P("optimistic", TrafficModelOptimistic),
)

func (t TrafficModel) String() string {
	return trafficModelTable.Text(t)
}

func (t TrafficModel) Token() (string, bool) {
	return trafficModelTable.Encode(t)
}

// TransitMode is a preferred public transport vehicle.
type TransitMode uint8

const (
	TransitModeUnknown TransitMode = iota
	TransitModeBus
	TransitModeSubway
	TransitModeTrain
	TransitModeTram
	TransitModeRail
)

var transitModeTable = enum.New("transit mode", TransitModeUnknown,
	enum.P("bus", TransitModeBus),
	enum.P("subway", TransitModeSubway),
	enum.P("train", TransitModeTrain),
	enum.P("tram", TransitModeTram),
	enum.P("rail", TransitModeRail),
)

func (t TransitMode) String() string {
	return transitModeTable.Text(t)
}

func (t TransitMode) Token() (string, bool) {
	return transitModeTable.Encode(t)
}

// TransitRoutePreference biases transit routes.
type TransitRoutePreference uint8

const (
	TransitRoutePreferenceUnknown TransitRoutePreference = iota
	TransitRoutePreferenceLessWalking
	TransitRoutePreferenceFewerTransfers
)

var transitRoutePreferenceTable = enum.New("transit routing preference", TransitRoutePreferenceUnknown,
	enum.P("less_walking", TransitRoutePreferenceLessWalking),
	enum.P("fewer_transfers", TransitRoutePreferenceFewerTransfers),
)

func (p TransitRoutePreference) String() string {
	return transitRoutePreferenceTable.Text(p)
}

func (p TransitRoutePreference) Token() (string, bool) {
	return transitRoutePreferenceTable.Encode(p)
}

// DepartureTime is either "now" or a fixed instant.
type DepartureTime struct {
	now bool
	at  time.Time
}

// DepartNow departs at the time of the call.
func DepartNow() DepartureTime {
	return DepartureTime{now: true}
}

// DepartAt departs at t.
func DepartAt(t time.Time) DepartureTime {
	return DepartureTime{at: t}
}

// IsZero reports whether no departure time was set.
func (d DepartureTime) IsZero() bool {
	return !d.now && d.at.IsZero()
}

// String renders the wire form: "now" or Unix seconds.
func (d DepartureTime) String() string {
	if d.now {
		return "now"
	}
	return strconv.FormatInt(d.at.Unix(), 10)
}
