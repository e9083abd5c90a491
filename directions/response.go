package directions

import (
	"time"

	"github.com/ambiyansyah-risyal/gmaps"
)

// Response is the Directions answer. An empty Routes list comes with a
// ZERO_RESULTS or NOT_FOUND status on the envelope.
type Response struct {
	gmaps.Envelope
	GeocodedWaypoints    []GeocodedWaypoint `json:"geocoded_waypoints,omitempty"`
	Routes               []Route            `json:"routes"`
	AvailableTravelModes []string           `json:"available_travel_modes,omitempty"`
}

// GeocodedWaypoint reports how an origin, waypoint or destination was
// resolved.
type GeocodedWaypoint struct {
	GeocoderStatus string   `json:"geocoder_status"`
	PlaceID        string   `json:"place_id,omitempty"`
	Types          []string `json:"types,omitempty"`
	PartialMatch   bool     `json:"partial_match,omitempty"`
}

// Route is one way from origin to destination.
type Route struct {
	Summary          string       `json:"summary"`
	Legs             []Leg        `json:"legs"`
	WaypointOrder    []int        `json:"waypoint_order"`
	OverviewPolyline Polyline     `json:"overview_polyline"`
	Bounds           gmaps.Bounds `json:"bounds"`
	Copyrights       string       `json:"copyrights"`
	Warnings         []string     `json:"warnings,omitempty"`
	Fare             *Fare        `json:"fare,omitempty"`
}

// Distance sums the leg distances in meters.
func (r Route) Distance() int {
	total := 0
	for _, l := range r.Legs {
		total += l.Distance.Value
	}
	return total
}

// Duration sums the leg durations.
func (r Route) Duration() time.Duration {
	var total time.Duration
	for _, l := range r.Legs {
		total += l.Duration.Duration()
	}
	return total
}

// Leg is the part of a route between two consecutive stops.
type Leg struct {
	Distance          Distance       `json:"distance"`
	Duration          Duration       `json:"duration"`
	DurationInTraffic *Duration      `json:"duration_in_traffic,omitempty"`
	StartAddress      string         `json:"start_address"`
	EndAddress        string         `json:"end_address"`
	StartLocation     gmaps.LatLng   `json:"start_location"`
	EndLocation       gmaps.LatLng   `json:"end_location"`
	Steps             []Step         `json:"steps"`
	ArrivalTime       *TimeZoneValue `json:"arrival_time,omitempty"`
	DepartureTime     *TimeZoneValue `json:"departure_time,omitempty"`
}

// Step is a single instruction.
type Step struct {
	HTMLInstructions string          `json:"html_instructions"`
	Distance         Distance        `json:"distance"`
	Duration         Duration        `json:"duration"`
	StartLocation    gmaps.LatLng    `json:"start_location"`
	EndLocation      gmaps.LatLng    `json:"end_location"`
	Polyline         Polyline        `json:"polyline"`
	TravelMode       string          `json:"travel_mode"`
	Maneuver         string          `json:"maneuver,omitempty"`
	Steps            []Step          `json:"steps,omitempty"`
	TransitDetails   *TransitDetails `json:"transit_details,omitempty"`
}

// Polyline is an encoded polyline.
type Polyline struct {
	Points string `json:"points"`
}

// Distance is a length in meters with its display text.
type Distance struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Duration is a length of time in seconds with its display text.
type Duration struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}

// Duration converts the value to a time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d.Value) * time.Second
}

// Fare is the total transit fare.
type Fare struct {
	Currency string  `json:"currency"`
	Text     string  `json:"text"`
	Value    float64 `json:"value"`
}

// TimeZoneValue is an instant with the zone it is displayed in.
type TimeZoneValue struct {
	Text     string `json:"text"`
	TimeZone string `json:"time_zone"`
	Value    int64  `json:"value"`
}

// Time returns the instant in its own zone when the zone is known.
func (t TimeZoneValue) Time() time.Time {
	ts := time.Unix(t.Value, 0)
	if loc, err := time.LoadLocation(t.TimeZone); err == nil {
		return ts.In(loc)
	}
	return ts
}

// TransitDetails describes a public transport step.
type TransitDetails struct {
	ArrivalStop   Stop          `json:"arrival_stop"`
	DepartureStop Stop          `json:"departure_stop"`
	ArrivalTime   TimeZoneValue `json:"arrival_time"`
	DepartureTime TimeZoneValue `json:"departure_time"`
	Headsign      string        `json:"headsign"`
	NumStops      int           `json:"num_stops"`
	Line          TransitLine   `json:"line"`
}

// Stop is a transit station.
type Stop struct {
	Name     string       `json:"name"`
	Location gmaps.LatLng `json:"location"`
}

// TransitLine is the line a transit step rides.
type TransitLine struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
	Color     string `json:"color,omitempty"`
	Vehicle   struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"vehicle"`
}
