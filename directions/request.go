// Package directions calculates routes between locations.
package directions

import (
	"context"
	"time"

	"github.com/ambiyansyah-risyal/gmaps"
)

// MaxWaypoints is the most intermediate waypoints a request may carry.
const MaxWaypoints = 25

// Endpoint is the Directions web service.
var Endpoint = gmaps.Endpoint{API: gmaps.APIDirections, URL: gmaps.DirectionsURL}

// Request builds a directions call. Setters return the request so calls
// can be chained; nothing is checked until Query or Execute.
type Request struct {
	client *gmaps.Client

	origin      gmaps.Location
	destination gmaps.Location
	waypoints   []gmaps.Location
	optimize    bool

	mode         TravelMode
	alternatives bool
	avoid        []Avoid
	language     gmaps.Language
	region       gmaps.Region
	units        UnitSystem

	arrivalTime   time.Time
	departureTime DepartureTime
	trafficModel  TrafficModel

	transitModes      []TransitMode
	transitPreference TransitRoutePreference
}

// NewRequest starts a route from origin to destination.
func NewRequest(client *gmaps.Client, origin, destination gmaps.Location) *Request {
	return &Request{client: client, origin: origin, destination: destination}
}

func (r *Request) WithOrigin(l gmaps.Location) *Request {
	r.origin = l
	return r
}

func (r *Request) WithDestination(l gmaps.Location) *Request {
	r.destination = l
	return r
}

// WithWaypoints routes through locs in order.
func (r *Request) WithWaypoints(locs ...gmaps.Location) *Request {
	r.waypoints = append(r.waypoints, locs...)
	return r
}

// WithOptimizedWaypoints lets the service reorder waypoints; the chosen
// order is reported in Route.WaypointOrder.
func (r *Request) WithOptimizedWaypoints(optimize bool) *Request {
	r.optimize = optimize
	return r
}

func (r *Request) WithTravelMode(m TravelMode) *Request {
	r.mode = m
	return r
}

// WithAlternatives asks for more than one route.
func (r *Request) WithAlternatives(alternatives bool) *Request {
	r.alternatives = alternatives
	return r
}

func (r *Request) WithAvoid(avoid ...Avoid) *Request {
	r.avoid = append(r.avoid, avoid...)
	return r
}

func (r *Request) WithLanguage(l gmaps.Language) *Request {
	r.language = l
	return r
}

func (r *Request) WithRegion(reg gmaps.Region) *Request {
	r.region = reg
	return r
}

func (r *Request) WithUnits(u UnitSystem) *Request {
	r.units = u
	return r
}

// WithArrivalTime asks for a transit route arriving by t.
func (r *Request) WithArrivalTime(t time.Time) *Request {
	r.arrivalTime = t
	return r
}

func (r *Request) WithDepartureTime(d DepartureTime) *Request {
	r.departureTime = d
	return r
}

// WithTrafficModel sets the traffic assumption. It needs a departure time.
func (r *Request) WithTrafficModel(m TrafficModel) *Request {
	r.trafficModel = m
	return r
}

func (r *Request) WithTransitModes(modes ...TransitMode) *Request {
	r.transitModes = append(r.transitModes, modes...)
	return r
}

func (r *Request) WithTransitRoutePreference(p TransitRoutePreference) *Request {
	r.transitPreference = p
	return r
}

// Query renders the request and declares its rules.
func (r *Request) Query() *gmaps.Query {
	q := gmaps.NewQuery().
		Require("origin").
		Require("destination").
		Exclusive("arrival_time", "departure_time")

	if !r.origin.IsZero() {
		q.Set("origin", r.origin.String()).Check("origin", r.origin.Validate)
	}
	if !r.destination.IsZero() {
		q.Set("destination", r.destination.String()).Check("destination", r.destination.Validate)
	}
	if len(r.waypoints) > 0 {
		value := gmaps.JoinLocations(r.waypoints)
		if r.optimize {
			value = "optimize:true|" + value
		}
		q.Set("waypoints", value).Check("waypoints", func() error {
			return gmaps.ValidateLocations("waypoints", r.waypoints, 1, MaxWaypoints)
		})
	}

	if r.mode != TravelModeUnknown {
		q.SetEnum("mode", r.mode)
	}
	q.SetIf(r.alternatives, "alternatives", func() string { return gmaps.Bool(true) })
	gmaps.SetEnumList(q, "avoid", r.avoid)
	if r.language != gmaps.LanguageUnknown {
		q.SetEnum("language", r.language)
	}
	if r.region != gmaps.RegionUnknown {
		q.SetEnum("region", r.region)
	}
	if r.units != UnitSystemUnknown {
		q.SetEnum("units", r.units)
	}

	q.SetIf(!r.arrivalTime.IsZero(), "arrival_time", func() string { return gmaps.Unix(r.arrivalTime) })
	q.SetIf(!r.departureTime.IsZero(), "departure_time", r.departureTime.String)
	if r.trafficModel != TrafficModelUnknown {
		q.SetEnum("traffic_model", r.trafficModel)
	}

	gmaps.SetEnumList(q, "transit_mode", r.transitModes)
	if r.transitPreference != TransitRoutePreferenceUnknown {
		q.SetEnum("transit_routing_preference", r.transitPreference)
	}

	return q.Rule(r.checkCombinations)
}

// checkCombinations enforces the parameter combinations the service rejects.
func (r *Request) checkCombinations() error {
	transit := r.mode == TravelModeTransit
	switch {
	case !r.arrivalTime.IsZero() && !transit:
		return gmaps.ValidationErrorf("arrival_time requires mode=transit")
	case len(r.transitModes) > 0 && !transit:
		return gmaps.ValidationErrorf("transit_mode requires mode=transit")
	case r.transitPreference != TransitRoutePreferenceUnknown && !transit:
		return gmaps.ValidationErrorf("transit_routing_preference requires mode=transit")
	case len(r.waypoints) > 0 && transit:
		return gmaps.ValidationErrorf("waypoints are not supported with mode=transit")
	case len(r.waypoints) > 0 && r.alternatives:
		return gmaps.ValidationErrorf("waypoints cannot be combined with alternatives")
	case r.trafficModel != TrafficModelUnknown && r.departureTime.IsZero():
		return gmaps.ValidationErrorf("traffic_model requires departure_time")
	}
	return nil
}

// Execute validates the request and calls the service.
func (r *Request) Execute(ctx context.Context) (*Response, error) {
	return gmaps.Get[Response](ctx, r.client, Endpoint, r.Query())
}
