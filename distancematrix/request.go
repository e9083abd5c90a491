// Package distancematrix computes travel distance and time for every pair
// of origins and destinations.
package distancematrix

import (
	"context"
	"time"

	"github.com/ambiyansyah-risyal/gmaps"
	"github.com/ambiyansyah-risyal/gmaps/directions"
)

const (
	// MaxLocations bounds origins and destinations separately.
	MaxLocations = 25
	// MaxElements bounds origins × destinations.
	MaxElements = 100
)

// Endpoint is the Distance Matrix web service.
var Endpoint = gmaps.Endpoint{API: gmaps.APIDistanceMatrix, URL: gmaps.DistanceMatrixURL}

// Request builds a distance matrix call. Travel options share their types
// with the directions package.
type Request struct {
	client *gmaps.Client

	origins      []gmaps.Location
	destinations []gmaps.Location

	mode     directions.TravelMode
	avoid    []directions.Avoid
	language gmaps.Language
	region   gmaps.Region
	units    directions.UnitSystem

	arrivalTime   time.Time
	departureTime directions.DepartureTime
	trafficModel  directions.TrafficModel

	transitModes      []directions.TransitMode
	transitPreference directions.TransitRoutePreference
}

// NewRequest starts a matrix between origins and destinations.
func NewRequest(client *gmaps.Client, origins, destinations []gmaps.Location) *Request {
	return &Request{client: client, origins: origins, destinations: destinations}
}

func (r *Request) WithOrigins(locs ...gmaps.Location) *Request {
	r.origins = append(r.origins, locs...)
	return r
}

func (r *Request) WithDestinations(locs ...gmaps.Location) *Request {
	r.destinations = append(r.destinations, locs...)
	return r
}

func (r *Request) WithTravelMode(m directions.TravelMode) *Request {
	r.mode = m
	return r
}

func (r *Request) WithAvoid(avoid ...directions.Avoid) *Request {
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

func (r *Request) WithUnits(u directions.UnitSystem) *Request {
	r.units = u
	return r
}

func (r *Request) WithArrivalTime(t time.Time) *Request {
	r.arrivalTime = t
	return r
}

func (r *Request) WithDepartureTime(d directions.DepartureTime) *Request {
	r.departureTime = d
	return r
}

func (r *Request) WithTrafficModel(m directions.TrafficModel) *Request {
	r.trafficModel = m
	return r
}

func (r *Request) WithTransitModes(modes ...directions.TransitMode) *Request {
	r.transitModes = append(r.transitModes, modes...)
	return r
}

func (r *Request) WithTransitRoutePreference(p directions.TransitRoutePreference) *Request {
	r.transitPreference = p
	return r
}

// Query renders the request and declares its rules.
func (r *Request) Query() *gmaps.Query {
	q := gmaps.NewQuery().
		Require("origins").
		Require("destinations").
		Exclusive("arrival_time", "departure_time")

	if len(r.origins) > 0 {
		q.Set("origins", gmaps.JoinLocations(r.origins)).Check("origins", func() error {
			return gmaps.ValidateLocations("origins", r.origins, 1, MaxLocations)
		})
	}
	if len(r.destinations) > 0 {
		q.Set("destinations", gmaps.JoinLocations(r.destinations)).Check("destinations", func() error {
			return gmaps.ValidateLocations("destinations", r.destinations, 1, MaxLocations)
		})
	}

	if r.mode != directions.TravelModeUnknown {
		q.SetEnum("mode", r.mode)
	}
	gmaps.SetEnumList(q, "avoid", r.avoid)
	if r.language != gmaps.LanguageUnknown {
		q.SetEnum("language", r.language)
	}
	if r.region != gmaps.RegionUnknown {
		q.SetEnum("region", r.region)
	}
	if r.units != directions.UnitSystemUnknown {
		q.SetEnum("units", r.units)
	}

	q.SetIf(!r.arrivalTime.IsZero(), "arrival_time", func() string { return gmaps.Unix(r.arrivalTime) })
	q.SetIf(!r.departureTime.IsZero(), "departure_time", r.departureTime.String)
	if r.trafficModel != directions.TrafficModelUnknown {
		q.SetEnum("traffic_model", r.trafficModel)
	}

	gmaps.SetEnumList(q, "transit_mode", r.transitModes)
	if r.transitPreference != directions.TransitRoutePreferenceUnknown {
		q.SetEnum("transit_routing_preference", r.transitPreference)
	}

	return q.Rule(r.checkCombinations)
}

func (r *Request) checkCombinations() error {
	transit := r.mode == directions.TravelModeTransit
	switch {
	case len(r.origins)*len(r.destinations) > MaxElements:
		return gmaps.ValidationErrorf("%d origins × %d destinations exceeds %d elements",
			len(r.origins), len(r.destinations), MaxElements)
	case !r.arrivalTime.IsZero() && !transit:
		return gmaps.ValidationErrorf("arrival_time requires mode=transit")
	case len(r.transitModes) > 0 && !transit:
		return gmaps.ValidationErrorf("transit_mode requires mode=transit")
	case r.transitPreference != directions.TransitRoutePreferenceUnknown && !transit:
		return gmaps.ValidationErrorf("transit_routing_preference requires mode=transit")
	case r.trafficModel != directions.TrafficModelUnknown && r.departureTime.IsZero():
		return gmaps.ValidationErrorf("traffic_model requires departure_time")
	}
	return nil
}

// Execute validates the request and calls the service. A successful
// response may still contain failed elements; see Response.Failures.
func (r *Request) Execute(ctx context.Context) (*Response, error) {
	return gmaps.Get[Response](ctx, r.client, Endpoint, r.Query())
}
