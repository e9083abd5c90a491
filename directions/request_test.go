package directions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambiyansyah-risyal/gmaps"
	"github.com/ambiyansyah-risyal/gmaps/internal/maptest"
)

const routeBody = `{
  "status": "OK",
  "geocoded_waypoints": [{"geocoder_status": "OK", "place_id": "A"}, {"geocoder_status": "OK", "place_id": "B"}],
  "routes": [{
    "summary": "ON-401 E",
    "waypoint_order": [],
    "overview_polyline": {"points": "abc"},
    "bounds": {"southwest": {"lat": 43.6, "lng": -79.4}, "northeast": {"lat": 45.5, "lng": -73.5}},
    "legs": [
      {"distance": {"text": "541 km", "value": 541000}, "duration": {"text": "5 hours", "value": 18000},
       "start_address": "Toronto, ON", "end_address": "Kingston, ON",
       "start_location": {"lat": 43.6532, "lng": -79.3832}, "end_location": {"lat": 44.2312, "lng": -76.486}, "steps": []},
      {"distance": {"text": "1 km", "value": 1000}, "duration": {"text": "1 min", "value": 60},
       "start_address": "Kingston, ON", "end_address": "Montreal, QC",
       "start_location": {"lat": 44.2312, "lng": -76.486}, "end_location": {"lat": 45.5017, "lng": -73.5673}, "steps": []}
    ]
  }]
}`

func newRequest(t *testing.T, body string) (*Request, *maptest.Transport) {
	t.Helper()
	tr := maptest.New(body)
	client := maptest.Client(t, tr)
	return NewRequest(client, gmaps.Address("Toronto"), gmaps.Address("Montreal")), tr
}

func TestQueryEncoding(t *testing.T) {
	req, _ := newRequest(t, routeBody)
	req.WithTravelMode(TravelModeDriving).
		WithAvoid(AvoidTolls, AvoidFerries).
		WithLanguage(gmaps.LanguageFrench).
		WithUnits(UnitSystemImperial)

	raw, err := req.Query().Encode("secret")
	require.NoError(t, err)
	assert.Equal(t, "avoid=tolls%7Cferries&destination=Montreal&language=fr&mode=driving&origin=Toronto&units=imperial&key=secret", raw)
}

func TestQueryWaypoints(t *testing.T) {
	req, _ := newRequest(t, routeBody)
	req.WithWaypoints(gmaps.Address("Kingston"), gmaps.PlaceID("ChIJ123")).WithOptimizedWaypoints(true)

	value, ok := req.Query().Get("waypoints")
	require.True(t, ok)
	assert.Equal(t, "optimize:true|Kingston|place_id:ChIJ123", value)
}

func TestQueryDepartureTime(t *testing.T) {
	req, _ := newRequest(t, routeBody)

	req.WithDepartureTime(DepartNow())
	value, _ := req.Query().Get("departure_time")
	assert.Equal(t, "now", value)

	req.WithDepartureTime(DepartAt(time.Unix(1_700_000_000, 0)))
	value, _ = req.Query().Get("departure_time")
	assert.Equal(t, "1700000000", value)
}

func TestQueryValidation(t *testing.T) {
	tooMany := make([]gmaps.Location, MaxWaypoints+1)
	for i := range tooMany {
		tooMany[i] = gmaps.Address(fmt.Sprintf("stop %d", i))
	}

	tests := []struct {
		name    string
		build   func(*Request)
		wantMsg string
	}{
		{"missing origin", func(r *Request) { r.WithOrigin(gmaps.Location{}) }, `missing required field "origin"`},
		{"empty destination", func(r *Request) { r.WithDestination(gmaps.Address(" ")) }, "address must not be empty"},
		{"arrival and departure", func(r *Request) {
			r.WithTravelMode(TravelModeTransit).WithArrivalTime(time.Unix(1, 0)).WithDepartureTime(DepartNow())
		}, "fields arrival_time and departure_time are mutually exclusive"},
		{"arrival without transit", func(r *Request) { r.WithArrivalTime(time.Unix(1, 0)) }, "arrival_time requires mode=transit"},
		{"transit mode without transit", func(r *Request) { r.WithTransitModes(TransitModeBus) }, "transit_mode requires mode=transit"},
		{"preference without transit", func(r *Request) {
			r.WithTransitRoutePreference(TransitRoutePreferenceLessWalking)
		}, "transit_routing_preference requires mode=transit"},
		{"waypoints with transit", func(r *Request) {
			r.WithTravelMode(TravelModeTransit).WithWaypoints(gmaps.Address("Kingston"))
		}, "waypoints are not supported with mode=transit"},
		{"waypoints with alternatives", func(r *Request) {
			r.WithAlternatives(true).WithWaypoints(gmaps.Address("Kingston"))
		}, "waypoints cannot be combined with alternatives"},
		{"traffic model without departure", func(r *Request) { r.WithTrafficModel(TrafficModelPessimistic) }, "traffic_model requires departure_time"},
		{"too many waypoints", func(r *Request) { r.WithWaypoints(tooMany...) }, "at most 25 location(s)"},
		{"unknown mode", func(r *Request) { r.WithTravelMode(TravelMode(42)) }, `field "mode"`},
		{"unknown avoid", func(r *Request) { r.WithAvoid(Avoid(42)) }, `field "avoid"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, tr := newRequest(t, routeBody)
			tt.build(req)

			_, err := req.Execute(context.Background())

			require.ErrorIs(t, err, gmaps.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Zero(t, tr.Calls(), "validation failures must not reach the network")
		})
	}
}

func TestValidTransitRequest(t *testing.T) {
	req, _ := newRequest(t, routeBody)
	req.WithTravelMode(TravelModeTransit).
		WithArrivalTime(time.Unix(1_700_000_000, 0)).
		WithTransitModes(TransitModeSubway, TransitModeTrain).
		WithTransitRoutePreference(TransitRoutePreferenceFewerTransfers)

	raw, err := req.Query().Encode("")
	require.NoError(t, err)
	assert.Contains(t, raw, "transit_mode=subway%7Ctrain")
	assert.Contains(t, raw, "transit_routing_preference=fewer_transfers")
	assert.Contains(t, raw, "arrival_time=1700000000")
}

func TestExecute(t *testing.T) {
	req, tr := newRequest(t, routeBody)

	resp, err := req.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, gmaps.StatusOK, resp.Status())
	require.Len(t, resp.Routes, 1)
	route := resp.Routes[0]
	assert.Equal(t, "ON-401 E", route.Summary)
	assert.Equal(t, 542000, route.Distance())
	assert.Equal(t, 5*time.Hour+time.Minute, route.Duration())
	assert.Equal(t, "43.6532,-79.3832", route.Legs[0].StartLocation.String())

	assert.Equal(t, "/maps/api/directions/json", tr.Last().URL.Path)
	assert.Equal(t, "test-key", tr.LastQuery().Get("key"))
}

func TestExecuteZeroResults(t *testing.T) {
	req, _ := newRequest(t, `{"status":"ZERO_RESULTS","routes":[]}`)

	resp, err := req.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Empty())
	assert.Empty(t, resp.Routes)
}

func TestExecuteNotFound(t *testing.T) {
	req, _ := newRequest(t, `{"status":"NOT_FOUND","routes":[]}`)

	_, err := req.Execute(context.Background())
	assert.ErrorIs(t, err, gmaps.ErrInvalidRequest)
}

func TestParseTravelMode(t *testing.T) {
	for _, m := range []TravelMode{TravelModeDriving, TravelModeWalking, TravelModeBicycling, TravelModeTransit} {
		parsed, ok := ParseTravelMode(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, parsed)
	}

	_, ok := ParseTravelMode("teleport")
	assert.False(t, ok)

	var m TravelMode
	require.NoError(t, m.UnmarshalText([]byte("teleport")))
	assert.Equal(t, TravelModeUnknown, m)
}
