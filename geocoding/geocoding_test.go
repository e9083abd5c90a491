package geocoding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambiyansyah-risyal/gmaps"
	"github.com/ambiyansyah-risyal/gmaps/internal/maptest"
)

const googleplexBody = `{
  "status": "OK",
  "results": [{
    "address_components": [
      {"long_name": "1600", "short_name": "1600", "types": ["street_number"]},
      {"long_name": "Mountain View", "short_name": "Mountain View", "types": ["locality", "political"]},
      {"long_name": "United States", "short_name": "US", "types": ["country", "political"]}
    ],
    "formatted_address": "1600 Amphitheatre Pkwy, Mountain View, CA 94043, USA",
    "geometry": {
      "location": {"lat": 37.4224764, "lng": -122.0842499},
      "location_type": "ROOFTOP",
      "viewport": {"northeast": {"lat": 37.4238253802915, "lng": -122.0829009197085},
                   "southwest": {"lat": 37.4211274197085, "lng": -122.0855988802915}}
    },
    "place_id": "ChIJ2eUgeAK6j4ARbn5u_wAGqWA",
    "plus_code": {"compound_code": "CWC8+W5 Mountain View, California", "global_code": "849VCWC8+W5"},
    "types": ["street_address"]
  }]
}`

func client(t *testing.T, body string) (*gmaps.Client, *maptest.Transport) {
	t.Helper()
	tr := maptest.New(body)
	return maptest.Client(t, tr), tr
}

func TestForward(t *testing.T) {
	c, tr := client(t, googleplexBody)

	resp, err := NewRequest(c).
		WithAddress("1600 Amphitheatre Parkway, Mountain View, CA").
		WithComponents(Country("US")).
		WithLanguage(gmaps.LanguageEnglish).
		Execute(context.Background())
	require.NoError(t, err)

	q := tr.LastQuery()
	assert.Equal(t, "1600 Amphitheatre Parkway, Mountain View, CA", q.Get("address"))
	assert.Equal(t, "country:US", q.Get("components"))
	assert.Equal(t, "en", q.Get("language"))
	assert.Contains(t, tr.Last().URL.RawQuery, "address=1600%20Amphitheatre%20Parkway%2C%20Mountain%20View%2C%20CA")

	first, ok := resp.First()
	require.True(t, ok)
	assert.Equal(t, "ChIJ2eUgeAK6j4ARbn5u_wAGqWA", first.PlaceID)
	assert.Equal(t, LocationTypeRooftop, first.LocationType())
	assert.Equal(t, "37.4224764,-122.0842499", first.Geometry.Location.String())
	assert.Equal(t, "849VCWC8+W5", first.PlusCode.GlobalCode)

	country, ok := first.Component(PlaceTypeCountry)
	require.True(t, ok)
	assert.Equal(t, "US", country.ShortName)
	_, ok = first.Component(PlaceTypePostalCode)
	assert.False(t, ok)
}

func TestForwardComponentsOnly(t *testing.T) {
	c, tr := client(t, googleplexBody)

	_, err := NewRequest(c).
		WithComponents(Route("Annankatu"), AdministrativeArea("Helsinki"), Country("FI")).
		Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "route:Annankatu|administrative_area:Helsinki|country:FI", tr.LastQuery().Get("components"))
}

func TestForwardBoundsAndRegion(t *testing.T) {
	c, tr := client(t, googleplexBody)
	bounds := gmaps.Bounds{SouthWest: gmaps.MustLatLng(34.172684, -118.604794), NorthEast: gmaps.MustLatLng(34.236144, -118.500938)}

	_, err := NewRequest(c).WithAddress("Winnetka").WithBounds(bounds).WithRegion(gmaps.RegionUnitedStates).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "34.172684,-118.604794|34.236144,-118.500938", tr.LastQuery().Get("bounds"))
	assert.Equal(t, "us", tr.LastQuery().Get("region"))
}

func TestForwardValidation(t *testing.T) {
	tests := []struct {
		name    string
		build   func(*Request)
		wantMsg string
	}{
		{"nothing", func(r *Request) {}, "one of address, place_id, components is required"},
		{"blank address", func(r *Request) { r.WithAddress("   ") }, "address must not be blank"},
		{"empty component", func(r *Request) { r.WithComponents(PostalCode("")) }, "component postal_code has no value"},
		{"unknown component", func(r *Request) { r.WithComponents(Component{Kind: ComponentKind(99), Value: "x"}) }, "unsupported component"},
		{"unknown language", func(r *Request) { r.WithAddress("x").WithLanguage(gmaps.Language(250)) }, `field "language"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tr := client(t, googleplexBody)
			req := NewRequest(c)
			tt.build(req)

			_, err := req.Execute(context.Background())

			require.ErrorIs(t, err, gmaps.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Zero(t, tr.Calls())
		})
	}
}

func TestReverse(t *testing.T) {
	c, tr := client(t, googleplexBody)

	resp, err := NewReverseRequest(c).
		WithLatLng(gmaps.MustLatLng(40.714224, -73.961452)).
		WithResultTypes(PlaceTypeStreetAddress, PlaceTypeLocality).
		WithLocationTypes(LocationTypeRooftop).
		Execute(context.Background())
	require.NoError(t, err)

	q := tr.LastQuery()
	assert.Equal(t, "40.714224,-73.961452", q.Get("latlng"))
	assert.Equal(t, "street_address|locality", q.Get("result_type"))
	assert.Equal(t, "ROOFTOP", q.Get("location_type"))
	assert.Len(t, resp.Results, 1)
}

func TestReverseValidation(t *testing.T) {
	ll := gmaps.MustLatLng(1, 2)

	tests := []struct {
		name    string
		build   func(*ReverseRequest)
		wantMsg string
	}{
		{"nothing", func(r *ReverseRequest) {}, "one of latlng, place_id is required"},
		{"both", func(r *ReverseRequest) { r.WithLatLng(ll).WithPlaceID("abc") }, "fields latlng and place_id are mutually exclusive"},
		{"filters without latlng", func(r *ReverseRequest) {
			r.WithPlaceID("abc").WithResultTypes(PlaceTypeRoute)
		}, "filters require latlng"},
		{"unknown result type", func(r *ReverseRequest) { r.WithLatLng(ll).WithResultTypes(PlaceType(200)) }, `field "result_type"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tr := client(t, googleplexBody)
			req := NewReverseRequest(c)
			tt.build(req)

			_, err := req.Execute(context.Background())

			require.ErrorIs(t, err, gmaps.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Zero(t, tr.Calls())
		})
	}
}

func TestZeroResults(t *testing.T) {
	c, _ := client(t, `{"status":"ZERO_RESULTS","results":[]}`)

	resp, err := NewRequest(c).WithAddress("nowhere at all").Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Empty())
	_, ok := resp.First()
	assert.False(t, ok)
}

func TestRequestDenied(t *testing.T) {
	c, _ := client(t, `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid.","results":[]}`)

	_, err := NewRequest(c).WithAddress("x").Execute(context.Background())
	require.ErrorIs(t, err, gmaps.ErrRequestDenied)
	assert.Contains(t, err.Error(), "The provided API key is invalid.")
}

func TestEnumParsing(t *testing.T) {
	lt, ok := ParseLocationType("GEOMETRIC_CENTER")
	assert.True(t, ok)
	assert.Equal(t, LocationTypeGeometricCenter, lt)

	pt, ok := ParsePlaceType("postal_code")
	assert.True(t, ok)
	assert.Equal(t, PlaceTypePostalCode, pt)

	_, ok = ParsePlaceType("spaceport")
	assert.False(t, ok)
}
