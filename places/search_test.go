package places

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambiyansyah-risyal/gmaps"
	"github.com/ambiyansyah-risyal/gmaps/internal/maptest"
)

const sydneyBody = `{
  "status": "OK",
  "html_attributions": [],
  "next_page_token": "CpQCAgEAAFxg8o",
  "results": [{
    "business_status": "OPERATIONAL",
    "formatted_address": "Darling Harbour NSW 2000, Australia",
    "geometry": {"location": {"lat": -33.8673, "lng": 151.2006},
                 "viewport": {"northeast": {"lat": -33.86, "lng": 151.21}, "southwest": {"lat": -33.87, "lng": 151.19}}},
    "name": "Harbour Bar",
    "opening_hours": {"open_now": true},
    "place_id": "ChIJ_xyz",
    "price_level": 2,
    "rating": 4.4,
    "user_ratings_total": 1200,
    "types": ["bar", "restaurant"]
  }, {
    "business_status": "TEMPORARILY_SOMEWHERE_ELSE",
    "geometry": {"location": {"lat": -33.8, "lng": 151.2}, "viewport": {"northeast": {"lat": 0, "lng": 0}, "southwest": {"lat": 0, "lng": 0}}},
    "name": "Ghost Cafe",
    "place_id": "ChIJ_abc",
    "types": ["cafe"]
  }]
}`

var sydney = gmaps.MustLatLng(-33.8670522, 151.1957362)

func client(t *testing.T) (*gmaps.Client, *maptest.Transport) {
	t.Helper()
	tr := maptest.New(sydneyBody)
	return maptest.Client(t, tr), tr
}

func TestTextSearch(t *testing.T) {
	c, tr := client(t)

	resp, err := NewTextSearch(c, "restaurants in Sydney").
		WithLocation(sydney, 1500).
		WithOpenNow(true).
		WithPriceRange(1, 3).
		Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/maps/api/place/textsearch/json", tr.Last().URL.Path)
	q := tr.LastQuery()
	assert.Equal(t, "restaurants in Sydney", q.Get("query"))
	assert.Equal(t, "-33.8670522,151.1957362", q.Get("location"))
	assert.Equal(t, "1500", q.Get("radius"))
	assert.Equal(t, "true", q.Get("opennow"))
	assert.Equal(t, "1", q.Get("minprice"))
	assert.Equal(t, "3", q.Get("maxprice"))

	require.Len(t, resp.Results, 2)
	bar := resp.Results[0]
	assert.Equal(t, "Harbour Bar", bar.Name)
	assert.Equal(t, BusinessStatusOperational, bar.BusinessStatus())
	require.NotNil(t, bar.PriceLevel)
	assert.Equal(t, 2, *bar.PriceLevel)
	assert.True(t, bar.OpeningHours.OpenNow)
	assert.Equal(t, "CpQCAgEAAFxg8o", resp.NextPageToken)

	ghost := resp.Results[1]
	assert.Equal(t, BusinessStatusUnknown, ghost.BusinessStatus())
	assert.Equal(t, "TEMPORARILY_SOMEWHERE_ELSE", ghost.RawBusinessStatus)
}

func TestTextSearchTypeOnly(t *testing.T) {
	c, tr := client(t)

	_, err := NewTextSearch(c, "").WithType(TypeMuseum).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "museum", tr.LastQuery().Get("type"))
	assert.False(t, tr.LastQuery().Has("query"))
}

func TestTextSearchPageToken(t *testing.T) {
	c, tr := client(t)

	_, err := NewTextSearch(c, "").WithPageToken("CpQCAgEAAFxg8o").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "CpQCAgEAAFxg8o", tr.LastQuery().Get("pagetoken"))
}

func TestTextSearchValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     func(*gmaps.Client) *TextSearchRequest
		wantMsg string
	}{
		{"no query or type", func(c *gmaps.Client) *TextSearchRequest { return NewTextSearch(c, "  ") }, "one of query, type is required"},
		{"location without radius", func(c *gmaps.Client) *TextSearchRequest {
			return NewTextSearch(c, "pizza").WithLocation(sydney, 0)
		}, "radius must be between 1 and 50000"},
		{"radius too large", func(c *gmaps.Client) *TextSearchRequest {
			return NewTextSearch(c, "pizza").WithLocation(sydney, MaxRadius+1)
		}, "radius must be between 1 and 50000"},
		{"inverted prices", func(c *gmaps.Client) *TextSearchRequest {
			return NewTextSearch(c, "pizza").WithPriceRange(3, 1)
		}, "minprice 3 exceeds maxprice 1"},
		{"price out of range", func(c *gmaps.Client) *TextSearchRequest {
			return NewTextSearch(c, "pizza").WithPriceRange(0, 5)
		}, "price levels must be between 0 and 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tr := client(t)

			_, err := tt.req(c).Execute(context.Background())

			require.ErrorIs(t, err, gmaps.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Zero(t, tr.Calls())
		})
	}
}

func TestNearbySearch(t *testing.T) {
	c, tr := client(t)

	_, err := NewNearbySearch(c, sydney).
		WithRadius(1500).
		WithType(TypeRestaurant).
		WithKeyword("cruise").
		Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/maps/api/place/nearbysearch/json", tr.Last().URL.Path)
	assert.Equal(t, "keyword=cruise&location=-33.8670522%2C151.1957362&radius=1500&type=restaurant&key=test-key", tr.Last().URL.RawQuery)
}

func TestNearbySearchRankByDistance(t *testing.T) {
	c, tr := client(t)

	_, err := NewNearbySearch(c, sydney).WithRankBy(RankByDistance).WithType(TypeCafe).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "distance", tr.LastQuery().Get("rankby"))
	assert.False(t, tr.LastQuery().Has("radius"))
}

func TestNearbySearchValidation(t *testing.T) {
	tests := []struct {
		name    string
		build   func(*NearbySearchRequest)
		wantMsg string
	}{
		{"no radius", func(r *NearbySearchRequest) {}, "radius is required unless rankby=distance"},
		{"radius with distance ranking", func(r *NearbySearchRequest) {
			r.WithRankBy(RankByDistance).WithRadius(100).WithKeyword("x")
		}, "radius cannot be combined with rankby=distance"},
		{"distance ranking without filter", func(r *NearbySearchRequest) { r.WithRankBy(RankByDistance) }, "rankby=distance requires keyword, name or type"},
		{"radius too large", func(r *NearbySearchRequest) { r.WithRadius(60000) }, "radius must be between 1 and 50000"},
		{"negative radius", func(r *NearbySearchRequest) { r.WithRadius(-5) }, "radius must be between 1 and 50000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, tr := client(t)
			req := NewNearbySearch(c, sydney)
			tt.build(req)

			_, err := req.Execute(context.Background())

			require.ErrorIs(t, err, gmaps.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Zero(t, tr.Calls())
		})
	}
}

func TestParseType(t *testing.T) {
	typ, ok := ParseType("tourist_attraction")
	assert.True(t, ok)
	assert.Equal(t, TypeTouristAttraction, typ)
	assert.Equal(t, "tourist_attraction", typ.String())
}
