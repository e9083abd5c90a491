// Package places searches for establishments and points of interest.
package places

import (
	"context"
	"strconv"
	"strings"

	"github.com/ambiyansyah-risyal/gmaps"
)

// MaxRadius is the largest search radius in meters.
const MaxRadius = 50000

var (
	// TextSearchEndpoint is the Places text search service.
	TextSearchEndpoint = gmaps.Endpoint{API: gmaps.APIPlaces, URL: gmaps.PlacesTextURL}
	// NearbySearchEndpoint is the Places nearby search service.
	NearbySearchEndpoint = gmaps.Endpoint{API: gmaps.APIPlaces, URL: gmaps.PlacesNearbyURL}
)

// TextSearchRequest finds places matching free text such as
// "pizza in New York".
type TextSearchRequest struct {
	client *gmaps.Client

	query     string
	placeType Type
	location  *gmaps.LatLng
	radius    int
	language  gmaps.Language
	region    gmaps.Region
	openNow   bool
	minPrice  *int
	maxPrice  *int
	pageToken string
}

// NewTextSearch searches for query. query may be empty when a type is set.
func NewTextSearch(client *gmaps.Client, query string) *TextSearchRequest {
	return &TextSearchRequest{client: client, query: query}
}

func (r *TextSearchRequest) WithType(t Type) *TextSearchRequest {
	r.placeType = t
	return r
}

// WithLocation biases results to a circle around center.
func (r *TextSearchRequest) WithLocation(center gmaps.LatLng, radius int) *TextSearchRequest {
	r.location = &center
	r.radius = radius
	return r
}

func (r *TextSearchRequest) WithLanguage(l gmaps.Language) *TextSearchRequest {
	r.language = l
	return r
}

func (r *TextSearchRequest) WithRegion(reg gmaps.Region) *TextSearchRequest {
	r.region = reg
	return r
}

func (r *TextSearchRequest) WithOpenNow(open bool) *TextSearchRequest {
	r.openNow = open
	return r
}

// WithPriceRange keeps places priced between min and max, from 0 (free)
// to 4 (very expensive).
func (r *TextSearchRequest) WithPriceRange(min, max int) *TextSearchRequest {
	r.minPrice, r.maxPrice = &min, &max
	return r
}

// WithPageToken fetches the page named by a previous NextPageToken.
func (r *TextSearchRequest) WithPageToken(token string) *TextSearchRequest {
	r.pageToken = token
	return r
}

func (r *TextSearchRequest) Query() *gmaps.Query {
	q := gmaps.NewQuery()
	if r.pageToken == "" {
		q.AtLeastOne("query", "type")
	}

	q.SetIf(strings.TrimSpace(r.query) != "", "query", func() string { return r.query })
	if r.placeType != TypeUnknown {
		q.SetEnum("type", r.placeType)
	}
	setCircle(q, r.location, r.radius)
	if r.language != gmaps.LanguageUnknown {
		q.SetEnum("language", r.language)
	}
	if r.region != gmaps.RegionUnknown {
		q.SetEnum("region", r.region)
	}
	setFilters(q, r.openNow, r.minPrice, r.maxPrice)
	q.SetIf(r.pageToken != "", "pagetoken", func() string { return r.pageToken })

	return q.Rule(func() error {
		if r.location == nil && r.radius != 0 {
			return gmaps.ValidationErrorf("radius requires location")
		}
		return checkPrices(r.minPrice, r.maxPrice)
	})
}

func (r *TextSearchRequest) Execute(ctx context.Context) (*Response, error) {
	return gmaps.Get[Response](ctx, r.client, TextSearchEndpoint, r.Query())
}

// NearbySearchRequest finds places around a location.
type NearbySearchRequest struct {
	client *gmaps.Client

	location  gmaps.LatLng
	radius    int
	rankBy    RankBy
	keyword   string
	name      string
	placeType Type
	language  gmaps.Language
	openNow   bool
	minPrice  *int
	maxPrice  *int
	pageToken string
}

// NewNearbySearch searches around location. Either set a radius or rank
// by distance.
func NewNearbySearch(client *gmaps.Client, location gmaps.LatLng) *NearbySearchRequest {
	return &NearbySearchRequest{client: client, location: location}
}

// WithRadius bounds the search to radius meters.
func (r *NearbySearchRequest) WithRadius(radius int) *NearbySearchRequest {
	r.radius = radius
	return r
}

func (r *NearbySearchRequest) WithRankBy(rb RankBy) *NearbySearchRequest {
	r.rankBy = rb
	return r
}

func (r *NearbySearchRequest) WithKeyword(k string) *NearbySearchRequest {
	r.keyword = k
	return r
}

func (r *NearbySearchRequest) WithName(n string) *NearbySearchRequest {
	r.name = n
	return r
}

func (r *NearbySearchRequest) WithType(t Type) *NearbySearchRequest {
	r.placeType = t
	return r
}

func (r *NearbySearchRequest) WithLanguage(l gmaps.Language) *NearbySearchRequest {
	r.language = l
	return r
}

func (r *NearbySearchRequest) WithOpenNow(open bool) *NearbySearchRequest {
	r.openNow = open
	return r
}

func (r *NearbySearchRequest) WithPriceRange(min, max int) *NearbySearchRequest {
	r.minPrice, r.maxPrice = &min, &max
	return r
}

func (r *NearbySearchRequest) WithPageToken(token string) *NearbySearchRequest {
	r.pageToken = token
	return r
}

func (r *NearbySearchRequest) Query() *gmaps.Query {
	q := gmaps.NewQuery().
		Require("location").
		Set("location", r.location.String()).
		Check("location", r.location.Validate)

	q.SetIf(r.radius != 0, "radius", func() string { return strconv.Itoa(r.radius) })
	q.Check("radius", func() error { return checkRadius(r.radius) })
	if r.rankBy != RankByUnknown {
		q.SetEnum("rankby", r.rankBy)
	}
	q.SetIf(r.keyword != "", "keyword", func() string { return r.keyword })
	q.SetIf(r.name != "", "name", func() string { return r.name })
	if r.placeType != TypeUnknown {
		q.SetEnum("type", r.placeType)
	}
	if r.language != gmaps.LanguageUnknown {
		q.SetEnum("language", r.language)
	}
	setFilters(q, r.openNow, r.minPrice, r.maxPrice)
	q.SetIf(r.pageToken != "", "pagetoken", func() string { return r.pageToken })

	return q.Rule(func() error {
		byDistance := r.rankBy == RankByDistance
		switch {
		case byDistance && r.radius != 0:
			return gmaps.ValidationErrorf("radius cannot be combined with rankby=distance")
		case byDistance && r.keyword == "" && r.name == "" && r.placeType == TypeUnknown:
			return gmaps.ValidationErrorf("rankby=distance requires keyword, name or type")
		case !byDistance && r.radius == 0 && r.pageToken == "":
			return gmaps.ValidationErrorf("radius is required unless rankby=distance")
		}
		return checkPrices(r.minPrice, r.maxPrice)
	})
}

func (r *NearbySearchRequest) Execute(ctx context.Context) (*Response, error) {
	return gmaps.Get[Response](ctx, r.client, NearbySearchEndpoint, r.Query())
}

func setCircle(q *gmaps.Query, center *gmaps.LatLng, radius int) {
	if center == nil {
		return
	}
	q.Set("location", center.String()).Check("location", center.Validate)
	q.Set("radius", strconv.Itoa(radius)).Check("radius", func() error { return checkRadius(radius) })
}

func setFilters(q *gmaps.Query, openNow bool, minPrice, maxPrice *int) {
	q.SetIf(openNow, "opennow", func() string { return gmaps.Bool(true) })
	q.SetIf(minPrice != nil, "minprice", func() string { return strconv.Itoa(*minPrice) })
	q.SetIf(maxPrice != nil, "maxprice", func() string { return strconv.Itoa(*maxPrice) })
}

func checkRadius(radius int) error {
	if radius < 1 || radius > MaxRadius {
		return gmaps.ValidationErrorf("radius must be between 1 and %d meters, got %d", MaxRadius, radius)
	}
	return nil
}

func checkPrices(minPrice, maxPrice *int) error {
	if minPrice == nil || maxPrice == nil {
		return nil
	}
	switch {
	case *minPrice < 0 || *maxPrice > 4:
		return gmaps.ValidationErrorf("price levels must be between 0 and 4")
	case *minPrice > *maxPrice:
		return gmaps.ValidationErrorf("minprice %d exceeds maxprice %d", *minPrice, *maxPrice)
	}
	return nil
}
