// Package geocoding converts addresses to coordinates and back.
package geocoding

import (
	"context"
	"strings"

	"github.com/ambiyansyah-risyal/gmaps"
)

// Endpoint serves both forward and reverse geocoding.
var Endpoint = gmaps.Endpoint{API: gmaps.APIGeocoding, URL: gmaps.GeocodingURL}

// Request is a forward geocoding call. It needs an address, a place ID or
// at least one component filter.
type Request struct {
	client *gmaps.Client

	address    string
	placeID    string
	components []Component
	bounds     *gmaps.Bounds
	language   gmaps.Language
	region     gmaps.Region
}

func NewRequest(client *gmaps.Client) *Request {
	return &Request{client: client}
}

func (r *Request) WithAddress(address string) *Request {
	r.address = address
	return r
}

// WithPlaceID looks up the address of a place.
func (r *Request) WithPlaceID(id string) *Request {
	r.placeID = id
	return r
}

// WithComponents restricts or, without an address, selects results.
func (r *Request) WithComponents(c ...Component) *Request {
	r.components = append(r.components, c...)
	return r
}

// WithBounds biases results towards a viewport.
func (r *Request) WithBounds(b gmaps.Bounds) *Request {
	r.bounds = &b
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

func (r *Request) Query() *gmaps.Query {
	q := gmaps.NewQuery().AtLeastOne("address", "place_id", "components")

	if r.address != "" {
		q.Set("address", r.address).Check("address", nonBlank("address", r.address))
	}
	if r.placeID != "" {
		q.Set("place_id", r.placeID).Check("place_id", nonBlank("place_id", r.placeID))
	}
	if len(r.components) > 0 {
		parts := make([]string, len(r.components))
		for i, c := range r.components {
			parts[i] = c.String()
		}
		q.Set("components", gmaps.JoinPipe(parts...)).Check("components", r.checkComponents)
	}
	if r.bounds != nil {
		q.Set("bounds", r.bounds.String()).Check("bounds", r.bounds.Validate)
	}
	if r.language != gmaps.LanguageUnknown {
		q.SetEnum("language", r.language)
	}
	if r.region != gmaps.RegionUnknown {
		q.SetEnum("region", r.region)
	}
	return q
}

func (r *Request) checkComponents() error {
	for _, c := range r.components {
		if _, ok := componentKindTable.Encode(c.Kind); !ok {
			return gmaps.ValidationErrorf("unsupported component %s", c.Kind)
		}
		if strings.TrimSpace(c.Value) == "" {
			return gmaps.ValidationErrorf("component %s has no value", c.Kind)
		}
	}
	return nil
}

func (r *Request) Execute(ctx context.Context) (*Response, error) {
	return gmaps.Get[Response](ctx, r.client, Endpoint, r.Query())
}

func nonBlank(field, value string) func() error {
	return func() error {
		if strings.TrimSpace(value) == "" {
			return gmaps.ValidationErrorf("%s must not be blank", field)
		}
		return nil
	}
}
