// Package elevation looks up ground elevation at points or along a path.
package elevation

import (
	"context"
	"strconv"

	"github.com/ambiyansyah-risyal/gmaps"
)

const (
	// MaxLocations bounds discrete locations in one request.
	MaxLocations = 512
	// MaxSamples bounds the samples taken along a path.
	MaxSamples = 512
)

// Endpoint is the Elevation web service.
var Endpoint = gmaps.Endpoint{API: gmaps.APIElevation, URL: gmaps.ElevationURL}

// Request asks for elevations either at discrete locations or sampled
// along a path, never both.
type Request struct {
	client *gmaps.Client

	locations []gmaps.Location
	path      []gmaps.Location
	samples   int
}

func NewRequest(client *gmaps.Client) *Request {
	return &Request{client: client}
}

// WithLocations adds discrete points.
func (r *Request) WithLocations(points ...gmaps.LatLng) *Request {
	for _, p := range points {
		r.locations = append(r.locations, gmaps.Point(p))
	}
	return r
}

// WithEncodedLocations adds points given as an encoded polyline.
func (r *Request) WithEncodedLocations(polyline string) *Request {
	r.locations = append(r.locations, gmaps.EncodedPolyline(polyline))
	return r
}

// WithPath samples elevation at samples evenly spaced points along path.
func (r *Request) WithPath(samples int, path ...gmaps.LatLng) *Request {
	r.samples = samples
	for _, p := range path {
		r.path = append(r.path, gmaps.Point(p))
	}
	return r
}

// WithEncodedPath is WithPath for an encoded polyline.
func (r *Request) WithEncodedPath(samples int, polyline string) *Request {
	r.samples = samples
	r.path = append(r.path, gmaps.EncodedPolyline(polyline))
	return r
}

func (r *Request) Query() *gmaps.Query {
	q := gmaps.NewQuery().
		Exclusive("locations", "path").
		AtLeastOne("locations", "path")

	if len(r.locations) > 0 {
		q.Set("locations", gmaps.JoinLocations(r.locations)).Check("locations", func() error {
			return gmaps.ValidateLocations("locations", r.locations, 1, MaxLocations)
		})
	}
	if len(r.path) > 0 {
		q.Set("path", gmaps.JoinLocations(r.path)).Check("path", func() error {
			return gmaps.ValidateLocations("path", r.path, 1, 0)
		})
		q.Require("samples")
	}
	if r.samples != 0 {
		q.Set("samples", strconv.Itoa(r.samples)).Check("samples", func() error {
			if r.samples < 1 || r.samples > MaxSamples {
				return gmaps.ValidationErrorf("samples must be between 1 and %d, got %d", MaxSamples, r.samples)
			}
			return nil
		})
	}

	return q.Rule(func() error {
		if r.samples != 0 && len(r.path) == 0 {
			return gmaps.ValidationErrorf("samples requires path")
		}
		return nil
	})
}

func (r *Request) Execute(ctx context.Context) (*Response, error) {
	return gmaps.Get[Response](ctx, r.client, Endpoint, r.Query())
}

// Response lists one result per location or sample, in request order.
type Response struct {
	gmaps.Envelope
	Results []Result `json:"results"`
}

// Result is an elevation in meters relative to mean sea level.
type Result struct {
	Elevation float64      `json:"elevation"`
	Location  gmaps.LatLng `json:"location"`
	// Resolution is the distance in meters between the interpolated data
	// points. Absent when unknown.
	Resolution float64 `json:"resolution,omitempty"`
}
