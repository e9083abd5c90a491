// Package roads snaps GPS traces to the road network and finds the roads
// nearest to independent points.
package roads

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ambiyansyah-risyal/gmaps"
)

// MaxPoints bounds the points of one request.
const MaxPoints = 100

var (
	// SnapEndpoint is the Snap to Roads service. Like every Roads API
	// service it answers without a status token and reports failures as
	// HTTP errors.
	SnapEndpoint = gmaps.Endpoint{API: gmaps.APIRoads, URL: gmaps.SnapToRoadsURL, Statusless: true}
	// NearestEndpoint is the Nearest Roads service.
	NearestEndpoint = gmaps.Endpoint{API: gmaps.APIRoads, URL: gmaps.NearestRoadsURL, Statusless: true}
)

// SnapRequest snaps a path of up to 100 consecutive GPS points. Snapping
// works best when consecutive points are within 300 meters.
type SnapRequest struct {
	client *gmaps.Client

	path        []gmaps.Location
	interpolate bool
}

func NewSnapRequest(client *gmaps.Client, path ...gmaps.LatLng) *SnapRequest {
	return &SnapRequest{client: client, path: points(path)}
}

// WithInterpolate adds the points needed to follow the road geometry, so
// the result may hold more points than the request.
func (r *SnapRequest) WithInterpolate(interpolate bool) *SnapRequest {
	r.interpolate = interpolate
	return r
}

func (r *SnapRequest) Query() *gmaps.Query {
	q := gmaps.NewQuery().
		Require("path").
		Check("path", func() error {
			return gmaps.ValidateLocations("path", r.path, 1, MaxPoints)
		})
	q.SetIf(len(r.path) > 0, "path", func() string { return gmaps.JoinLocations(r.path) })
	q.SetIf(r.interpolate, "interpolate", func() string { return gmaps.Bool(true) })
	return q
}

func (r *SnapRequest) Execute(ctx context.Context) (*Response, error) {
	return gmaps.Get[Response](ctx, r.client, SnapEndpoint, r.Query())
}

// NearestRequest finds the road segment closest to each point. The points
// need not form a path.
type NearestRequest struct {
	client *gmaps.Client
	points []gmaps.Location
}

func NewNearestRequest(client *gmaps.Client, pts ...gmaps.LatLng) *NearestRequest {
	return &NearestRequest{client: client, points: points(pts)}
}

func (r *NearestRequest) Query() *gmaps.Query {
	q := gmaps.NewQuery().
		Require("points").
		Check("points", func() error {
			return gmaps.ValidateLocations("points", r.points, 1, MaxPoints)
		})
	q.SetIf(len(r.points) > 0, "points", func() string { return gmaps.JoinLocations(r.points) })
	return q
}

func (r *NearestRequest) Execute(ctx context.Context) (*Response, error) {
	return gmaps.Get[Response](ctx, r.client, NearestEndpoint, r.Query())
}

func points(lls []gmaps.LatLng) []gmaps.Location {
	out := make([]gmaps.Location, len(lls))
	for i, ll := range lls {
		out[i] = gmaps.Point(ll)
	}
	return out
}

// Response lists the snapped points. WarningMessage is set when the
// service doubts the input, e.g. for points far apart.
type Response struct {
	gmaps.Envelope
	SnappedPoints  []SnappedPoint `json:"snappedPoints"`
	WarningMessage string         `json:"warningMessage,omitempty"`
}

// SnappedPoint is a point moved onto a road.
type SnappedPoint struct {
	Location Coordinate `json:"location"`
	// OriginalIndex is the index of the request point this one was
	// snapped from. Interpolated points have none.
	OriginalIndex *int `json:"originalIndex,omitempty"`
	// PlaceID always names a road segment.
	PlaceID string `json:"placeId"`
}

// Interpolated reports a point added by interpolation.
func (p SnappedPoint) Interpolated() bool {
	return p.OriginalIndex == nil
}

// Coordinate is the latitude/longitude literal used by the Roads API.
type Coordinate struct {
	Latitude  decimal.Decimal `json:"latitude"`
	Longitude decimal.Decimal `json:"longitude"`
}

// LatLng converts c to the shared coordinate type.
func (c Coordinate) LatLng() gmaps.LatLng {
	return gmaps.LatLng{Lat: c.Latitude, Lng: c.Longitude}
}
