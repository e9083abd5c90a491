package geocoding

import (
	"context"

	"github.com/ambiyansyah-risyal/gmaps"
)

// ReverseRequest turns a coordinate or a place ID into addresses.
type ReverseRequest struct {
	client *gmaps.Client

	latlng        *gmaps.LatLng
	placeID       string
	resultTypes   []PlaceType
	locationTypes []LocationType
	language      gmaps.Language
}

func NewReverseRequest(client *gmaps.Client) *ReverseRequest {
	return &ReverseRequest{client: client}
}

func (r *ReverseRequest) WithLatLng(ll gmaps.LatLng) *ReverseRequest {
	r.latlng = &ll
	return r
}

func (r *ReverseRequest) WithPlaceID(id string) *ReverseRequest {
	r.placeID = id
	return r
}

// WithResultTypes keeps only results of the given types.
func (r *ReverseRequest) WithResultTypes(types ...PlaceType) *ReverseRequest {
	r.resultTypes = append(r.resultTypes, types...)
	return r
}

// WithLocationTypes keeps only results of the given precision.
func (r *ReverseRequest) WithLocationTypes(types ...LocationType) *ReverseRequest {
	r.locationTypes = append(r.locationTypes, types...)
	return r
}

func (r *ReverseRequest) WithLanguage(l gmaps.Language) *ReverseRequest {
	r.language = l
	return r
}

func (r *ReverseRequest) Query() *gmaps.Query {
	q := gmaps.NewQuery().
		Exclusive("latlng", "place_id").
		AtLeastOne("latlng", "place_id")

	if r.latlng != nil {
		q.Set("latlng", r.latlng.String()).Check("latlng", r.latlng.Validate)
	}
	if r.placeID != "" {
		q.Set("place_id", r.placeID).Check("place_id", nonBlank("place_id", r.placeID))
	}
	gmaps.SetEnumList(q, "result_type", r.resultTypes)
	gmaps.SetEnumList(q, "location_type", r.locationTypes)
	if r.language != gmaps.LanguageUnknown {
		q.SetEnum("language", r.language)
	}

	return q.Rule(func() error {
		if r.latlng == nil && (len(r.resultTypes) > 0 || len(r.locationTypes) > 0) {
			return gmaps.ValidationErrorf("result_type and location_type filters require latlng")
		}
		return nil
	})
}

func (r *ReverseRequest) Execute(ctx context.Context) (*Response, error) {
	return gmaps.Get[Response](ctx, r.client, Endpoint, r.Query())
}
