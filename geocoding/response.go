package geocoding

import (
	"github.com/ambiyansyah-risyal/gmaps"
)

// Response lists candidate results, best first.
type Response struct {
	gmaps.Envelope
	Results []Result `json:"results"`
	// PlusCode is set on reverse geocoding answers.
	PlusCode *gmaps.PlusCode `json:"plus_code,omitempty"`
}

// Result is one geocoded address.
type Result struct {
	AddressComponents  []gmaps.AddressComponent `json:"address_components"`
	FormattedAddress   string                   `json:"formatted_address"`
	Geometry           gmaps.Geometry           `json:"geometry"`
	PlaceID            string                   `json:"place_id"`
	PlusCode           *gmaps.PlusCode          `json:"plus_code,omitempty"`
	Types              []string                 `json:"types"`
	PartialMatch       bool                     `json:"partial_match,omitempty"`
	PostcodeLocalities []string                 `json:"postcode_localities,omitempty"`
}

// LocationType decodes the precision of the result's position.
func (r Result) LocationType() LocationType {
	return locationTypeTable.Decode(r.Geometry.LocationType).Value
}

// Component returns the first address component of type typ.
func (r Result) Component(typ PlaceType) (gmaps.AddressComponent, bool) {
	token, ok := typ.Token()
	if !ok {
		return gmaps.AddressComponent{}, false
	}
	return gmaps.Component(r.AddressComponents, token)
}

// First returns the best result, if any.
func (resp *Response) First() (Result, bool) {
	if len(resp.Results) == 0 {
		return Result{}, false
	}
	return resp.Results[0], true
}
