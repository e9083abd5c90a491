package geocoding

import (
	"github.com/ambiyansyah-risyal/gmaps/internal/enum"
)

// LocationType is the precision of a geocoded position.
type LocationType uint8

const (
	LocationTypeUnknown LocationType = iota
	LocationTypeRooftop
	LocationTypeRangeInterpolated
	LocationTypeGeometricCenter
	LocationTypeApproximate
)

var locationTypeTable = enum.New("location type", LocationTypeUnknown,
	enum.P("ROOFTOP", LocationTypeRooftop),
	enum.P("RANGE_INTERPOLATED", LocationTypeRangeInterpolated),
	enum.P("GEOMETRIC_CENTER", LocationTypeGeometricCenter),
	enum.P("APPROXIMATE", LocationTypeApproximate),
)

func (t LocationType) String() string {
	return locationTypeTable.Text(t)
}

func (t LocationType) Token() (string, bool) {
	return locationTypeTable.Encode(t)
}

// ParseLocationType resolves a token such as "ROOFTOP".
func ParseLocationType(s string) (LocationType, bool) {
	return locationTypeTable.Lookup(s)
}

// PlaceType is an address type used to filter reverse geocoding results.
type PlaceType uint8

const (
	PlaceTypeUnknown PlaceType = iota
	PlaceTypeStreetAddress
	PlaceTypeRoute
	PlaceTypeIntersection
	PlaceTypePolitical
	PlaceTypeCountry
	PlaceTypeAdministrativeAreaLevel1
	PlaceTypeAdministrativeAreaLevel2
	PlaceTypeAdministrativeAreaLevel3
	PlaceTypeAdministrativeAreaLevel4
	PlaceTypeAdministrativeAreaLevel5
	PlaceTypeColloquialArea
	PlaceTypeLocality
	PlaceTypeSublocality
	PlaceTypeNeighborhood
	PlaceTypePremise
	PlaceTypeSubpremise
	PlaceTypePlusCode
	PlaceTypePostalCode
	PlaceTypePostalTown
	PlaceTypeNaturalFeature
	PlaceTypeAirport
	PlaceTypePark
	PlaceTypePointOfInterest
	PlaceTypeEstablishment
)

var placeTypeTable = enum.New("place type", PlaceTypeUnknown,
	enum.P("street_address", PlaceTypeStreetAddress),
	enum.P("route", PlaceTypeRoute),
	enum.P("intersection", PlaceTypeIntersection),
	enum.P("political", PlaceTypePolitical),
	enum.P("country", PlaceTypeCountry),
	enum.P("administrative_area_level_1", PlaceTypeAdministrativeAreaLevel1),
	enum.P("administrative_area_level_2", PlaceTypeAdministrativeAreaLevel2),
	enum.P("administrative_area_level_3", PlaceTypeAdministrativeAreaLevel3),
	enum.P("administrative_area_level_4", PlaceTypeAdministrativeAreaLevel4),
	enum.P("administrative_area_level_5", PlaceTypeAdministrativeAreaLevel5),
	enum.P("colloquial_area", PlaceTypeColloquialArea),
	enum.P("locality", PlaceTypeLocality),
	enum.P("sublocality", PlaceTypeSublocality),
	enum.P("neighborhood", PlaceTypeNeighborhood),
	enum.P("premise", PlaceTypePremise),
	enum.P("subpremise", PlaceTypeSubpremise),
	enum.P("plus_code", PlaceTypePlusCode),
	enum.P("postal_code", PlaceTypePostalCode),
	enum.P("postal_town", PlaceTypePostalTown),
	enum.P("natural_feature", PlaceTypeNaturalFeature),
	enum.P("airport", PlaceTypeAirport),
	enum.P("park", PlaceTypePark),
	enum.P("point_of_interest", PlaceTypePointOfInterest),
	enum.P("establishment", PlaceTypeEstablishment),
)

func (t PlaceType) String() string {
	return placeTypeTable.Text(t)
}

func (t PlaceType) Token() (string, bool) {
	return placeTypeTable.Encode(t)
}

// ParsePlaceType resolves a token such as "street_address".
func ParsePlaceType(s string) (PlaceType, bool) {
	return placeTypeTable.Lookup(s)
}

// ComponentKind names a component filter.
type ComponentKind uint8

const (
	ComponentUnknown ComponentKind = iota
	ComponentRoute
	ComponentLocality
	ComponentAdministrativeArea
	ComponentPostalCode
	ComponentCountry
)

var componentKindTable = enum.New("component", ComponentUnknown,
	enum.P("route", ComponentRoute),
	enum.P("locality", ComponentLocality),
	enum.P("administrative_area", ComponentAdministrativeArea),
	enum.P("postal_code", ComponentPostalCode),
	enum.P("country", ComponentCountry),
)

func (k ComponentKind) String() string {
	return componentKindTable.Text(k)
}

// Component restricts results to an area, e.g. Country("US").
type Component struct {
	Kind  ComponentKind
	Value string
}

func Route(v string) Component              { return Component{ComponentRoute, v} }
func Locality(v string) Component           { return Component{ComponentLocality, v} }
func AdministrativeArea(v string) Component { return Component{ComponentAdministrativeArea, v} }
func PostalCode(v string) Component         { return Component{ComponentPostalCode, v} }
func Country(v string) Component            { return Component{ComponentCountry, v} }

// String renders the "kind:value" wire form.
func (c Component) String() string {
	return c.Kind.String() + ":" + c.Value
}
