package places

import (
	"github.com/ambiyansyah-risyal/gmaps/internal/enum"
)

// RankBy orders nearby search results.
type RankBy uint8

const (
	RankByUnknown RankBy = iota
	RankByProminence
	RankByDistance
)

var rankByTable = enum.New("rank by", RankByUnknown,
	enum.P("prominence", RankByProminence),
	enum.P("distance", RankByDistance),
)

func (r RankBy) String() string {
	return rankByTable.Text(r)
}

func (r RankBy) Token() (string, bool) {
	return rankByTable.Encode(r)
}

// BusinessStatus is the operational state of an establishment.
type BusinessStatus uint8

const (
	BusinessStatusUnknown BusinessStatus = iota
	BusinessStatusOperational
	BusinessStatusClosedTemporarily
	BusinessStatusClosedPermanently
)

var businessStatusTable = enum.New("business status", BusinessStatusUnknown,
	enum.P("OPERATIONAL", BusinessStatusOperational),
	enum.P("CLOSED_TEMPORARILY", BusinessStatusClosedTemporarily),
	enum.P("CLOSED_PERMANENTLY", BusinessStatusClosedPermanently),
)

func (s BusinessStatus) String() string {
	return businessStatusTable.Text(s)
}

// Type is an establishment type accepted by the type filter.
type Type uint8

const (
	TypeUnknown Type = iota
	TypeAirport
	TypeAtm
	TypeBakery
	TypeBank
	TypeBar
	TypeBusStation
	TypeCafe
	TypeCampground
	TypeGasStation
	TypeGroceryOrSupermarket
	TypeGym
	TypeHospital
	TypeLibrary
	TypeLodging
	TypeMuseum
	TypePark
	TypeParking
	TypePharmacy
	TypePolice
	TypePostOffice
	TypeRestaurant
	TypeSchool
	TypeShoppingMall
	TypeStadium
	TypeStore
	TypeSubwayStation
	TypeSupermarket
	TypeTouristAttraction
	TypeTrainStation
	TypeTransitStation
	TypeUniversity
	TypeZoo
)

var typeTable = enum.New("place type", TypeUnknown,
	enum.P("airport", TypeAirport),
	enum.P("atm", TypeAtm),
	enum.P("bakery", TypeBakery),
	enum.P("bank", TypeBank),
	enum.P("bar", TypeBar),
	enum.P("bus_station", TypeBusStation),
	enum.P("cafe", TypeCafe),
	enum.P("campground", TypeCampground),
	enum.P("gas_station", TypeGasStation),
	enum.P("grocery_or_supermarket", TypeGroceryOrSupermarket),
	enum.P("gym", TypeGym),
	enum.P("hospital", TypeHospital),
	enum.P("library", TypeLibrary),
	enum.P("lodging", TypeLodging),
	enum.P("museum", TypeMuseum),
	enum.P("park", TypePark),
	enum.P("parking", TypeParking),
	enum.P("pharmacy", TypePharmacy),
	enum.P("police", TypePolice),
	enum.P("post_office", TypePostOffice),
	enum.P("restaurant", TypeRestaurant),
	enum.P("school", TypeSchool),
	enum.P("shopping_mall", TypeShoppingMall),
	enum.P("stadium", TypeStadium),
	enum.P("store", TypeStore),
	enum.P("subway_station", TypeSubwayStation),
	enum.P("supermarket", TypeSupermarket),
	enum.P("tourist_attraction", TypeTouristAttraction),
	enum.P("train_station", TypeTrainStation),
	enum.P("transit_station", TypeTransitStation),
	enum.P("university", TypeUniversity),
	enum.P("zoo", TypeZoo),
)

func (t Type) String() string {
	return typeTable.Text(t)
}

func (t Type) Token() (string, bool) {
	return typeTable.Encode(t)
}

// ParseType resolves a type such as "restaurant".
func ParseType(s string) (Type, bool) {
	return typeTable.Lookup(s)
}
