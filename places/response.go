package places

import (
	"github.com/ambiyansyah-risyal/gmaps"
)

// Response is a page of search results. NextPageToken, when set, fetches
// the following page after a short delay on the service side.
type Response struct {
	gmaps.Envelope
	Results          []Place  `json:"results"`
	NextPageToken    string   `json:"next_page_token,omitempty"`
	HTMLAttributions []string `json:"html_attributions"`
}

// Place is a search result.
type Place struct {
	PlaceID           string          `json:"place_id"`
	Name              string          `json:"name"`
	RawBusinessStatus string          `json:"business_status,omitempty"`
	FormattedAddress  string          `json:"formatted_address,omitempty"`
	Vicinity          string          `json:"vicinity,omitempty"`
	Geometry          gmaps.Geometry  `json:"geometry"`
	Icon              string          `json:"icon,omitempty"`
	OpeningHours      *OpeningHours   `json:"opening_hours,omitempty"`
	Photos            []Photo         `json:"photos,omitempty"`
	PlusCode          *gmaps.PlusCode `json:"plus_code,omitempty"`
	PriceLevel        *int            `json:"price_level,omitempty"`
	Rating            float64         `json:"rating,omitempty"`
	UserRatingsTotal  int             `json:"user_ratings_total,omitempty"`
	Types             []string        `json:"types"`
}

// BusinessStatus decodes the operational state.
func (p Place) BusinessStatus() BusinessStatus {
	return businessStatusTable.Decode(p.RawBusinessStatus).Value
}

// OpeningHours reports whether a place is open at the time of the call.
type OpeningHours struct {
	OpenNow bool `json:"open_now"`
}

// Photo references an image of the place.
type Photo struct {
	PhotoReference   string   `json:"photo_reference"`
	Height           int      `json:"height"`
	Width            int      `json:"width"`
	HTMLAttributions []string `json:"html_attributions"`
}
