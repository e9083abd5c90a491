package places

import (
	"context"

	"github.com/google/uuid"

	"github.com/ambiyansyah-risyal/gmaps"
	"github.com/ambiyansyah-risyal/gmaps/internal/enum"
)

// DetailsEndpoint is the Place Details service.
var DetailsEndpoint = gmaps.Endpoint{API: gmaps.APIPlaces, URL: gmaps.PlaceDetailsURL}

// Field selects a part of a place in a details call. Billing depends on
// the fields asked for; with no field the service returns all of them.
type Field uint8

const (
	FieldUnknown Field = iota
	FieldAddressComponent
	FieldAdrAddress
	FieldBusinessStatus
	FieldFormattedAddress
	FieldGeometry
	FieldIcon
	FieldName
	FieldPhoto
	FieldPlaceID
	FieldPlusCode
	FieldType
	FieldURL
	FieldUTCOffset
	FieldVicinity
	FieldCurrentOpeningHours
	FieldFormattedPhoneNumber
	FieldInternationalPhoneNumber
	FieldOpeningHours
	FieldWebsite
	FieldEditorialSummary
	FieldPriceLevel
	FieldRating
	FieldReviews
	FieldUserRatingsTotal
)

var fieldTable = enum.New("field", FieldUnknown,
	enum.P("address_component", FieldAddressComponent),
	enum.P("adr_address", FieldAdrAddress),
	enum.P("business_status", FieldBusinessStatus),
	enum.P("formatted_address", FieldFormattedAddress),
	enum.P("geometry", FieldGeometry),
	enum.P("icon", FieldIcon),
	enum.P("name", FieldName),
	enum.P("photo", FieldPhoto),
	enum.P("place_id", FieldPlaceID),
	enum.P("plus_code", FieldPlusCode),
	enum.P("type", FieldType),
	enum.P("url", FieldURL),
	enum.P("utc_offset", FieldUTCOffset),
	enum.P("vicinity", FieldVicinity),
	enum.P("current_opening_hours", FieldCurrentOpeningHours),
	enum.P("formatted_phone_number", FieldFormattedPhoneNumber),
	enum.P("international_phone_number", FieldInternationalPhoneNumber),
	enum.P("opening_hours", FieldOpeningHours),
	enum.P("website", FieldWebsite),
	enum.P("editorial_summary", FieldEditorialSummary),
	enum.P("price_level", FieldPriceLevel),
	enum.P("rating", FieldRating),
	enum.P("reviews", FieldReviews),
	enum.P("user_ratings_total", FieldUserRatingsTotal),
)

func (f Field) String() string {
	return fieldTable.Text(f)
}

func (f Field) Token() (string, bool) {
	return fieldTable.Encode(f)
}

// ReviewSort orders the reviews of a details result.
type ReviewSort uint8

const (
	ReviewSortUnknown ReviewSort = iota
	ReviewSortMostRelevant
	ReviewSortNewest
)

var reviewSortTable = enum.New("review sort", ReviewSortUnknown,
	enum.P("most_relevant", ReviewSortMostRelevant),
	enum.P("newest", ReviewSortNewest),
)

func (s ReviewSort) String() string {
	return reviewSortTable.Text(s)
}

func (s ReviewSort) Token() (string, bool) {
	return reviewSortTable.Encode(s)
}

// NewSessionToken returns a token grouping autocomplete calls with the
// details call that ends them, so they are billed as one session.
func NewSessionToken() string {
	return uuid.NewString()
}

// DetailsRequest fetches everything known about one place.
type DetailsRequest struct {
	client *gmaps.Client

	placeID        string
	fields         []Field
	language       gmaps.Language
	region         gmaps.Region
	reviewsSort    ReviewSort
	noTranslations bool
	sessionToken   string
}

func NewDetailsRequest(client *gmaps.Client, placeID string) *DetailsRequest {
	return &DetailsRequest{client: client, placeID: placeID}
}

// WithFields restricts the result to fields.
func (r *DetailsRequest) WithFields(fields ...Field) *DetailsRequest {
	r.fields = append(r.fields, fields...)
	return r
}

func (r *DetailsRequest) WithLanguage(l gmaps.Language) *DetailsRequest {
	r.language = l
	return r
}

func (r *DetailsRequest) WithRegion(reg gmaps.Region) *DetailsRequest {
	r.region = reg
	return r
}

func (r *DetailsRequest) WithReviewsSort(s ReviewSort) *DetailsRequest {
	r.reviewsSort = s
	return r
}

// WithoutReviewTranslations keeps reviews in their original language.
func (r *DetailsRequest) WithoutReviewTranslations() *DetailsRequest {
	r.noTranslations = true
	return r
}

// WithSessionToken closes the autocomplete session named by token.
func (r *DetailsRequest) WithSessionToken(token string) *DetailsRequest {
	r.sessionToken = token
	return r
}

func (r *DetailsRequest) Query() *gmaps.Query {
	q := gmaps.NewQuery().Require("place_id")
	q.SetIf(r.placeID != "", "place_id", func() string { return r.placeID })
	if len(r.fields) > 0 {
		setFields(q, r.fields)
	}
	if r.language != gmaps.LanguageUnknown {
		q.SetEnum("language", r.language)
	}
	if r.region != gmaps.RegionUnknown {
		q.SetEnum("region", r.region)
	}
	if r.reviewsSort != ReviewSortUnknown {
		q.SetEnum("reviews_sort", r.reviewsSort)
	}
	q.SetIf(r.noTranslations, "reviews_no_translations", func() string { return gmaps.Bool(true) })
	q.SetIf(r.sessionToken != "", "sessiontoken", func() string { return r.sessionToken })
	return q
}

// setFields declares the comma-separated field list.
func setFields(q *gmaps.Query, fields []Field) {
	tokens := make([]string, 0, len(fields))
	var bad []Field
	for _, f := range fields {
		token, ok := f.Token()
		if !ok {
			bad = append(bad, f)
			continue
		}
		tokens = append(tokens, token)
	}
	q.Set("fields", gmaps.JoinComma(tokens...))
	if len(bad) > 0 {
		q.Check("fields", func() error { return gmaps.ValidationErrorf("unsupported field %s", bad[0]) })
	}
}

func (r *DetailsRequest) Execute(ctx context.Context) (*DetailsResponse, error) {
	return gmaps.Get[DetailsResponse](ctx, r.client, DetailsEndpoint, r.Query())
}

// DetailsResponse holds one place. A place that no longer exists answers
// NOT_FOUND.
type DetailsResponse struct {
	gmaps.Envelope
	Result           Details  `json:"result"`
	HTMLAttributions []string `json:"html_attributions"`
}

// Details extends a search result with contact data and reviews.
type Details struct {
	Place
	AddressComponents        []gmaps.AddressComponent `json:"address_components,omitempty"`
	AdrAddress               string                   `json:"adr_address,omitempty"`
	FormattedPhoneNumber     string                   `json:"formatted_phone_number,omitempty"`
	InternationalPhoneNumber string                   `json:"international_phone_number,omitempty"`
	Website                  string                   `json:"website,omitempty"`
	URL                      string                   `json:"url,omitempty"`
	// UTCOffset is in minutes.
	UTCOffset        *int              `json:"utc_offset,omitempty"`
	EditorialSummary *EditorialSummary `json:"editorial_summary,omitempty"`
	Reviews          []Review          `json:"reviews,omitempty"`
}

type EditorialSummary struct {
	Language string `json:"language,omitempty"`
	Overview string `json:"overview,omitempty"`
}

// Review is a user review. Time is in seconds since the Unix epoch.
type Review struct {
	AuthorName              string `json:"author_name"`
	AuthorURL               string `json:"author_url,omitempty"`
	Language                string `json:"language,omitempty"`
	OriginalLanguage        string `json:"original_language,omitempty"`
	ProfilePhotoURL         string `json:"profile_photo_url,omitempty"`
	Rating                  int    `json:"rating"`
	RelativeTimeDescription string `json:"relative_time_description"`
	Text                    string `json:"text,omitempty"`
	Time                    int64  `json:"time"`
	Translated              bool   `json:"translated,omitempty"`
}
