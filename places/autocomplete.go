package places

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ambiyansyah-risyal/gmaps"
	"github.com/ambiyansyah-risyal/gmaps/internal/enum"
)

// MaxCountries bounds the country restriction of an autocomplete call.
const MaxCountries = 5

var (
	// AutocompleteEndpoint is the Place Autocomplete service.
	AutocompleteEndpoint = gmaps.Endpoint{API: gmaps.APIPlaces, URL: gmaps.AutocompleteURL}
	// QueryAutocompleteEndpoint is the Query Autocomplete service.
	QueryAutocompleteEndpoint = gmaps.Endpoint{API: gmaps.APIPlaces, URL: gmaps.QueryCompleteURL}
)

// PredictionType restricts autocomplete predictions.
type PredictionType uint8

const (
	PredictionTypeUnknown PredictionType = iota
	PredictionTypeGeocode
	PredictionTypeAddress
	PredictionTypeEstablishment
	PredictionTypeRegions
	PredictionTypeCities
)

var predictionTypeTable = enum.New("prediction type", PredictionTypeUnknown,
	enum.P("geocode", PredictionTypeGeocode),
	enum.P("address", PredictionTypeAddress),
	enum.P("establishment", PredictionTypeEstablishment),
	enum.P("(regions)", PredictionTypeRegions),
	enum.P("(cities)", PredictionTypeCities),
)

func (t PredictionType) String() string {
	return predictionTypeTable.Text(t)
}

func (t PredictionType) Token() (string, bool) {
	return predictionTypeTable.Encode(t)
}

// bias is the location bias shared by both autocomplete services.
type bias struct {
	location *gmaps.LatLng
	radius   int
	offset   int
	language gmaps.Language
}

func (b *bias) apply(q *gmaps.Query, input string) {
	if b.location != nil {
		loc := *b.location
		q.Set("location", loc.String()).Check("location", loc.Validate)
	}
	q.SetIf(b.radius != 0, "radius", func() string { return strconv.Itoa(b.radius) })
	q.Check("radius", func() error { return checkRadius(b.radius) })
	q.SetIf(b.offset != 0, "offset", func() string { return strconv.Itoa(b.offset) })
	q.Check("offset", func() error {
		if b.offset < 0 || b.offset > utf8.RuneCountInString(input) {
			return gmaps.ValidationErrorf("offset %d is outside the input", b.offset)
		}
		return nil
	})
	if b.language != gmaps.LanguageUnknown {
		q.SetEnum("language", b.language)
	}
	q.Rule(func() error {
		if b.radius != 0 && b.location == nil {
			return gmaps.ValidationErrorf("radius requires location")
		}
		return nil
	})
}

// AutocompleteRequest predicts places from partial input, typically one
// call per keystroke within a session.
type AutocompleteRequest struct {
	client *gmaps.Client
	bias

	input        string
	origin       *gmaps.LatLng
	types        []PredictionType
	countries    []string
	region       gmaps.Region
	strictBounds bool
	sessionToken string
}

func NewAutocomplete(client *gmaps.Client, input string) *AutocompleteRequest {
	return &AutocompleteRequest{client: client, input: input}
}

// WithLocation biases predictions to a circle around center.
func (r *AutocompleteRequest) WithLocation(center gmaps.LatLng, radius int) *AutocompleteRequest {
	r.location = &center
	r.radius = radius
	return r
}

// WithStrictBounds drops predictions outside the location circle.
func (r *AutocompleteRequest) WithStrictBounds() *AutocompleteRequest {
	r.strictBounds = true
	return r
}

// WithOffset uses only the first offset characters of the input.
func (r *AutocompleteRequest) WithOffset(offset int) *AutocompleteRequest {
	r.offset = offset
	return r
}

// WithOrigin makes predictions report their straight-line distance from
// origin.
func (r *AutocompleteRequest) WithOrigin(origin gmaps.LatLng) *AutocompleteRequest {
	r.origin = &origin
	return r
}

func (r *AutocompleteRequest) WithTypes(types ...PredictionType) *AutocompleteRequest {
	r.types = append(r.types, types...)
	return r
}

// WithCountries restricts predictions to up to five countries given as
// ISO 3166-1 alpha-2 codes.
func (r *AutocompleteRequest) WithCountries(codes ...string) *AutocompleteRequest {
	r.countries = append(r.countries, codes...)
	return r
}

func (r *AutocompleteRequest) WithLanguage(l gmaps.Language) *AutocompleteRequest {
	r.language = l
	return r
}

func (r *AutocompleteRequest) WithRegion(reg gmaps.Region) *AutocompleteRequest {
	r.region = reg
	return r
}

func (r *AutocompleteRequest) WithSessionToken(token string) *AutocompleteRequest {
	r.sessionToken = token
	return r
}

func (r *AutocompleteRequest) Query() *gmaps.Query {
	q := gmaps.NewQuery().Require("input")
	q.SetIf(r.input != "", "input", func() string { return r.input })
	r.bias.apply(q, r.input)

	if r.origin != nil {
		origin := *r.origin
		q.Set("origin", origin.String()).Check("origin", origin.Validate)
	}
	gmaps.SetEnumList(q, "types", r.types)
	if len(r.countries) > 0 {
		parts := make([]string, len(r.countries))
		for i, c := range r.countries {
			parts[i] = "country:" + strings.ToLower(c)
		}
		q.Set("components", gmaps.JoinPipe(parts...)).Check("components", func() error {
			return checkCountries(r.countries)
		})
	}
	if r.region != gmaps.RegionUnknown {
		q.SetEnum("region", r.region)
	}
	q.SetIf(r.strictBounds, "strictbounds", func() string { return gmaps.Bool(true) })
	q.SetIf(r.sessionToken != "", "sessiontoken", func() string { return r.sessionToken })

	return q.Rule(func() error {
		if r.strictBounds && r.location == nil {
			return gmaps.ValidationErrorf("strictbounds requires location")
		}
		return nil
	})
}

func (r *AutocompleteRequest) Execute(ctx context.Context) (*AutocompleteResponse, error) {
	return gmaps.Get[AutocompleteResponse](ctx, r.client, AutocompleteEndpoint, r.Query())
}

func checkCountries(codes []string) error {
	if len(codes) > MaxCountries {
		return gmaps.ValidationErrorf("at most %d countries allowed, got %d", MaxCountries, len(codes))
	}
	for _, c := range codes {
		if len(c) != 2 || strings.IndexFunc(c, func(r rune) bool {
			return (r < 'a' || r > 'z') && (r < 'A' || r > 'Z')
		}) >= 0 {
			return gmaps.ValidationErrorf("country %q is not a two-letter code", c)
		}
	}
	return nil
}

// QueryAutocompleteRequest predicts search queries, such as
// "pizza near Paris", rather than single places.
type QueryAutocompleteRequest struct {
	client *gmaps.Client
	bias

	input string
}

func NewQueryAutocomplete(client *gmaps.Client, input string) *QueryAutocompleteRequest {
	return &QueryAutocompleteRequest{client: client, input: input}
}

func (r *QueryAutocompleteRequest) WithLocation(center gmaps.LatLng, radius int) *QueryAutocompleteRequest {
	r.location = &center
	r.radius = radius
	return r
}

func (r *QueryAutocompleteRequest) WithOffset(offset int) *QueryAutocompleteRequest {
	r.offset = offset
	return r
}

func (r *QueryAutocompleteRequest) WithLanguage(l gmaps.Language) *QueryAutocompleteRequest {
	r.language = l
	return r
}

func (r *QueryAutocompleteRequest) Query() *gmaps.Query {
	q := gmaps.NewQuery().Require("input")
	q.SetIf(r.input != "", "input", func() string { return r.input })
	r.bias.apply(q, r.input)
	return q
}

func (r *QueryAutocompleteRequest) Execute(ctx context.Context) (*AutocompleteResponse, error) {
	return gmaps.Get[AutocompleteResponse](ctx, r.client, QueryAutocompleteEndpoint, r.Query())
}

// AutocompleteResponse lists predictions, best first.
type AutocompleteResponse struct {
	gmaps.Envelope
	Predictions []Prediction `json:"predictions"`
}

// Prediction is one suggestion. Query predictions have no PlaceID.
type Prediction struct {
	Description          string           `json:"description"`
	PlaceID              string           `json:"place_id,omitempty"`
	DistanceMeters       *int             `json:"distance_meters,omitempty"`
	MatchedSubstrings    []Substring      `json:"matched_substrings"`
	StructuredFormatting StructuredFormat `json:"structured_formatting"`
	Terms                []Term           `json:"terms"`
	Types                []string         `json:"types,omitempty"`
}

// Substring locates the matched input within a text.
type Substring struct {
	Length int `json:"length"`
	Offset int `json:"offset"`
}

type StructuredFormat struct {
	MainText                  string      `json:"main_text"`
	MainTextMatchedSubstrings []Substring `json:"main_text_matched_substrings,omitempty"`
	SecondaryText             string      `json:"secondary_text,omitempty"`
}

// Term is one part of the description, e.g. a locality.
type Term struct {
	Offset int    `json:"offset"`
	Value  string `json:"value"`
}
