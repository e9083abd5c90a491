package places

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambiyansyah-risyal/gmaps"
	"github.com/ambiyansyah-risyal/gmaps/internal/maptest"
)

const predictionsBody = `{
  "status": "OK",
  "predictions": [{
    "description": "Paris, France",
    "place_id": "ChIJD7fiBh9u5kcRYJSMaMOCCwQ",
    "distance_meters": 1200,
    "matched_substrings": [{"length": 5, "offset": 0}],
    "structured_formatting": {"main_text": "Paris", "main_text_matched_substrings": [{"length": 5, "offset": 0}], "secondary_text": "France"},
    "terms": [{"offset": 0, "value": "Paris"}, {"offset": 7, "value": "France"}],
    "types": ["locality", "political", "geocode"]
  }]
}`

func TestAutocomplete(t *testing.T) {
	tr := maptest.New(predictionsBody)

	resp, err := NewAutocomplete(maptest.Client(t, tr), "Paris").
		WithLocation(sydney, 2000).
		WithStrictBounds().
		WithOrigin(sydney).
		WithTypes(PredictionTypeCities).
		WithCountries("FR", "be").
		WithOffset(3).
		WithSessionToken("session-1").
		Execute(context.Background())
	require.NoError(t, err)

	q := tr.LastQuery()
	assert.Equal(t, "Paris", q.Get("input"))
	assert.Equal(t, "-33.8670522,151.1957362", q.Get("location"))
	assert.Equal(t, "2000", q.Get("radius"))
	assert.Equal(t, "true", q.Get("strictbounds"))
	assert.Equal(t, "-33.8670522,151.1957362", q.Get("origin"))
	assert.Equal(t, "(cities)", q.Get("types"))
	assert.Equal(t, "country:fr|country:be", q.Get("components"))
	assert.Equal(t, "3", q.Get("offset"))
	assert.Equal(t, "session-1", q.Get("sessiontoken"))

	require.Len(t, resp.Predictions, 1)
	p := resp.Predictions[0]
	assert.Equal(t, "Paris", p.StructuredFormatting.MainText)
	require.NotNil(t, p.DistanceMeters)
	assert.Equal(t, 1200, *p.DistanceMeters)
	assert.Len(t, p.Terms, 2)
}

func TestAutocompleteValidation(t *testing.T) {
	tests := []struct {
		name    string
		build   func(*AutocompleteRequest)
		wantMsg string
	}{
		{"too many countries", func(r *AutocompleteRequest) {
			r.WithCountries("fr", "be", "de", "nl", "lu", "ch")
		}, "at most 5 countries"},
		{"bad country", func(r *AutocompleteRequest) { r.WithCountries("fra") }, "not a two-letter code"},
		{"strict bounds without location", func(r *AutocompleteRequest) { r.WithStrictBounds() }, "strictbounds requires location"},
		{"offset past input", func(r *AutocompleteRequest) { r.WithOffset(10) }, "offset 10 is outside the input"},
		{"radius too large", func(r *AutocompleteRequest) { r.WithLocation(sydney, MaxRadius+1) }, "radius must be between"},
		{"unknown type", func(r *AutocompleteRequest) { r.WithTypes(PredictionType(42)) }, `field "types"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := maptest.New(predictionsBody)
			req := NewAutocomplete(maptest.Client(t, tr), "Paris")
			tt.build(req)

			_, err := req.Execute(context.Background())

			require.ErrorIs(t, err, gmaps.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Zero(t, tr.Calls())
		})
	}
}

func TestAutocompleteRequiresInput(t *testing.T) {
	tr := maptest.New(predictionsBody)

	_, err := NewQueryAutocomplete(maptest.Client(t, tr), "").Execute(context.Background())

	require.ErrorIs(t, err, gmaps.ErrValidation)
	assert.Contains(t, err.Error(), `missing required field "input"`)
	assert.Zero(t, tr.Calls())
}

func TestQueryAutocomplete(t *testing.T) {
	tr := maptest.New(`{"status":"OK","predictions":[{"description":"pizza near Paris","matched_substrings":[{"length":5,"offset":0}],"structured_formatting":{"main_text":"pizza near Paris"},"terms":[{"offset":0,"value":"pizza"}]}]}`)

	resp, err := NewQueryAutocomplete(maptest.Client(t, tr), "pizza near par").
		WithLanguage(gmaps.LanguageFrench).
		WithLocation(sydney, 500).
		Execute(context.Background())
	require.NoError(t, err)

	q := tr.LastQuery()
	assert.Equal(t, "pizza near par", q.Get("input"))
	assert.Equal(t, "fr", q.Get("language"))
	assert.Equal(t, "500", q.Get("radius"))
	assert.Equal(t, gmaps.QueryCompleteURL, tr.Last().URL.Scheme+"://"+tr.Last().URL.Host+tr.Last().URL.Path)
	require.Len(t, resp.Predictions, 1)
	assert.Empty(t, resp.Predictions[0].PlaceID)
}
