// Package timezone resolves the time zone of a point on Earth at a given
// moment.
package timezone

import (
	"context"
	"time"

	"github.com/ambiyansyah-risyal/gmaps"
)

// Endpoint is the Time Zone web service.
var Endpoint = gmaps.Endpoint{API: gmaps.APITimeZone, URL: gmaps.TimeZoneURL}

// Request needs a location and the moment whose offsets are wanted.
type Request struct {
	client *gmaps.Client

	location  *gmaps.LatLng
	timestamp time.Time
	language  gmaps.Language
}

// NewRequest asks for the zone at location as of timestamp.
func NewRequest(client *gmaps.Client, location gmaps.LatLng, timestamp time.Time) *Request {
	return &Request{client: client, location: &location, timestamp: timestamp}
}

func (r *Request) WithLanguage(l gmaps.Language) *Request {
	r.language = l
	return r
}

func (r *Request) Query() *gmaps.Query {
	q := gmaps.NewQuery().Require("location").Require("timestamp")
	if r.location != nil {
		q.Set("location", r.location.String()).Check("location", r.location.Validate)
	}
	q.SetIf(!r.timestamp.IsZero(), "timestamp", func() string { return gmaps.Unix(r.timestamp) })
	if r.language != gmaps.LanguageUnknown {
		q.SetEnum("language", r.language)
	}
	return q
}

func (r *Request) Execute(ctx context.Context) (*Response, error) {
	return gmaps.Get[Response](ctx, r.client, Endpoint, r.Query())
}

// Response carries the zone identifier and its offsets from UTC in seconds.
type Response struct {
	gmaps.Envelope
	DstOffset    float64 `json:"dstOffset"`
	RawOffset    float64 `json:"rawOffset"`
	TimeZoneID   string  `json:"timeZoneId"`
	TimeZoneName string  `json:"timeZoneName"`
}

// Offset is the total offset from UTC, daylight saving included.
func (r *Response) Offset() time.Duration {
	return time.Duration((r.DstOffset + r.RawOffset) * float64(time.Second))
}

// Location loads the IANA zone. Without a zone database it falls back to a
// fixed zone with the reported offset.
func (r *Response) Location() *time.Location {
	if loc, err := time.LoadLocation(r.TimeZoneID); err == nil {
		return loc
	}
	return time.FixedZone(r.TimeZoneID, int(r.Offset()/time.Second))
}
