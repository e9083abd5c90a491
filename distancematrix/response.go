package distancematrix

import (
	"github.com/ambiyansyah-risyal/gmaps"
	"github.com/ambiyansyah-risyal/gmaps/directions"
)

// Response holds one row per origin and, in each row, one element per
// destination.
type Response struct {
	gmaps.Envelope
	OriginAddresses      []string `json:"origin_addresses"`
	DestinationAddresses []string `json:"destination_addresses"`
	Rows                 []Row    `json:"rows"`
}

// Row holds the elements for one origin.
type Row struct {
	Elements []Element `json:"elements"`
}

// Element is the result for one origin-destination pair. Its status is
// independent of the envelope status and never triggers a retry.
type Element struct {
	RawStatus         string               `json:"status"`
	Distance          *directions.Distance `json:"distance,omitempty"`
	Duration          *directions.Duration `json:"duration,omitempty"`
	DurationInTraffic *directions.Duration `json:"duration_in_traffic,omitempty"`
	Fare              *directions.Fare     `json:"fare,omitempty"`
}

// Status decodes the element status.
func (e Element) Status() gmaps.ElementStatus {
	return gmaps.DecodeElementStatus(e.RawStatus).Value
}

// OK reports whether the element carries a route.
func (e Element) OK() bool {
	return e.Status() == gmaps.ElementStatusOK
}

// Element returns the element for origin i and destination j.
func (r *Response) Element(i, j int) (Element, bool) {
	if i < 0 || i >= len(r.Rows) || j < 0 || j >= len(r.Rows[i].Elements) {
		return Element{}, false
	}
	return r.Rows[i].Elements[j], true
}

// Failure is an element that did not produce a route.
type Failure struct {
	Origin      int
	Destination int
	RawStatus   string
	Status      gmaps.ElementStatus
}

// Failures lists every element whose status is not OK, in row order.
func (r *Response) Failures() []Failure {
	var out []Failure
	for i, row := range r.Rows {
		for j, el := range row.Elements {
			if el.OK() {
				continue
			}
			out = append(out, Failure{Origin: i, Destination: j, RawStatus: el.RawStatus, Status: el.Status()})
		}
	}
	return out
}
