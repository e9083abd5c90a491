// Package geolocation estimates a device position from the cell towers and
// WiFi access points it can see.
package geolocation

import (
	"context"

	"github.com/ambiyansyah-risyal/gmaps"
	"github.com/ambiyansyah-risyal/gmaps/internal/enum"
)

// Endpoint is the Geolocation service. It takes a JSON body and answers
// without a status token; failures arrive as HTTP errors.
var Endpoint = gmaps.Endpoint{
	API:        gmaps.APIGeolocation,
	URL:        gmaps.GeolocationURL,
	Statusless: true,
}

// RadioType is the mobile radio technology of the home network.
type RadioType uint8

const (
	RadioTypeUnknown RadioType = iota
	RadioTypeGSM
	RadioTypeCDMA
	RadioTypeWCDMA
	RadioTypeLTE
	RadioTypeNR
)

var radioTypeTable = enum.New("radio type", RadioTypeUnknown,
	enum.P("gsm", RadioTypeGSM),
	enum.P("cdma", RadioTypeCDMA),
	enum.P("wcdma", RadioTypeWCDMA),
	enum.P("lte", RadioTypeLTE),
	enum.P("nr", RadioTypeNR),
)

func (r RadioType) String() string {
	return radioTypeTable.Text(r)
}

func (r RadioType) Token() (string, bool) {
	return radioTypeTable.Encode(r)
}

// MarshalText implements encoding.TextMarshaler.
func (r RadioType) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// CellTower is a tower the device can see.
type CellTower struct {
	CellID            int `json:"cellId" validate:"gte=0"`
	LocationAreaCode  int `json:"locationAreaCode" validate:"gte=0"`
	MobileCountryCode int `json:"mobileCountryCode" validate:"gte=0,lte=999"`
	MobileNetworkCode int `json:"mobileNetworkCode" validate:"gte=0,lte=999"`
	Age               int `json:"age,omitempty" validate:"gte=0"`
	SignalStrength    int `json:"signalStrength,omitempty"`
	TimingAdvance     int `json:"timingAdvance,omitempty"`
}

// WifiAccessPoint is an access point the device can see.
type WifiAccessPoint struct {
	MacAddress         string `json:"macAddress" validate:"required,mac"`
	SignalStrength     int    `json:"signalStrength,omitempty"`
	Age                int    `json:"age,omitempty" validate:"gte=0"`
	Channel            int    `json:"channel,omitempty" validate:"gte=0"`
	SignalToNoiseRatio int    `json:"signalToNoiseRatio,omitempty"`
}

// Payload is the JSON request body.
type Payload struct {
	HomeMobileCountryCode int               `json:"homeMobileCountryCode,omitempty" validate:"gte=0,lte=999"`
	HomeMobileNetworkCode int               `json:"homeMobileNetworkCode,omitempty" validate:"gte=0,lte=999"`
	RadioType             *RadioType        `json:"radioType,omitempty"`
	Carrier               string            `json:"carrier,omitempty"`
	ConsiderIP            *bool             `json:"considerIp,omitempty"`
	CellTowers            []CellTower       `json:"cellTowers,omitempty" validate:"dive"`
	WifiAccessPoints      []WifiAccessPoint `json:"wifiAccessPoints,omitempty" validate:"omitempty,min=2,dive"`
}

// Request builds a geolocation call.
type Request struct {
	client  *gmaps.Client
	payload Payload
}

func NewRequest(client *gmaps.Client) *Request {
	return &Request{client: client}
}

// WithConsiderIP controls the fallback to IP geolocation when no signal
// matches.
func (r *Request) WithConsiderIP(consider bool) *Request {
	r.payload.ConsiderIP = &consider
	return r
}

// WithHomeNetwork sets the mobile country and network codes.
func (r *Request) WithHomeNetwork(mcc, mnc int) *Request {
	r.payload.HomeMobileCountryCode = mcc
	r.payload.HomeMobileNetworkCode = mnc
	return r
}

// WithRadioType sets the home network technology. RadioTypeUnknown
// leaves it unset.
func (r *Request) WithRadioType(t RadioType) *Request {
	if t == RadioTypeUnknown {
		r.payload.RadioType = nil
		return r
	}
	r.payload.RadioType = &t
	return r
}

func (r *Request) WithCarrier(carrier string) *Request {
	r.payload.Carrier = carrier
	return r
}

func (r *Request) WithCellTowers(towers ...CellTower) *Request {
	r.payload.CellTowers = append(r.payload.CellTowers, towers...)
	return r
}

// WithWifiAccessPoints adds access points. The service needs at least two.
func (r *Request) WithWifiAccessPoints(aps ...WifiAccessPoint) *Request {
	r.payload.WifiAccessPoints = append(r.payload.WifiAccessPoints, aps...)
	return r
}

// Payload returns the body that Execute sends.
func (r *Request) Payload() Payload {
	return r.payload
}

// Query carries no parameters besides the credential; it checks the body.
func (r *Request) Query() *gmaps.Query {
	return gmaps.NewQuery().Rule(func() error {
		if rt := r.payload.RadioType; rt != nil {
			if _, ok := rt.Token(); !ok {
				return gmaps.ValidationErrorf("unsupported radio type %s", *rt)
			}
		}
		return gmaps.ValidateStruct("payload", r.payload)
	})
}

func (r *Request) Execute(ctx context.Context) (*Response, error) {
	return gmaps.Post[Response](ctx, r.client, Endpoint, r.Query(), r.payload)
}

// Response is the estimated position with a 95% confidence radius in
// meters.
type Response struct {
	gmaps.Envelope
	Location gmaps.LatLng `json:"location"`
	Accuracy float64      `json:"accuracy"`
}
