package gmaps

// Geometry is the position block shared by geocoding and places results.
type Geometry struct {
	Location LatLng `json:"location"`
	// LocationType is set by geocoding only.
	LocationType string  `json:"location_type,omitempty"`
	Viewport     Bounds  `json:"viewport"`
	Bounds       *Bounds `json:"bounds,omitempty"`
}

// AddressComponent is one part of a structured address.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// PlusCode is an Open Location Code reference.
type PlusCode struct {
	GlobalCode   string `json:"global_code"`
	CompoundCode string `json:"compound_code,omitempty"`
}

// Component returns the first component carrying typ, if any.
func Component(components []AddressComponent, typ string) (AddressComponent, bool) {
	for _, c := range components {
		for _, t := range c.Types {
			if t == typ {
				return c, true
			}
		}
	}
	return AddressComponent{}, false
}
