package gmaps

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestQueryEncodeDeterministic(t *testing.T) {
	build := func(order []string) *Query {
		values := map[string]string{
			"origin":      "Toronto",
			"destination": "Montreal",
			"mode":        "driving",
			"avoid":       "tolls|ferries",
		}
		q := NewQuery()
		for _, k := range order {
			q.Set(k, values[k])
		}
		return q
	}

	a, err := build([]string{"origin", "destination", "mode", "avoid"}).Encode("secret")
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	b, err := build([]string{"avoid", "mode", "destination", "origin"}).Encode("secret")
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	if a != b {
		t.Errorf("Expected identical output, got\n%s\n%s", a, b)
	}
	expected := "avoid=tolls%7Cferries&destination=Montreal&mode=driving&origin=Toronto&key=secret"
	if a != expected {
		t.Errorf("Expected %s, got %s", expected, a)
	}
}

func TestQueryCredentialLast(t *testing.T) {
	s, err := NewQuery().Set("zzz", "1").Set("aaa", "2").Encode("k3y")
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if !strings.HasSuffix(s, "&key=k3y") {
		t.Errorf("Expected credential last, got %s", s)
	}

	empty, err := NewQuery().Encode("k3y")
	if err != nil || empty != "key=k3y" {
		t.Errorf("Expected key=k3y, got %q (%v)", empty, err)
	}
}

func TestQueryOmitsAbsentFields(t *testing.T) {
	q := NewQuery().
		Set("address", "Main St").
		Add(Field{Key: "region", Value: "uk", Present: false}).
		SetIf(false, "language", func() string {
			t.Error("value func called for absent field")
			return ""
		})

	s, err := q.Encode("")
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if s != "address=Main%20St" {
		t.Errorf("Expected address=Main%%20St, got %s", s)
	}
}

func TestQueryValidation(t *testing.T) {
	tests := []struct {
		name    string
		query   *Query
		wantMsg string
	}{
		{
			name:    "missing required",
			query:   NewQuery().Require("origin").Set("destination", "x"),
			wantMsg: `missing required field "origin"`,
		},
		{
			name: "mutually exclusive",
			query: NewQuery().
				Set("arrival_time", "1").
				Set("departure_time", "now").
				Exclusive("arrival_time", "departure_time"),
			wantMsg: "arrival_time and departure_time are mutually exclusive",
		},
		{
			name:    "at least one",
			query:   NewQuery().AtLeastOne("address", "components"),
			wantMsg: "one of address, components is required",
		},
		{
			name: "field validator",
			query: NewQuery().
				Set("radius", "-1").
				Check("radius", func() error { return errors.New("must be positive") }),
			wantMsg: `field "radius": must be positive`,
		},
		{
			name: "rule",
			query: NewQuery().Rule(func() error {
				return fmt.Errorf("waypoints cannot be used with transit")
			}),
			wantMsg: "waypoints cannot be used with transit",
		},
		{
			name:    "reserved key",
			query:   NewQuery().Set("key", "oops"),
			wantMsg: `"key" is reserved`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.query.Encode("secret")
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Expected message containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestQueryValidatorSkippedWhenAbsent(t *testing.T) {
	q := NewQuery().Check("radius", func() error { return errors.New("never") })

	if err := q.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestQueryAccessors(t *testing.T) {
	q := NewQuery().Set("mode", "walking")

	if !q.Has("mode") || q.Has("avoid") {
		t.Error("Has() reported wrong presence")
	}
	if v, ok := q.Get("mode"); !ok || v != "walking" {
		t.Errorf("Expected walking, got %q", v)
	}
	q.Add(Field{Key: "mode", Value: "transit", Present: true})
	if v, _ := q.Get("mode"); v != "transit" {
		t.Errorf("Expected Add to replace, got %q", v)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abcXYZ019-._~", "abcXYZ019-._~"},
		{"a b", "a%20b"},
		{"1600 Amphitheatre Pkwy, Mountain View", "1600%20Amphitheatre%20Pkwy%2C%20Mountain%20View"},
		{"a|b", "a%7Cb"},
		{"place_id:ChIJ", "place_id%3AChIJ"},
		{"a+b&c=d", "a%2Bb%26c%3Dd"},
		{"Zürich", "Z%C3%BCrich"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestListHelpers(t *testing.T) {
	if got := JoinPipe("tolls", "ferries"); got != "tolls|ferries" {
		t.Errorf("JoinPipe = %q", got)
	}
	if got := JoinComma("street_address", "route"); got != "street_address,route" {
		t.Errorf("JoinComma = %q", got)
	}
	if got := Unix(time.Unix(1700000000, 0)); got != "1700000000" {
		t.Errorf("Unix = %q", got)
	}
	if Bool(true) != "true" || Bool(false) != "false" {
		t.Error("Bool rendered wrong value")
	}
}
