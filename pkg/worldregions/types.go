// Package worldregions is a client for the world regions REST API.
//
// The API exposes two read-only collections: the list of countries and, for a
// given country id, the list of its provinces or states. Both endpoints return
// a bare JSON array. Decoding is strict: every element must carry every field
// with the right type, otherwise the whole response is rejected.
package worldregions

import (
	"encoding/json"
	"fmt"
)

// Country is a single entry of the country collection.
type Country struct {
	ID   int
	Name string
	Code string
}

// Province is a single entry of a country's province collection.
type Province struct {
	Name        string
	Code        string
	CountryCode string
}

// MissingFieldError reports a record that omitted a required key or set it to null.
type MissingFieldError struct {
	Record string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Record, e.Field)
}

// UnmarshalJSON decodes a country record. Keys match case-insensitively and
// unknown keys are ignored.
func (c *Country) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID   *int    `json:"ID"`
		Name *string `json:"Name"`
		Code *string `json:"Code"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	switch {
	case wire.ID == nil:
		return &MissingFieldError{Record: "country", Field: "ID"}
	case wire.Name == nil:
		return &MissingFieldError{Record: "country", Field: "Name"}
	case wire.Code == nil:
		return &MissingFieldError{Record: "country", Field: "Code"}
	}

	*c = Country{ID: *wire.ID, Name: *wire.Name, Code: *wire.Code}
	return nil
}

// UnmarshalJSON decodes a province record. The snake_case key country_code is
// accepted in place of CountryCode.
func (p *Province) UnmarshalJSON(data []byte) error {
	var wire struct {
		Name             *string `json:"Name"`
		Code             *string `json:"Code"`
		CountryCode      *string `json:"CountryCode"`
		CountryCodeSnake *string `json:"country_code"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	countryCode := wire.CountryCode
	if countryCode == nil {
		countryCode = wire.CountryCodeSnake
	}

	switch {
	case wire.Name == nil:
		return &MissingFieldError{Record: "province", Field: "Name"}
	case wire.Code == nil:
		return &MissingFieldError{Record: "province", Field: "Code"}
	case countryCode == nil:
		return &MissingFieldError{Record: "province", Field: "CountryCode"}
	}

	*p = Province{Name: *wire.Name, Code: *wire.Code, CountryCode: *countryCode}
	return nil
}
