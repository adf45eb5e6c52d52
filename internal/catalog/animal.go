// Package catalog implements the client-side data layer of the adoptable
// animal catalog: the record model, the region filter engine, and the
// paginated view state. Everything here is deterministic and in-memory; the
// network side lives in internal/fetch and rendering in internal/tui.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Animal is one adoptable animal as published by the listing API. Records
// are immutable once loaded; the JSON field names follow the upstream API.
//
// The three description fields carry free text that may include HTML
// fragments. They are untrusted and must be rendered as plain text.
type Animal struct {
	ID              int    `json:"id"                yaml:"id"`
	Name            string `json:"nombre"            yaml:"nombre"`
	Type            string `json:"tipo"              yaml:"tipo"`
	Age             string `json:"edad"              yaml:"edad"`
	Status          string `json:"estado"            yaml:"estado"`
	Sex             string `json:"genero"            yaml:"genero"`
	PhysicalDesc    string `json:"desc_fisica"       yaml:"desc_fisica"`
	PersonalityDesc string `json:"desc_personalidad" yaml:"desc_personalidad"`
	ExtraDesc       string `json:"desc_adicional"    yaml:"desc_adicional"`
	Sterilized      Flag   `json:"esterilizado"      yaml:"esterilizado"`
	Vaccinated      Flag   `json:"vacunas"           yaml:"vacunas"`
	ImageURL        string `json:"imagen"            yaml:"imagen"`
	Team            string `json:"equipo"            yaml:"equipo"`
	Region          string `json:"region"            yaml:"region"`
	Comuna          string `json:"comuna"            yaml:"comuna"`
	DetailURL       string `json:"url"               yaml:"url"`
}

// Flag is a boolean the API encodes as 0/1. Some payloads carry real JSON
// booleans instead, so both forms decode.
type Flag bool

// UnmarshalJSON accepts 0/1, true/false, and their quoted variants.
func (f *Flag) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	switch s {
	case "0", "false":
		*f = false
	case "1", "true":
		*f = true
	default:
		return fmt.Errorf("invalid flag value %q", s)
	}
	return nil
}

// MarshalJSON re-encodes the flag as 0/1 to match the wire format.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// Bool returns the flag as a plain bool.
func (f Flag) Bool() bool {
	return bool(f)
}

// String renders the flag for display.
func (f Flag) String() string {
	return strconv.FormatBool(bool(f))
}
