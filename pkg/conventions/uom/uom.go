// Package uom implements the units-of-measurement convention for numerical
// Zarr arrays, carrying a UCUM unit string and an optional free-text
// description of the measured quantity.
//
// The convention uses the nested representation under the "uom" key.
package uom

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/clbarnes/zarrs-conventions/pkg/conventions"
)

// Definition is the convention identity for unit-of-measurement metadata.
var Definition = conventions.Definition{
	UUID:        uuid.MustParse("3bbe438d-df37-49fe-8e2b-739296d46dfb"),
	SchemaURL:   "https://raw.githubusercontent.com/clbarnes/zarr-convention-uom/refs/tags/v1/schema.json",
	SpecURL:     "https://github.com/clbarnes/zarr-convention-uom/blob/v1/README.md",
	Name:        "uom",
	Description: "Units of measurement for Zarr arrays",
}

// nestedKey is the reserved attribute key for the nested representation.
const nestedKey = "uom"

// UnitOfMeasurement is conventional metadata for units of measurement,
// applied to numerical Zarr arrays.
type UnitOfMeasurement struct {
	inner uomJSON
}

// Ucum is metadata using the Unified Code for Units and Measures
// specification (https://ucum.org/ucum).
type Ucum struct {
	inner ucumJSON
}

type uomJSON struct {
	Ucum        ucumJSON `json:"ucum"`
	Description *string  `json:"description,omitempty"`
}

type ucumJSON struct {
	Unit    *string `json:"unit,omitempty"`
	Version *string `json:"version,omitempty"`
}

// Definition implements conventions.Codec.
func (UnitOfMeasurement) Definition() conventions.Definition {
	return Definition
}

// NestedKey implements conventions.NestedCodec.
func (UnitOfMeasurement) NestedKey() string {
	return nestedKey
}

// MarshalJSON implements json.Marshaler.
func (m UnitOfMeasurement) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.inner)
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *UnitOfMeasurement) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &m.inner)
}

// Ucum returns the UCUM metadata.
func (m UnitOfMeasurement) Ucum() Ucum {
	return Ucum{inner: m.inner.Ucum}
}

// Description returns the free-text description of the measured unit, or
// the empty string when unset.
func (m UnitOfMeasurement) Description() string {
	if m.inner.Description == nil {
		return ""
	}
	return *m.inner.Description
}

// Unit returns the case-sensitive UCUM unit string, possibly including a
// magnitude term, and whether it is set. When unset, assume an arbitrary
// unit of magnitude 1.
func (u Ucum) Unit() (string, bool) {
	if u.inner.Unit == nil {
		return "", false
	}
	return *u.inner.Unit, true
}

// Version returns the UCUM specification version and whether it is set.
func (u Ucum) Version() (string, bool) {
	if u.inner.Version == nil {
		return "", false
	}
	return *u.inner.Version, true
}

// NewBuilder creates a builder for UnitOfMeasurement values.
func NewBuilder() *Builder {
	return &Builder{}
}

// Builder assembles a UnitOfMeasurement.
type Builder struct {
	unit        *string
	version     *string
	description *string
}

// Unit sets the case-sensitive UCUM string, which may be a quantity
// (i.e. have a magnitude term).
func (b *Builder) Unit(unit string) *Builder {
	b.unit = &unit
	return b
}

// Version sets the UCUM specification version used here.
func (b *Builder) Version(version string) *Builder {
	b.version = &version
	return b
}

// Description describes the unit being measured in free text.
func (b *Builder) Description(description string) *Builder {
	b.description = &description
	return b
}

// Build constructs the unit. All fields are optional.
func (b *Builder) Build() UnitOfMeasurement {
	return UnitOfMeasurement{
		inner: uomJSON{
			Ucum: ucumJSON{
				Unit:    b.unit,
				Version: b.version,
			},
			Description: b.description,
		},
	}
}
