package conventions

import (
	"encoding/json"

	"github.com/google/uuid"

	pkgerrors "github.com/clbarnes/zarrs-conventions/pkg/errors"
)

// Convention is partial identity information for a convention as it appears
// in transit, parsed from the "zarr_conventions" attribute. Any subset of
// fields may be present, but construction guarantees that at least one of
// the three identifiers (uuid, schema URL, spec URL) is set.
//
// The zero value is invalid; build instances through NewBuilder or by
// unmarshalling JSON, both of which enforce the identifier invariant.
type Convention struct {
	uuid        *uuid.UUID
	schemaURL   *string
	specURL     *string
	name        *string
	description *string
}

// UUID returns the record's UUID and whether it was present.
func (c Convention) UUID() (uuid.UUID, bool) {
	if c.uuid == nil {
		return uuid.UUID{}, false
	}
	return *c.uuid, true
}

// SchemaURL returns the record's schema URL and whether it was present.
func (c Convention) SchemaURL() (string, bool) {
	if c.schemaURL == nil {
		return "", false
	}
	return *c.schemaURL, true
}

// SpecURL returns the record's specification URL and whether it was present.
func (c Convention) SpecURL() (string, bool) {
	if c.specURL == nil {
		return "", false
	}
	return *c.specURL, true
}

// Name returns the record's display name and whether it was present.
func (c Convention) Name() (string, bool) {
	if c.name == nil {
		return "", false
	}
	return *c.name, true
}

// Description returns the record's description and whether it was present.
func (c Convention) Description() (string, bool) {
	if c.description == nil {
		return "", false
	}
	return *c.description, true
}

// ID resolves the record to its canonical identifier, preferring
// uuid > schema_url > spec_url.
//
// Construction guarantees at least one identifier is present, so the
// no-identifier case is a programming-invariant violation and panics rather
// than silently defaulting.
func (c Convention) ID() ID {
	switch {
	case c.uuid != nil:
		return UUIDID(*c.uuid)
	case c.schemaURL != nil:
		return SchemaURLID(*c.schemaURL)
	case c.specURL != nil:
		return SpecURLID(*c.specURL)
	default:
		panic("conventions: Convention constructed without an identifier")
	}
}

// IDs returns every identifier present on the record, in preference order.
func (c Convention) IDs() []ID {
	var ids []ID
	if c.uuid != nil {
		ids = append(ids, UUIDID(*c.uuid))
	}
	if c.schemaURL != nil {
		ids = append(ids, SchemaURLID(*c.schemaURL))
	}
	if c.specURL != nil {
		ids = append(ids, SpecURLID(*c.specURL))
	}
	return ids
}

// conventionJSON is the wire form shared by marshalling, unmarshalling, and
// the builder. Absent fields are omitted on output.
type conventionJSON struct {
	UUID        *uuid.UUID `json:"uuid,omitempty"`
	SchemaURL   *string    `json:"schema_url,omitempty"`
	SpecURL     *string    `json:"spec_url,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
}

// MarshalJSON implements json.Marshaler, omitting absent fields.
func (c Convention) MarshalJSON() ([]byte, error) {
	return json.Marshal(conventionJSON{
		UUID:        c.uuid,
		SchemaURL:   c.schemaURL,
		SpecURL:     c.specURL,
		Name:        c.name,
		Description: c.description,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Decoding routes through the
// builder so a record with no identifier field fails rather than producing
// a zero value.
func (c *Convention) UnmarshalJSON(data []byte) error {
	var raw conventionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b := NewBuilder()
	b.raw = raw
	built, err := b.Build()
	if err != nil {
		return err
	}
	*c = built
	return nil
}

// NewBuilder creates a builder for partial convention identity records.
func NewBuilder() *Builder {
	return &Builder{}
}

// Builder assembles a Convention field by field. Setters perform no
// validation; Build enforces that at least one identifier was set.
type Builder struct {
	raw conventionJSON
}

// UUID sets the convention UUID.
func (b *Builder) UUID(u uuid.UUID) *Builder {
	b.raw.UUID = &u
	return b
}

// SchemaURL sets the schema URL.
func (b *Builder) SchemaURL(url string) *Builder {
	b.raw.SchemaURL = &url
	return b
}

// SpecURL sets the specification URL.
func (b *Builder) SpecURL(url string) *Builder {
	b.raw.SpecURL = &url
	return b
}

// Name sets the display name.
func (b *Builder) Name(name string) *Builder {
	b.raw.Name = &name
	return b
}

// Description sets the description.
func (b *Builder) Description(description string) *Builder {
	b.raw.Description = &description
	return b
}

// Build constructs the Convention, failing with a missing identifier error
// when none of uuid, schema_url, or spec_url was set. Name and description
// remain optional.
func (b *Builder) Build() (Convention, error) {
	if b.raw.UUID == nil && b.raw.SchemaURL == nil && b.raw.SpecURL == nil {
		return Convention{}, pkgerrors.NewMissingIdentifierError("convention")
	}
	return Convention{
		uuid:        b.raw.UUID,
		schemaURL:   b.raw.SchemaURL,
		specURL:     b.raw.SpecURL,
		name:        b.raw.Name,
		description: b.raw.Description,
	}, nil
}
