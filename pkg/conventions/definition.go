package conventions

import (
	"bytes"
	"strings"

	"github.com/google/uuid"

	pkgerrors "github.com/clbarnes/zarrs-conventions/pkg/errors"
)

// Definition is the immutable, fully-populated identity of a convention
// implementation. Unlike Convention, every field is required; a Definition
// with an empty field is rejected at registration time.
type Definition struct {
	UUID        uuid.UUID `json:"uuid"`
	SchemaURL   string    `json:"schema_url"`
	SpecURL     string    `json:"spec_url"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// IDUUID returns the definition's UUID identifier.
func (d Definition) IDUUID() ID {
	return UUIDID(d.UUID)
}

// IDSchemaURL returns the definition's schema URL identifier.
func (d Definition) IDSchemaURL() ID {
	return SchemaURLID(d.SchemaURL)
}

// IDSpecURL returns the definition's specification URL identifier.
func (d Definition) IDSpecURL() ID {
	return SpecURLID(d.SpecURL)
}

// ID returns the preferred identifier for the definition, which is always
// the UUID since all fields are present.
func (d Definition) ID() ID {
	return d.IDUUID()
}

// IDs returns all three identifiers, in preference order.
func (d Definition) IDs() []ID {
	return []ID{d.IDUUID(), d.IDSchemaURL(), d.IDSpecURL()}
}

// Convention converts the definition into a fully-populated partial
// identity record, as emitted into the "zarr_conventions" attribute.
func (d Definition) Convention() Convention {
	u := d.UUID
	return Convention{
		uuid:        &u,
		schemaURL:   &d.SchemaURL,
		specURL:     &d.SpecURL,
		name:        &d.Name,
		description: &d.Description,
	}
}

// Validate checks that all five fields are present. The registry refuses
// definitions that fail validation.
func (d Definition) Validate() error {
	if d.UUID == uuid.Nil {
		return pkgerrors.NewValidationError("uuid", d.UUID, "must not be the nil UUID")
	}
	if d.SchemaURL == "" {
		return pkgerrors.NewValidationError("schema_url", d.SchemaURL, "must not be empty")
	}
	if d.SpecURL == "" {
		return pkgerrors.NewValidationError("spec_url", d.SpecURL, "must not be empty")
	}
	if d.Name == "" {
		return pkgerrors.NewValidationError("name", d.Name, "must not be empty")
	}
	if d.Description == "" {
		return pkgerrors.NewValidationError("description", d.Description, "must not be empty")
	}
	return nil
}

// Compare orders definitions lexicographically over the
// (uuid, schema_url, spec_url, name, description) tuple. The ordering is
// only used for deterministic iteration, e.g. when emitting multiple
// conventions into an attribute map.
func (d Definition) Compare(other Definition) int {
	if c := bytes.Compare(d.UUID[:], other.UUID[:]); c != 0 {
		return c
	}
	if c := strings.Compare(d.SchemaURL, other.SchemaURL); c != 0 {
		return c
	}
	if c := strings.Compare(d.SpecURL, other.SpecURL); c != 0 {
		return c
	}
	if c := strings.Compare(d.Name, other.Name); c != 0 {
		return c
	}
	return strings.Compare(d.Description, other.Description)
}
