package conventions

import (
	"fmt"

	"github.com/google/uuid"
)

// IDKind distinguishes the three identifier forms a convention may carry.
type IDKind int

const (
	// IDKindUUID identifies a convention by its 128-bit UUID.
	IDKindUUID IDKind = iota
	// IDKindSchemaURL identifies a convention by its JSON schema URL.
	IDKindSchemaURL
	// IDKindSpecURL identifies a convention by its specification URL.
	IDKindSpecURL
)

// String returns the wire name of the identifier kind, matching the field
// names used in the "zarr_conventions" attribute.
func (k IDKind) String() string {
	switch k {
	case IDKindUUID:
		return "uuid"
	case IDKindSchemaURL:
		return "schema_url"
	case IDKindSpecURL:
		return "spec_url"
	default:
		return fmt.Sprintf("IDKind(%d)", int(k))
	}
}

// ID is the single canonical identifier for a convention. Exactly one
// identifier form is active, indicated by Kind. IDs are comparable and can
// be used as map keys; an ID of one kind never equals an ID of another kind
// even when the textual values coincide.
type ID struct {
	kind IDKind
	uuid uuid.UUID
	url  string
}

// UUIDID creates an ID from a convention UUID.
func UUIDID(u uuid.UUID) ID {
	return ID{kind: IDKindUUID, uuid: u}
}

// SchemaURLID creates an ID from a schema URL.
func SchemaURLID(url string) ID {
	return ID{kind: IDKindSchemaURL, url: url}
}

// SpecURLID creates an ID from a specification URL.
func SpecURLID(url string) ID {
	return ID{kind: IDKindSpecURL, url: url}
}

// Kind returns which identifier form this ID carries.
func (id ID) Kind() IDKind {
	return id.kind
}

// UUID returns the UUID value and whether this is a UUID-kind ID.
func (id ID) UUID() (uuid.UUID, bool) {
	return id.uuid, id.kind == IDKindUUID
}

// URL returns the URL value and whether this is a URL-kind ID
// (schema or spec).
func (id ID) URL() (string, bool) {
	return id.url, id.kind == IDKindSchemaURL || id.kind == IDKindSpecURL
}

// Value returns the identifier's textual value.
func (id ID) Value() string {
	if id.kind == IDKindUUID {
		return id.uuid.String()
	}
	return id.url
}

// String renders the ID as "<kind>:<value>" for logs and error messages.
func (id ID) String() string {
	return id.kind.String() + ":" + id.Value()
}
