package attributes

import (
	"encoding/json"
	"slices"

	"github.com/clbarnes/zarrs-conventions/pkg/conventions"
	pkgerrors "github.com/clbarnes/zarrs-conventions/pkg/errors"
)

// Builder assembles a complete attribute map from typed convention values
// and arbitrary free-form fields.
//
// Every convention value added through AddNested or AddPrefixed also
// records its definition, and Build emits one identity record per distinct
// convention into the reserved "zarr_conventions" array. The identity
// fields emitted per record are configurable; at least one of the three
// identifier kinds must stay enabled when conventions were added.
//
// A Builder is single-use: Build hands over the accumulated map.
type Builder struct {
	definitions map[conventions.Definition]struct{}
	attrs       Attributes

	uuid        bool
	schemaURL   bool
	specURL     bool
	name        bool
	description bool
}

// NewBuilder creates a Builder that emits all five identity fields per
// declared convention.
func NewBuilder() *Builder {
	return &Builder{
		definitions: make(map[conventions.Definition]struct{}),
		attrs:       make(Attributes),
		uuid:        true,
		schemaURL:   true,
		specURL:     true,
		name:        true,
		description: true,
	}
}

// IncludeUUID toggles emitting the conventions' UUID.
func (b *Builder) IncludeUUID(enable bool) *Builder {
	b.uuid = enable
	return b
}

// IncludeSchemaURL toggles emitting the conventions' schema URL.
func (b *Builder) IncludeSchemaURL(enable bool) *Builder {
	b.schemaURL = enable
	return b
}

// IncludeSpecURL toggles emitting the conventions' specification URL.
func (b *Builder) IncludeSpecURL(enable bool) *Builder {
	b.specURL = enable
	return b
}

// IncludeName toggles emitting the conventions' display name.
func (b *Builder) IncludeName(enable bool) *Builder {
	b.name = enable
	return b
}

// IncludeDescription toggles emitting the conventions' description.
func (b *Builder) IncludeDescription(enable bool) *Builder {
	b.description = enable
	return b
}

// Set adds an arbitrary free-form attribute. Choosing a key that collides
// with a convention's reserved key or prefix, or with the
// "zarr_conventions" array itself, is the caller's responsibility to avoid.
func (b *Builder) Set(key string, value any) error {
	if err := b.attrs.Set(key, value); err != nil {
		return pkgerrors.NewEncodeError(key, err)
	}
	return nil
}

// addDefinition records a convention as in use. Deduplicated by definition.
func (b *Builder) addDefinition(def conventions.Definition) {
	b.definitions[def] = struct{}{}
}

// AddNested encodes a convention value in nested form and records the
// convention as in use.
func AddNested[T conventions.NestedCodec](b *Builder, value T) error {
	if err := EncodeNested(b.attrs, value); err != nil {
		return err
	}
	b.addDefinition(value.Definition())
	return nil
}

// AddPrefixed encodes a convention value in prefixed form and records the
// convention as in use.
func AddPrefixed[T conventions.PrefixedCodec](b *Builder, value T) error {
	if err := EncodePrefixed(b.attrs, value); err != nil {
		return err
	}
	b.addDefinition(value.Definition())
	return nil
}

// Build finalizes the attribute map. When conventions were added, their
// identity records are emitted into the "zarr_conventions" array in the
// definitions' total order, honoring the configured field subset. Building
// fails when conventions were added but every identifier kind has been
// disabled, since an attribute map cannot declare a convention without at
// least one identifier.
func (b *Builder) Build() (Attributes, error) {
	if len(b.definitions) == 0 {
		return b.attrs, nil
	}

	if !b.uuid && !b.schemaURL && !b.specURL {
		return nil, pkgerrors.NewMissingIdentifierError("attributes")
	}

	defs := make([]conventions.Definition, 0, len(b.definitions))
	for def := range b.definitions {
		defs = append(defs, def)
	}
	slices.SortFunc(defs, conventions.Definition.Compare)

	records := make([]conventions.Convention, 0, len(defs))
	for _, def := range defs {
		cb := conventions.NewBuilder()
		if b.uuid {
			cb.UUID(def.UUID)
		}
		if b.schemaURL {
			cb.SchemaURL(def.SchemaURL)
		}
		if b.specURL {
			cb.SpecURL(def.SpecURL)
		}
		if b.name {
			cb.Name(def.Name)
		}
		if b.description {
			cb.Description(def.Description)
		}
		rec, err := cb.Build()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return nil, pkgerrors.NewEncodeError(ConventionsKey, err)
	}
	b.attrs[ConventionsKey] = raw

	return b.attrs, nil
}
