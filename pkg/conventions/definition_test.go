package conventions_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clbarnes/zarrs-conventions/pkg/conventions"
	pkgerrors "github.com/clbarnes/zarrs-conventions/pkg/errors"
)

func testDefinition() conventions.Definition {
	return conventions.Definition{
		UUID:        testUUID,
		SchemaURL:   "https://example.com/schemas/test_convention.json",
		SpecURL:     "https://example.com/specs/test_convention",
		Name:        "test_convention",
		Description: "A test convention.",
	}
}

func TestDefinitionIDs(t *testing.T) {
	def := testDefinition()

	assert.Equal(t, conventions.UUIDID(def.UUID), def.IDUUID())
	assert.Equal(t, conventions.SchemaURLID(def.SchemaURL), def.IDSchemaURL())
	assert.Equal(t, conventions.SpecURLID(def.SpecURL), def.IDSpecURL())

	// The preferred identifier of a full definition is always the UUID.
	assert.Equal(t, def.IDUUID(), def.ID())

	ids := def.IDs()
	require.Len(t, ids, 3)
	assert.Equal(t, conventions.IDKindUUID, ids[0].Kind())
	assert.Equal(t, conventions.IDKindSchemaURL, ids[1].Kind())
	assert.Equal(t, conventions.IDKindSpecURL, ids[2].Kind())
}

func TestDefinitionConvention(t *testing.T) {
	def := testDefinition()
	c := def.Convention()

	u, ok := c.UUID()
	require.True(t, ok)
	assert.Equal(t, def.UUID, u)

	schema, ok := c.SchemaURL()
	require.True(t, ok)
	assert.Equal(t, def.SchemaURL, schema)

	spec, ok := c.SpecURL()
	require.True(t, ok)
	assert.Equal(t, def.SpecURL, spec)

	name, ok := c.Name()
	require.True(t, ok)
	assert.Equal(t, def.Name, name)

	desc, ok := c.Description()
	require.True(t, ok)
	assert.Equal(t, def.Description, desc)
}

func TestDefinitionValidate(t *testing.T) {
	t.Run("complete definition is valid", func(t *testing.T) {
		assert.NoError(t, testDefinition().Validate())
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*conventions.Definition)
		}{
			{"nil uuid", func(d *conventions.Definition) { d.UUID = uuid.Nil }},
			{"empty schema url", func(d *conventions.Definition) { d.SchemaURL = "" }},
			{"empty spec url", func(d *conventions.Definition) { d.SpecURL = "" }},
			{"empty name", func(d *conventions.Definition) { d.Name = "" }},
			{"empty description", func(d *conventions.Definition) { d.Description = "" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				def := testDefinition()
				tt.mutate(&def)
				err := def.Validate()
				require.Error(t, err)
				assert.True(t, pkgerrors.IsValidationError(err))
			})
		}
	})
}

func TestDefinitionCompare(t *testing.T) {
	a := testDefinition()
	b := a

	assert.Zero(t, a.Compare(b))

	b.UUID = uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))

	// UUID dominates the remaining fields.
	b.Name = "aaaa"
	assert.Negative(t, a.Compare(b))

	c := a
	c.Name = "zzzz"
	assert.Negative(t, a.Compare(c))
}
