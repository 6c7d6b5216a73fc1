package attributes_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clbarnes/zarrs-conventions/pkg/attributes"
	"github.com/clbarnes/zarrs-conventions/pkg/conventions"
	pkgerrors "github.com/clbarnes/zarrs-conventions/pkg/errors"
)

func TestBuilderNoConventions(t *testing.T) {
	b := attributes.NewBuilder()
	require.NoError(t, b.Set("free_form", "value"))

	attrs, err := b.Build()
	require.NoError(t, err)

	assert.Len(t, attrs, 1)
	assert.NotContains(t, attrs, attributes.ConventionsKey)
	assert.JSONEq(t, `"value"`, string(attrs["free_form"]))
}

func TestBuilderFullIdentity(t *testing.T) {
	b := attributes.NewBuilder()
	require.NoError(t, attributes.AddNested(b, mustBeNested{A: 1, B: 2}))
	require.NoError(t, attributes.AddPrefixed(b, mustBePrefixed{X: 3, Y: 4}))
	require.NoError(t, b.Set("other", 42))

	attrs, err := b.Build()
	require.NoError(t, err)

	assert.JSONEq(t, `{"a":1,"b":2}`, string(attrs["must_be_nested"]))
	assert.JSONEq(t, `3`, string(attrs["must_be_prefixed:x"]))
	assert.JSONEq(t, `4`, string(attrs["must_be_prefixed:y"]))
	assert.JSONEq(t, `42`, string(attrs["other"]))

	var records []conventions.Convention
	require.NoError(t, json.Unmarshal(attrs[attributes.ConventionsKey], &records))
	require.Len(t, records, 2)

	// Records sort by UUID, so must_be_nested comes first.
	name, ok := records[0].Name()
	require.True(t, ok)
	assert.Equal(t, "must_be_nested", name)
	name, ok = records[1].Name()
	require.True(t, ok)
	assert.Equal(t, "must_be_prefixed", name)

	for i, want := range []conventions.Definition{
		mustBeNested{}.Definition(),
		mustBePrefixed{}.Definition(),
	} {
		u, ok := records[i].UUID()
		require.True(t, ok)
		assert.Equal(t, want.UUID, u)
		schema, ok := records[i].SchemaURL()
		require.True(t, ok)
		assert.Equal(t, want.SchemaURL, schema)
		spec, ok := records[i].SpecURL()
		require.True(t, ok)
		assert.Equal(t, want.SpecURL, spec)
		desc, ok := records[i].Description()
		require.True(t, ok)
		assert.Equal(t, want.Description, desc)
	}
}

func TestBuilderUUIDOnly(t *testing.T) {
	b := attributes.NewBuilder().
		IncludeSchemaURL(false).
		IncludeSpecURL(false).
		IncludeName(false).
		IncludeDescription(false)
	require.NoError(t, attributes.AddNested(b, mustBeNested{A: 1, B: 2}))

	attrs, err := b.Build()
	require.NoError(t, err)

	assert.JSONEq(t,
		`[{"uuid":"11111111-1111-1111-1111-111111111111"}]`,
		string(attrs[attributes.ConventionsKey]))
}

func TestBuilderNoIdentifierFields(t *testing.T) {
	b := attributes.NewBuilder().
		IncludeUUID(false).
		IncludeSchemaURL(false).
		IncludeSpecURL(false)
	require.NoError(t, attributes.AddNested(b, mustBeNested{A: 1, B: 2}))

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, pkgerrors.IsMissingIdentifier(err))
}

func TestBuilderNoIdentifierFieldsWithoutConventions(t *testing.T) {
	// The identifier requirement only applies when conventions were added.
	b := attributes.NewBuilder().
		IncludeUUID(false).
		IncludeSchemaURL(false).
		IncludeSpecURL(false)
	require.NoError(t, b.Set("plain", true))

	attrs, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, attrs, 1)
}

func TestBuilderDeduplicatesConventions(t *testing.T) {
	b := attributes.NewBuilder()
	require.NoError(t, attributes.AddNested(b, canBeEither{Foo: 1, Bar: 2}))
	require.NoError(t, attributes.AddPrefixed(b, canBeEither{Foo: 1, Bar: 2}))

	attrs, err := b.Build()
	require.NoError(t, err)

	var records []conventions.Convention
	require.NoError(t, json.Unmarshal(attrs[attributes.ConventionsKey], &records))
	assert.Len(t, records, 1)
}

func TestBuilderDeterministicOrdering(t *testing.T) {
	build := func(flip bool) attributes.Attributes {
		b := attributes.NewBuilder()
		if flip {
			require.NoError(t, attributes.AddPrefixed(b, mustBePrefixed{X: 3, Y: 4}))
			require.NoError(t, attributes.AddNested(b, mustBeNested{A: 1, B: 2}))
		} else {
			require.NoError(t, attributes.AddNested(b, mustBeNested{A: 1, B: 2}))
			require.NoError(t, attributes.AddPrefixed(b, mustBePrefixed{X: 3, Y: 4}))
		}
		attrs, err := b.Build()
		require.NoError(t, err)
		return attrs
	}

	a := build(false)
	b := build(true)
	assert.Equal(t, string(a[attributes.ConventionsKey]), string(b[attributes.ConventionsKey]))
}

func TestBuilderRoundTripThroughParser(t *testing.T) {
	b := attributes.NewBuilder().
		IncludeSchemaURL(false).
		IncludeSpecURL(false).
		IncludeName(false).
		IncludeDescription(false)
	require.NoError(t, attributes.AddNested(b, mustBeNested{A: 1, B: 2}))
	require.NoError(t, attributes.AddNested(b, canBeEither{Foo: 5, Bar: 6}))

	attrs, err := b.Build()
	require.NoError(t, err)

	p, err := attributes.Parse(attrs)
	require.NoError(t, err)

	assert.True(t, attributes.InUse[mustBeNested](p))
	assert.True(t, attributes.InUse[canBeEither](p))
	assert.False(t, attributes.InUse[mustBePrefixed](p))

	nested, err := attributes.ParseNested[mustBeNested](p)
	require.NoError(t, err)
	require.NotNil(t, nested)
	assert.Equal(t, mustBeNested{A: 1, B: 2}, *nested)

	either, err := attributes.ParseCombined[canBeEither](p)
	require.NoError(t, err)
	require.NotNil(t, either)
	assert.Equal(t, canBeEither{Foo: 5, Bar: 6}, *either)
}
