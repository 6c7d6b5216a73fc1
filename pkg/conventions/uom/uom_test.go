package uom_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clbarnes/zarrs-conventions/pkg/attributes"
	"github.com/clbarnes/zarrs-conventions/pkg/conventions/uom"
)

func TestDefinition(t *testing.T) {
	require.NoError(t, uom.Definition.Validate())
	assert.Equal(t, "uom", uom.Definition.Name)
	assert.Equal(t, uom.Definition, uom.UnitOfMeasurement{}.Definition())
	assert.Equal(t, "uom", uom.UnitOfMeasurement{}.NestedKey())
}

func TestBuilder(t *testing.T) {
	m := uom.NewBuilder().
		Unit("um").
		Version("2.2").
		Description("physical distance along the axis").
		Build()

	unit, ok := m.Ucum().Unit()
	require.True(t, ok)
	assert.Equal(t, "um", unit)
	version, ok := m.Ucum().Version()
	require.True(t, ok)
	assert.Equal(t, "2.2", version)
	assert.Equal(t, "physical distance along the axis", m.Description())
}

func TestBuilderAllOptional(t *testing.T) {
	m := uom.NewBuilder().Build()
	_, ok := m.Ucum().Unit()
	assert.False(t, ok)
	_, ok = m.Ucum().Version()
	assert.False(t, ok)
	assert.Empty(t, m.Description())
}

func TestJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		raw, err := json.Marshal(uom.NewBuilder().Unit("mm").Build())
		require.NoError(t, err)
		assert.JSONEq(t, `{"ucum":{"unit":"mm"}}`, string(raw))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var m uom.UnitOfMeasurement
		require.NoError(t, json.Unmarshal(
			[]byte(`{"ucum":{"unit":"s","version":"2.2"},"description":"exposure time"}`), &m))
		unit, ok := m.Ucum().Unit()
		require.True(t, ok)
		assert.Equal(t, "s", unit)
		assert.Equal(t, "exposure time", m.Description())
	})

	t.Run("unmarshal empty ucum", func(t *testing.T) {
		var m uom.UnitOfMeasurement
		require.NoError(t, json.Unmarshal([]byte(`{"ucum":{}}`), &m))
		_, ok := m.Ucum().Unit()
		assert.False(t, ok)
	})
}

func TestAttributesRoundTrip(t *testing.T) {
	b := attributes.NewBuilder()
	require.NoError(t, attributes.AddNested(b, uom.NewBuilder().Unit("um").Build()))
	attrs, err := b.Build()
	require.NoError(t, err)

	assert.JSONEq(t, `{"ucum":{"unit":"um"}}`, string(attrs["uom"]))

	p, err := attributes.Parse(attrs)
	require.NoError(t, err)
	require.True(t, attributes.InUse[uom.UnitOfMeasurement](p))

	got, err := attributes.ParseNested[uom.UnitOfMeasurement](p)
	require.NoError(t, err)
	require.NotNil(t, got)
	unit, ok := got.Ucum().Unit()
	require.True(t, ok)
	assert.Equal(t, "um", unit)
}
