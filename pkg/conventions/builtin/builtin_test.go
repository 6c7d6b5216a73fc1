package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clbarnes/zarrs-conventions/pkg/conventions"
	"github.com/clbarnes/zarrs-conventions/pkg/conventions/builtin"
	"github.com/clbarnes/zarrs-conventions/pkg/conventions/license"
	"github.com/clbarnes/zarrs-conventions/pkg/conventions/uom"
	pkgerrors "github.com/clbarnes/zarrs-conventions/pkg/errors"
)

func TestRegister(t *testing.T) {
	r := conventions.NewRegistry()
	require.NoError(t, builtin.Register(r))

	defs := r.Definitions()
	require.Len(t, defs, 2)
	assert.Contains(t, defs, license.Definition)
	assert.Contains(t, defs, uom.Definition)

	for _, def := range []conventions.Definition{license.Definition, uom.Definition} {
		for _, id := range def.IDs() {
			got, ok := r.Get(id)
			require.True(t, ok, "lookup by %s", id)
			assert.Equal(t, def, got)
		}
	}
}

func TestRegisterTwice(t *testing.T) {
	r := conventions.NewRegistry()
	require.NoError(t, builtin.Register(r))

	err := builtin.Register(r)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsDuplicateIdentifier(err))
}
