package typechart_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dexmap/internal/testhelper"
	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/typechart"
)

func TestLookup(t *testing.T) {
	r := testhelper.Registry(t)
	assert.Equal(t, 18, r.Len())

	fire, err := r.Lookup("fire")
	require.NoError(t, err)
	assert.Equal(t, catalogs.Elements("water", "ground", "rock"), fire.Weaknesses)
	assert.Empty(t, fire.Immunities)

	_, err = r.Lookup("Fire")
	assert.True(t, errors.IsNotFound(err), "lookup is case-sensitive")

	_, err = r.Lookup("shadow")
	var nf *errors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "element", nf.Resource)
	assert.Equal(t, "shadow", nf.ID)
}

func TestLookupReturnsCopies(t *testing.T) {
	r := testhelper.Registry(t)

	fire, err := r.Lookup("fire")
	require.NoError(t, err)
	fire.Weaknesses[0] = "fairy"

	again, err := r.Lookup("fire")
	require.NoError(t, err)
	assert.Equal(t, catalogs.Element("water"), again.Weaknesses[0])
}

func TestNames(t *testing.T) {
	names := testhelper.Registry(t).Names()
	require.Len(t, names, 18)
	assert.Equal(t, catalogs.Element("bug"), names[0])
	assert.Equal(t, catalogs.Element("water"), names[17])
	assert.True(t, testhelper.Registry(t).Has("dragon"))
}

func TestNewRejectsBadProfiles(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		_, err := typechart.New(
			catalogs.TypeProfile{Name: "fire"},
			catalogs.TypeProfile{Name: "fire"},
		)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("overlapping sets", func(t *testing.T) {
		_, err := typechart.New(catalogs.TypeProfile{
			Name:       "odd",
			Weaknesses: catalogs.Elements("fire"),
			Immunities: catalogs.Elements("fire"),
		})
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestLoadFormats(t *testing.T) {
	fsys := fstest.MapFS{
		"types.yaml": {Data: []byte(`
types:
  - name: ghost
    weaknesses: [ghost, dark]
    resistances: [poison, bug]
    immunities: [normal, fighting]
`)},
		"bare.json": {Data: []byte(`[{"name": "normal", "weaknesses": ["fighting"], "resistances": [], "immunities": ["ghost"]}]`)},
	}

	r, err := typechart.LoadFS(fsys, "types.yaml")
	require.NoError(t, err)
	ghost, err := r.Lookup("ghost")
	require.NoError(t, err)
	assert.Equal(t, catalogs.Elements("normal", "fighting"), ghost.Immunities)

	r, err = typechart.LoadFS(fsys, "bare.json")
	require.NoError(t, err)
	assert.True(t, r.Has("normal"))

	_, err = typechart.Load("does-not-exist.json")
	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}
