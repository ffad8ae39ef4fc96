package effectiveness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dexmap/internal/testhelper"
	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/effectiveness"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/typechart"
)

func newCombiner(t *testing.T) (*effectiveness.Combiner, *typechart.Registry) {
	t.Helper()
	r := testhelper.Registry(t)
	return effectiveness.New(r), r
}

func TestCombineSingleElementIsIdentity(t *testing.T) {
	c, r := newCombiner(t)

	for _, name := range r.Names() {
		t.Run(string(name), func(t *testing.T) {
			profile, err := r.Lookup(name)
			require.NoError(t, err)

			got, err := c.Combine(name)
			require.NoError(t, err)

			w, res, imm := got.Sets()
			assert.True(t, w.Equal(catalogs.NewElementSet(profile.Weaknesses...)))
			assert.True(t, res.Equal(catalogs.NewElementSet(profile.Resistances...)))
			assert.True(t, imm.Equal(catalogs.NewElementSet(profile.Immunities...)))
			assert.Equal(t, len(profile.Weaknesses), len(got.Weaknesses))
		})
	}
}

func TestCombinePairLaws(t *testing.T) {
	c, r := newCombiner(t)
	names := r.Names()

	for _, a := range names {
		for _, b := range names {
			if a == b {
				continue
			}
			pa, err := r.Lookup(a)
			require.NoError(t, err)
			pb, err := r.Lookup(b)
			require.NoError(t, err)

			got, err := c.Combine(a, b)
			require.NoError(t, err)
			w, res, imm := got.Sets()

			assert.NoError(t, got.Validate(), "%s/%s sets must be disjoint", a, b)

			guard := catalogs.NewElementSet(pa.Resistances...).Union(
				catalogs.NewElementSet(pb.Resistances...),
				catalogs.NewElementSet(pa.Immunities...),
				catalogs.NewElementSet(pb.Immunities...),
			)
			assert.True(t, w.IsDisjoint(guard), "%s/%s weaknesses must not survive a resistance or immunity", a, b)

			allImm := catalogs.NewElementSet(pa.Immunities...).Union(catalogs.NewElementSet(pb.Immunities...))
			assert.True(t, imm.Equal(allImm), "%s/%s immunities are the unfiltered union", a, b)

			allWeak := catalogs.NewElementSet(pa.Weaknesses...).Union(catalogs.NewElementSet(pb.Weaknesses...))
			assert.True(t, res.IsDisjoint(allWeak.Union(allImm)), "%s/%s resistances cancel against weaknesses", a, b)

			reversed, err := c.Combine(b, a)
			require.NoError(t, err)
			assert.Equal(t, got, reversed, "%s/%s must be order independent", a, b)

			assert.IsNonDecreasing(t, got.Weaknesses)
			assert.IsNonDecreasing(t, got.Resistances)
			assert.IsNonDecreasing(t, got.Immunities)
		}
	}
}

func TestCombineExamples(t *testing.T) {
	c, _ := newCombiner(t)

	tests := []struct {
		name     string
		elements []string
		want     catalogs.Effectiveness
	}{
		{
			name:     "fire flying keeps shared rock weakness",
			elements: []string{"fire", "flying"},
			want: catalogs.Effectiveness{
				Weaknesses:  catalogs.Elements("electric", "rock", "water"),
				Resistances: catalogs.Elements("bug", "fairy", "fighting", "fire", "grass", "steel"),
				Immunities:  catalogs.Elements("ground"),
			},
		},
		{
			name:     "grass poison cancels overlapping signals",
			elements: []string{"grass", "poison"},
			want: catalogs.Effectiveness{
				Weaknesses:  catalogs.Elements("fire", "flying", "ice", "psychic"),
				Resistances: catalogs.Elements("electric", "fairy", "fighting", "grass", "water"),
				Immunities:  []catalogs.Element{},
			},
		},
		{
			name:     "ghost poison drops resistance covered by immunity",
			elements: []string{"ghost", "poison"},
			want: catalogs.Effectiveness{
				Weaknesses:  catalogs.Elements("dark", "ghost", "ground", "psychic"),
				Resistances: catalogs.Elements("bug", "fairy", "grass", "poison"),
				Immunities:  catalogs.Elements("fighting", "normal"),
			},
		},
		{
			name:     "repeated element behaves like a single element",
			elements: []string{"water", "water"},
			want: catalogs.Effectiveness{
				Weaknesses:  catalogs.Elements("electric", "grass"),
				Resistances: catalogs.Elements("fire", "ice", "steel", "water"),
				Immunities:  []catalogs.Element{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Combine(catalogs.Elements(tt.elements...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Immunity is never reduced by the other element's weaknesses: flying is
// weak to electric, ground is immune to it, and the pair stays immune.
func TestCombineImmunityIsUnfiltered(t *testing.T) {
	c, _ := newCombiner(t)

	got, err := c.Combine("ground", "flying")
	require.NoError(t, err)

	assert.Equal(t, catalogs.Elements("electric", "ground"), got.Immunities)
	assert.Equal(t, catalogs.Elements("ice", "water"), got.Weaknesses)
	assert.Equal(t, catalogs.Elements("bug", "fighting", "poison"), got.Resistances)
}

func TestCombineErrors(t *testing.T) {
	c, _ := newCombiner(t)

	_, err := c.Combine("fire", "shadow")
	assert.True(t, errors.IsNotFound(err))

	_, err = c.Combine()
	assert.True(t, errors.IsValidationError(err))

	_, err = c.Combine("fire", "water", "grass")
	assert.True(t, errors.IsValidationError(err))
}
