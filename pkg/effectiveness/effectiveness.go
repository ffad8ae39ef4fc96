// Package effectiveness derives the combined effectiveness profile of one or
// two elements from their single-type profiles.
//
// For two elements A and B with W, R and I the unions of their weaknesses,
// resistances and immunities:
//
//	weaknesses  = W - (R ∪ I)
//	resistances = R - (W ∪ I)
//	immunities  = I
//
// Weakness and resistance to the same element cancel out. Immunities are
// never filtered: an immunity from either element survives even when the
// other element is weak or resistant to the same attacker.
package effectiveness

import (
	"fmt"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
)

// Lookuper resolves an element to its single-type profile.
// *typechart.Registry satisfies it.
type Lookuper interface {
	Lookup(name catalogs.Element) (catalogs.TypeProfile, error)
}

// Combiner computes effectiveness profiles. It holds no mutable state and
// is safe for concurrent use.
type Combiner struct {
	registry Lookuper
}

// New returns a Combiner backed by registry.
func New(registry Lookuper) *Combiner {
	return &Combiner{registry: registry}
}

// Combine returns the effectiveness of a creature with the given elements.
// Each category is sorted. Unknown elements fail with a NotFoundError and
// anything other than one or two elements fails with a ValidationError.
func (c *Combiner) Combine(elements ...catalogs.Element) (catalogs.Effectiveness, error) {
	if n := len(elements); n == 0 || n > constants.MaxElementsPerEntry {
		return catalogs.Effectiveness{}, errors.NewValidationError("elements", elements,
			fmt.Sprintf("expected 1 or 2 elements, got %d", n))
	}

	profiles := make([]catalogs.TypeProfile, len(elements))
	for i, name := range elements {
		p, err := c.registry.Lookup(name)
		if err != nil {
			return catalogs.Effectiveness{}, err
		}
		profiles[i] = p
	}

	if len(profiles) == 1 {
		return profiles[0].Effectiveness(), nil
	}

	var w, r, i catalogs.ElementSet
	for idx, p := range profiles {
		pw, pr, pi := p.Effectiveness().Sets()
		if idx == 0 {
			w, r, i = pw, pr, pi
			continue
		}
		w, r, i = w.Union(pw), r.Union(pr), i.Union(pi)
	}

	return catalogs.NewEffectiveness(
		w.Minus(r, i),
		r.Minus(w, i),
		i,
	), nil
}
