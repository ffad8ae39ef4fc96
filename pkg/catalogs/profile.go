package catalogs

import (
	"fmt"
	"slices"

	"github.com/agentstation/dexmap/pkg/errors"
)

// TypeProfile is the single-type effectiveness data for one element.
type TypeProfile struct {
	Name        Element   `json:"name" yaml:"name"`
	Weaknesses  []Element `json:"weaknesses" yaml:"weaknesses"`
	Resistances []Element `json:"resistances" yaml:"resistances"`
	Immunities  []Element `json:"immunities" yaml:"immunities"`
}

// Validate checks that the profile is named and its three sets are pairwise disjoint.
func (p TypeProfile) Validate() error {
	if p.Name == "" {
		return errors.NewValidationError("name", p.Name, "type profile name is required")
	}
	return p.Effectiveness().validate(string(p.Name))
}

// Effectiveness returns the profile's three sets, sorted.
func (p TypeProfile) Effectiveness() Effectiveness {
	return NewEffectiveness(
		NewElementSet(p.Weaknesses...),
		NewElementSet(p.Resistances...),
		NewElementSet(p.Immunities...),
	)
}

// Clone returns a deep copy of p.
func (p TypeProfile) Clone() TypeProfile {
	return TypeProfile{
		Name:        p.Name,
		Weaknesses:  cloneElements(p.Weaknesses),
		Resistances: cloneElements(p.Resistances),
		Immunities:  cloneElements(p.Immunities),
	}
}

// Effectiveness is a derived profile: three sorted, pairwise disjoint sequences.
type Effectiveness struct {
	Weaknesses  []Element `json:"weaknesses" yaml:"weaknesses"`
	Resistances []Element `json:"resistances" yaml:"resistances"`
	Immunities  []Element `json:"immunities" yaml:"immunities"`
}

// NewEffectiveness builds an Effectiveness from sets, sorting each category.
func NewEffectiveness(weaknesses, resistances, immunities ElementSet) Effectiveness {
	return Effectiveness{
		Weaknesses:  weaknesses.Sorted(),
		Resistances: resistances.Sorted(),
		Immunities:  immunities.Sorted(),
	}
}

// Sets returns the three categories as sets.
func (e Effectiveness) Sets() (weaknesses, resistances, immunities ElementSet) {
	return NewElementSet(e.Weaknesses...), NewElementSet(e.Resistances...), NewElementSet(e.Immunities...)
}

// Validate checks that the three categories are pairwise disjoint.
func (e Effectiveness) Validate() error {
	return e.validate("")
}

func (e Effectiveness) validate(subject string) error {
	w, r, i := e.Sets()
	pairs := []struct {
		a, b       ElementSet
		aName, bNm string
	}{
		{w, r, "weaknesses", "resistances"},
		{w, i, "weaknesses", "immunities"},
		{r, i, "resistances", "immunities"},
	}
	for _, p := range pairs {
		if overlap := p.a.Intersect(p.b); overlap.Len() > 0 {
			msg := fmt.Sprintf("%s and %s overlap on %v", p.aName, p.bNm, overlap.Sorted())
			if subject != "" {
				msg = fmt.Sprintf("%s: %s", subject, msg)
			}
			return errors.NewValidationError(p.aName, overlap.Sorted(), msg)
		}
	}
	return nil
}

// Equal compares the sequences exactly, order included.
func (e Effectiveness) Equal(o Effectiveness) bool {
	return slices.Equal(e.Weaknesses, o.Weaknesses) &&
		slices.Equal(e.Resistances, o.Resistances) &&
		slices.Equal(e.Immunities, o.Immunities)
}

// Clone returns a deep copy of e.
func (e Effectiveness) Clone() Effectiveness {
	return Effectiveness{
		Weaknesses:  cloneElements(e.Weaknesses),
		Resistances: cloneElements(e.Resistances),
		Immunities:  cloneElements(e.Immunities),
	}
}

func cloneElements(in []Element) []Element {
	if in == nil {
		return []Element{}
	}
	return slices.Clone(in)
}
