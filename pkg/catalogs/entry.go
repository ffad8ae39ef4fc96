package catalogs

import (
	"fmt"
	"strconv"

	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
)

// Entry is one creature in the catalog. ID, Name and Types are ground truth;
// the three effectiveness fields are derived from Types.
type Entry struct {
	ID          int       `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Types       []Element `json:"type" yaml:"type"`
	Weaknesses  []Element `json:"weaknesses" yaml:"weaknesses"`
	Resistances []Element `json:"resistances" yaml:"resistances"`
	Immunities  []Element `json:"immunities" yaml:"immunities"`
}

// Key returns the id as a string, for error and log context.
func (e Entry) Key() string {
	return strconv.Itoa(e.ID)
}

// String returns a short human form such as "(25) Pikachu".
func (e Entry) String() string {
	return fmt.Sprintf("(%d) %s", e.ID, e.Name)
}

// Effectiveness returns the stored derived fields exactly as they are,
// without sorting, so drift in ordering stays visible.
func (e Entry) Effectiveness() Effectiveness {
	return Effectiveness{
		Weaknesses:  e.Weaknesses,
		Resistances: e.Resistances,
		Immunities:  e.Immunities,
	}
}

// WithEffectiveness returns a copy of e carrying eff. e is not modified.
func (e Entry) WithEffectiveness(eff Effectiveness) Entry {
	out := e.Clone()
	eff = eff.Clone()
	out.Weaknesses = eff.Weaknesses
	out.Resistances = eff.Resistances
	out.Immunities = eff.Immunities
	return out
}

// Clone returns a deep copy of e.
func (e Entry) Clone() Entry {
	return Entry{
		ID:          e.ID,
		Name:        e.Name,
		Types:       cloneElements(e.Types),
		Weaknesses:  cloneElements(e.Weaknesses),
		Resistances: cloneElements(e.Resistances),
		Immunities:  cloneElements(e.Immunities),
	}
}

// Validate checks the id range and the element count. A maxID of zero
// means constants.MaxID.
func (e Entry) Validate(maxID int) error {
	if maxID <= 0 {
		maxID = constants.MaxID
	}
	if e.ID < constants.MinID || e.ID > maxID {
		return errors.NewValidationError("id", e.ID, fmt.Sprintf("must be in [%d, %d]", constants.MinID, maxID))
	}
	if n := len(e.Types); n == 0 || n > constants.MaxElementsPerEntry {
		return errors.NewValidationError("type", e.Types, fmt.Sprintf("entry %d has %d elements, expected 1 or 2", e.ID, n))
	}
	return nil
}
