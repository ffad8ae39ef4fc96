package sync

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/differ"
	"github.com/agentstation/dexmap/pkg/errors"
)

// Result represents the complete result of an update run.
type Result struct {
	Catalog     *catalogs.Catalog    // Corrected and synthesized entries, sorted by id
	Corrections []differ.EntryUpdate // Existing entries whose stored fields drifted
	Missing     []int                // Ids absent from the input catalog
	Synthesized []catalogs.Entry     // Entries built for missing ids
	Failures    map[int]error        // Missing ids that could not be synthesized

	// Operation metadata
	DryRun     bool          // Whether this was a dry run
	OutputPath string        // Where the catalog was (or would be) written
	Written    bool          // Whether the output file was written
	StartedAt  utc.Time      // When the run started
	Duration   time.Duration // Wall time of the run
}

// HasChanges returns true if the run corrected or added anything.
func (r *Result) HasChanges() bool {
	return len(r.Corrections) > 0 || len(r.Synthesized) > 0
}

// Complete reports whether every missing id was synthesized.
func (r *Result) Complete() bool {
	return len(r.Failures) == 0
}

// FailedIDs returns the ids that failed to synthesize, ascending.
func (r *Result) FailedIDs() []int {
	return slices.Sorted(maps.Keys(r.Failures))
}

// Err returns a SynthesisError when any id failed, or nil.
func (r *Result) Err() error {
	return errors.NewSynthesisError(r.Failures)
}

// Changeset returns the run as a changeset: synthesized entries are added,
// corrected entries updated. Nothing is ever removed.
func (r *Result) Changeset() *differ.Changeset {
	return &differ.Changeset{
		Added:   r.Synthesized,
		Updated: r.Corrections,
	}
}

// Summary returns a human-readable summary of the update result.
func (r *Result) Summary() string {
	var parts []string
	if r.DryRun {
		parts = append(parts, "(Dry run)")
	}

	summary := fmt.Sprintf("%d entries: %d corrected, %d synthesized, %d failed",
		r.Catalog.Len(), len(r.Corrections), len(r.Synthesized), len(r.Failures))
	if !r.HasChanges() && r.Complete() {
		summary = fmt.Sprintf("%d entries: no changes detected", r.Catalog.Len())
	}
	if len(parts) > 0 {
		summary += " " + strings.Join(parts, " ")
	}
	return summary
}
