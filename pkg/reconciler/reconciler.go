// Package reconciler re-derives the effectiveness fields of every entry in
// an existing catalog, records which entries drifted from their stored
// values and finds the ids the catalog does not cover.
package reconciler

import (
	"context"

	"github.com/agentstation/utc"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/differ"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/logging"
)

// Combiner derives an effectiveness profile from an entry's elements.
// *effectiveness.Combiner satisfies it.
type Combiner interface {
	Combine(elements ...catalogs.Element) (catalogs.Effectiveness, error)
}

// Reconciler is the main interface for reconciling an existing catalog.
type Reconciler interface {
	// Reconcile validates the catalog ordering, recomputes every entry and
	// reports corrections and missing ids. Any failure to recompute an
	// existing entry aborts the whole run.
	Reconcile(ctx context.Context, catalog *catalogs.Catalog) (*Result, error)
}

type reconciler struct {
	combiner Combiner
	differ   differ.Differ
	maxID    int
}

// New creates a Reconciler backed by combiner.
func New(combiner Combiner, opts ...Option) (Reconciler, error) {
	if combiner == nil {
		return nil, &errors.ValidationError{Field: "combiner", Message: "cannot be nil"}
	}
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &reconciler{
		combiner: combiner,
		differ:   options.differ,
		maxID:    options.maxID,
	}, nil
}

// Reconcile performs reconciliation in three steps: precondition check,
// recomputation, missing id detection.
func (r *reconciler) Reconcile(ctx context.Context, catalog *catalogs.Catalog) (*Result, error) {
	ctx = logging.WithOperation(ctx, "reconcile")
	logger := logging.FromContext(ctx)
	start := utc.Now()

	// Step 1: the missing id walk is only correct on sorted, unique ids
	if err := catalog.Validate(r.maxID); err != nil {
		return nil, err
	}

	// Step 2: recompute every entry; the recomputed value always wins
	corrected := make([]catalogs.Entry, 0, catalog.Len())
	var corrections []differ.EntryUpdate
	for _, stored := range catalog.Entries() {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapContext("reconcile", 0, err)
		}

		eff, err := r.combiner.Combine(stored.Types...)
		if err != nil {
			return nil, errors.WrapResource("reconcile", "entry", stored.Key(), err)
		}

		updated := stored.WithEffectiveness(eff)
		corrected = append(corrected, updated)

		if update := r.differ.Entry(stored, updated); update != nil {
			corrections = append(corrections, *update)
			logging.FromContext(logging.WithEntry(ctx, update.ID)).Info().
				Str("name", update.Name).
				Strs("fields", update.Fields()).
				Msg("Entry corrected")
		}
	}

	// Step 3: find gaps up to maxID
	missing := MissingIDs(catalog, r.maxID)

	result := &Result{
		Catalog:     catalogs.NewCatalog(corrected...),
		Missing:     missing,
		Corrections: corrections,
	}
	result.Finalize(start)

	logger.Info().
		Int("entries", result.Stats.EntriesProcessed).
		Int("corrected", result.Stats.EntriesCorrected).
		Int("missing", result.Stats.MissingIDs).
		Dur("duration", result.Duration).
		Msg("Catalog reconciled")

	return result, nil
}

// MissingIDs walks an ascending, duplicate-free catalog and returns every id
// in [1, maxID] it does not contain, in ascending order.
func MissingIDs(catalog *catalogs.Catalog, maxID int) []int {
	missing := []int{}
	curr := 0
	for _, id := range catalog.IDs() {
		for gap := curr + 1; gap < id; gap++ {
			missing = append(missing, gap)
		}
		curr = id
	}
	for gap := curr + 1; gap <= maxID; gap++ {
		missing = append(missing, gap)
	}
	return missing
}
