package dexmap

import (
	"context"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/dexmap/pkg/effectiveness"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/logging"
	"github.com/agentstation/dexmap/pkg/reconciler"
	pkgsync "github.com/agentstation/dexmap/pkg/sync"
	"github.com/agentstation/dexmap/pkg/synthesizer"
)

// Updater runs the reconcile, synthesize and export pipeline.
type Updater interface {
	// Update reconciles the catalog, synthesizes missing ids and exports
	// the merged catalog. Fatal errors return a nil result. When some ids
	// fail to synthesize, the result is returned together with a
	// SynthesisError.
	Update(ctx context.Context, opts ...pkgsync.Option) (*pkgsync.Result, error)
}

// Update implements Updater.
func (d *dexmap) Update(ctx context.Context, opts ...pkgsync.Option) (*pkgsync.Result, error) {
	// Step 1: Parse and validate options
	options := pkgsync.Defaults().Apply(opts...)
	if err := options.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Setup context with timeout
	var cancel context.CancelFunc
	if options.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
	} else {
		cancel = func() {}
	}
	defer cancel()

	ctx = logging.WithOperation(ctx, "update")
	logger := logging.FromContext(ctx)
	start := utc.Now()

	combiner := effectiveness.New(d.config.registry)

	// Step 3: Recompute existing entries; any failure here is fatal
	rec, err := reconciler.New(combiner, reconciler.WithMaxID(d.config.maxID))
	if err != nil {
		return nil, errors.WrapResource("create", "reconciler", "", err)
	}
	reconciled, err := rec.Reconcile(ctx, d.Catalog())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WrapContext("update", options.Timeout, ctxErr)
		}
		return nil, err
	}

	// Step 4: Synthesize missing ids; failures are per id
	synth, err := synthesizer.New(d.config.provider, combiner,
		synthesizer.WithWorkers(d.config.workers),
		synthesizer.WithFetchTimeout(d.config.fetchTimeout),
	)
	if err != nil {
		return nil, errors.WrapResource("create", "synthesizer", "", err)
	}
	synthesized := synth.SynthesizeAll(ctx, reconciled.Missing)

	// Step 5: Merge into one id-sorted catalog
	merged, err := reconciled.Catalog.Merge(synthesized.Catalog())
	if err != nil {
		return nil, err
	}

	result := &pkgsync.Result{
		Catalog:     merged,
		Corrections: reconciled.Corrections,
		Missing:     reconciled.Missing,
		Synthesized: synthesized.Entries,
		Failures:    synthesized.Failures,
		DryRun:      options.DryRun,
		OutputPath:  options.OutputPath,
		StartedAt:   start,
	}

	if changes := result.Changeset(); changes.HasChanges() {
		logger.Info().
			Int("added", len(changes.Added)).
			Int("updated", len(changes.Updated)).
			Int("failed", len(result.Failures)).
			Msg("Changes detected")
	} else {
		logger.Info().Msg("No changes detected")
	}

	// Step 6: Export
	switch {
	case options.DryRun:
		logger.Info().Bool("dry_run", true).Msg("Dry run completed, no file written")
	case options.RequireComplete && !result.Complete():
		logger.Warn().
			Ints("failed", result.FailedIDs()).
			Msg("Export skipped, synthesis incomplete")
	default:
		if err := merged.Save(options.SaveOptions()...); err != nil {
			return nil, err
		}
		result.Written = true
		logger.Info().
			Str("path", options.OutputPath).
			Int("entries", merged.Len()).
			Msg("Created file")
	}

	if !options.DryRun {
		d.setCatalog(merged)
	}

	// Step 7: Notify
	d.trigger(result.Corrections, result.Synthesized, result.FailedIDs(), result.Failures)

	result.Duration = time.Since(start.Time)
	return result, result.Err()
}
