// Package synthesizer builds catalog entries for ids the existing catalog
// lacks: it fetches each id from a record provider, normalizes the name and
// derives the effectiveness fields with the combiner.
package synthesizer

import (
	"context"
	"maps"
	"slices"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/logging"
	"github.com/agentstation/dexmap/pkg/sources"
)

// Combiner derives an effectiveness profile from elements.
type Combiner interface {
	Combine(elements ...catalogs.Element) (catalogs.Effectiveness, error)
}

// Synthesizer turns missing ids into entries. It is safe for concurrent use.
type Synthesizer struct {
	provider sources.Provider
	combiner Combiner
	options  *options
}

// New creates a Synthesizer.
func New(provider sources.Provider, combiner Combiner, opts ...Option) (*Synthesizer, error) {
	if provider == nil {
		return nil, &errors.ValidationError{Field: "provider", Message: "cannot be nil"}
	}
	if combiner == nil {
		return nil, &errors.ValidationError{Field: "combiner", Message: "cannot be nil"}
	}
	o, err := defaultOptions().apply(opts...)
	if err != nil {
		return nil, err
	}
	return &Synthesizer{provider: provider, combiner: combiner, options: o}, nil
}

// Synthesize fetches id from the provider and builds its entry. Provider
// failures keep their NotFound or ProviderError classification; an element
// the registry does not know fails with NotFound. A fetch that outlives the
// per-fetch timeout fails with a TimeoutError; one stopped by ctx fails with
// ctx's classified error.
func (s *Synthesizer) Synthesize(ctx context.Context, id int) (catalogs.Entry, error) {
	fetchCtx := ctx
	if s.options.fetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.options.fetchTimeout)
		defer cancel()
	}

	record, err := s.provider.FetchByID(fetchCtx, id)
	switch {
	case err == nil:
	case ctx.Err() != nil:
		return catalogs.Entry{}, errors.WrapContext("synthesize", 0, ctx.Err())
	case fetchCtx.Err() != nil:
		return catalogs.Entry{}, errors.WrapContext("fetch "+strconv.Itoa(id), s.options.fetchTimeout, fetchCtx.Err())
	default:
		return catalogs.Entry{}, errors.WrapProvider(string(s.provider.ID()), id, err)
	}

	types := catalogs.Elements(record.Types...)
	eff, err := s.combiner.Combine(types...)
	if err != nil {
		return catalogs.Entry{}, errors.WrapResource("synthesize", "entry", strconv.Itoa(id), err)
	}

	entry := catalogs.Entry{
		ID:    id,
		Name:  NormalizeName(record.Name),
		Types: types,
	}
	return entry.WithEffectiveness(eff), nil
}

// SynthesizeAll synthesizes every id on a bounded worker pool. A failing id
// never stops the others; failures are collected per id. When ctx is done,
// ids not yet started fail with a TimeoutError or CanceledError.
func (s *Synthesizer) SynthesizeAll(ctx context.Context, ids []int) *Result {
	ctx = logging.WithOperation(ctx, "synthesize")
	ctx = logging.WithSource(ctx, string(s.provider.ID()))
	logger := logging.FromContext(ctx)
	start := time.Now()

	entries := catalogs.NewEntries()
	var (
		mu       sync.Mutex
		failures = make(map[int]error)
	)
	fail := func(id int, err error) {
		mu.Lock()
		failures[id] = err
		mu.Unlock()
	}

	var g errgroup.Group
	g.SetLimit(s.options.workers)

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			fail(id, errors.WrapContext("synthesize", 0, err))
			continue
		}
		g.Go(func() error {
			idCtx := logging.WithEntry(ctx, id)
			entry, err := s.Synthesize(idCtx, id)
			if err != nil {
				fail(id, err)
				logging.FromContext(idCtx).Warn().Err(err).Msg("Synthesis failed")
				return nil
			}
			entries.Set(entry)
			logging.FromContext(idCtx).Debug().Str("name", entry.Name).Msg("Entry synthesized")
			return nil
		})
	}
	_ = g.Wait()

	result := &Result{
		Requested: len(ids),
		Entries:   entries.List(),
		Failures:  failures,
		Duration:  time.Since(start),
	}

	logger.Info().
		Int("added", len(result.Entries)).
		Int("failed", len(result.Failures)).
		Dur("duration", result.Duration).
		Msg("Entries added")

	return result
}

// Result collects the outcome of SynthesizeAll.
type Result struct {
	Requested int
	Entries   []catalogs.Entry // sorted by id
	Failures  map[int]error
	Duration  time.Duration
}

// Catalog returns the synthesized entries as a catalog.
func (r *Result) Catalog() *catalogs.Catalog {
	return catalogs.NewCatalog(r.Entries...)
}

// FailedIDs returns the ids that could not be synthesized, ascending.
func (r *Result) FailedIDs() []int {
	return slices.Sorted(maps.Keys(r.Failures))
}

// Err returns a SynthesisError when any id failed, or nil.
func (r *Result) Err() error {
	return errors.NewSynthesisError(r.Failures)
}
