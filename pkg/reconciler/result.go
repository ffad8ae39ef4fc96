package reconciler

import (
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/differ"
)

// Result is the outcome of reconciling one catalog.
type Result struct {
	// Catalog holds every existing entry with recomputed derived fields, in
	// the input order.
	Catalog *catalogs.Catalog

	// Missing lists ids in [1, maxID] absent from the input, ascending.
	Missing []int

	// Corrections lists the entries whose stored fields drifted.
	Corrections []differ.EntryUpdate

	StartTime utc.Time
	EndTime   utc.Time
	Duration  time.Duration
	Stats     Statistics
}

// Statistics counts what reconciliation saw.
type Statistics struct {
	EntriesProcessed int
	EntriesCorrected int
	MissingIDs       int
}

// HasCorrections reports whether any entry drifted.
func (r *Result) HasCorrections() bool {
	return len(r.Corrections) > 0
}

// CorrectedIDs returns the ids of drifted entries in catalog order.
func (r *Result) CorrectedIDs() []int {
	ids := make([]int, len(r.Corrections))
	for i, c := range r.Corrections {
		ids[i] = c.ID
	}
	return ids
}

// Finalize stamps timing and fills in statistics.
func (r *Result) Finalize(start utc.Time) {
	r.StartTime = start
	r.EndTime = utc.Now()
	r.Duration = r.EndTime.Sub(start.Time)
	r.Stats = Statistics{
		EntriesProcessed: r.Catalog.Len(),
		EntriesCorrected: len(r.Corrections),
		MissingIDs:       len(r.Missing),
	}
}
