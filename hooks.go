package dexmap

import (
	"sync"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/differ"
)

// Hook function types for update events
type (
	// EntryCorrectedHook is called for each existing entry whose stored
	// effectiveness drifted from the recomputed value
	EntryCorrectedHook func(update differ.EntryUpdate)

	// EntrySynthesizedHook is called for each entry built for a missing id
	EntrySynthesizedHook func(entry catalogs.Entry)

	// SynthesisFailedHook is called for each missing id that could not be built
	SynthesisFailedHook func(id int, err error)
)

// hooks manages event callbacks for update runs
type hooks struct {
	mu                 sync.RWMutex
	onEntryCorrected   []EntryCorrectedHook
	onEntrySynthesized []EntrySynthesizedHook
	onSynthesisFailed  []SynthesisFailedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnEntryCorrected registers a callback for drifted entries
func (h *hooks) OnEntryCorrected(fn EntryCorrectedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEntryCorrected = append(h.onEntryCorrected, fn)
}

// OnEntrySynthesized registers a callback for synthesized entries
func (h *hooks) OnEntrySynthesized(fn EntrySynthesizedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEntrySynthesized = append(h.onEntrySynthesized, fn)
}

// OnSynthesisFailed registers a callback for failed ids
func (h *hooks) OnSynthesisFailed(fn SynthesisFailedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onSynthesisFailed = append(h.onSynthesisFailed, fn)
}

// trigger fires hooks in id order so callbacks see a deterministic sequence
func (h *hooks) trigger(corrections []differ.EntryUpdate, synthesized []catalogs.Entry, failed []int, failures map[int]error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, update := range corrections {
		for _, hook := range h.onEntryCorrected {
			hook(update)
		}
	}
	for _, entry := range synthesized {
		for _, hook := range h.onEntrySynthesized {
			hook(entry)
		}
	}
	for _, id := range failed {
		for _, hook := range h.onSynthesisFailed {
			hook(id, failures[id])
		}
	}
}
