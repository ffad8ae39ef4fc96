package sync_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/differ"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/save"
	"github.com/agentstation/dexmap/pkg/sync"
)

func TestDefaults(t *testing.T) {
	opts := sync.Defaults()
	assert.Equal(t, constants.DefaultOutputFile, opts.OutputPath)
	assert.Equal(t, save.FormatAuto, opts.Format)
	assert.False(t, opts.DryRun)
	require.NoError(t, opts.Validate())
}

func TestApply(t *testing.T) {
	opts := sync.Defaults().Apply(
		sync.WithDryRun(true),
		sync.WithRequireComplete(true),
		sync.WithTimeout(time.Minute),
		sync.WithOutputPath("out.yaml"),
		sync.WithFormat(save.FormatYAML),
	)
	assert.True(t, opts.DryRun)
	assert.True(t, opts.RequireComplete)
	assert.Equal(t, time.Minute, opts.Timeout)
	assert.Equal(t, "out.yaml", opts.OutputPath)
	assert.Equal(t, save.FormatYAML, opts.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		opts []sync.Option
		ok   bool
	}{
		{"defaults", nil, true},
		{"negative timeout", []sync.Option{sync.WithTimeout(-time.Second)}, false},
		{"empty output", []sync.Option{sync.WithOutputPath("")}, false},
		{"empty output dry run", []sync.Option{sync.WithOutputPath(""), sync.WithDryRun(true)}, true},
		{"missing directory", []sync.Option{sync.WithOutputPath(filepath.Join(t.TempDir(), "nope", "out.json"))}, false},
		{"existing directory", []sync.Option{sync.WithOutputPath(filepath.Join(t.TempDir(), "out.json"))}, true},
		{"bad format", []sync.Option{sync.WithFormat(save.Format(42))}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sync.Defaults().Apply(tt.opts...).Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestResult(t *testing.T) {
	added := catalogs.Entry{ID: 3, Name: "Venusaur", Types: catalogs.Elements("grass", "poison")}
	result := &sync.Result{
		Catalog:     catalogs.NewCatalog(catalogs.Entry{ID: 1, Name: "Bulbasaur"}, added),
		Corrections: []differ.EntryUpdate{{ID: 1, Name: "Bulbasaur"}},
		Missing:     []int{2, 3},
		Synthesized: []catalogs.Entry{added},
		Failures:    map[int]error{2: errors.NewNotFoundError("record", "2")},
		DryRun:      true,
	}

	assert.True(t, result.HasChanges())
	assert.False(t, result.Complete())
	assert.Equal(t, []int{2}, result.FailedIDs())
	assert.True(t, errors.IsSynthesisError(result.Err()))
	assert.Equal(t, "1 added, 1 updated, 0 removed", result.Changeset().Summary())
	assert.Equal(t, "2 entries: 1 corrected, 1 synthesized, 1 failed (Dry run)", result.Summary())

	clean := &sync.Result{Catalog: catalogs.NewCatalog(catalogs.Entry{ID: 1})}
	assert.NoError(t, clean.Err())
	assert.Equal(t, "1 entries: no changes detected", clean.Summary())
}
