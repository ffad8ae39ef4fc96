// Package sync provides options and results for one dexmap update run.
package sync

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/save"
)

// Options controls the orchestration in Dexmap.Update().
type Options struct {
	DryRun          bool          // Report without writing the output file
	RequireComplete bool          // Skip the export when any id failed to synthesize
	Timeout         time.Duration // Timeout for the whole run, zero means none

	OutputPath string      // Where to save the updated catalog
	Format     save.Format // Output serialization, auto picks from the extension
}

// Apply applies the given options to the sync options.
func (s *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Defaults returns the default sync options.
func Defaults() *Options {
	return &Options{
		OutputPath: constants.DefaultOutputFile,
		Format:     save.FormatAuto,
	}
}

// Option is a function that configures sync Options.
type Option func(*Options)

// Validate checks if the sync options are valid.
func (s *Options) Validate() error {
	if s.Timeout < 0 {
		return &errors.ValidationError{
			Field:   "Timeout",
			Value:   s.Timeout,
			Message: "timeout must be non-negative",
		}
	}

	if !s.Format.IsValid() {
		return &errors.ValidationError{Field: "Format", Value: s.Format, Message: "unknown output format"}
	}

	if s.DryRun {
		return nil
	}

	if s.OutputPath == "" {
		return &errors.ValidationError{Field: "OutputPath", Message: "output path is required"}
	}

	dir := filepath.Dir(s.OutputPath)
	if dir != "." && dir != "/" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return &errors.ValidationError{
				Field:   "OutputPath",
				Value:   s.OutputPath,
				Message: fmt.Sprintf("output directory '%s' does not exist", dir),
			}
		}
	}

	return nil
}

// SaveOptions converts the output settings to save options.
func (s *Options) SaveOptions() []save.Option {
	return []save.Option{save.WithPath(s.OutputPath), save.WithFormat(s.Format)}
}

// WithDryRun configures dry run mode.
func WithDryRun(dryRun bool) Option {
	return func(opts *Options) {
		opts.DryRun = dryRun
	}
}

// WithRequireComplete withholds the export when synthesis is partial.
func WithRequireComplete(require bool) Option {
	return func(opts *Options) {
		opts.RequireComplete = require
	}
}

// WithTimeout configures the run timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

// WithOutputPath configures the output path for saving.
func WithOutputPath(path string) Option {
	return func(opts *Options) {
		opts.OutputPath = path
	}
}

// WithFormat configures the output serialization.
func WithFormat(format save.Format) Option {
	return func(opts *Options) {
		opts.Format = format
	}
}
