// Package application provides the application interface for dexmap commands.
//
// Commands accept this interface rather than the concrete App type, so tests
// can substitute a Mock:
//
//	mock := &application.Mock{
//	    DexmapFunc: func(opts ...dexmap.Option) (dexmap.Dexmap, error) {
//	        return dexmap.New(append(opts, dexmap.WithProvider(fake))...)
//	    },
//	}
//	cmd := update.NewCommand(mock)
package application

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/dexmap"
	"github.com/agentstation/dexmap/internal/cmd/alerts"
)

// Application provides what commands need from the application.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Dexmap creates a new dexmap instance from opts.
	Dexmap(opts ...dexmap.Option) (dexmap.Dexmap, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, markdown).
	// Empty means auto-detect.
	OutputFormat() string

	// AlertWriter returns the writer for status lines sent to w. It
	// discards alerts when the user asked for quiet output.
	AlertWriter(w io.Writer) alerts.Writer

	// Version returns the application version string.
	Version() string
}
