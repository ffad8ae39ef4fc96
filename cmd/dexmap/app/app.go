// Package app provides the application context and dependency management
// for the dexmap CLI: configuration, logging and construction of dexmap
// instances.
package app

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/dexmap"
	"github.com/agentstation/dexmap/internal/cmd/alerts"
	"github.com/agentstation/dexmap/internal/cmd/application"
	"github.com/agentstation/dexmap/pkg/errors"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// App represents the dexmap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// Option configures an App.
type Option func(*App) error

// WithLogger replaces the logger built from configuration.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = &logger
		return nil
	}
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// AlertWriter returns a text writer for w, or a discarding writer in
// quiet mode.
func (a *App) AlertWriter(w io.Writer) alerts.Writer {
	if a.config.Quiet {
		return alerts.DiscardWriter
	}
	return alerts.NewTextWriter(w, a.config.NoColor)
}

// Dexmap creates a dexmap instance from opts.
func (a *App) Dexmap(opts ...dexmap.Option) (dexmap.Dexmap, error) {
	dm, err := dexmap.New(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "dexmap", "", err)
	}
	return dm, nil
}
