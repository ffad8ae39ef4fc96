package application

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agentstation/dexmap"
	"github.com/agentstation/dexmap/internal/cmd/alerts"
)

// Compile-time interface check.
var _ Application = (*Mock)(nil)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	DexmapFunc       func(opts ...dexmap.Option) (dexmap.Dexmap, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	AlertWriterFunc  func(w io.Writer) alerts.Writer
	VersionFunc      func() string
}

// Dexmap returns an instance from the mock function, or dexmap.New(opts...).
func (m *Mock) Dexmap(opts ...dexmap.Option) (dexmap.Dexmap, error) {
	if m.DexmapFunc != nil {
		return m.DexmapFunc(opts...)
	}
	return dexmap.New(opts...)
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "json".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "json"
}

// AlertWriter returns a writer using the mock function or an uncolored
// text writer.
func (m *Mock) AlertWriter(w io.Writer) alerts.Writer {
	if m.AlertWriterFunc != nil {
		return m.AlertWriterFunc(w)
	}
	return alerts.NewTextWriter(w, true)
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}
