// Package emoji provides symbol constants for CLI output.
package emoji

// Symbol constants for status lines.
const (
	// Success represents successful completion of an operation.
	Success = "✓"

	// Error represents failures, such as ids that could not be synthesized.
	Error = "✗"

	// Warning represents non-fatal issues.
	Warning = "!"

	// Info represents informational messages, such as dry runs.
	Info = "i"
)
