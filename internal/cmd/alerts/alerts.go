// Package alerts prints short status lines, such as the outcome of an
// update run, to the terminal.
package alerts

import (
	"fmt"
	"strconv"

	"github.com/agentstation/dexmap/pkg/sync"
)

// Alert represents a status notification.
type Alert struct {
	Level   Level
	Message string
	Details []string
	Err     error
}

// New creates a new alert with the given level and message.
func New(level Level, message string) *Alert {
	return &Alert{Level: level, Message: message}
}

// NewError creates a new error alert.
func NewError(message string) *Alert {
	return New(LevelError, message)
}

// NewWarning creates a new warning alert.
func NewWarning(message string) *Alert {
	return New(LevelWarning, message)
}

// NewInfo creates a new info alert.
func NewInfo(message string) *Alert {
	return New(LevelInfo, message)
}

// NewSuccess creates a new success alert.
func NewSuccess(message string) *Alert {
	return New(LevelSuccess, message)
}

// WithError adds an underlying error to the alert.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails adds additional context details to the alert.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String returns a string representation of the alert.
func (a *Alert) String() string {
	message := fmt.Sprintf("%s %s", a.Level.Icon(), a.Message)
	if a.Err != nil {
		message += fmt.Sprintf(": %v", a.Err)
	}
	return message
}

// ForResult summarizes how an update run ended.
func ForResult(result *sync.Result) *Alert {
	switch {
	case !result.Complete():
		alert := NewError(fmt.Sprintf("%d of %d missing ids could not be synthesized",
			len(result.Failures), len(result.Missing)))
		for _, id := range result.FailedIDs() {
			alert.WithDetails(strconv.Itoa(id) + ": " + result.Failures[id].Error())
		}
		if !result.Written && !result.DryRun {
			alert.WithDetails("no file written")
		}
		return alert
	case result.DryRun:
		return NewInfo(fmt.Sprintf("Dry run: %d entries, no file written", result.Catalog.Len()))
	default:
		return NewSuccess(fmt.Sprintf("Wrote %d entries to %s", result.Catalog.Len(), result.OutputPath))
	}
}
