// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/differ"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/sync"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Title           string // Optional: rendered above the table
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// SummaryToTableData converts the run totals to a key-value table.
func SummaryToTableData(result *sync.Result) Data {
	output := result.OutputPath
	if !result.Written {
		output = "-"
	}
	return Data{
		Title:   "Summary",
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Entries", strconv.Itoa(result.Catalog.Len())},
			{"Corrected", strconv.Itoa(len(result.Corrections))},
			{"Missing", strconv.Itoa(len(result.Missing))},
			{"Synthesized", strconv.Itoa(len(result.Synthesized))},
			{"Failed", strconv.Itoa(len(result.Failures))},
			{"Dry Run", strconv.FormatBool(result.DryRun)},
			{"Output", output},
			{"Started", FormatTime(result.StartedAt)},
			{"Duration", result.Duration.Round(time.Millisecond).String()},
		},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// CorrectionsToTableData converts drifted entries to table format.
func CorrectionsToTableData(updates []differ.EntryUpdate) Data {
	rows := make([][]string, 0, len(updates))
	for _, u := range updates {
		rows = append(rows, []string{strconv.Itoa(u.ID), u.Name, u.Describe()})
	}
	return Data{
		Title:           "Corrected",
		Headers:         []string{"ID", "Name", "Changes"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft},
	}
}

// EntriesToTableData converts entries to table format.
func EntriesToTableData(title string, entries []catalogs.Entry) Data {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.Name,
			JoinElements(e.Types),
			JoinElements(e.Weaknesses),
			JoinElements(e.Resistances),
			JoinElements(e.Immunities),
		})
	}
	return Data{
		Title:           title,
		Headers:         []string{"ID", "Name", "Type", "Weaknesses", "Resistances", "Immunities"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight},
	}
}

// FailuresToTableData converts per-id synthesis failures to table format.
func FailuresToTableData(result *sync.Result) Data {
	ids := result.FailedIDs()
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		err := result.Failures[id]
		rows = append(rows, []string{strconv.Itoa(id), FailureKind(err), err.Error()})
	}
	return Data{
		Title:           "Failed",
		Headers:         []string{"ID", "Kind", "Error"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignLeft},
	}
}

// FailureKind classifies a synthesis failure for reports. More specific
// kinds win over the generic provider kind.
func FailureKind(err error) string {
	switch {
	case errors.IsNotFound(err):
		return "not_found"
	case errors.IsTimeout(err):
		return "timeout"
	case errors.IsCanceled(err):
		return "canceled"
	case errors.IsRateLimited(err):
		return "rate_limited"
	case errors.IsProviderUnavailable(err):
		return "unavailable"
	case errors.IsProviderError(err):
		return "provider"
	default:
		return "error"
	}
}

// FormatTime renders t as RFC 3339, or "-" when unset.
func FormatTime(t utc.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}

// ResultToTableData lays out a run as a summary followed by one table per
// non-empty section.
func ResultToTableData(result *sync.Result) []Data {
	tables := []Data{SummaryToTableData(result)}
	if len(result.Corrections) > 0 {
		tables = append(tables, CorrectionsToTableData(result.Corrections))
	}
	if len(result.Synthesized) > 0 {
		tables = append(tables, EntriesToTableData("Synthesized", result.Synthesized))
	}
	if len(result.Failures) > 0 {
		tables = append(tables, FailuresToTableData(result))
	}
	return tables
}

// JoinElements joins element names with ", ", or returns "-" when empty.
func JoinElements(elems []catalogs.Element) string {
	if len(elems) == 0 {
		return "-"
	}
	return strings.Join(catalogs.ElementStrings(elems), ", ")
}
