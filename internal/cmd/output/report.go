package output

import (
	"io"
	"os"

	"github.com/agentstation/dexmap/internal/cmd/table"
	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/differ"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/sync"
)

// ReportTitle heads the Markdown run report.
const ReportTitle = "dexmap update report"

// Report is the serializable form of an update run, used for JSON and YAML.
type Report struct {
	Entries     int                  `json:"entries" yaml:"entries"`
	Corrected   []differ.EntryUpdate `json:"corrected" yaml:"corrected"`
	Missing     []int                `json:"missing" yaml:"missing"`
	Synthesized []catalogs.Entry     `json:"synthesized" yaml:"synthesized"`
	Failed      []Failure            `json:"failed" yaml:"failed"`
	DryRun      bool                 `json:"dry_run" yaml:"dry_run"`
	Output      string               `json:"output,omitempty" yaml:"output,omitempty"`
	StartedAt   string               `json:"started_at,omitempty" yaml:"started_at,omitempty"`
	Duration    string               `json:"duration" yaml:"duration"`
}

// Failure is one id that could not be synthesized.
type Failure struct {
	ID    int    `json:"id" yaml:"id"`
	Kind  string `json:"kind" yaml:"kind"`
	Error string `json:"error" yaml:"error"`
}

// NewReport converts a run result into a Report.
func NewReport(result *sync.Result) Report {
	r := Report{
		Entries:     result.Catalog.Len(),
		Corrected:   result.Corrections,
		Missing:     result.Missing,
		Synthesized: result.Synthesized,
		Failed:      []Failure{},
		DryRun:      result.DryRun,
		Duration:    result.Duration.String(),
	}
	if r.Corrected == nil {
		r.Corrected = []differ.EntryUpdate{}
	}
	if r.Missing == nil {
		r.Missing = []int{}
	}
	if r.Synthesized == nil {
		r.Synthesized = []catalogs.Entry{}
	}
	if result.Written {
		r.Output = result.OutputPath
	}
	if !result.StartedAt.IsZero() {
		r.StartedAt = table.FormatTime(result.StartedAt)
	}
	for _, id := range result.FailedIDs() {
		err := result.Failures[id]
		r.Failed = append(r.Failed, Failure{ID: id, Kind: table.FailureKind(err), Error: err.Error()})
	}
	return r
}

// Render writes the run summary in format. Table and Markdown render the
// summary tables; JSON and YAML render a Report.
func Render(w io.Writer, format Format, result *sync.Result) error {
	switch format {
	case FormatJSON, FormatYAML:
		return NewFormatter(format).Format(w, NewReport(result))
	case FormatMarkdown:
		return (&MarkdownFormatter{Title: ReportTitle}).Format(w, table.ResultToTableData(result))
	default:
		return NewFormatter(FormatTable).Format(w, table.ResultToTableData(result))
	}
}

// WriteReport writes the Markdown run report to path.
func WriteReport(path string, result *sync.Result) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions) //nolint:gosec // user supplied report path
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapIO("close", path, cerr)
		}
	}()

	if err := Render(f, FormatMarkdown, result); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
