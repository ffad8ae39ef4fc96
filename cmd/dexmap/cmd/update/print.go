package update

import (
	"io"

	"github.com/agentstation/dexmap/internal/cmd/output"
	"github.com/agentstation/dexmap/pkg/sync"
)

// printResult renders the run summary, choosing table or JSON from the
// terminal when no format was given.
func printResult(w io.Writer, format string, result *sync.Result) error {
	parsed, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	return output.Render(w, output.DetectFormat(string(parsed)), result)
}

func writeReport(path string, result *sync.Result) error {
	return output.WriteReport(path, result)
}
