package update_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dexmap/cmd/dexmap/cmd/update"
	"github.com/agentstation/dexmap/internal/cmd/application"
	"github.com/agentstation/dexmap/internal/cmd/output"
	"github.com/agentstation/dexmap/internal/config"
	"github.com/agentstation/dexmap/internal/testhelper"
	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/logging"
	"github.com/agentstation/dexmap/pkg/sources"
)

type run struct {
	dir    string
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func execute(t *testing.T, args ...string) (*run, error) {
	t.Helper()
	return executeWith(t, &application.Mock{}, args...)
}

func executeWith(t *testing.T, app *application.Mock, args ...string) (*run, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.SetDefaults()

	r := &run{dir: testhelper.WriteFixtures(t, t.TempDir())}
	base := []string{
		"--types", filepath.Join(r.dir, testhelper.TypesFile),
		"--catalog", filepath.Join(r.dir, testhelper.CatalogFile),
		"--out", filepath.Join(r.dir, "updated_pokemon.json"),
		"--provider", "local",
		"--provider-file", filepath.Join(r.dir, testhelper.RecordsFile),
	}

	cmd := update.NewCommand(app)
	cmd.SetArgs(append(base, args...))
	cmd.SetOut(&r.stdout)
	cmd.SetErr(&r.stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return r, cmd.ExecuteContext(context.Background())
}

func (r *run) report(t *testing.T) output.Report {
	t.Helper()
	var report output.Report
	require.NoError(t, json.Unmarshal(r.stdout.Bytes(), &report))
	return report
}

func TestUpdateCommandComplete(t *testing.T) {
	r, err := execute(t, "--max-id", "9")
	require.NoError(t, err)

	report := r.report(t)
	assert.Equal(t, 9, report.Entries)
	assert.Equal(t, []int{3, 5, 8, 9}, report.Missing)
	assert.Len(t, report.Corrected, 3)
	assert.Empty(t, report.Failed)

	saved, err := catalogs.LoadCatalog(filepath.Join(r.dir, "updated_pokemon.json"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, saved.IDs())
	assert.Contains(t, r.stderr.String(), "✓ Wrote 9 entries to ")
}

func TestUpdateCommandLogsRunFields(t *testing.T) {
	testLogger := logging.NewTestLogger(t)
	app := &application.Mock{LoggerFunc: func() *zerolog.Logger { return testLogger.Logger }}

	_, err := executeWith(t, app, "--max-id", "9")
	require.NoError(t, err)

	testLogger.AssertContains(t, `"max_id":9`)
	testLogger.AssertContains(t, `"operation":"reconcile"`)
	testLogger.AssertContains(t, "Created file")
}

func TestUpdateCommandPartial(t *testing.T) {
	r, err := execute(t, "--max-id", "12")
	require.Error(t, err)
	assert.True(t, errors.IsSynthesisError(err))

	report := r.report(t)
	require.Len(t, report.Failed, 3)
	assert.Equal(t, 10, report.Failed[0].ID)
	assert.True(t, strings.HasPrefix(r.stderr.String(), "✗ 3 of 7 missing ids could not be synthesized\n   10: "))
	assert.FileExists(t, filepath.Join(r.dir, "updated_pokemon.json"))
}

func TestUpdateCommandRequireComplete(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.md")
	r, err := execute(t, "--max-id", "10", "--require-complete", "--report", reportPath)
	assert.True(t, errors.IsSynthesisError(err))
	assert.NoFileExists(t, filepath.Join(r.dir, "updated_pokemon.json"))

	data, readErr := os.ReadFile(reportPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "## Failed")
	assert.Contains(t, r.stderr.String(), "   no file written\n")
}

func TestUpdateCommandDryRun(t *testing.T) {
	r, err := execute(t, "--max-id", "9", "--dry-run")
	require.NoError(t, err)
	assert.True(t, r.report(t).DryRun)
	assert.Equal(t, "i Dry run: 9 entries, no file written\n", r.stderr.String())
	assert.NoFileExists(t, filepath.Join(r.dir, "updated_pokemon.json"))
}

func TestUpdateCommandYAMLOutput(t *testing.T) {
	_, err := execute(t, "--max-id", "9", "--out", "")
	require.True(t, errors.IsValidationError(err), "empty --out without --dry-run is rejected: %v", err)

	r, err := execute(t, "--max-id", "9", "--out", filepath.Join(t.TempDir(), "kanto.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 9, r.report(t).Entries)
}

func TestUpdateCommandBadInputs(t *testing.T) {
	_, err := execute(t, "--types", "missing.json")
	assert.Error(t, err)

	_, err = execute(t, "--provider", "bulbapedia")
	assert.True(t, errors.IsValidationError(err))

	_, err = execute(t, "--workers", "0")
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateCommandPokeAPI(t *testing.T) {
	records := map[int]sources.Record{}
	var list []sources.Record
	require.NoError(t, json.Unmarshal(testhelper.Fixture(t, testhelper.RecordsFile), &list))
	for _, rec := range list {
		records[rec.ID] = rec
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/api/v2/pokemon/"))
		rec, ok := records[id]
		if err != nil || !ok {
			http.NotFound(w, r)
			return
		}
		slots := make([]string, len(rec.Types))
		for i, name := range rec.Types {
			slots[i] = fmt.Sprintf(`{"slot": %d, "type": {"name": %q}}`, i+1, name)
		}
		fmt.Fprintf(w, `{"id": %d, "name": %q, "types": [%s]}`, rec.ID, rec.Name, strings.Join(slots, ","))
	}))
	defer srv.Close()

	r, err := execute(t, "--max-id", "9", "--provider", "pokeapi", "--provider-url", srv.URL+"/api/v2/pokemon/")
	require.NoError(t, err)

	report := r.report(t)
	require.Len(t, report.Synthesized, 4)
	assert.Equal(t, "Venusaur", report.Synthesized[0].Name)
}
