// Package testhelper provides shared fixtures and testdata helpers for tests.
package testhelper

import (
	"context"
	"embed"
	"encoding/json"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/sources"
	"github.com/agentstation/dexmap/pkg/typechart"
)

// UpdateTestdata rewrites golden files instead of comparing against them.
var UpdateTestdata = flag.Bool("update", false, "update testdata files")

//go:embed testdata/*.json
var fixtures embed.FS

// Fixture file names within FS.
const (
	TypesFile   = "types.json"
	CatalogFile = "pokemon.json"
	RecordsFile = "records.json"
)

// FS returns the shared fixture tree: an 18-type chart, a small catalog with
// drift and gaps, and provider records for some of the gaps.
func FS() fs.FS {
	sub, err := fs.Sub(fixtures, "testdata")
	if err != nil {
		panic(err)
	}
	return sub
}

// Fixture returns the raw bytes of a shared fixture.
func Fixture(t testing.TB, name string) []byte {
	t.Helper()
	data, err := fs.ReadFile(FS(), name)
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", name, err)
	}
	return data
}

// Registry loads the fixture type chart.
func Registry(t testing.TB) *typechart.Registry {
	t.Helper()
	r, err := typechart.LoadFS(FS(), TypesFile)
	if err != nil {
		t.Fatalf("Failed to load fixture registry: %v", err)
	}
	return r
}

// Catalog loads the fixture catalog.
func Catalog(t testing.TB) *catalogs.Catalog {
	t.Helper()
	c, err := catalogs.LoadCatalogFS(FS(), CatalogFile)
	if err != nil {
		t.Fatalf("Failed to load fixture catalog: %v", err)
	}
	return c
}

// WriteFixtures copies the shared fixtures into dir and returns dir.
func WriteFixtures(t testing.TB, dir string) string {
	t.Helper()
	for _, name := range []string{TypesFile, CatalogFile, RecordsFile} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, Fixture(t, name), constants.FilePermissions); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", path, err)
		}
	}
	return dir
}

// LoadTestdata loads a file from the calling package's testdata directory.
func LoadTestdata(t testing.TB, filename string) []byte {
	t.Helper()
	path := filepath.Join("testdata", filename)
	data, err := os.ReadFile(path) //nolint:gosec // test paths are controlled
	if err != nil {
		t.Fatalf("Failed to load testdata file %s: %v", path, err)
	}
	return data
}

// LoadJSON loads and unmarshals JSON from the calling package's testdata directory.
func LoadJSON(t testing.TB, filename string, v any) {
	t.Helper()
	if err := json.Unmarshal(LoadTestdata(t, filename), v); err != nil {
		t.Fatalf("Failed to unmarshal JSON from testdata file %s: %v", filename, err)
	}
}

// CompareWithTestdata compares actual with a golden file, rewriting the
// golden file instead when -update is set.
func CompareWithTestdata(t testing.TB, filename string, actual []byte) {
	t.Helper()
	path := filepath.Join("testdata", filename)

	if *UpdateTestdata {
		if err := os.MkdirAll("testdata", constants.DirPermissions); err != nil {
			t.Fatalf("Failed to create testdata directory: %v", err)
		}
		if err := os.WriteFile(path, actual, constants.FilePermissions); err != nil {
			t.Fatalf("Failed to save testdata file %s: %v", path, err)
		}
		t.Logf("Updated testdata file: %s", path)
		return
	}

	expected := LoadTestdata(t, filename)
	if diff := cmp.Diff(string(expected), string(actual)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", filename, diff)
	}
}

// ProviderFunc adapts a function to sources.Provider for tests that need a
// provider with scripted behavior.
type ProviderFunc func(ctx context.Context, id int) (sources.Record, error)

// ID returns "func".
func (f ProviderFunc) ID() sources.ID {
	return "func"
}

// FetchByID calls f.
func (f ProviderFunc) FetchByID(ctx context.Context, id int) (sources.Record, error) {
	return f(ctx, id)
}
