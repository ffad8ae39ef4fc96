package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dexmap/internal/config"
	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/save"
	"github.com/agentstation/dexmap/pkg/sources"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	config.SetupEnv()
	config.SetDefaults()
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)

	s, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultTypesFile, s.TypesFile)
	assert.Equal(t, constants.DefaultCatalogFile, s.CatalogFile)
	assert.Equal(t, constants.DefaultOutputFile, s.OutputFile)
	assert.Equal(t, sources.PokeAPIID, s.Provider)
	assert.Equal(t, constants.MaxID, s.MaxID)
	assert.Equal(t, constants.DefaultWorkers, s.Workers)
	assert.Equal(t, constants.DefaultFetchTimeout, s.FetchTimeout)
	assert.Equal(t, save.FormatJSON, s.OutputFormat())
}

func TestLoadFromEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("DEXMAP_MAX_ID", "151")
	t.Setenv("DEXMAP_PROVIDER", "LOCAL")
	t.Setenv("DEXMAP_PROVIDER_FILE", "records.yaml")
	t.Setenv("DEXMAP_FETCH_TIMEOUT", "5s")

	s, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 151, s.MaxID)
	assert.Equal(t, sources.LocalID, s.Provider)
	assert.Equal(t, "records.yaml", s.ProviderFile)
	assert.Equal(t, 5*time.Second, s.FetchTimeout)
}

func TestLoadInvalid(t *testing.T) {
	tests := map[string]map[string]any{
		"unknown provider":   {config.KeyProvider: "bulbapedia"},
		"local without file": {config.KeyProvider: "local"},
		"zero max id":        {config.KeyMaxID: 0},
		"too many workers":   {config.KeyWorkers: constants.MaxWorkers + 1},
		"negative timeout":   {config.KeyTimeout: "-1s"},
		"no output":          {config.KeyOutputFile: ""},
	}
	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			resetViper(t)
			for k, v := range values {
				viper.Set(k, v)
			}
			_, err := config.Load()
			assert.True(t, errors.IsValidationError(err), "got %v", err)
		})
	}
}

func TestDryRunNeedsNoOutput(t *testing.T) {
	resetViper(t)
	viper.Set(config.KeyOutputFile, "")
	viper.Set(config.KeyDryRun, true)

	s, err := config.Load()
	require.NoError(t, err)
	assert.True(t, s.DryRun)
}

func TestGetStringFallsBackToOSEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("LOG_FORMAT", "json")
	assert.Equal(t, "json", config.GetString("LOG_FORMAT"))
}
