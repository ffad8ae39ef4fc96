package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dexmap/internal/config"
	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
)

// isolate gives the test a fresh viper, an empty home and working directory.
func isolate(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.LogFormat)
	assert.Equal(t, "stderr", cfg.LogOutput)
	assert.Empty(t, cfg.ConfigFile)
	assert.Equal(t, constants.MaxID, viper.GetInt(config.KeyMaxID))
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".dexmap.yaml"),
		[]byte("max_id: 151\nprovider: local\nprovider_file: records.json\nformat: yaml\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Contains(t, cfg.ConfigFile, ".dexmap.yaml")

	settings, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 151, settings.MaxID)
	assert.Equal(t, "records.json", settings.ProviderFile)
}

func TestLoadConfigEnvFiles(t *testing.T) {
	dir := isolate(t)
	t.Cleanup(func() {
		_ = os.Unsetenv("DEXMAP_WORKERS")
		_ = os.Unsetenv("DEXMAP_VERBOSE")
	})
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DEXMAP_WORKERS=2\nDEXMAP_VERBOSE=false\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("DEXMAP_VERBOSE=true\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Verbose, ".env.local overrides .env")
	assert.Equal(t, 2, viper.GetInt(config.KeyWorkers))
}

func TestLoadConfigBrokenFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_id: [unterminated\n"), 0o600))

	err := readConfigFile(path)
	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestUpdateFromFlags(t *testing.T) {
	cfg := &Config{Format: "table", EnvLogLevel: "debug"}
	cfg.UpdateFromFlags(false, true, true, "json", "")

	assert.True(t, cfg.Quiet)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, "json", cfg.Format)
	assert.Empty(t, cfg.LogLevel)
	assert.Equal(t, "warn", determineLogLevel(cfg))
}
