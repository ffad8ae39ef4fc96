// Package config resolves dexmap run settings from viper, which layers
// command-line flags over environment variables, the config file and
// defaults.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/save"
	"github.com/agentstation/dexmap/pkg/sources"
)

// EnvPrefix prefixes every environment variable dexmap reads through viper,
// e.g. DEXMAP_MAX_ID.
const EnvPrefix = "DEXMAP"

// Setting keys, as used in the config file.
const (
	KeyTypesFile       = "types_file"
	KeyCatalogFile     = "catalog_file"
	KeyOutputFile      = "output_file"
	KeyProvider        = "provider"
	KeyProviderURL     = "provider_url"
	KeyProviderFile    = "provider_file"
	KeyMaxID           = "max_id"
	KeyWorkers         = "workers"
	KeyFetchTimeout    = "fetch_timeout"
	KeyTimeout         = "timeout"
	KeyDryRun          = "dry_run"
	KeyRequireComplete = "require_complete"
	KeyReportFile      = "report_file"
)

// SetDefaults registers the default value of every run setting.
func SetDefaults() {
	viper.SetDefault(KeyTypesFile, constants.DefaultTypesFile)
	viper.SetDefault(KeyCatalogFile, constants.DefaultCatalogFile)
	viper.SetDefault(KeyOutputFile, constants.DefaultOutputFile)
	viper.SetDefault(KeyProvider, string(sources.PokeAPIID))
	viper.SetDefault(KeyProviderURL, constants.DefaultProviderURL)
	viper.SetDefault(KeyMaxID, constants.MaxID)
	viper.SetDefault(KeyWorkers, constants.DefaultWorkers)
	viper.SetDefault(KeyFetchTimeout, constants.DefaultFetchTimeout)
}

// SetupEnv makes viper read DEXMAP_* environment variables.
func SetupEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}

// GetString is a helper to get string values from Viper.
// It checks both OS environment variables and Viper configuration.
func GetString(key string) string {
	osValue := os.Getenv(key)
	viperValue := viper.GetString(key)

	if viperValue == "" && osValue != "" {
		return osValue
	}
	return viperValue
}

// Settings is one resolved set of run settings.
type Settings struct {
	TypesFile       string
	CatalogFile     string
	OutputFile      string
	Provider        sources.ID
	ProviderURL     string
	ProviderFile    string
	MaxID           int
	Workers         int
	FetchTimeout    time.Duration
	Timeout         time.Duration
	DryRun          bool
	RequireComplete bool
	ReportFile      string
}

// Load reads the current run settings from viper and validates them.
func Load() (*Settings, error) {
	provider, err := sources.ParseID(viper.GetString(KeyProvider))
	if err != nil {
		return nil, err
	}

	s := &Settings{
		TypesFile:       viper.GetString(KeyTypesFile),
		CatalogFile:     viper.GetString(KeyCatalogFile),
		OutputFile:      viper.GetString(KeyOutputFile),
		Provider:        provider,
		ProviderURL:     viper.GetString(KeyProviderURL),
		ProviderFile:    viper.GetString(KeyProviderFile),
		MaxID:           viper.GetInt(KeyMaxID),
		Workers:         viper.GetInt(KeyWorkers),
		FetchTimeout:    viper.GetDuration(KeyFetchTimeout),
		Timeout:         viper.GetDuration(KeyTimeout),
		DryRun:          viper.GetBool(KeyDryRun),
		RequireComplete: viper.GetBool(KeyRequireComplete),
		ReportFile:      viper.GetString(KeyReportFile),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the settings for values no run can use.
func (s *Settings) Validate() error {
	switch {
	case s.TypesFile == "":
		return errors.NewValidationError(KeyTypesFile, s.TypesFile, "a type table path is required")
	case s.CatalogFile == "":
		return errors.NewValidationError(KeyCatalogFile, s.CatalogFile, "a catalog path is required")
	case s.OutputFile == "" && !s.DryRun:
		return errors.NewValidationError(KeyOutputFile, s.OutputFile, "an output path is required")
	case s.Provider == sources.LocalID && s.ProviderFile == "":
		return errors.NewValidationError(KeyProviderFile, s.ProviderFile, "the local provider needs a records file")
	case s.MaxID < constants.MinID:
		return errors.NewValidationError(KeyMaxID, s.MaxID, "must be at least 1")
	case s.Workers < 1 || s.Workers > constants.MaxWorkers:
		return errors.NewValidationError(KeyWorkers, s.Workers, "out of range")
	case s.FetchTimeout < 0:
		return errors.NewValidationError(KeyFetchTimeout, s.FetchTimeout, "cannot be negative")
	case s.Timeout < 0:
		return errors.NewValidationError(KeyTimeout, s.Timeout, "cannot be negative")
	}
	return nil
}

// OutputFormat returns the export format implied by the output path.
func (s *Settings) OutputFormat() save.Format {
	return save.FormatFromPath(s.OutputFile)
}
