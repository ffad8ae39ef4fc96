package update

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/dexmap/internal/config"
	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/sources"
)

// flagKeys maps each run flag to its config key.
var flagKeys = map[string]string{
	"types":            config.KeyTypesFile,
	"catalog":          config.KeyCatalogFile,
	"out":              config.KeyOutputFile,
	"provider":         config.KeyProvider,
	"provider-url":     config.KeyProviderURL,
	"provider-file":    config.KeyProviderFile,
	"max-id":           config.KeyMaxID,
	"workers":          config.KeyWorkers,
	"fetch-timeout":    config.KeyFetchTimeout,
	"timeout":          config.KeyTimeout,
	"dry-run":          config.KeyDryRun,
	"require-complete": config.KeyRequireComplete,
	"report":           config.KeyReportFile,
}

// addUpdateFlags registers the run flags and binds them to viper, so an
// explicit flag overrides the environment and the config file.
func addUpdateFlags(cmd *cobra.Command) error {
	f := cmd.Flags()
	f.String("types", constants.DefaultTypesFile, "type effectiveness table (JSON or YAML)")
	f.String("catalog", constants.DefaultCatalogFile, "existing catalog to reconcile (JSON or YAML)")
	f.String("out", constants.DefaultOutputFile, "where to write the updated catalog; .yaml/.yml selects YAML")
	f.String("provider", string(sources.PokeAPIID), "record provider for missing ids: pokeapi, local")
	f.String("provider-url", constants.DefaultProviderURL, "base URL of the pokeapi provider")
	f.String("provider-file", "", "records file for the local provider")
	f.Int("max-id", constants.MaxID, "highest id the catalog should cover")
	f.Int("workers", constants.DefaultWorkers, "concurrent provider fetches")
	f.Duration("fetch-timeout", constants.DefaultFetchTimeout, "timeout per provider fetch (0 disables)")
	f.Duration("timeout", 0, "timeout for the whole run (0 disables)")
	f.Bool("dry-run", false, "report changes without writing the output file")
	f.Bool("require-complete", false, "skip the export when any missing id fails to synthesize")
	f.String("report", "", "also write a Markdown run report to this path")

	for name, key := range flagKeys {
		if err := viper.BindPFlag(key, f.Lookup(name)); err != nil {
			return errors.NewConfigError("flags", "binding --"+name, err)
		}
	}
	return nil
}
