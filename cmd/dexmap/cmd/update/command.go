// Package update provides the dexmap run command: reconcile the catalog,
// synthesize missing entries and export the result.
package update

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/dexmap/internal/cmd/alerts"
	"github.com/agentstation/dexmap/internal/cmd/application"
	"github.com/agentstation/dexmap/internal/config"
	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/logging"
	"github.com/agentstation/dexmap/pkg/sync"
)

// NewCommand creates the update command using app context. dexmap has no
// subcommands, so this is also the root command.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dexmap",
		Short: "Reconcile and complete a creature type-effectiveness catalog",
		Long: `dexmap keeps a catalog's weaknesses, resistances and immunities consistent
with a type effectiveness table.

A run will:
  1. Recompute the effectiveness of every entry in the existing catalog
  2. Report entries whose stored values drifted
  3. Fetch every id missing up to --max-id from the record provider
  4. Write the merged catalog, sorted by id

Ids that cannot be fetched are reported; the run then exits non-zero.`,
		Example: `  dexmap                                        # pokemon.json + types.json -> updated_pokemon.json
  dexmap --dry-run -o table                     # preview corrections and gaps
  dexmap --max-id 151 --out kanto.yaml          # first 151 ids, YAML output
  dexmap --provider local --provider-file records.json
  dexmap --require-complete --report run.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ExecuteUpdate(cmd, app)
		},
	}

	if err := addUpdateFlags(cmd); err != nil {
		panic("programming error: " + err.Error())
	}

	return cmd
}

// ExecuteUpdate runs one update with settings resolved from flags, the
// environment and the config file, then prints the summary.
func ExecuteUpdate(cmd *cobra.Command, app application.Application) error {
	logger := app.Logger()
	ctx := logging.WithLogger(cmd.Context(), logger)

	settings, err := config.Load()
	if err != nil {
		return err
	}
	ctx = logging.WithFields(ctx, map[string]any{
		"catalog": settings.CatalogFile,
		"max_id":  settings.MaxID,
	})

	opts, err := buildOptions(settings, constants.DefaultUserAgent+"/"+app.Version())
	if err != nil {
		return err
	}

	dm, err := app.Dexmap(opts...)
	if err != nil {
		return errors.WrapResource("create", "dexmap", "", err)
	}

	result, runErr := dm.Update(ctx,
		sync.WithOutputPath(settings.OutputFile),
		sync.WithFormat(settings.OutputFormat()),
		sync.WithDryRun(settings.DryRun),
		sync.WithRequireComplete(settings.RequireComplete),
		sync.WithTimeout(settings.Timeout),
	)
	if result == nil {
		return runErr
	}

	if err := printResult(cmd.OutOrStdout(), app.OutputFormat(), result); err != nil {
		return err
	}

	if settings.ReportFile != "" {
		if err := writeReport(settings.ReportFile, result); err != nil {
			return err
		}
		logger.Info().Str("path", settings.ReportFile).Msg("Created file")
	}

	if err := app.AlertWriter(cmd.ErrOrStderr()).WriteAlert(alerts.ForResult(result)); err != nil {
		return err
	}

	return runErr
}
