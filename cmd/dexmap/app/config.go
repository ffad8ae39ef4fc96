package app

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/dexmap/internal/config"
	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
)

// Config holds the ambient application configuration. Run settings such as
// file paths and the provider are resolved by internal/config.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Logging configuration
	LogLevel    string // --log-level
	EnvLogLevel string // LOG_LEVEL
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.dexmap.yaml or ./.dexmap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	config.SetupEnv()
	config.SetDefaults()

	if err := readConfigFile(viper.GetString("config")); err != nil {
		return nil, err
	}

	return &Config{
		Verbose:    viper.GetBool("verbose"),
		Quiet:      viper.GetBool("quiet"),
		NoColor:    viper.GetBool("no_color"),
		Format:     viper.GetString("format"),
		ConfigFile: viper.ConfigFileUsed(),

		EnvLogLevel: os.Getenv("LOG_LEVEL"),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput:   getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}, nil
}

// readConfigFile reads path, or searches the home and working directories
// for .dexmap.yaml. A missing search result is not an error; a file that
// exists but does not parse is.
func readConfigFile(path string) error {
	if path != "" {
		viper.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(constants.ConfigFileName)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.NewConfigError("config", "reading config file", err)
	}
	return nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local is loaded first so its values win; godotenv never overrides
// variables that are already set.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
