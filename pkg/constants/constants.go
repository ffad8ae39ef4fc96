// Package constants provides shared constants used throughout dexmap:
// catalog bounds, default file names, timeouts, limits and permissions.
package constants

import "time"

// Catalog bounds
const (
	// MaxID is the highest creature id in the catalog.
	MaxID = 1008

	// MinID is the lowest creature id in the catalog.
	MinID = 1

	// MaxElementsPerEntry is the number of elements a single entry may carry.
	MaxElementsPerEntry = 2
)

// Default file names, relative to the working directory
const (
	// DefaultTypesFile is the single-type effectiveness table.
	DefaultTypesFile = "types.json"

	// DefaultCatalogFile is the existing catalog.
	DefaultCatalogFile = "pokemon.json"

	// DefaultOutputFile is where the updated catalog is written.
	DefaultOutputFile = "updated_pokemon.json"

	// ConfigFileName is the base name of the optional config file (~/.dexmap.yaml).
	ConfigFileName = ".dexmap"
)

// Provider defaults
const (
	// DefaultProviderURL is the PokeAPI endpoint prefix; the id is appended.
	DefaultProviderURL = "https://pokeapi.co/api/v2/pokemon/"

	// DefaultUserAgent identifies dexmap to remote providers.
	DefaultUserAgent = "dexmap"
)

// Timeout constants
const (
	// DefaultHTTPTimeout is the client-level timeout for provider requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultFetchTimeout bounds a single fetchById call.
	DefaultFetchTimeout = 30 * time.Second
)

// Limit constants
const (
	// DefaultWorkers is the synthesis worker pool size.
	DefaultWorkers = 8

	// MaxWorkers caps the configurable pool size.
	MaxWorkers = 64

	// MaxResponseBytes bounds a provider response body.
	MaxResponseBytes = 4 << 20
)

// File permission constants
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// JSONIndent matches the four-space layout of the published catalog files.
const JSONIndent = "    "
