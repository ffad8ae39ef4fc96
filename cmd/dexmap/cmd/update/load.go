package update

import (
	"github.com/agentstation/dexmap"
	"github.com/agentstation/dexmap/internal/config"
	"github.com/agentstation/dexmap/internal/sources/local"
	"github.com/agentstation/dexmap/internal/sources/pokeapi"
	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/sources"
	"github.com/agentstation/dexmap/pkg/typechart"
)

// buildOptions loads the inputs named by settings and returns the dexmap
// options that wire them.
func buildOptions(settings *config.Settings, userAgent string) ([]dexmap.Option, error) {
	registry, err := typechart.Load(settings.TypesFile)
	if err != nil {
		return nil, err
	}

	catalog, err := catalogs.LoadCatalog(settings.CatalogFile)
	if err != nil {
		return nil, err
	}

	provider, err := newProvider(settings, userAgent)
	if err != nil {
		return nil, err
	}

	return []dexmap.Option{
		dexmap.WithRegistry(registry),
		dexmap.WithCatalog(catalog),
		dexmap.WithProvider(provider),
		dexmap.WithMaxID(settings.MaxID),
		dexmap.WithWorkers(settings.Workers),
		dexmap.WithFetchTimeout(settings.FetchTimeout),
	}, nil
}

// newSources registers every provider the settings can build. PokeAPI
// needs no local input; the local provider is registered only when a
// records file is configured.
func newSources(settings *config.Settings, userAgent string) (*sources.Sources, error) {
	srcs := sources.NewSources(pokeapi.New(
		pokeapi.WithBaseURL(settings.ProviderURL),
		pokeapi.WithUserAgent(userAgent),
	))
	if settings.ProviderFile != "" {
		records, err := local.Load(settings.ProviderFile)
		if err != nil {
			return nil, err
		}
		srcs.Set(records)
	}
	return srcs, nil
}

func newProvider(settings *config.Settings, userAgent string) (sources.Provider, error) {
	srcs, err := newSources(settings, userAgent)
	if err != nil {
		return nil, err
	}
	provider, err := srcs.Get(settings.Provider)
	if err != nil {
		return nil, errors.WrapValidation(config.KeyProvider, err)
	}
	return provider, nil
}
