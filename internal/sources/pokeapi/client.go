// Package pokeapi implements a record provider backed by the PokeAPI
// /pokemon/{id} endpoint.
package pokeapi

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/agentstation/dexmap/internal/transport"
	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/logging"
	"github.com/agentstation/dexmap/pkg/sources"
)

// Client fetches creature records from PokeAPI.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	transport  *transport.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the endpoint prefix the id is appended to.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = url
		}
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a PokeAPI client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   constants.DefaultProviderURL,
		userAgent: constants.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.transport = transport.New(string(sources.PokeAPIID),
		transport.WithHTTPClient(c.httpClient),
		transport.WithUserAgent(c.userAgent),
	)
	return c
}

// ID returns sources.PokeAPIID.
func (c *Client) ID() sources.ID {
	return sources.PokeAPIID
}

// URL returns the endpoint for id.
func (c *Client) URL(id int) string {
	return strings.TrimRight(c.baseURL, "/") + "/" + strconv.Itoa(id)
}

// FetchByID returns the record for id. A 404 becomes a NotFoundError;
// every other failure is a ProviderError.
func (c *Client) FetchByID(ctx context.Context, id int) (sources.Record, error) {
	url := c.URL(id)
	logging.FromContext(ctx).Debug().Str("url", url).Msg("Fetching record")

	var resp PokemonResponse
	if err := c.transport.GetJSON(ctx, url, &resp); err != nil {
		var apiErr *errors.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return sources.Record{}, errors.NewNotFoundError("record", strconv.Itoa(id))
		}
		return sources.Record{}, errors.WrapProvider(c.transport.Provider(), id, err)
	}

	if resp.ID != 0 && resp.ID != id {
		return sources.Record{}, errors.NewProviderError(c.transport.Provider(), id,
			fmt.Errorf("response is for id %d", resp.ID))
	}

	record := resp.Record()
	record.ID = id
	if err := record.Validate(); err != nil {
		return sources.Record{}, errors.NewProviderError(c.transport.Provider(), id, err)
	}
	return record, nil
}

// PokemonResponse is the subset of the /pokemon/{id} payload dexmap reads.
type PokemonResponse struct {
	ID    int        `json:"id"`
	Name  string     `json:"name"`
	Types []TypeSlot `json:"types"`
}

// TypeSlot is one entry of the types list; Slot gives the display order.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// NamedResource is PokeAPI's {name, url} reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Record flattens the response, ordering types by slot.
func (r PokemonResponse) Record() sources.Record {
	slots := make([]TypeSlot, len(r.Types))
	copy(slots, r.Types)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	types := make([]string, len(slots))
	for i, s := range slots {
		types[i] = s.Type.Name
	}
	return sources.Record{ID: r.ID, Name: r.Name, Types: types}
}
