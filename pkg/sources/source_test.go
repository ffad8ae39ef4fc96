package sources_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/dexmap/internal/testhelper"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/sources"
)

func TestParseID(t *testing.T) {
	id, err := sources.ParseID(" PokeAPI ")
	require.NoError(t, err)
	assert.Equal(t, sources.PokeAPIID, id)

	_, err = sources.ParseID("ftp")
	assert.True(t, errors.IsValidationError(err))
}

func TestRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  sources.Record
		wantErr bool
	}{
		{"single type", sources.Record{ID: 25, Name: "pikachu", Types: []string{"electric"}}, false},
		{"dual type", sources.Record{ID: 6, Name: "charizard", Types: []string{"fire", "flying"}}, false},
		{"no name", sources.Record{ID: 1, Types: []string{"grass"}}, true},
		{"no types", sources.Record{ID: 1, Name: "x"}, true},
		{"three types", sources.Record{ID: 1, Name: "x", Types: []string{"a", "b", "c"}}, true},
		{"blank type", sources.Record{ID: 1, Name: "x", Types: []string{""}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSources(t *testing.T) {
	fn := testhelper.ProviderFunc(func(_ context.Context, id int) (sources.Record, error) {
		return sources.Record{ID: id, Name: "stub", Types: []string{"normal"}}, nil
	})
	s := sources.NewSources(fn)

	p, err := s.Get("func")
	require.NoError(t, err)
	rec, err := p.FetchByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, rec.ID)

	_, err = s.Get(sources.PokeAPIID)
	assert.True(t, errors.IsNotFound(err))

	replacement := testhelper.ProviderFunc(func(context.Context, int) (sources.Record, error) {
		return sources.Record{}, errors.NewNotFoundError("record", "7")
	})
	s.Set(replacement)
	p, err = s.Get("func")
	require.NoError(t, err)
	_, err = p.FetchByID(context.Background(), 7)
	assert.True(t, errors.IsNotFound(err), "Set replaces the provider registered under the same id")
}
