// Package local implements a record provider that serves records from a
// JSON or YAML file, for offline runs and fixtures.
package local

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/agentstation/dexmap/pkg/catalogs"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/sources"
)

// DocumentKey is the top-level key of a wrapped records file.
const DocumentKey = "records"

// Source serves records held in memory, keyed by id.
type Source struct {
	records map[int]sources.Record
}

// New creates a source from records. Invalid or duplicate records are rejected.
func New(records ...sources.Record) (*Source, error) {
	s := &Source{records: make(map[int]sources.Record, len(records))}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, exists := s.records[r.ID]; exists {
			return nil, errors.NewValidationError("id", r.ID, fmt.Sprintf("duplicate record %d", r.ID))
		}
		r.Types = append([]string(nil), r.Types...)
		s.records[r.ID] = r
	}
	return s, nil
}

// Load reads records from a file holding {"records": [...]} or a bare list.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return parse(data, catalogs.DocumentFormatFromPath(path), path)
}

// LoadFS reads records from name within fsys.
func LoadFS(fsys fs.FS, name string) (*Source, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.WrapIO("read", name, err)
	}
	return parse(data, catalogs.DocumentFormatFromPath(name), name)
}

func parse(data []byte, format catalogs.DocumentFormat, file string) (*Source, error) {
	records, err := catalogs.DecodeList[sources.Record](data, format, file, DocumentKey)
	if err != nil {
		return nil, err
	}
	s, err := New(records...)
	if err != nil {
		return nil, errors.WrapResource("load", "records", file, err)
	}
	return s, nil
}

// ID returns sources.LocalID.
func (s *Source) ID() sources.ID {
	return sources.LocalID
}

// Len returns the number of records.
func (s *Source) Len() int {
	return len(s.records)
}

// FetchByID returns the record for id or a NotFoundError.
func (s *Source) FetchByID(ctx context.Context, id int) (sources.Record, error) {
	if err := ctx.Err(); err != nil {
		return sources.Record{}, errors.NewProviderError(string(sources.LocalID), id, err)
	}
	r, ok := s.records[id]
	if !ok {
		return sources.Record{}, errors.NewNotFoundError("record", strconv.Itoa(id))
	}
	r.Types = append([]string(nil), r.Types...)
	return r, nil
}
