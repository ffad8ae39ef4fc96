package catalogs

import (
	"io/fs"
	"os"

	"github.com/agentstation/dexmap/pkg/errors"
)

// CatalogDocumentKey is the top-level key of a wrapped catalog document.
const CatalogDocumentKey = "pokemon"

// LoadCatalog reads a catalog from a JSON or YAML file. The file holds
// either {"pokemon": [...]} or a bare list of entries.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-supplied path
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return ParseCatalog(data, DocumentFormatFromPath(path), path)
}

// LoadCatalogFS reads a catalog from name within fsys.
func LoadCatalogFS(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.WrapIO("read", name, err)
	}
	return ParseCatalog(data, DocumentFormatFromPath(name), name)
}

// ParseCatalog decodes catalog entries from data.
func ParseCatalog(data []byte, format DocumentFormat, file string) (*Catalog, error) {
	entries, err := DecodeList[Entry](data, format, file, CatalogDocumentKey)
	if err != nil {
		return nil, err
	}
	return &Catalog{entries: entries}, nil
}
