package catalogs

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/dexmap/pkg/constants"
	"github.com/agentstation/dexmap/pkg/errors"
	"github.com/agentstation/dexmap/pkg/logging"
	"github.com/agentstation/dexmap/pkg/save"
)

// Encode serializes the catalog as a single ordered list. JSON uses a
// four-space indent; FormatAuto is treated as JSON.
func (c *Catalog) Encode(format save.Format) ([]byte, error) {
	entries := c.Entries()

	if format == save.FormatYAML {
		data, err := yaml.MarshalWithOptions(entries, yaml.IndentSequence(true))
		if err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
		return data, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", constants.JSONIndent)
	if err := enc.Encode(entries); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	return buf.Bytes(), nil
}

// Save writes the catalog to the configured writer or path. File writes go
// through a temp file in the target directory and a rename, so readers
// never observe a partial catalog.
func (c *Catalog) Save(opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)

	if options.Writer() == nil && options.Path() == "" {
		return &errors.ConfigError{
			Component: "catalog",
			Message:   "no write path configured for saving",
		}
	}

	data, err := c.Encode(options.Format())
	if err != nil {
		return err
	}

	if w := options.Writer(); w != nil {
		if _, err := w.Write(data); err != nil {
			return errors.WrapIO("write", "writer", err)
		}
		return nil
	}

	if err := writeFileAtomic(options.Path(), data); err != nil {
		return err
	}

	logging.Debug().
		Str("path", options.Path()).
		Str("format", options.Format().String()).
		Int("entries", c.Len()).
		Msg("Catalog saved")
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, ".dexmap_*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	tempPath := tempFile.Name()

	if _, err := io.Copy(tempFile, bytes.NewReader(data)); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", tempPath, err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("close", tempPath, err)
	}
	if err := os.Chmod(tempPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("chmod", tempPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
