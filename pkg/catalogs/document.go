package catalogs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/dexmap/pkg/errors"
)

// DocumentFormat names the encoding of a source table on disk.
type DocumentFormat string

// Supported document formats.
const (
	DocumentJSON DocumentFormat = "json"
	DocumentYAML DocumentFormat = "yaml"
)

// DocumentFormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func DocumentFormatFromPath(path string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DocumentYAML
	}
	return DocumentJSON
}

// DecodeList decodes a list of T from data. The list may be the whole
// document or sit under key in a top-level object, as in
// {"pokemon": [...]} or {"types": [...]}. file is only used in errors.
func DecodeList[T any](data []byte, format DocumentFormat, file, key string) ([]T, error) {
	switch format {
	case DocumentYAML:
		return decodeYAMLList[T](data, file, key)
	default:
		return decodeJSONList[T](data, file, key)
	}
}

func decodeJSONList[T any](data []byte, file, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.NewParseError("json", file, "empty document", nil)
	}

	if trimmed[0] == '[' {
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, errors.WrapParse("json", file, err)
		}
		return list, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, errors.WrapParse("json", file, err)
	}
	raw, ok := doc[key]
	if !ok {
		return nil, errors.NewParseError("json", file, fmt.Sprintf("missing top-level %q list", key), nil)
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, errors.WrapParse("json", file, err)
	}
	return list, nil
}

func decodeYAMLList[T any](data []byte, file, key string) ([]T, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.NewParseError("yaml", file, "empty document", nil)
	}

	var list []T
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var doc map[string][]T
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", file, err)
	}
	list, ok := doc[key]
	if !ok {
		return nil, errors.NewParseError("yaml", file, fmt.Sprintf("missing top-level %q list", key), nil)
	}
	return list, nil
}
