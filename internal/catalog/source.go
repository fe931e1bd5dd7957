package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a card dataset file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension, defaulting to JSON
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a dataset without indexing it
func Decode(data []byte, format Format) (any, error) {
	var raw any
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, &LoadError{Index: -1, Reason: err.Error()}
	}
	return raw, nil
}

// ReadFile reads, decodes and indexes a dataset file such as
// hearthstonejson's cards.collectible.json
func ReadFile(path string, logger *zap.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading card dataset")
	}

	raw, err := Decode(data, FormatOf(path))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return Load(raw, logger)
}
