package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the on-disk encoding of a configuration file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath selects the file format from the path extension:
// .yaml and .yml use YAML, everything else JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads a configuration file. Fields absent from the file keep
// their defaults; unknown fields are rejected. A missing file yields an
// error wrapping fs.ErrNotExist, a malformed one an error wrapping
// ErrInvalidConfigFile. Both carry the path.
func LoadFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the given format on top of the compiled defaults.
func Decode(data []byte, format Format) (*AppConfig, error) {
	cfg := NewDefault()

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfigFile, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfigFile, err)
		}
		if dec.More() {
			return nil, fmt.Errorf("%w: trailing data after JSON object", ErrInvalidConfigFile)
		}
	}

	return cfg, nil
}
