package paytable

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FairSpin_Go/internal/domain"
	"github.com/osse101/FairSpin_Go/internal/validation"
)

// SchemaName is the resource name the paytable schema is registered under
const SchemaName = "paytable.schema.json"

// Format is the encoding of a paytable document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	//go:embed data/paytable.schema.json
	schemaJSON []byte

	//go:embed data/default.json
	defaultJSON []byte

	schemaOnce      sync.Once
	schemaValidator validation.SchemaValidator
	schemaErr       error
)

func getSchemaValidator() (validation.SchemaValidator, error) {
	schemaOnce.Do(func() {
		schemaValidator = validation.NewSchemaValidator()
		schemaErr = schemaValidator.Register(SchemaName, schemaJSON)
	})
	return schemaValidator, schemaErr
}

// Default returns a fresh copy of the embedded table
func Default() (*Paytable, error) {
	return Parse(defaultJSON, FormatJSON)
}

// Load reads a table from disk; the format follows the file extension.
// An empty path yields the embedded default.
func Load(path string) (*Paytable, error) {
	if path == "" {
		return Default()
	}

	format, err := formatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read paytable %s: %w", path, err)
	}

	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("paytable %s: %w", path, err)
	}
	return p, nil
}

// Parse validates data against the schema, decodes it and runs semantic validation
func Parse(data []byte, format Format) (*Paytable, error) {
	v, err := getSchemaValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to load paytable schema: %w", err)
	}

	var doc interface{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPaytable, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPaytable, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", domain.ErrInvalidPaytable, format)
	}

	normalized, err := validation.NormalizeDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPaytable, err)
	}
	if err := v.Validate(SchemaName, normalized); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPaytable, err)
	}

	p := &Paytable{}
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(p)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(p)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPaytable, err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func formatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported file extension %q", domain.ErrInvalidPaytable, filepath.Ext(path))
	}
}
