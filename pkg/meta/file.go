package meta

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when a catalog document does not match the catalog schema.
var ErrInvalidCatalog = errors.New("invalid catalog")

// catalogFile is the on-disk shape of a catalog (YAML or JSON).
type catalogFile struct {
	Classes []*Class           `yaml:"classes"`
	Types   map[string][]Field `yaml:"types,omitempty"`
}

// LoadCatalog reads and validates a catalog file.
func LoadCatalog(filePath string) (*Catalog, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return catalog, nil
}

// ParseCatalog decodes a YAML or JSON catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if err := validateCatalog(doc); err != nil {
		return nil, err
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	catalog := NewCatalog()
	for _, class := range file.Classes {
		if class != nil {
			catalog.AddClass(class)
		}
	}
	names := make([]string, 0, len(file.Types))
	for name := range file.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		catalog.AddType(name, file.Types[name]...)
	}
	return catalog, nil
}

func validateCatalog(doc any) error {
	if doc == nil {
		return fmt.Errorf("%w: empty document", ErrInvalidCatalog)
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("failed to validate catalog: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(msgs, "; "))
}

const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["classes"],
  "definitions": {
    "annotation": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "attributes": {"type": "object"}
      }
    },
    "annotations": {"type": "array", "items": {"$ref": "#/definitions/annotation"}},
    "parameter": {
      "type": "object",
      "required": ["name", "type"],
      "properties": {
        "name": {"type": "string"},
        "type": {"type": "string"},
        "primitive": {"type": "boolean"},
        "annotations": {"$ref": "#/definitions/annotations"}
      }
    },
    "method": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "public": {"type": "boolean"},
        "annotations": {"$ref": "#/definitions/annotations"},
        "parameters": {"type": "array", "items": {"$ref": "#/definitions/parameter"}}
      }
    },
    "field": {
      "type": "object",
      "required": ["name", "type"],
      "properties": {
        "name": {"type": "string"},
        "type": {"type": "string"},
        "static": {"type": "boolean"},
        "transient": {"type": "boolean"}
      }
    }
  },
  "properties": {
    "classes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "qualifiedName": {"type": "string"},
          "interfaces": {"type": "array", "items": {"type": "string"}},
          "annotations": {"$ref": "#/definitions/annotations"},
          "methods": {"type": "array", "items": {"$ref": "#/definitions/method"}}
        }
      }
    },
    "types": {
      "type": "object",
      "additionalProperties": {"type": "array", "items": {"$ref": "#/definitions/field"}}
    }
  }
}`
