package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-analyzer/internal/schemas"
)

// fileFormat is the on-disk representation of a taxonomy override
type fileFormat struct {
	Categories []Category `json:"categories"`
}

// LoadFile reads a taxonomy from a JSON file, validating it against the embedded schema.
func LoadFile(path string) (*Taxonomy, error) {
	if path == "" {
		return nil, fmt.Errorf("taxonomy path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes taxonomy JSON. Schema violations are returned as *schemas.ValidationError,
// structural problems the schema cannot express as *ValidationError.
func Parse(data []byte) (*Taxonomy, error) {
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy JSON: %w", err)
	}

	if err := schemas.ValidateTaxonomy(data); err != nil {
		return nil, fmt.Errorf("taxonomy does not match schema: %w", err)
	}

	return New(f.Categories)
}

// MarshalJSON encodes the taxonomy in the same format LoadFile accepts.
func (t *Taxonomy) MarshalJSON() ([]byte, error) {
	return json.Marshal(fileFormat{Categories: t.categories})
}

// LoadOrDefault loads the taxonomy at path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Taxonomy, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
