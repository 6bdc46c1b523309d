// Package schemas provides JSON Schema validation for taxonomy files and analysis reports.
package schemas

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError is one violation, addressed by its JSON path.
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError means the schema itself, not the document, is broken.
type SchemaLoadError struct {
	Schema string
	Cause  error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to compile %s schema: %v", e.Schema, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	if ve.Schema != "" {
		sb.WriteString(ve.Schema)
		sb.WriteString(" ")
	}
	sb.WriteString("validation failed:")
	for i, fe := range ve.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// Schema is a named JSON Schema compiled on first use.
type Schema struct {
	name    string
	compile func() (*gojsonschema.Schema, error)
}

// New returns a Schema for the given JSON Schema source.
func New(name, source string) *Schema {
	return &Schema{
		name: name,
		compile: sync.OnceValues(func() (*gojsonschema.Schema, error) {
			return gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
		}),
	}
}

// Name returns the schema name used in error messages.
func (s *Schema) Name() string {
	return s.name
}

// Validate checks data against the schema. Malformed JSON is reported as a
// single root-level violation.
func (s *Schema) Validate(data []byte) error {
	compiled, err := s.compile()
	if err != nil {
		return &SchemaLoadError{Schema: s.name, Cause: err}
	}

	result, err := compiled.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &ValidationError{
			Schema: s.name,
			Errors: []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Schema: s.name, Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}

var (
	reportSchema   = New("report", ReportSchema)
	taxonomySchema = New("taxonomy", TaxonomySchema)
)

// ValidateReport validates serialized report JSON against the embedded report schema.
func ValidateReport(reportJSON []byte) error {
	return reportSchema.Validate(reportJSON)
}

// ValidateTaxonomy validates taxonomy JSON against the embedded taxonomy schema.
func ValidateTaxonomy(taxonomyJSON []byte) error {
	return taxonomySchema.Validate(taxonomyJSON)
}
