// Package schemas validates stored JSON documents against the embedded JSON
// schemas. Compiled schemas are cached and safe for concurrent use.
package schemas

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	embedded "github.com/jonathan/resume-builder/schemas"
)

// FieldError is one schema violation. Field is the dotted path of the
// offending value, "(root)" for the document itself; Kind is the failed
// keyword, e.g. "required" or "unique".
type FieldError struct {
	Field   string
	Kind    string
	Message string
}

// ValidationError lists every violation found in a document.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "document does not match %s:", ve.Schema)
	for _, fe := range ve.Errors {
		fmt.Fprintf(&sb, "\n  - %s: %s", fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError is returned when a schema cannot be read or compiled.
type SchemaLoadError struct {
	Schema string
	Cause  error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Schema, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// DocumentError is returned when the document is not parseable JSON.
type DocumentError struct {
	Cause error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("document is not valid JSON: %v", e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

var compiled sync.Map // schema name -> *gojsonschema.Schema

// ValidateAccountRecord checks a serialized account record against the
// AccountRecord schema.
func ValidateAccountRecord(jsonContent string) error {
	return ValidateEmbedded(embedded.AccountRecord, jsonContent)
}

// ValidateEmbedded checks jsonContent against the embedded schema file name.
func ValidateEmbedded(name, jsonContent string) error {
	schema, err := load(name)
	if err != nil {
		return err
	}
	return validate(name, schema, jsonContent)
}

// ValidateJSONString checks jsonContent against an inline schema. The schema
// is compiled on every call.
func ValidateJSONString(schemaContent, jsonContent string) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return &SchemaLoadError{Schema: "(inline)", Cause: err}
	}
	return validate("(inline)", schema, jsonContent)
}

func load(name string) (*gojsonschema.Schema, error) {
	if s, ok := compiled.Load(name); ok {
		return s.(*gojsonschema.Schema), nil
	}

	content, err := embedded.Load(name)
	if err != nil {
		return nil, &SchemaLoadError{Schema: name, Cause: err}
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(content))
	if err != nil {
		return nil, &SchemaLoadError{Schema: name, Cause: err}
	}

	s, _ := compiled.LoadOrStore(name, schema)
	return s.(*gojsonschema.Schema), nil
}

func validate(name string, schema *gojsonschema.Schema, jsonContent string) error {
	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonContent))
	if err != nil {
		return &DocumentError{Cause: err}
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Schema: name, Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{
			Field:   field,
			Kind:    desc.Type(),
			Message: desc.Description(),
		})
	}
	return verr
}
