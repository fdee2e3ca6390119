// Package schemas validates incoming resume and cover letter documents
// against embedded JSON Schemas before they reach the rendering engine.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_schema.json
var resumeSchemaJSON string

//go:embed cover_letter_schema.json
var coverLetterSchemaJSON string

var (
	compileOnce       sync.Once
	resumeSchema      *gojsonschema.Schema
	coverLetterSchema *gojsonschema.Schema
	compileErr        error
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors compiling an embedded schema or parsing
// the document itself.
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func compile() error {
	compileOnce.Do(func() {
		resumeSchema, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(resumeSchemaJSON))
		if compileErr != nil {
			compileErr = &SchemaLoadError{Schema: "resume", Message: "failed to compile", Cause: compileErr}
			return
		}
		coverLetterSchema, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(coverLetterSchemaJSON))
		if compileErr != nil {
			compileErr = &SchemaLoadError{Schema: "cover_letter", Message: "failed to compile", Cause: compileErr}
		}
	})
	return compileErr
}

// ValidateResume validates raw resume JSON. Returns *ValidationError when
// the document is well-formed JSON but violates the schema.
func ValidateResume(document []byte) error {
	if err := compile(); err != nil {
		return err
	}
	return validate(resumeSchema, "resume", document)
}

// ValidateCoverLetter validates raw cover letter JSON.
func ValidateCoverLetter(document []byte) error {
	if err := compile(); err != nil {
		return err
	}
	return validate(coverLetterSchema, "cover_letter", document)
}

func validate(schema *gojsonschema.Schema, name string, document []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &SchemaLoadError{Schema: name, Message: "document is not valid JSON", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
