// Package schemas validates the profile-builder JSON hand-off against the
// embedded profiles schema before it is decoded, so contract violations are
// reported as field-level errors instead of surfacing mid-generation.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profiles.schema.json
var profilesSchema string

// FieldError is a single validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the field errors of one validation run.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("profiles validation failed:\n")
	for i, e := range ve.Errors {
		fmt.Fprintf(&b, "  %d. %s: %s\n", i+1, e.Field, e.Message)
	}
	return b.String()
}

// ValidateProfiles checks raw profiles JSON against the embedded schema.
// It returns a *ValidationError listing every violation, or nil when the
// document conforms.
func ValidateProfiles(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(profilesSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("profiles schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, e := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   e.Field(),
			Message: e.Description(),
		})
	}
	return ve
}
