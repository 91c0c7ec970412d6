package validation

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// InventorySchema is the name of the embedded inventory file schema
const InventorySchema = "inventory.schema.json"

//go:embed schemas/*.json
var embeddedSchemas embed.FS

// SchemaValidator validates JSON data against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schemaName string) error
	ValidateBytes(data []byte, schemaName string) error
}

type validator struct {
	schemaFS fs.FS
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator backed by the embedded schemas
func NewSchemaValidator() SchemaValidator {
	sub, err := fs.Sub(embeddedSchemas, "schemas")
	if err != nil {
		// schemas/ is embedded at build time
		panic(err)
	}
	return NewSchemaValidatorFS(sub)
}

// NewSchemaValidatorFS creates a validator that reads schemas from schemaFS
func NewSchemaValidatorFS(schemaFS fs.FS) SchemaValidator {
	return &validator{
		schemaFS: schemaFS,
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file against a schema
func (v *validator) ValidateFile(dataPath, schemaName string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}

	return v.ValidateBytes(data, schemaName)
}

// ValidateBytes validates JSON data bytes against a schema
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	// Load and compile schema (cached)
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// loadSchema loads and compiles a schema, caching the result
func (v *validator) loadSchema(schemaName string) (*jsonschema.Schema, error) {
	if schema, ok := v.schemas[schemaName]; ok {
		return schema, nil
	}

	schemaData, err := fs.ReadFile(v.schemaFS, schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	schemaJSON, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaData))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(schemaName, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaName] = schema
	return schema, nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var errors []string
		collectErrors(validationErr, &errors)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(errors, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects all validation errors
func collectErrors(err *jsonschema.ValidationError, errors *[]string) {
	if msg := formatError(err); msg != "" && len(err.Causes) == 0 {
		*errors = append(*errors, msg)
	}

	for _, cause := range err.Causes {
		collectErrors(cause, errors)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			keywords = strings.Join(keywordPath, ".")
		}
	}

	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
