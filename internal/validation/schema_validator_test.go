package validation

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_Inventory(t *testing.T) {
	validator := NewSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name:      "valid inventory",
			data:      `{"version": "1.0", "items": [{"name": "Aged Brie", "sell_in": 2, "quality": 0}]}`,
			wantError: false,
		},
		{
			name:      "negative sell-in is allowed",
			data:      `{"items": [{"name": "Sulfuras, Hand of Ragnaros", "sell_in": -1, "quality": 80}]}`,
			wantError: false,
		},
		{
			name:      "empty item list is structurally valid",
			data:      `{"items": []}`,
			wantError: false,
		},
		{
			name:      "missing items",
			data:      `{"version": "1.0"}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "missing quality",
			data:      `{"items": [{"name": "Aged Brie", "sell_in": 2}]}`,
			wantError: true,
			errorMsg:  "/items/0",
		},
		{
			name:      "fractional quality",
			data:      `{"items": [{"name": "Aged Brie", "sell_in": 2, "quality": 1.5}]}`,
			wantError: true,
			errorMsg:  "type",
		},
		{
			name:      "empty name",
			data:      `{"items": [{"name": "", "sell_in": 2, "quality": 1}]}`,
			wantError: true,
			errorMsg:  "minLength",
		},
		{
			name:      "unknown field",
			data:      `{"items": [{"name": "Vest", "sell_in": 2, "quality": 1, "price": 3}]}`,
			wantError: true,
			errorMsg:  "additionalProperties",
		},
		{
			name:      "malformed json",
			data:      `{"items": [`,
			wantError: true,
			errorMsg:  "failed to parse JSON data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), InventorySchema)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := NewSchemaValidator()
	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": [{"name": "Vest", "sell_in": 1, "quality": 2}]}`), 0o644))

	assert.NoError(t, validator.ValidateFile(path, InventorySchema))

	err := validator.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), InventorySchema)
	assert.ErrorContains(t, err, "failed to read data file")
}

func TestSchemaValidator_CustomFS(t *testing.T) {
	schemaFS := fstest.MapFS{
		"person.schema.json": {Data: []byte(`{
			"type": "object",
			"properties": {"age": {"type": "integer", "minimum": 0}},
			"required": ["age"]
		}`)},
	}
	validator := NewSchemaValidatorFS(schemaFS)

	assert.NoError(t, validator.ValidateBytes([]byte(`{"age": 3}`), "person.schema.json"))
	assert.ErrorContains(t, validator.ValidateBytes([]byte(`{"age": -1}`), "person.schema.json"), "minimum")

	// compiled schema is cached and reused
	assert.NoError(t, validator.ValidateBytes([]byte(`{"age": 4}`), "person.schema.json"))
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	validator := NewSchemaValidator()
	err := validator.ValidateBytes([]byte(`{}`), "nope.schema.json")
	assert.ErrorContains(t, err, "failed to load schema")
}
