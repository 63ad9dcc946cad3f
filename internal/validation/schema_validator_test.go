package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const personSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"],
	"additionalProperties": false
}`

func newPersonValidator(t *testing.T) SchemaValidator {
	t.Helper()
	v := NewSchemaValidator()
	require.NoError(t, v.Register("person.schema.json", []byte(personSchema)))
	return v
}

func TestSchemaValidator_ValidateJSON(t *testing.T) {
	v := newPersonValidator(t)

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "John", "age": "thirty"}`, wantError: true, errorMsg: "/age"},
		{name: "negative age", data: `{"name": "John", "age": -1}`, wantError: true, errorMsg: "minimum"},
		{name: "unknown property", data: `{"name": "John", "extra": true}`, wantError: true, errorMsg: "additionalProperties"},
		{name: "invalid JSON", data: `{"name": `, wantError: true, errorMsg: "failed to parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateJSON("person.schema.json", []byte(tt.data))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateJSON("missing.json", []byte(`{}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestSchemaValidator_RegisterTwice(t *testing.T) {
	v := newPersonValidator(t)

	err := v.Register("person.schema.json", []byte(personSchema))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestSchemaValidator_RegisterInvalidSchema(t *testing.T) {
	v := NewSchemaValidator()

	assert.Error(t, v.Register("broken.json", []byte(`{"type": `)))
	assert.Error(t, v.Register("bad-type.json", []byte(`{"type": 12}`)))
}

func TestNormalizeDocument_YAML(t *testing.T) {
	v := newPersonValidator(t)

	var doc interface{}
	require.NoError(t, yaml.Unmarshal([]byte("name: Ada\nage: 36\n"), &doc))

	normalized, err := NormalizeDocument(doc)
	require.NoError(t, err)
	assert.NoError(t, v.Validate("person.schema.json", normalized))

	require.NoError(t, yaml.Unmarshal([]byte("age: 36\n"), &doc))
	normalized, err = NormalizeDocument(doc)
	require.NoError(t, err)
	assert.Error(t, v.Validate("person.schema.json", normalized))
}
