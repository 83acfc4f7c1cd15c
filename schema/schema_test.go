package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileAndValidate(t *testing.T) {
	s, err := Compile(Object(map[string]*Property{
		"query": String("API documentation query"),
		"limit": Integer("Max results").Min(1).Max(100),
	}, "query"))
	require.NoError(t, err)

	assert.NoError(t, s.Validate(map[string]any{"query": "vectors"}))
	assert.NoError(t, s.Validate(map[string]any{"query": "vectors", "limit": 10}))

	err = s.Validate(map[string]any{"limit": 10})
	require.Error(t, err)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	assert.Error(t, s.Validate(map[string]any{"query": 42}))
	assert.Error(t, s.Validate(map[string]any{"query": "q", "limit": 0}))
}

func TestValidate_CoercedValueTypes(t *testing.T) {
	// The coercion ladder produces int and float64 values; both must
	// validate against numeric schema types.
	s := MustCompile(Object(map[string]*Property{
		"location": Number("Camera location"),
		"count":    Integer("Step count"),
		"snap":     Boolean("Snap to grid"),
	}))

	assert.NoError(t, s.Validate(map[string]any{
		"location": 12,
		"count":    3,
		"snap":     true,
	}))
	assert.NoError(t, s.Validate(map[string]any{"location": -0.5}))
}

func TestValidate_NilSchema(t *testing.T) {
	var s *Schema
	assert.NoError(t, s.Validate(map[string]any{"anything": "goes"}))

	s, err := Compile(nil)
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Nil(t, s.Raw())
}

func TestCompileJSON(t *testing.T) {
	raw := json.RawMessage(`{
		"type": "object",
		"properties": {
			"script": {"type": "string"},
			"path": {"type": "string"}
		},
		"required": ["script"]
	}`)

	s, err := CompileJSON(raw)
	require.NoError(t, err)
	assert.NoError(t, s.Validate(map[string]any{"script": "print('hi')"}))
	assert.Error(t, s.Validate(map[string]any{"path": "test.py"}))
	assert.Equal(t, "object", s.Raw()["type"])

	s, err = CompileJSON(nil)
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = CompileJSON(json.RawMessage(`not json`))
	assert.Error(t, err)
}

func TestPropertyOrder(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{
			name: "declaration order preserved",
			raw: `{"type": "object", "properties": {
				"location": {"type": "array"},
				"rotation": {"type": "array"},
				"snap": {"type": "boolean"}
			}}`,
			expected: []string{"location", "rotation", "snap"},
		},
		{
			name: "properties after other keys",
			raw: `{"required": ["script"], "additionalProperties": false,
				"properties": {"script": {}, "path": {}}}`,
			expected: []string{"script", "path"},
		},
		{
			name:     "no properties",
			raw:      `{"type": "object"}`,
			expected: nil,
		},
		{
			name:     "empty properties",
			raw:      `{"properties": {}}`,
			expected: nil,
		},
		{
			name:     "not an object",
			raw:      `["properties"]`,
			expected: nil,
		},
		{
			name:     "malformed input",
			raw:      `{"properties": {`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PropertyOrder(json.RawMessage(tt.raw)))
		})
	}
}

func TestBuilders(t *testing.T) {
	raw := Object(map[string]*Property{
		"status": String("Lifecycle state").Enum("idle", "running"),
		"limit":  Integer("Max results").Default(10),
		"tags":   Array("Tags", map[string]any{"type": "string"}),
	}, "status")

	assert.Equal(t, "object", raw["type"])
	assert.Equal(t, []string{"status"}, raw["required"])

	props := raw["properties"].(map[string]any)
	status := props["status"].(map[string]any)
	assert.Equal(t, "string", status["type"])
	assert.Equal(t, []any{"idle", "running"}, status["enum"])

	limit := props["limit"].(map[string]any)
	assert.Equal(t, 10, limit["default"])

	tags := props["tags"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string"}, tags["items"])
}
