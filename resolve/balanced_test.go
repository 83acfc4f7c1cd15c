package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstBalancedJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
		found    bool
	}{
		{
			name:     "object with prose on both sides",
			input:    `Sure, here you go: {"query": "vectors"} hope that helps`,
			expected: map[string]any{"query": "vectors"},
			found:    true,
		},
		{
			name:     "array payload",
			input:    `results first: [1, 2, 3]`,
			expected: []any{float64(1), float64(2), float64(3)},
			found:    true,
		},
		{
			name:     "nested object",
			input:    `x {"a": {"b": [1]}} y`,
			expected: map[string]any{"a": map[string]any{"b": []any{float64(1)}}},
			found:    true,
		},
		{
			name:     "braces inside string literals are ignored",
			input:    `{"script": "d = {1: 2}"}`,
			expected: map[string]any{"script": "d = {1: 2}"},
			found:    true,
		},
		{
			name:     "bracket inside single quoted text is ignored",
			input:    `note: 'skip this }' then {"k": 1}`,
			expected: map[string]any{"k": float64(1)},
			found:    true,
		},
		{
			name:     "escaped quote does not end the string",
			input:    `{"msg": "say \"}\" loudly"}`,
			expected: map[string]any{"msg": `say "}" loudly`},
			found:    true,
		},
		{
			name:     "first invalid span is skipped for a later valid one",
			input:    `{'k': 1} then {"k": 2}`,
			expected: map[string]any{"k": float64(2)},
			found:    true,
		},
		{
			name:  "unbalanced open brace",
			input: `{"k": 1`,
			found: false,
		},
		{
			name:  "stray close brace only",
			input: `} nothing here`,
			found: false,
		},
		{
			name:  "no brackets at all",
			input: `plain prose`,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := firstBalancedJSON(tt.input)
			if !tt.found {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}
