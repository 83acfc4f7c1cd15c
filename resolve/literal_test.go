package resolve

import (
	"testing"

	"github.com/robustcall/mcall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLiteralMap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected mcall.Params
		ok       bool
	}{
		{
			name:     "single quoted map",
			input:    `{'query': 'vectors'}`,
			expected: mcall.Params{"query": "vectors"},
			ok:       true,
		},
		{
			name:     "single quoted value with double quotes inside",
			input:    `{'script': 'print("hi")'}`,
			expected: mcall.Params{"script": `print("hi")`},
			ok:       true,
		},
		{
			name:     "mixed quote styles",
			input:    `{"a": 'x', 'b': "y"}`,
			expected: mcall.Params{"a": "x", "b": "y"},
			ok:       true,
		},
		{
			name:     "keywords in both spellings",
			input:    `{'a': True, 'b': false, 'c': None, 'd': null}`,
			expected: mcall.Params{"a": true, "b": false, "c": nil, "d": nil},
			ok:       true,
		},
		{
			name:     "numbers keep int and float apart",
			input:    `{'n': 12, 'f': -0.5}`,
			expected: mcall.Params{"n": 12, "f": -0.5},
			ok:       true,
		},
		{
			name:     "nested containers",
			input:    `{'loc': [1, 2, 3], 'meta': {'snap': True}}`,
			expected: mcall.Params{"loc": []any{1, 2, 3}, "meta": map[string]any{"snap": true}},
			ok:       true,
		},
		{
			name:     "trailing commas",
			input:    `{'a': [1, 2,], 'b': 3,}`,
			expected: mcall.Params{"a": []any{1, 2}, "b": 3},
			ok:       true,
		},
		{
			name:     "escapes in strings",
			input:    `{'s': 'line1\nline2\t\'q\''}`,
			expected: mcall.Params{"s": "line1\nline2\t'q'"},
			ok:       true,
		},
		{
			name:     "unknown escape keeps the backslash",
			input:    `{'re': '\d+'}`,
			expected: mcall.Params{"re": `\d+`},
			ok:       true,
		},
		{
			name:     "empty map",
			input:    `{}`,
			expected: mcall.Params{},
			ok:       true,
		},
		{name: "top level list rejected", input: `[1, 2]`},
		{name: "top level scalar rejected", input: `'just a string'`},
		{name: "bare word key rejected", input: `{query: 'vectors'}`},
		{name: "unterminated string", input: `{'a': 'oops}`},
		{name: "trailing garbage rejected", input: `{'a': 1} extra`},
		{name: "function call rejected", input: `{'a': os.system('ls')}`},
		{name: "empty input", input: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, ok := parseLiteralMap(tt.input)
			if !tt.ok {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.expected, params)
		})
	}
}
