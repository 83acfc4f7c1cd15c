package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestoreEscapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "no escapes untouched",
			input:    "print('hi')",
			expected: "print('hi')",
		},
		{
			name:     "newline and tab",
			input:    `line1\nline2\tend`,
			expected: "line1\nline2\tend",
		},
		{
			name:     "carriage return",
			input:    `a\rb`,
			expected: "a\rb",
		},
		{
			name:     "escaped quotes",
			input:    `print(\"hi\") and \'single\'`,
			expected: `print("hi") and 'single'`,
		},
		{
			name:     "escaped backslash collapses last",
			input:    `col\\umn\\sep`,
			expected: `col\umn\sep`,
		},
		{
			// Documented lossy case: a double backslash before n is
			// read as a twice-escaped newline.
			name:     "double backslash before n is ambiguous",
			input:    `dir\\name`,
			expected: "dir\name",
		},
		{
			name:     "double escaped newline",
			input:    `line1\\nline2`,
			expected: "line1\nline2",
		},
		{
			name:     "double escaped quote",
			input:    `print(\\"hi\\")`,
			expected: `print("hi")`,
		},
		{
			name:     "mixed script payload",
			input:    `import os\nprint(\"cwd:\", os.getcwd())`,
			expected: "import os\nprint(\"cwd:\", os.getcwd())",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RestoreEscapes(tt.input))
		})
	}
}

// Restoring twice changes nothing once the input carries no further
// nesting.
func TestRestoreEscapes_Fixpoint(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		`line1\nline2`,
		`print(\"hi\")`,
		"already\nrestored\ttext",
	}
	for _, input := range inputs {
		once := RestoreEscapes(input)
		assert.Equal(t, once, RestoreEscapes(once), "input %q", input)
	}
}
