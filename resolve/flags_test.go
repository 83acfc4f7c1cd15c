package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/robustcall/mcall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Generic(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name     string
		tool     string
		args     string
		expected mcall.Params
	}{
		{
			name:     "name equals value",
			tool:     "api_doc_query",
			args:     `--query="unreal.Vector usage"`,
			expected: mcall.Params{"query": "unreal.Vector usage"},
		},
		{
			name:     "name then value token",
			tool:     "api_doc_query",
			args:     `--query vectors`,
			expected: mcall.Params{"query": "vectors"},
		},
		{
			name:     "bare flag is boolean",
			tool:     "api_doc_query",
			args:     `--query q --verbose`,
			expected: mcall.Params{"query": "q", "verbose": true},
		},
		{
			name:     "flag followed by flag is boolean",
			tool:     "api_doc_query",
			args:     `--verbose --query q`,
			expected: mcall.Params{"verbose": true, "query": "q"},
		},
		{
			name:     "values are coerced",
			tool:     "move_camera",
			args:     `--location=12 --rotation=-0.5 --snap=true`,
			expected: mcall.Params{"location": 12, "rotation": -0.5, "snap": true},
		},
		{
			name:     "positional goes to first expected parameter",
			tool:     "api_doc_query",
			args:     `"unreal.Vector usage"`,
			expected: mcall.Params{"query": "unreal.Vector usage"},
		},
		{
			name:     "positional dropped for unknown tool",
			tool:     "mystery_tool",
			args:     `loose token`,
			expected: mcall.Params{},
		},
		{
			name:     "empty args",
			tool:     "api_doc_query",
			args:     "  ",
			expected: mcall.Params{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.ParseFlags(tt.tool, tt.args))
		})
	}
}

func TestParseFlags_UnbalancedQuotes(t *testing.T) {
	r := NewResolver()

	// Unbalanced quoting hands the raw string to the first expected
	// parameter.
	params := r.ParseFlags("api_doc_query", `--query="oops`)
	assert.Equal(t, mcall.Params{"query": `--query="oops`}, params)

	// Tools without positional parameters fall back to "value".
	params = r.ParseFlags("get_camera_0_view", `"oops`)
	assert.Equal(t, mcall.Params{"value": `"oops`}, params)
}

func TestParseFlags_ScriptShorthand(t *testing.T) {
	r := NewResolver()

	t.Run("inline script", func(t *testing.T) {
		params := r.ParseFlags(scriptTool, `--script="print('hello world')"`)
		assert.Equal(t, mcall.Params{"script": "print('hello world')"}, params)
	})

	t.Run("inline script with escapes", func(t *testing.T) {
		params := r.ParseFlags(scriptTool, `--script="import os\nprint(os.getcwd())"`)
		assert.Equal(t, mcall.Params{"script": "import os\nprint(os.getcwd())"}, params)
	})

	t.Run("path shorthand", func(t *testing.T) {
		params := r.ParseFlags(scriptTool, `--path="test.py"`)
		assert.Equal(t, mcall.Params{"path": "test.py"}, params)
	})

	t.Run("cat shorthand reads file", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "record_camera.py")
		require.NoError(t, os.WriteFile(file, []byte("print('recording')\n"), 0o644))

		params := r.ParseFlags(scriptTool, `--script="$(cat `+file+`)"`)
		assert.Equal(t, mcall.Params{"script": "print('recording')\n"}, params)
	})

	t.Run("cat shorthand missing file yields placeholder", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "missing.py")
		params := r.ParseFlags(scriptTool, `--script="$(cat `+file+`)"`)
		assert.Equal(t, mcall.Params{"script": "# File not found: " + file}, params)
	})
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
		wantErr  bool
	}{
		{
			name:     "simple split",
			input:    "a b  c",
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "double quoted span",
			input:    `--query="two words" tail`,
			expected: []string{"--query=two words", "tail"},
		},
		{
			name:     "single quoted span",
			input:    `'it is' fine`,
			expected: []string{"it is", "fine"},
		},
		{
			name:     "escaped space outside quotes",
			input:    `one\ token two`,
			expected: []string{"one token", "two"},
		},
		{
			name:     "escaped quote inside double quotes",
			input:    `"say \"hi\""`,
			expected: []string{`say "hi"`},
		},
		{
			name:     "empty quoted token",
			input:    `"" b`,
			expected: []string{"", "b"},
		},
		{
			name:    "unterminated double quote",
			input:   `"oops`,
			wantErr: true,
		},
		{
			name:    "unterminated single quote",
			input:   `it's fine`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := tokenize(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}
