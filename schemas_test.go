package mcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInputSchemas_CoverDefaultShapes(t *testing.T) {
	schemas := DefaultInputSchemas()
	for _, name := range DefaultShapes().Names() {
		assert.Contains(t, schemas, name)
	}
}

func TestDefaultInputSchemas_Validate(t *testing.T) {
	schemas := DefaultInputSchemas()

	tests := []struct {
		name    string
		tool    string
		params  Params
		wantErr bool
	}{
		{
			name:   "query accepted",
			tool:   "api_doc_query",
			params: Params{"query": "FVector"},
		},
		{
			name:    "query required",
			tool:    "api_doc_query",
			params:  Params{},
			wantErr: true,
		},
		{
			name:    "query must be a string",
			tool:    "api_doc_query",
			params:  Params{"query": 42},
			wantErr: true,
		},
		{
			name:   "inline script accepted",
			tool:   "execute_python_script",
			params: Params{"script": "print('hi')"},
		},
		{
			name:   "script path accepted",
			tool:   "execute_python_script",
			params: Params{"path": "scripts/setup.py"},
		},
		{
			name:   "empty params for bare tool",
			tool:   "get_camera_0_view",
			params: Params{},
		},
		{
			name: "camera move with integer coordinates",
			tool: "move_camera",
			params: Params{
				"location": []any{0, 100, 50},
				"rotation": []any{0.0, 90.0, 0.0},
			},
		},
		{
			name:    "camera move missing rotation",
			tool:    "move_camera",
			params:  Params{"location": []any{0, 0, 0}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := schemas[tt.tool]
			require.True(t, ok)
			err := s.Validate(tt.params)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
