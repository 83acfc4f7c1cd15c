package mcall

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_String(t *testing.T) {
	p := Params{"query": "vectors", "count": 3}

	assert.Equal(t, "vectors", p.String("query"))
	assert.Equal(t, "", p.String("count"))
	assert.Equal(t, "", p.String("missing"))
}

func TestParams_JSON(t *testing.T) {
	p := Params{"script": "print('hi')", "count": 3, "snap": true}

	var back map[string]any
	require.NoError(t, json.Unmarshal(p.JSON(), &back))
	assert.Equal(t, map[string]any{
		"script": "print('hi')",
		"count":  float64(3),
		"snap":   true,
	}, back)
}

func TestParams_JSONEmpty(t *testing.T) {
	assert.JSONEq(t, `{}`, string(Params{}.JSON()))
}
