package mcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeTable_Lookup(t *testing.T) {
	table := NewShapeTable(
		ToolShape{Name: "move_camera", Positional: []string{"location", "rotation"}},
		ToolShape{Name: "run_script", Positional: []string{"script"}, Script: true},
		ToolShape{Name: "ping"},
	)

	s, ok := table.Shape("move_camera")
	require.True(t, ok)
	assert.Equal(t, []string{"location", "rotation"}, s.Positional)
	assert.False(t, s.Script)

	_, ok = table.Shape("unknown")
	assert.False(t, ok)

	assert.Equal(t, "location", table.FirstPositional("move_camera"))
	assert.Equal(t, "", table.FirstPositional("ping"))
	assert.Equal(t, "", table.FirstPositional("unknown"))

	assert.True(t, table.IsScriptTool("run_script"))
	assert.False(t, table.IsScriptTool("move_camera"))
	assert.False(t, table.IsScriptTool("unknown"))

	assert.ElementsMatch(t, []string{"move_camera", "run_script", "ping"}, table.Names())
}

func TestShapeTable_CopiesInput(t *testing.T) {
	positional := []string{"query"}
	table := NewShapeTable(ToolShape{Name: "search", Positional: positional})

	positional[0] = "mutated"

	assert.Equal(t, "query", table.FirstPositional("search"))
}

func TestShapeTable_NilSafe(t *testing.T) {
	var table *ShapeTable

	_, ok := table.Shape("anything")
	assert.False(t, ok)
	assert.Equal(t, "", table.FirstPositional("anything"))
	assert.False(t, table.IsScriptTool("anything"))
	assert.Nil(t, table.Names())
}

func TestDefaultShapes(t *testing.T) {
	table := DefaultShapes()

	assert.True(t, table.IsScriptTool("execute_python_script"))
	assert.Equal(t, "script", table.FirstPositional("execute_python_script"))
	assert.Equal(t, "query", table.FirstPositional("api_doc_query"))
	assert.Equal(t, "", table.FirstPositional("get_camera_0_view"))
	assert.Len(t, table.Names(), 5)
}
