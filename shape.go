package mcall

// ToolShape describes how a tool expects its arguments: the ordered
// positional parameter names used when input carries no explicit key,
// and whether the tool executes scripts (which unlocks the script
// fallbacks in the resolver and flag parser).
type ToolShape struct {
	// Name is the tool's identifier as registered on the MCP server.
	Name string

	// Positional lists expected parameter names in order. The first
	// entry receives bare positional values.
	Positional []string

	// Script marks script-executing tools.
	Script bool
}

// ShapeTable is a read-only registry of tool shapes keyed by tool name.
// Construct it once at startup with [NewShapeTable]; it is safe for
// concurrent use across resolve calls.
type ShapeTable struct {
	shapes map[string]ToolShape
}

// NewShapeTable builds an immutable table from the given shapes. The
// slices are copied, so callers may reuse their inputs freely.
func NewShapeTable(shapes ...ToolShape) *ShapeTable {
	m := make(map[string]ToolShape, len(shapes))
	for _, s := range shapes {
		s.Positional = append([]string(nil), s.Positional...)
		m[s.Name] = s
	}
	return &ShapeTable{shapes: m}
}

// Shape returns the shape for the named tool.
func (t *ShapeTable) Shape(tool string) (ToolShape, bool) {
	if t == nil {
		return ToolShape{}, false
	}
	s, ok := t.shapes[tool]
	return s, ok
}

// FirstPositional returns the name of the tool's first expected
// positional parameter, or "" when the tool is unknown or takes none.
func (t *ShapeTable) FirstPositional(tool string) string {
	s, ok := t.Shape(tool)
	if !ok || len(s.Positional) == 0 {
		return ""
	}
	return s.Positional[0]
}

// IsScriptTool reports whether the named tool executes scripts.
func (t *ShapeTable) IsScriptTool(tool string) bool {
	s, ok := t.Shape(tool)
	return ok && s.Script
}

// Names returns the registered tool names in unspecified order.
func (t *ShapeTable) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.shapes))
	for name := range t.shapes {
		names = append(names, name)
	}
	return names
}

// DefaultShapes returns the shape table for the stock tool set.
func DefaultShapes() *ShapeTable {
	return NewShapeTable(
		ToolShape{Name: "api_doc_query", Positional: []string{"query"}},
		ToolShape{Name: "execute_python_script", Positional: []string{"script", "path"}, Script: true},
		ToolShape{Name: "list_python_scripts"},
		ToolShape{Name: "get_camera_0_view"},
		ToolShape{Name: "move_camera", Positional: []string{"location", "rotation"}},
	)
}
