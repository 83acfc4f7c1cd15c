package mcp

import (
	"github.com/robustcall/mcall"
	"github.com/robustcall/mcall/schema"
)

// Shapes derives a shape table from a server's tool catalog. Positional
// parameter order follows each input schema's property declaration
// order, and tools whose schema declares a "script" property are
// treated as script-executing.
func Shapes(tools []Tool) *mcall.ShapeTable {
	shapes := make([]mcall.ToolShape, 0, len(tools))
	for _, tool := range tools {
		order := schema.PropertyOrder(tool.InputSchema)
		shape := mcall.ToolShape{Name: tool.Name, Positional: order}
		for _, name := range order {
			if name == mcall.KeyScript {
				shape.Script = true
				break
			}
		}
		shapes = append(shapes, shape)
	}
	return mcall.NewShapeTable(shapes...)
}
