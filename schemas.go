package mcall

import "github.com/robustcall/mcall/schema"

// DefaultInputSchemas returns compiled input schemas for the same stock
// tools covered by [DefaultShapes]. They let argument validation run
// without a live server, when tools/list is unavailable or returned no
// schemas.
func DefaultInputSchemas() map[string]*schema.Schema {
	number := map[string]any{"type": "number"}
	return map[string]*schema.Schema{
		"api_doc_query": schema.MustCompile(schema.Object(map[string]*schema.Property{
			"query": schema.String("API documentation query"),
		}, "query")),
		"execute_python_script": schema.MustCompile(schema.Object(map[string]*schema.Property{
			"script": schema.String("Inline Python source to execute"),
			"path":   schema.String("Path to a script file to execute"),
		})),
		"list_python_scripts": schema.MustCompile(schema.Object(nil)),
		"get_camera_0_view":   schema.MustCompile(schema.Object(nil)),
		"move_camera": schema.MustCompile(schema.Object(map[string]*schema.Property{
			"location": schema.Array("Camera location as [x, y, z]", number),
			"rotation": schema.Array("Camera rotation as [pitch, yaw, roll]", number),
		}, "location", "rotation")),
	}
}
