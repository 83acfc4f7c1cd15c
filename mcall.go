// Package mcall provides best-effort resolution of tool-call arguments
// for MCP (Model Context Protocol) tools.
//
// The argument strings this library deals with come from command lines,
// shell wrappers, and model output, and are frequently not the clean JSON
// object a tool expects: they arrive wrapped in code fences, embedded in
// log noise, single-quoted like a source literal, URL- or base64-encoded,
// double-escaped by an intermediate shell, or degenerated into bare
// key=value fragments. The resolve package turns any such string into a
// parameter map without ever failing; this package holds the shared types.
//
// # Quick Start
//
//	r := resolve.NewResolver()
//	params := r.Resolve(`noise line
//	{"path": "test.py"}`, "execute_python_script")
//	// params = mcall.Params{"path": "test.py"}
//
// The resulting [Params] is handed as-is to the MCP client
// (see the mcp package) which serializes it onto the wire:
//
//	client.CallTool(ctx, "execute_python_script", params)
//
// # Tool Shapes
//
// A [ShapeTable] describes, per tool, the ordered positional parameter
// names used when an argument carries no explicit key, and which tools
// execute scripts (those get the script-payload fallbacks). The table is
// immutable after construction and safe for concurrent reuse:
//
//	shapes := mcall.NewShapeTable(
//	    mcall.ToolShape{Name: "api_doc_query", Positional: []string{"query"}},
//	    mcall.ToolShape{Name: "execute_python_script", Positional: []string{"script", "path"}, Script: true},
//	)
//	r := resolve.NewResolver().WithShapes(shapes)
//
// [DefaultShapes] returns the table for the stock tool set.
package mcall
