// Package resolve turns unreliable tool-call argument text into a
// parameter map, without ever failing.
//
// # Overview
//
// Argument strings reach an MCP tool call from command lines, shell
// wrappers, and model output. In practice they are often not the JSON
// object the tool expects: the payload shows up inside a code fence,
// buried in log noise, quoted like a source literal, URL- or
// base64-encoded, double-escaped by a shell, or collapsed into a bare
// key=value fragment. This package recovers a usable parameter map from
// all of those shapes with a fixed-priority chain of independent
// extraction strategies:
//
//  1. Direct JSON parse (with a relaxed retry for shell double-escaping)
//  2. Code fence extraction (structured languages re-enter step 1)
//  3. Balanced-bracket extraction from surrounding prose, quote-aware
//  4. Restricted source-literal map parse (single-quoted dicts)
//  5. URL-decode and base64 retries of step 1
//  6. path=/script= key-value degeneration
//  7. Script-file path suffix heuristic
//  8. Script-payload fallback for script-executing tools
//  9. Terminal fallback: {"value": text}
//
// The first strategy to produce a map wins. Ambiguity is broken purely
// by this order; no strategy understands the input semantically. There
// is no error path: malformed input degrades to step 9, and only empty
// input yields an empty map.
//
// # Usage
//
//	r := resolve.NewResolver()
//	params := r.Resolve("```json\n{\"a\": 1}\n```", "api_doc_query")
//	// params = mcall.Params{"a": float64(1)}
//
// For text typed on a command line, [Resolver.ResolveCommandLine] also
// recognizes --flag formatted input and routes it through
// [Resolver.ParseFlags].
//
// All entry points are pure apart from the --script="$(cat file)"
// shorthand, which reads the named file. Nothing here writes, nothing
// holds state between calls, and everything is safe for concurrent use.
package resolve
