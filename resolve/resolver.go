package resolve

import (
	"encoding/json"
	"strings"

	"github.com/robustcall/mcall"
)

// Resolver converts argument text into a parameter map using the layered
// strategy chain described in the package documentation.
//
// A Resolver is cheap, stateless, and safe for concurrent use. The only
// configuration is the [mcall.ShapeTable], which supplies positional
// parameter names and marks script-executing tools.
type Resolver struct {
	shapes *mcall.ShapeTable
}

// NewResolver creates a Resolver backed by [mcall.DefaultShapes].
func NewResolver() *Resolver {
	return &Resolver{shapes: mcall.DefaultShapes()}
}

// WithShapes replaces the shape table. Returns the resolver for chaining.
func (r *Resolver) WithShapes(shapes *mcall.ShapeTable) *Resolver {
	r.shapes = shapes
	return r
}

// Shapes returns the resolver's shape table.
func (r *Resolver) Shapes() *mcall.ShapeTable {
	return r.shapes
}

// strategy is one attempt in the resolution chain: a named, independent
// extractor that either claims the input or passes.
type strategy struct {
	name string
	try  func(r *Resolver, text, tool string) (mcall.Params, bool)
}

// strategies is the resolution chain, tried strictly in order. The
// first strategy to produce a Params wins; the terminal value fallback
// lives in Resolve itself so the chain can never come up empty.
var strategies = []strategy{
	{"direct-json", stratDirectJSON},
	{"code-fence", stratCodeFence},
	{"balanced-brackets", stratBalancedBrackets},
	{"literal-map", stratLiteralMap},
	{"url-decode", stratURLDecode},
	{"base64", stratBase64},
	{"key-value", stratKeyValue},
	{"path-suffix", stratPathSuffix},
	{"script-payload", stratScriptPayload},
}

// Resolve parses text into the parameter map for a call to tool.
//
// Resolve never fails: any input that defeats every strategy is wrapped
// as {"value": text}, and empty or whitespace-only input yields an
// empty map. The returned map must not be mutated.
func (r *Resolver) Resolve(text, tool string) mcall.Params {
	params, _ := r.ResolveStrategy(text, tool)
	return params
}

// ResolveStrategy is Resolve plus the name of the strategy that claimed
// the input ("fallback" for the terminal wrap, "" for empty input).
func (r *Resolver) ResolveStrategy(text, tool string) (mcall.Params, string) {
	s := Normalize(text)
	if s == "" {
		return mcall.Params{}, ""
	}
	for _, strat := range strategies {
		if params, ok := strat.try(r, s, tool); ok {
			return params, strat.name
		}
	}
	return mcall.Params{mcall.KeyValue: s}, "fallback"
}

// ResolveCommandLine resolves an argument string typed on a command
// line. Flag-formatted input (leading --) goes through [Resolver.ParseFlags];
// valid JSON is taken directly, unwrapping the legacy
// {"type": ..., "params": {...}} envelope some callers still emit;
// anything else runs through the full strategy chain.
func (r *Resolver) ResolveCommandLine(tool, args string) mcall.Params {
	trimmed := strings.TrimSpace(args)
	if trimmed == "" {
		return mcall.Params{}
	}
	if v, ok := tryJSON(trimmed); ok {
		if m, isMap := v.(map[string]any); isMap {
			return unwrapEnvelope(m)
		}
		return mcall.Params{mcall.KeyValue: v}
	}
	if strings.HasPrefix(trimmed, "--") {
		return r.ParseFlags(tool, args)
	}
	return r.Resolve(args, tool)
}

// tryJSON parses text as a single JSON value.
func tryJSON(text string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, false
	}
	return v, true
}

// asParams wraps a parsed structured value: mappings pass through,
// scalars and arrays are wrapped under "value".
func asParams(v any) mcall.Params {
	if m, ok := v.(map[string]any); ok {
		return mcall.Params(m)
	}
	return mcall.Params{mcall.KeyValue: v}
}

// unwrapEnvelope unwraps the nested {"type": ..., "params": {...}}
// envelope some callers wrap around their arguments.
func unwrapEnvelope(m map[string]any) mcall.Params {
	if _, hasType := m["type"]; hasType {
		if p, ok := m["params"].(map[string]any); ok {
			m = p
		}
	}
	return mcall.Params(m)
}

// stratDirectJSON attempts to parse the whole text as a JSON value.
// When the first attempt fails it retries once with one level of shell
// double-escaping collapsed; a script field recovered that way gets its
// remaining escapes restored too.
func stratDirectJSON(r *Resolver, text, tool string) (mcall.Params, bool) {
	if v, ok := tryJSON(text); ok {
		return asParams(v), true
	}
	relaxed := collapseDoubledEscapes(text)
	if relaxed == text {
		return nil, false
	}
	v, ok := tryJSON(relaxed)
	if !ok {
		return nil, false
	}
	if m, isMap := v.(map[string]any); isMap {
		if script, has := m[mcall.KeyScript].(string); has {
			m[mcall.KeyScript] = RestoreEscapes(script)
		}
	}
	return asParams(v), true
}

// stratBalancedBrackets recovers a JSON object or array embedded in
// surrounding prose or log output.
func stratBalancedBrackets(r *Resolver, text, tool string) (mcall.Params, bool) {
	v, ok := firstBalancedJSON(text)
	if !ok {
		return nil, false
	}
	return asParams(v), true
}

// stratLiteralMap parses source-literal mapping syntax, covering
// single-quoted dictionaries that are not valid JSON.
func stratLiteralMap(r *Resolver, text, tool string) (mcall.Params, bool) {
	return parseLiteralMap(text)
}
