package mcall

import "encoding/json"

// Params is the argument mapping sent as a tool call's parameters.
// Values are strings, numbers, booleans, or nested maps/slices of the
// same, mirroring what JSON can carry.
//
// A Params returned by the resolver is the final payload for the tool
// call; callers must not mutate it afterwards.
type Params map[string]any

// Well-known parameter keys the resolver falls back to when the input
// carries no explicit key.
const (
	// KeyValue wraps scalar or otherwise unattributable input.
	KeyValue = "value"

	// KeyScript carries inline script source for script-executing tools.
	KeyScript = "script"

	// KeyPath names a script file to execute instead of inline source.
	KeyPath = "path"
)

// String returns the string value for key, or "" when the key is absent
// or holds a non-string.
func (p Params) String(key string) string {
	s, _ := p[key].(string)
	return s
}

// JSON serializes the params for the wire. Params only ever hold
// JSON-representable values, so this does not fail in practice; on a
// marshal error it returns an empty object.
func (p Params) JSON() json.RawMessage {
	data, err := json.Marshal(p)
	if err != nil {
		return json.RawMessage("{}")
	}
	return data
}
