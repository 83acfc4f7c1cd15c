package resolve

import (
	"regexp"
	"strings"

	"github.com/robustcall/mcall"
	"gopkg.in/yaml.v3"
)

// fenceRE matches a leading triple-backtick fence with an optional
// language tag: ```lang\n body \n```.
var fenceRE = regexp.MustCompile("(?s)^\\s*```([a-zA-Z0-9_]*)[ \t]*\\n(.*?)\\n```")

// fenceBlock is an extracted code fence. Consumed immediately during
// resolution, never retained.
type fenceBlock struct {
	lang string
	body string
}

// extractFence returns the code fence at the start of text, if any.
// The language tag is lowercased.
func extractFence(text string) (fenceBlock, bool) {
	m := fenceRE.FindStringSubmatch(text)
	if m == nil {
		return fenceBlock{}, false
	}
	return fenceBlock{
		lang: strings.ToLower(strings.TrimSpace(m[1])),
		body: m[2],
	}, true
}

// Language tags whose fence bodies are structured data rather than
// script payloads.
var (
	jsonFenceLangs = map[string]bool{"json": true, "jsonc": true, "javascript": true}
	yamlFenceLangs = map[string]bool{"yaml": true, "yml": true}
)

// stratCodeFence handles input wrapped in a code fence. Structured-data
// language tags re-enter the direct parse on the body; other bodies are
// script payloads for script tools and opaque values otherwise.
func stratCodeFence(r *Resolver, text, tool string) (mcall.Params, bool) {
	fence, ok := extractFence(text)
	if !ok || fence.body == "" {
		return nil, false
	}
	if jsonFenceLangs[fence.lang] {
		if v, ok := tryJSON(fence.body); ok {
			return asParams(v), true
		}
	}
	if yamlFenceLangs[fence.lang] {
		if m, ok := tryYAMLMap(fence.body); ok {
			return m, true
		}
	}
	if r.shapes.IsScriptTool(tool) {
		return mcall.Params{mcall.KeyScript: fence.body}, true
	}
	return mcall.Params{mcall.KeyValue: fence.body}, true
}

// tryYAMLMap parses text as a YAML mapping. Non-mapping YAML (which
// accepts nearly any text as a scalar) is rejected so the strategy does
// not swallow script payloads.
func tryYAMLMap(text string) (mcall.Params, bool) {
	var m map[string]any
	if err := yaml.Unmarshal([]byte(text), &m); err != nil || m == nil {
		return nil, false
	}
	return mcall.Params(m), true
}
