package resolve

import (
	"regexp"
	"strings"

	"github.com/robustcall/mcall"
)

var (
	pathKVRE   = regexp.MustCompile(`\bpath\s*=\s*(\S+)`)
	scriptKVRE = regexp.MustCompile(`(?s)\bscript\s*=\s*(.+)$`)

	// brokenScriptRE recognizes the right-hand side of a structured
	// literal that lost its braces, e.g. `"script": "print('hi')"`.
	brokenScriptRE = regexp.MustCompile(`(?s)"script"\s*:\s*"(.*)"\s*$`)
)

// scriptFileExtensions mark input that names a script file rather than
// carrying inline source.
var scriptFileExtensions = []string{".py"}

// stratKeyValue handles the degenerate path=... and script=... forms.
// A script remainder may itself be fenced; otherwise one layer of outer
// quotes is stripped.
func stratKeyValue(r *Resolver, text, tool string) (mcall.Params, bool) {
	if m := pathKVRE.FindStringSubmatch(text); m != nil {
		return mcall.Params{mcall.KeyPath: stripOuterQuotes(m[1])}, true
	}
	if m := scriptKVRE.FindStringSubmatch(text); m != nil {
		body := strings.TrimSpace(m[1])
		if fence, ok := extractFence(body); ok && fence.body != "" {
			return mcall.Params{mcall.KeyScript: fence.body}, true
		}
		return mcall.Params{mcall.KeyScript: stripOuterQuotes(body)}, true
	}
	return nil, false
}

// stratPathSuffix guesses that text ending in a script-file extension
// names a path. Existence is deliberately not checked here.
func stratPathSuffix(r *Resolver, text, tool string) (mcall.Params, bool) {
	trimmed := strings.TrimSpace(text)
	for _, ext := range scriptFileExtensions {
		if strings.HasSuffix(trimmed, ext) {
			return mcall.Params{mcall.KeyPath: trimmed}, true
		}
	}
	return nil, false
}

// stratScriptPayload treats the whole text as an inline script for
// script-executing tools. A fragment that looks like a broken
// `"script": "..."` literal contributes just its content; escapes are
// restored either way.
func stratScriptPayload(r *Resolver, text, tool string) (mcall.Params, bool) {
	if !r.shapes.IsScriptTool(tool) {
		return nil, false
	}
	s := stripOuterQuotes(text)
	if m := brokenScriptRE.FindStringSubmatch(s); m != nil {
		return mcall.Params{mcall.KeyScript: RestoreEscapes(m[1])}, true
	}
	return mcall.Params{mcall.KeyScript: RestoreEscapes(s)}, true
}
