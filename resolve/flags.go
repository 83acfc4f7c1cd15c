package resolve

import (
	"errors"
	"os"
	"regexp"
	"strings"

	"github.com/robustcall/mcall"
)

var errUnbalancedQuote = errors.New("unbalanced quote in argument string")

// Script-tool shorthands recognized on the raw argument string, before
// tokenization.
var (
	catFlagRE    = regexp.MustCompile(`--script=["']?\$\(cat\s+([^)]+)\)["']?`)
	pathFlagRE   = regexp.MustCompile(`--path=["']?([^"\s]+)["']?`)
	scriptFlagRE = regexp.MustCompile(`(?s)--script=["']?(.*?)["']?$`)
)

// ParseFlags parses a command-line style argument string for tool.
//
// Tokens are split respecting quoting; each token is then one of
// --name=value, --name followed by its value, a bare --name boolean,
// or a positional value assigned to the tool's first expected
// parameter (unknown tools drop positionals). Values go through the
// coercion ladder.
//
// For script-executing tools, three shapes short-circuit generic
// parsing: --script="$(cat file)" reads the file (a missing file
// degrades to a placeholder comment), --path="file" selects a script
// file, and --script="code" carries inline source with escapes
// restored.
//
// When tokenization itself fails on unbalanced quotes, the entire raw
// string is handed to the tool's first expected parameter.
func (r *Resolver) ParseFlags(tool, args string) mcall.Params {
	if strings.TrimSpace(args) == "" {
		return mcall.Params{}
	}

	if r.shapes.IsScriptTool(tool) {
		if params, ok := parseScriptShorthand(args); ok {
			return params
		}
	}

	tokens, err := tokenize(args)
	if err != nil {
		value := strings.TrimSpace(args)
		if first := r.shapes.FirstPositional(tool); first != "" {
			return mcall.Params{first: value}
		}
		return mcall.Params{mcall.KeyValue: value}
	}

	params := mcall.Params{}
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !strings.HasPrefix(tok, "--") {
			if first := r.shapes.FirstPositional(tool); first != "" {
				params[first] = coerceValue(tok)
			}
			continue
		}
		name := tok[2:]
		if eq := strings.Index(name, "="); eq >= 0 {
			params[name[:eq]] = coerceValue(name[eq+1:])
			continue
		}
		if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "--") {
			i++
			params[name] = coerceValue(tokens[i])
			continue
		}
		params[name] = true
	}
	return params
}

// parseScriptShorthand applies the script-tool special cases to the raw
// argument string.
func parseScriptShorthand(args string) (mcall.Params, bool) {
	if m := catFlagRE.FindStringSubmatch(args); m != nil {
		name := strings.Trim(strings.TrimSpace(m[1]), `"'`)
		content, err := os.ReadFile(name)
		if err != nil {
			return mcall.Params{mcall.KeyScript: "# File not found: " + name}, true
		}
		return mcall.Params{mcall.KeyScript: string(content)}, true
	}
	if m := pathFlagRE.FindStringSubmatch(args); m != nil {
		return mcall.Params{mcall.KeyPath: m[1]}, true
	}
	if m := scriptFlagRE.FindStringSubmatch(args); m != nil {
		script := stripOuterQuotes(m[1])
		return mcall.Params{mcall.KeyScript: RestoreEscapes(script)}, true
	}
	return nil, false
}

// tokenize splits an argument string into tokens: maximal runs of
// non-whitespace, with quoted spans kept as one token regardless of
// internal whitespace. Backslash escapes work outside quotes and inside
// double quotes; single quotes are literal. An unterminated quote is an
// error.
func tokenize(s string) ([]string, error) {
	var tokens []string
	var cur strings.Builder
	state := scanOutside
	escaped := false
	inToken := false

	flush := func() {
		if inToken {
			tokens = append(tokens, cur.String())
			cur.Reset()
			inToken = false
		}
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch state {
		case scanOutside:
			switch {
			case ch == '\'':
				state = scanInSingle
				inToken = true
			case ch == '"':
				state = scanInDouble
				inToken = true
			case ch == '\\' && i+1 < len(s):
				i++
				cur.WriteByte(s[i])
				inToken = true
			case ch == ' ' || ch == '\t' || ch == '\n':
				flush()
			default:
				cur.WriteByte(ch)
				inToken = true
			}
		case scanInSingle:
			if ch == '\'' {
				state = scanOutside
			} else {
				cur.WriteByte(ch)
			}
		case scanInDouble:
			switch {
			case escaped:
				if ch != '"' && ch != '\\' {
					cur.WriteByte('\\')
				}
				cur.WriteByte(ch)
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				state = scanOutside
			default:
				cur.WriteByte(ch)
			}
		}
	}
	if state != scanOutside {
		return nil, errUnbalancedQuote
	}
	flush()
	return tokens, nil
}
