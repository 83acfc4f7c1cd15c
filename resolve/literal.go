package resolve

import (
	"errors"
	"strconv"
	"strings"

	"github.com/robustcall/mcall"
)

// parseLiteralMap parses text as a restricted source-literal expression:
// mappings, sequences, single- or double-quoted strings, numbers,
// booleans, and null/None. It accepts the single-quoted dictionary
// syntax that JSON rejects, e.g. {'script': 'print("hi")'}.
//
// This is a closed grammar, not an evaluator: nothing in the input can
// trigger execution. Only a top-level mapping is accepted.
func parseLiteralMap(text string) (mcall.Params, bool) {
	p := &literalParser{input: text}
	v, err := p.parseValue()
	if err != nil {
		return nil, false
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return mcall.Params(m), true
}

var errBadLiteral = errors.New("malformed literal")

type literalParser struct {
	input string
	pos   int
}

func (p *literalParser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *literalParser) peek() (byte, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *literalParser) parseValue() (any, error) {
	p.skipSpace()
	ch, ok := p.peek()
	if !ok {
		return nil, errBadLiteral
	}
	switch {
	case ch == '{':
		return p.parseMap()
	case ch == '[':
		return p.parseList()
	case ch == '\'' || ch == '"':
		return p.parseString()
	case ch == '-' || (ch >= '0' && ch <= '9'):
		return p.parseNumber()
	default:
		return p.parseKeyword()
	}
}

func (p *literalParser) parseMap() (map[string]any, error) {
	p.pos++ // consume '{'
	m := make(map[string]any)
	p.skipSpace()
	if ch, ok := p.peek(); ok && ch == '}' {
		p.pos++
		return m, nil
	}
	for {
		p.skipSpace()
		ch, ok := p.peek()
		if !ok || (ch != '\'' && ch != '"') {
			return nil, errBadLiteral
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if ch, ok := p.peek(); !ok || ch != ':' {
			return nil, errBadLiteral
		}
		p.pos++
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		m[key] = val

		p.skipSpace()
		ch, ok = p.peek()
		switch {
		case !ok:
			return nil, errBadLiteral
		case ch == ',':
			p.pos++
			p.skipSpace()
			// trailing comma
			if ch, ok := p.peek(); ok && ch == '}' {
				p.pos++
				return m, nil
			}
		case ch == '}':
			p.pos++
			return m, nil
		default:
			return nil, errBadLiteral
		}
	}
}

func (p *literalParser) parseList() ([]any, error) {
	p.pos++ // consume '['
	list := make([]any, 0)
	p.skipSpace()
	if ch, ok := p.peek(); ok && ch == ']' {
		p.pos++
		return list, nil
	}
	for {
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		list = append(list, val)

		p.skipSpace()
		ch, ok := p.peek()
		switch {
		case !ok:
			return nil, errBadLiteral
		case ch == ',':
			p.pos++
			p.skipSpace()
			if ch, ok := p.peek(); ok && ch == ']' {
				p.pos++
				return list, nil
			}
		case ch == ']':
			p.pos++
			return list, nil
		default:
			return nil, errBadLiteral
		}
	}
}

// parseString consumes a quoted string, honoring the usual backslash
// escapes. Unknown escapes keep the backslash, matching source-literal
// behavior closely enough for argument payloads.
func (p *literalParser) parseString() (string, error) {
	quote := p.input[p.pos]
	p.pos++
	var sb strings.Builder
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		switch ch {
		case quote:
			p.pos++
			return sb.String(), nil
		case '\\':
			if p.pos+1 >= len(p.input) {
				return "", errBadLiteral
			}
			p.pos++
			switch esc := p.input[p.pos]; esc {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\', '\'', '"':
				sb.WriteByte(esc)
			default:
				sb.WriteByte('\\')
				sb.WriteByte(esc)
			}
			p.pos++
		default:
			sb.WriteByte(ch)
			p.pos++
		}
	}
	return "", errBadLiteral
}

func (p *literalParser) parseNumber() (any, error) {
	start := p.pos
	if p.input[p.pos] == '-' {
		p.pos++
	}
	isFloat := false
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch >= '0' && ch <= '9' {
			p.pos++
			continue
		}
		if ch == '.' || ch == 'e' || ch == 'E' || ch == '+' || ch == '-' {
			// exponent signs only follow e/E, but a failed ParseFloat
			// rejects the rest
			isFloat = true
			p.pos++
			continue
		}
		break
	}
	token := p.input[start:p.pos]
	if !isFloat {
		if n, err := strconv.Atoi(token); err == nil {
			return n, nil
		}
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, errBadLiteral
	}
	return f, nil
}

func (p *literalParser) parseKeyword() (any, error) {
	rest := p.input[p.pos:]
	for kw, v := range literalKeywords {
		if strings.HasPrefix(rest, kw) {
			p.pos += len(kw)
			return v, nil
		}
	}
	return nil, errBadLiteral
}

// literalKeywords covers both source-literal and JSON spellings.
var literalKeywords = map[string]any{
	"True":  true,
	"False": false,
	"None":  nil,
	"true":  true,
	"false": false,
	"null":  nil,
}
