package resolve

import "strings"

// doubledEscapes collapse one level of shell double-escaping (\\n -> \n
// at the two-character level) before the main pass. This is inherently
// ambiguous: a legitimate double backslash followed by n is
// indistinguishable from a twice-escaped newline, so the transformation
// is lossy for payloads that mean their double backslashes.
var doubledEscapes = [...][2]string{
	{`\\n`, `\n`},
	{`\\t`, `\t`},
	{`\\r`, `\r`},
	{`\\"`, `\"`},
}

// escapeReplacements are applied in order over the whole text. The
// backslash collapse must run last so the two-character sequences above
// it are still intact when their own substitutions look for them.
var escapeReplacements = [...][2]string{
	{`\n`, "\n"},
	{`\t`, "\t"},
	{`\r`, "\r"},
	{`\"`, `"`},
	{`\'`, "'"},
	{`\\`, `\`},
}

// collapseDoubledEscapes undoes one level of shell double-escaping.
func collapseDoubledEscapes(text string) string {
	for _, r := range doubledEscapes {
		text = strings.ReplaceAll(text, r[0], r[1])
	}
	return text
}

// RestoreEscapes converts literal escape sequences in text back into
// the characters they denote: \n, \t, \r, escaped quotes, and finally
// escaped backslashes, preceded by the doubled-escape pre-pass.
//
// This is a heuristic for text that passed through one shell or JSON
// layer too many, not an escape grammar: numeric and unicode escape
// codes are left alone, and the doubled-backslash handling is lossy
// (see [collapseDoubledEscapes]). Applying it twice is a no-op once the
// input carries no further nesting.
func RestoreEscapes(text string) string {
	if text == "" {
		return text
	}
	text = collapseDoubledEscapes(text)
	for _, r := range escapeReplacements {
		text = strings.ReplaceAll(text, r[0], r[1])
	}
	return text
}
