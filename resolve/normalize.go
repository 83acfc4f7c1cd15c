package resolve

import "strings"

// zeroWidth lists invisible code points stripped wherever they occur.
// BOMs and zero-width joiners routinely survive copy/paste from chat
// clients and break JSON parsing.
var zeroWidth = []string{
	"\u200b", // zero width space
	"\u200c", // zero width non-joiner
	"\u200d", // zero width joiner
	"\u2060", // word joiner
	"\ufeff", // BOM
}

// smartQuotes maps typographic quote glyphs to their ASCII equivalents.
var smartQuotes = strings.NewReplacer(
	"“", `"`, // left double
	"”", `"`, // right double
	"„", `"`, // low double
	"‟", `"`, // reversed double
	"‘", "'", // left single
	"’", "'", // right single
	"‚", "'", // low single
	"‛", "'", // reversed single
)

// structural markers that can start a parseable payload. Anything before
// the first of these is treated as discardable preamble (log lines,
// emoji banners).
var payloadMarkers = []string{"{", "[", "```"}

// Normalize canonicalizes raw argument text. In order: line endings
// unified to \n, zero-width characters stripped, smart quotes replaced,
// leading noise before the first structural marker dropped, surrounding
// whitespace trimmed.
//
// Normalize is total and idempotent: it always returns a string
// (possibly empty) and Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	s := strings.ReplaceAll(text, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	for _, z := range zeroWidth {
		s = strings.ReplaceAll(s, z, "")
	}
	s = smartQuotes.Replace(s)

	s = strings.TrimSpace(s)
	first := -1
	for _, marker := range payloadMarkers {
		if i := strings.Index(s, marker); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	if first > 0 {
		s = s[first:]
	}
	return strings.TrimSpace(s)
}
