package resolve

// scanState is the quote context of the bracket scanner.
type scanState int

const (
	scanOutside scanState = iota
	scanInSingle
	scanInDouble
)

// firstBalancedJSON scans text left to right tracking bracket depth for
// {}/[], ignoring brackets inside quoted string literals (escape-aware
// for both quote styles). Each span whose depth returns to zero is
// tried as JSON; the first span that parses wins.
//
// Byte-wise scanning is safe: the significant characters are all ASCII
// and never appear inside multi-byte UTF-8 sequences.
func firstBalancedJSON(text string) (any, bool) {
	state := scanOutside
	escaped := false
	depth := 0
	start := -1

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch state {
		case scanOutside:
			switch ch {
			case '{', '[':
				if depth == 0 {
					start = i
				}
				depth++
			case '}', ']':
				if depth > 0 {
					depth--
					if depth == 0 && start >= 0 {
						if v, ok := tryJSON(text[start : i+1]); ok {
							return v, true
						}
					}
				}
			case '\'':
				state = scanInSingle
				escaped = false
			case '"':
				state = scanInDouble
				escaped = false
			}
		case scanInSingle:
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '\'':
				state = scanOutside
			}
		case scanInDouble:
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				state = scanOutside
			}
		}
	}
	return nil, false
}
