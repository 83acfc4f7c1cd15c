package resolve

import (
	"strconv"
	"strings"
)

// stripOuterQuotes removes one layer of matching outer quotes, single
// or double.
func stripOuterQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// coerceValue classifies a flag or positional token: outer quotes are
// stripped, then true/false (case-insensitive) become booleans,
// all-digit tokens (optional leading minus) become ints, decimal
// numbers become floats, and everything else stays a string. Nothing
// here fails; unparseable numeric lookalikes fall through to string.
func coerceValue(token string) any {
	v := stripOuterQuotes(token)
	switch strings.ToLower(v) {
	case "true":
		return true
	case "false":
		return false
	}
	if isInteger(v) {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

func isInteger(s string) bool {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}
