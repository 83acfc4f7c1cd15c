package resolve

import (
	"encoding/base64"
	"net/url"

	"github.com/robustcall/mcall"
)

// stratURLDecode retries the direct parse on the URL-decoded text, but
// only when decoding actually changed something.
func stratURLDecode(r *Resolver, text, tool string) (mcall.Params, bool) {
	decoded, err := url.QueryUnescape(text)
	if err != nil || decoded == text {
		return nil, false
	}
	if v, ok := tryJSON(decoded); ok {
		return asParams(v), true
	}
	return nil, false
}

// stratBase64 retries the direct parse on the decoded bytes of
// base64-wrapped input, interpreted as UTF-8.
func stratBase64(r *Resolver, text, tool string) (mcall.Params, bool) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, false
	}
	if v, ok := tryJSON(string(raw)); ok {
		return asParams(v), true
	}
	return nil, false
}
