package reqkit

import (
	"fmt"
	"strings"

	"github.com/oesand/reqkit/specs"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// lookupCharset resolves a WHATWG charset label. UTF-8 and an empty
// label give a nil encoding.
func lookupCharset(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w %q", specs.ErrUnknownCharset, label)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc, nil
}

// toCharset transcodes s from UTF-8. Characters the charset lacks are
// written as HTML numeric references, as browsers do for form fields.
func toCharset(enc encoding.Encoding, s string) (string, error) {
	if enc == nil || s == "" {
		return s, nil
	}
	return encoding.HTMLEscapeUnsupported(enc.NewEncoder()).String(s)
}

// fromCharset transcodes s to UTF-8.
func fromCharset(enc encoding.Encoding, s string) (string, error) {
	if enc == nil || s == "" {
		return s, nil
	}
	return enc.NewDecoder().String(s)
}
