package plain

import "strings"

// Escaping selects which characters of a URL component are
// left intact by EscapeUrl.
type Escaping int

const (
	// EscapingPath keeps '/' and $&+,:;=@ of a path, as net/url does.
	EscapingPath Escaping = 1 + iota

	// EscapingQuery is for a whole search string: the '&' and '='
	// delimiters and the other sub-delims stay as they are.
	EscapingQuery

	// EscapingComponent is the character set of JavaScript encodeURIComponent:
	// everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is escaped,
	// spaces included.
	EscapingComponent
)

const upperhex = "0123456789ABCDEF"

// EscapeError reports a malformed percent sequence.
type EscapeError string

func (e EscapeError) Error() string {
	return "invalid URL escape " + strings.TrimSpace(string(e))
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func shouldEscape(c byte, mode Escaping) bool {
	// unreserved alphanum
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return false
	}

	switch c {
	case '-', '_', '.', '~':
		return false

	case '!', '\'', '(', ')', '*':
		return mode == EscapingPath

	case '$', '&', '+', ',', '/', ':', ';', '=', '?', '@':
		switch mode {
		case EscapingPath:
			return c == '?'
		case EscapingQuery:
			return false
		}
	}

	return true
}

// keepsEscapes reports whether an existing %XX sequence at s[i]
// is written as is.
func keepsEscapes(s string, i int, mode Escaping) bool {
	return mode != EscapingComponent && s[i] == '%' &&
		i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2])
}

// EscapeUrl percent-encodes s for the URL component selected by mode.
//
// In EscapingPath and EscapingQuery well-formed %XX sequences are
// taken as already escaped and kept, so an edited URL is not escaped
// twice. Spaces and control characters are always escaped.
func EscapeUrl(s string, mode Escaping) string {
	hexCount := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i], mode) && !keepsEscapes(s, i, mode) {
			hexCount++
		}
	}

	if hexCount == 0 {
		return s
	}

	var buf [64]byte
	var t []byte

	required := len(s) + 2*hexCount
	if required <= len(buf) {
		t = buf[:required]
	} else {
		t = make([]byte, required)
	}

	j := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c, mode) && !keepsEscapes(s, i, mode) {
			t[j] = '%'
			t[j+1] = upperhex[c>>4]
			t[j+2] = upperhex[c&15]
			j += 3
			continue
		}
		t[j] = c
		j++
	}
	return string(t)
}

// UnEscapeUrl decodes every percent sequence of s. A '%' not followed
// by two hex digits yields an EscapeError. '+' is kept.
func UnEscapeUrl(s string) (string, error) {
	n := 0
	for i := 0; i < len(s); {
		if s[i] != '%' {
			i++
			continue
		}
		n++
		if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
			s = s[i:]
			if len(s) > 3 {
				s = s[:3]
			}
			return "", EscapeError(s)
		}
		i += 3
	}

	if n == 0 {
		return s, nil
	}

	var t strings.Builder
	t.Grow(len(s) - 2*n)
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			t.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		t.WriteByte(s[i])
	}
	return t.String(), nil
}

// UnEscapeLoose decodes every well-formed percent sequence of s and keeps
// malformed ones literally. With plusAsSpace set '+' decodes to a space.
// It never fails.
func UnEscapeLoose(s string, plusAsSpace bool) string {
	if strings.IndexByte(s, '%') < 0 && (!plusAsSpace || strings.IndexByte(s, '+') < 0) {
		return s
	}

	var t strings.Builder
	t.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			t.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		case c == '+' && plusAsSpace:
			t.WriteByte(' ')
		default:
			t.WriteByte(c)
		}
	}
	return t.String()
}
