package formenc

import (
	"strings"

	"github.com/oesand/reqkit/internal/plain"
	"github.com/samber/lo"
)

// EncodeQueryString percent-encodes s like encodeURIComponent and
// writes spaces as '+'.
func EncodeQueryString(s string) string {
	if s == "" {
		return s
	}
	return strings.ReplaceAll(plain.EscapeUrl(s, plain.EscapingComponent), "%20", "+")
}

// DecodeQueryString turns '+' into spaces and decodes percent sequences.
// Malformed sequences are kept as they are.
func DecodeQueryString(s string) string {
	if s == "" {
		return s
	}
	return plain.UnEscapeLoose(s, true)
}

// ParamValue returns value, query-encoded when encode is set.
func ParamValue(value string, encode bool) string {
	if !encode {
		return value
	}
	return EncodeQueryString(value)
}

// EncodeValue query-encodes every element of value.
func EncodeValue(value Value) Value {
	return mapValue(value, EncodeQueryString)
}

// DecodeValue query-decodes every element of value.
func DecodeValue(value Value) Value {
	return mapValue(value, DecodeQueryString)
}

func mapValue(value Value, fn func(string) string) Value {
	if value == nil {
		return nil
	}
	return lo.Map(value, func(item string, _ int) string {
		return fn(item)
	})
}
