package writing

import (
	"bytes"
	"io"

	"github.com/oesand/reqkit/internal/plain"
	"github.com/oesand/reqkit/specs"
)

// RequestTarget returns the origin-form target of url: its path
// followed by the search string, both percent-escaped. Sequences
// already escaped are kept.
func RequestTarget(url *specs.UrlParser) string {
	target := url.Path()
	if target[0] != '/' {
		target = "/" + target
	}
	target = plain.EscapeUrl(target, plain.EscapingPath)

	// Value normalizes the search string before it is read.
	url.Value()
	if search := url.Search(); search != "" {
		target += "?" + plain.EscapeUrl(search, plain.EscapingQuery)
	}
	return target
}

// WriteRequestHead writes the request line and the enabled header fields.
func WriteRequestHead(writer io.Writer, method specs.HttpMethod, target string, header *specs.Header) (int64, error) {
	// Headline
	buf := bytes.NewBufferString(string(method))
	buf.WriteByte(' ')
	buf.WriteString(target)
	buf.WriteByte(' ')
	buf.Write(httpV11)
	buf.Write(rawCrlf)

	// Headers
	for key, value := range header.All() {
		buf.WriteString(key)
		buf.Write(rawColonSpace)
		buf.WriteString(value)
		buf.Write(rawCrlf)
	}

	buf.Write(rawCrlf)

	i, err := buf.WriteTo(writer)
	if err != nil {
		return i, specs.WrapOpError(writeHeadOp, err)
	}
	return i, nil
}
