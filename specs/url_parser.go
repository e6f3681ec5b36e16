package specs

import "strings"

// NewUrlParser creates a UrlParser holding the components of value.
// nil opts means defaults.
func NewUrlParser(value string, opts *ParserOptions) *UrlParser {
	url := &UrlParser{
		parser: NewValueParser(opts),
	}
	url.SetValue(value)
	return url
}

// UrlParser keeps the components of a single URL for editing.
//
// Components are stored independently: changing one never
// re-derives the others. An empty string means the component is absent.
// Value re-serializes the current state in the order
// protocol, host, path, search, anchor.
//
// UrlParser is not safe for concurrent use.
type UrlParser struct {
	parser *ValueParser

	protocol string
	host     string
	path     string
	search   string
	anchor   string
}

// Options returns the parser configuration.
func (url *UrlParser) Options() ParserOptions {
	return url.parser.Options
}

// Protocol returns the scheme with its trailing colon, e.g. "http:".
func (url *UrlParser) Protocol() string {
	return url.protocol
}

func (url *UrlParser) SetProtocol(protocol string) {
	url.protocol = protocol
}

// Host returns the whole authority, credentials and port included.
func (url *UrlParser) Host() string {
	return url.host
}

func (url *UrlParser) SetHost(host string) {
	url.host = host
}

// Path returns the stored path or "/" when none is stored.
func (url *UrlParser) Path() string {
	if url.path == "" {
		return "/"
	}
	return url.path
}

func (url *UrlParser) SetPath(path string) {
	url.path = path
}

// Search returns the query string without the leading '?'.
func (url *UrlParser) Search() string {
	return url.search
}

func (url *UrlParser) SetSearch(search string) {
	url.search = search
}

// Anchor returns the fragment without the leading '#'.
func (url *UrlParser) Anchor() string {
	return url.anchor
}

func (url *UrlParser) SetAnchor(anchor string) {
	url.anchor = anchor
}

// SearchParams returns the pairs of the search string. The slice is
// built on every call and may be modified freely.
func (url *UrlParser) SearchParams() []SearchParam {
	return url.parser.ParseSearchParams(url.search)
}

// SetSearchParams replaces the search string with params joined by the
// query delimiter. A pair with neither name nor value leaves an empty
// segment. Empty params clear the search string.
func (url *UrlParser) SetSearchParams(params []SearchParam) {
	if len(params) == 0 {
		url.search = ""
		return
	}

	delimiter := url.parser.Options.delimiter()
	var buf strings.Builder
	for i, param := range params {
		if i > 0 {
			buf.WriteString(delimiter)
		}
		if param.Name == "" && param.Value == "" {
			continue
		}
		buf.WriteString(param.Name)
		buf.WriteByte('=')
		buf.WriteString(param.Value)
	}
	url.search = buf.String()
}

// AppendSearchParam adds a pair after the existing ones.
func (url *UrlParser) AppendSearchParam(name, value string) {
	url.SetSearchParams(append(url.SearchParams(), SearchParam{Name: name, Value: value}))
}

// Value is the serialized URL, equal to String.
func (url *UrlParser) Value() string {
	return url.String()
}

// SetValue parses value and replaces every component.
func (url *UrlParser) SetValue(value string) {
	url.protocol, _ = url.parser.ParseProtocol(value)
	url.host, _ = url.parser.ParseHost(value)
	url.path, _ = url.parser.ParsePath(value)
	url.anchor, _ = url.parser.ParseAnchor(value)
	url.search, _ = url.parser.ParseSearch(value)
}

// Clone returns an independent copy sharing the configuration.
func (url *UrlParser) Clone() *UrlParser {
	copied := *url
	return &copied
}

// String serializes the components.
//
// The path, "/" when none is stored, is omitted only when it is "/"
// and there is no host, search or anchor.
// The search string is rebuilt from its own pairs before it is written,
// so stray delimiters and blank pairs are dropped from the stored state too.
func (url *UrlParser) String() string {
	var buf strings.Builder

	if url.protocol != "" {
		buf.WriteString(url.protocol)
		buf.WriteString("//")
	}
	if url.host != "" {
		buf.WriteString(url.host)
	}

	if path := url.Path(); path != "/" || url.host != "" || url.search != "" || url.anchor != "" {
		if path[0] != '/' {
			buf.WriteByte('/')
		}
		buf.WriteString(path)
	}

	if url.search != "" {
		url.SetSearchParams(url.SearchParams())
		if url.search != "" {
			buf.WriteByte('?')
			buf.WriteString(url.search)
		}
	}

	if url.anchor != "" {
		buf.WriteByte('#')
		buf.WriteString(url.anchor)
	}

	return buf.String()
}
