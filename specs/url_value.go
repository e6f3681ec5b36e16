package specs

import "strings"

// DefaultQueryDelimiter separates search parameters when
// ParserOptions.QueryDelimiter is not set.
const DefaultQueryDelimiter = "&"

// ParserOptions configures ValueParser and UrlParser.
type ParserOptions struct {
	// QueryDelimiter separates name=value pairs of the search string.
	// If empty, DefaultQueryDelimiter is used.
	QueryDelimiter string
}

func (opts ParserOptions) delimiter() string {
	if opts.QueryDelimiter == "" {
		return DefaultQueryDelimiter
	}
	return opts.QueryDelimiter
}

// SearchParam is a single name=value pair of a search string.
type SearchParam struct {
	Name, Value string
}

// NewValueParser creates a ValueParser, nil opts means defaults.
func NewValueParser(opts *ParserOptions) *ValueParser {
	parser := &ValueParser{}
	if opts != nil {
		parser.Options = *opts
	}
	return parser
}

// ValueParser extracts the components of a URL string.
//
// Parsing is lenient: input may be partial, malformed or contain
// ${variable} placeholders and is never rejected. Every method takes the
// whole string and reports with ok whether the component is present.
type ValueParser struct {
	Options ParserOptions
}

// ParseProtocol returns the part before "://" including the colon.
func (*ValueParser) ParseProtocol(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	index := strings.Index(value, "://")
	if index == -1 {
		return "", false
	}
	return value[:index+1], true
}

// ParseHost returns the authority: the text after "://" up to the first
// '/', '?' or '#'. Credentials and port are not split off.
//
// Cutting at '?' and '#' as well as '/' keeps "http://domain.com?a=b"
// from carrying its search inside the host, which UrlParser would then
// write twice.
func (*ValueParser) ParseHost(value string) (string, bool) {
	if value == "" {
		return "", false
	}
	if index := strings.Index(value, "://"); index != -1 {
		value = value[index+3:]
	}
	if index := strings.IndexAny(value, "/?#"); index != -1 {
		value = value[:index]
	}
	return value, true
}

// ParsePath returns the path with repeated slashes collapsed.
//
// A value that does not start with '/' is taken to begin with an
// authority, so its first segment is dropped. A trailing slash is kept
// only when more than one segment remains.
func (*ValueParser) ParsePath(value string) (string, bool) {
	if value == "" {
		return "", false
	}

	isBasePath := value[0] == '/'
	if !isBasePath {
		if index := strings.Index(value, "://"); index != -1 {
			value = value[index+3:]
		}
	}
	if index := strings.IndexAny(value, "?#"); index != -1 {
		value = value[:index]
	}

	lastIsSlash := strings.HasSuffix(value, "/")
	segments := make([]string, 0, strings.Count(value, "/")+1)
	for _, segment := range strings.Split(value, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	if !isBasePath && len(segments) > 0 {
		segments = segments[1:]
	}

	path := "/" + strings.Join(segments, "/")
	if lastIsSlash && len(segments) > 1 {
		path += "/"
	}
	return path, true
}

// ParseSearch returns the text between the first '?' and the
// following '#', without both marks.
func (*ValueParser) ParseSearch(value string) (string, bool) {
	index := strings.IndexByte(value, '?')
	if index == -1 {
		return "", false
	}
	value = value[index+1:]
	if index = strings.IndexByte(value, '#'); index != -1 {
		value = value[:index]
	}
	return value, true
}

// ParseAnchor returns the text after the first '#'.
func (*ValueParser) ParseAnchor(value string) (string, bool) {
	index := strings.IndexByte(value, '#')
	if index == -1 {
		return "", false
	}
	return value[index+1:], true
}

// ParseSearchParams splits a search string into ordered pairs.
//
// Each segment is split on its first '='; name and value are trimmed
// and further '=' stay in the value. Duplicate names are kept.
// Segments with a blank name are skipped.
func (parser *ValueParser) ParseSearchParams(search string) []SearchParam {
	params := make([]SearchParam, 0)
	if search == "" {
		return params
	}

	for _, segment := range strings.Split(search, parser.Options.delimiter()) {
		if segment == "" {
			continue
		}
		name, value, _ := strings.Cut(segment, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		params = append(params, SearchParam{
			Name:  name,
			Value: strings.TrimSpace(value),
		})
	}
	return params
}
