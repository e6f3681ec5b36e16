package formenc

import (
	"regexp"
	"strings"
)

const (
	readingName = iota
	readingValue
)

// CreateParamsArray reads a url-encoded string into records without
// decoding it. Only the first '=' of a pair separates name and value.
// A repeated name adds its value to the first record of that name.
func CreateParamsArray(input string) []Param {
	params := make([]Param, 0)
	if input == "" {
		return params
	}

	index := make(map[string]int)
	flush := func(name, value string) {
		if name == "" && value == "" {
			return
		}
		if i, has := index[name]; has {
			params[i].appendValue(value)
			return
		}
		index[name] = len(params)
		params = append(params, NewParam(name, value))
	}

	state := readingName
	var name, value strings.Builder
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c == '&':
			flush(name.String(), value.String())
			name.Reset()
			value.Reset()
			state = readingName
		case c == '=' && state == readingName:
			state = readingValue
		case state == readingName:
			name.WriteByte(c)
		default:
			value.WriteByte(c)
		}
	}
	flush(name.String(), value.String())

	return params
}

var devToolsLine = regexp.MustCompile(`^[^\s:=]+:[ \t]?`)

// CreateViewModel is CreateParamsArray that also accepts the
// "name: value" lines Chrome DevTools copies for form data.
func CreateViewModel(input string) []Param {
	if isDevToolsForm(input) {
		input = devToolsToUrlEncoded(input)
	}
	return CreateParamsArray(input)
}

func isDevToolsForm(input string) bool {
	if input == "" || strings.Contains(input, "=") {
		return false
	}
	matched := false
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if !devToolsLine.MatchString(line) {
			return false
		}
		matched = true
	}
	return matched
}

func devToolsToUrlEncoded(input string) string {
	pairs := make([]string, 0, strings.Count(input, "\n")+1)
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		name, value, _ := strings.Cut(line, ":")
		if value != "" && (value[0] == ' ' || value[0] == '\t') {
			value = value[1:]
		}
		pairs = append(pairs, name+"="+value)
	}
	return strings.Join(pairs, "&")
}
