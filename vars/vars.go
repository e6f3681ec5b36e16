// Package vars expands the ${name} placeholders that request fields
// carry until they are sent.
package vars

import (
	"slices"
	"strings"
)

// Lookup resolves a placeholder name.
type Lookup interface {
	Lookup(name string) (string, bool)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(name string) (string, bool)

func (fn LookupFunc) Lookup(name string) (string, bool) {
	return fn(name)
}

// Chain asks every Lookup in order, the first hit wins.
type Chain []Lookup

func (chain Chain) Lookup(name string) (string, bool) {
	for _, lookup := range chain {
		if lookup == nil {
			continue
		}
		if value, ok := lookup.Lookup(name); ok {
			return value, true
		}
	}
	return "", false
}

// NewEnvironment creates an empty named Environment.
func NewEnvironment(name string) *Environment {
	return &Environment{Name: name}
}

// Environment is a named, ordered set of variables.
//
// Environment is not safe for concurrent use.
type Environment struct {
	Name string

	names  []string
	values map[string]string
}

// Set adds or replaces a variable. New names go last.
func (env *Environment) Set(name, value string) {
	if env.values == nil {
		env.values = make(map[string]string)
	}
	if _, has := env.values[name]; !has {
		env.names = append(env.names, name)
	}
	env.values[name] = value
}

// Lookup returns the value of a variable.
func (env *Environment) Lookup(name string) (string, bool) {
	if env == nil || env.values == nil {
		return "", false
	}
	value, has := env.values[name]
	return value, has
}

// Get returns the value of a variable or an empty string.
func (env *Environment) Get(name string) string {
	value, _ := env.Lookup(name)
	return value
}

// Del removes a variable.
func (env *Environment) Del(name string) {
	if _, has := env.values[name]; !has {
		return
	}
	delete(env.values, name)
	env.names = slices.DeleteFunc(env.names, func(n string) bool { return n == name })
}

// Names returns the variable names in insertion order.
func (env *Environment) Names() []string {
	return slices.Clone(env.names)
}

// scan calls fn for every complete placeholder with the offsets of
// "${" and the closing '}'.
func scan(s string, fn func(start, end int, name string)) {
	for i := 0; i < len(s); {
		open := strings.Index(s[i:], "${")
		if open < 0 {
			return
		}
		open += i
		closing := strings.IndexByte(s[open+2:], '}')
		if closing < 0 {
			return
		}
		closing += open + 2
		fn(open, closing, s[open+2:closing])
		i = closing + 1
	}
}

// Placeholders lists the names used in s in order of first appearance.
func Placeholders(s string) []string {
	var names []string
	scan(s, func(_, _ int, name string) {
		name = strings.TrimSpace(name)
		if name != "" && !slices.Contains(names, name) {
			names = append(names, name)
		}
	})
	return names
}

// Expand replaces every ${name} that lookup resolves. Unresolved
// placeholders stay as written and are reported in order of first
// appearance. Substituted values are not expanded again; a '$' not
// followed by '{' and an unterminated "${" are plain text.
func Expand(s string, lookup Lookup) (string, []string) {
	if !strings.Contains(s, "${") {
		return s, nil
	}

	var buf strings.Builder
	var missing []string
	last := 0
	scan(s, func(start, end int, name string) {
		name = strings.TrimSpace(name)
		value, ok := "", false
		if lookup != nil && name != "" {
			value, ok = lookup.Lookup(name)
		}
		if !ok {
			if name != "" && !slices.Contains(missing, name) {
				missing = append(missing, name)
			}
			return
		}
		buf.WriteString(s[last:start])
		buf.WriteString(value)
		last = end + 1
	})
	if last == 0 {
		return s, missing
	}
	buf.WriteString(s[last:])
	return buf.String(), missing
}
