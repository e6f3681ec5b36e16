package specs

import (
	"fmt"
	"iter"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/net/http/httpguts"
)

// HeaderField is a single line of the header editor.
type HeaderField struct {
	Name, Value string

	// Disabled fields are kept for editing but never sent.
	Disabled bool
}

// NewHeader creates an empty Header and applies the configure functions.
func NewHeader(configure ...func(header *Header)) *Header {
	header := &Header{}
	for _, fn := range configure {
		fn(header)
	}
	return header
}

// ParseHeader reads "Name: value" lines. Lines without a colon or
// with a blank name are ignored, a leading '#' disables the field.
func ParseHeader(text string) *Header {
	header := &Header{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		disabled := strings.HasPrefix(line, "#")
		if disabled {
			line = strings.TrimSpace(line[1:])
		}
		name, value, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			continue
		}
		header.fields = append(header.fields, HeaderField{
			Name:     name,
			Value:    strings.TrimSpace(value),
			Disabled: disabled,
		})
	}
	return header
}

// Header is an ordered list of header fields. Names are matched
// case-insensitively but written as entered, repeated names are kept.
type Header struct {
	fields []HeaderField
}

func (header *Header) indexOf(name string) int {
	_, index, found := lo.FindIndexOf(header.fields, func(field HeaderField) bool {
		return !field.Disabled && strings.EqualFold(field.Name, name)
	})
	if !found {
		return -1
	}
	return index
}

// Get returns the value of the first enabled field with the name.
func (header *Header) Get(name string) string {
	if index := header.indexOf(name); index >= 0 {
		return header.fields[index].Value
	}
	return ""
}

// Has reports whether an enabled field with the name exists.
func (header *Header) Has(name string) bool {
	return header.indexOf(name) >= 0
}

// Add appends a field.
func (header *Header) Add(name, value string) {
	header.fields = append(header.fields, HeaderField{Name: name, Value: value})
}

// AddField appends a field keeping its Disabled flag.
func (header *Header) AddField(field HeaderField) {
	header.fields = append(header.fields, field)
}

// Set replaces the value of the first enabled field with the name and
// removes the other enabled ones, or appends a new field.
func (header *Header) Set(name, value string) {
	index := header.indexOf(name)
	if index < 0 {
		header.Add(name, value)
		return
	}
	header.fields[index].Value = value
	header.fields = append(header.fields[:index+1], lo.Reject(header.fields[index+1:], func(field HeaderField, _ int) bool {
		return !field.Disabled && strings.EqualFold(field.Name, name)
	})...)
}

// Del removes every field with the name, disabled ones included.
func (header *Header) Del(name string) {
	header.fields = lo.Reject(header.fields, func(field HeaderField, _ int) bool {
		return strings.EqualFold(field.Name, name)
	})
}

// Len returns the number of fields, disabled ones included.
func (header *Header) Len() int {
	return len(header.fields)
}

// Fields returns a copy of every field.
func (header *Header) Fields() []HeaderField {
	return append([]HeaderField(nil), header.fields...)
}

// All iterates the enabled fields in order.
func (header *Header) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, field := range header.fields {
			if field.Disabled {
				continue
			}
			if !yield(field.Name, field.Value) {
				break
			}
		}
	}
}

// Clone returns an independent copy.
func (header *Header) Clone() *Header {
	return &Header{fields: header.Fields()}
}

// Validate checks the enabled fields against the HTTP token and
// field-value grammar.
func (header *Header) Validate() error {
	for name, value := range header.All() {
		if !httpguts.ValidHeaderFieldName(name) {
			return fmt.Errorf("%w: name %q", ErrInvalidHeader, name)
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return fmt.Errorf("%w: value of %q", ErrInvalidHeader, name)
		}
	}
	return nil
}

// String renders the fields as ParseHeader reads them.
func (header *Header) String() string {
	var buf strings.Builder
	for i, field := range header.fields {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if field.Disabled {
			buf.WriteByte('#')
		}
		buf.WriteString(field.Name)
		buf.WriteString(": ")
		buf.WriteString(field.Value)
	}
	return buf.String()
}
