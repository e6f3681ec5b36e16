// Package formenc converts application/x-www-form-urlencoded payloads
// to editable records and back.
//
// Unlike specs.UrlParser search params, a name repeated in the input
// is folded into one Param whose Value holds every occurrence.
package formenc

import "encoding/json"

// Value is the value of a form record: one element for a plain value,
// more once a name repeats.
type Value []string

// Single creates a one element Value.
func Single(value string) Value {
	return Value{value}
}

// Multi creates a Value holding every given value.
func Multi(values ...string) Value {
	return append(Value(nil), values...)
}

// IsMulti reports whether the value is an array value.
func (v Value) IsMulti() bool {
	return len(v) > 1
}

// IsEmpty reports whether there is nothing to send.
func (v Value) IsEmpty() bool {
	return len(v) == 0 || len(v) == 1 && v[0] == ""
}

// String returns the first value.
func (v Value) String() string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// MarshalJSON writes a plain value as a string and an array value as an array.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsMulti() {
		return json.Marshal([]string(v))
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts a string, an array of strings or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		*v = values
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*v = Value{value}
	return nil
}

// Param is a single record of the url-encoded body editor.
type Param struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`

	// Disabled records are kept in the editor but never serialized.
	Disabled bool `json:"disabled,omitempty"`

	// Optional records with an empty value are not serialized.
	Optional bool `json:"optional,omitempty"`
}

// NewParam creates an enabled record with a plain value.
func NewParam(name, value string) Param {
	return Param{Name: name, Value: Single(value)}
}

// Sendable reports whether the record takes part in a payload: it is
// enabled, has a name or a value, and is not an empty optional record.
func (p Param) Sendable() bool {
	switch {
	case p.Disabled:
		return false
	case p.Name == "" && p.Value.IsEmpty():
		return false
	case p.Optional && p.Value.IsEmpty():
		return false
	}
	return true
}

func (p *Param) appendValue(value string) {
	p.Value = append(p.Value, value)
}
