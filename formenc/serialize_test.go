package formenc

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestModelItemToFormDataString(t *testing.T) {
	tests := []struct {
		name  string
		param Param
		want  string
		ok    bool
	}{
		{name: "Plain", param: NewParam("a", "b"), want: "a=b", ok: true},
		{name: "Disabled", param: Param{Name: "a", Value: Single("b"), Disabled: true}},
		{name: "No name and value", param: NewParam("", "")},
		{name: "Nil value without name", param: Param{}},
		{name: "Optional empty", param: Param{Name: "a", Value: Single(""), Optional: true}},
		{name: "Optional filled", param: Param{Name: "a", Value: Single("1"), Optional: true}, want: "a=1", ok: true},
		{name: "Required empty", param: NewParam("a", ""), want: "a=", ok: true},
		{name: "Value without name", param: NewParam("", "x"), want: "=x", ok: true},
		{name: "Array value", param: Param{Name: "a", Value: Multi("1", "2")}, want: "a=1&a=2", ok: true},
		{name: "Raw characters", param: NewParam("q", "a b&c"), want: "q=a b&c", ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ModelItemToFormDataString(tt.param)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ModelItemToFormDataString() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFormArrayToString(t *testing.T) {
	params := []Param{
		NewParam("a", "1"),
		{Name: "skip", Value: Single("x"), Disabled: true},
		{},
		{Name: "list", Value: Multi("x", "y")},
		{Name: "opt", Optional: true},
		NewParam("b", ""),
	}
	if got, want := FormArrayToString(params), "a=1&list=x&list=y&b="; got != want {
		t.Errorf("FormArrayToString() = %q, want %q", got, want)
	}
	if got := FormArrayToString(nil); got != "" {
		t.Errorf("FormArrayToString(nil) = %q", got)
	}
}

func TestFormArrayRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
		want   []Param
	}{
		{
			name:   "Distinct names",
			params: []Param{NewParam("a", "1"), NewParam("b", "2"), NewParam("c", "")},
			want:   []Param{NewParam("a", "1"), NewParam("b", "2"), NewParam("c", "")},
		},
		{
			name:   "Array value",
			params: []Param{{Name: "a", Value: Multi("1", "2")}, NewParam("b", "3")},
			want:   []Param{{Name: "a", Value: Multi("1", "2")}, NewParam("b", "3")},
		},
		{
			name:   "Duplicate records fold",
			params: []Param{NewParam("a", "1"), NewParam("b", "2"), NewParam("a", "3")},
			want:   []Param{{Name: "a", Value: Multi("1", "3")}, NewParam("b", "2")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CreateParamsArray(FormArrayToString(tt.params)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CreateParamsArray(FormArrayToString()) = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestValue_JSON(t *testing.T) {
	params := []Param{
		NewParam("a", "1"),
		{Name: "b", Value: Multi("2", "3"), Disabled: true},
	}
	data, err := json.Marshal(params)
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"name":"a","value":"1"},{"name":"b","value":["2","3"],"disabled":true}]`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var decoded []Param
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(decoded, params) {
		t.Errorf("json.Unmarshal() = %+v, want %+v", decoded, params)
	}

	var value Value
	if err := json.Unmarshal([]byte(`42`), &value); err == nil {
		t.Errorf("json.Unmarshal(42) expected error, got %v", value)
	}
}
