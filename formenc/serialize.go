package formenc

import (
	"strings"

	"github.com/samber/lo"
)

// ModelItemToFormDataString renders one record as "name=value". An array
// value renders one pair per element. It reports false for records that
// are disabled, have neither name nor value, or are optional and empty.
// Nothing is encoded.
func ModelItemToFormDataString(param Param) (string, bool) {
	if !param.Sendable() {
		return "", false
	}

	if !param.Value.IsMulti() {
		return param.Name + "=" + ParamValue(param.Value.String(), false), true
	}

	var buf strings.Builder
	for i, value := range param.Value {
		if i > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(param.Name)
		buf.WriteByte('=')
		buf.WriteString(ParamValue(value, false))
	}
	return buf.String(), true
}

// FormArrayToString joins the renderable records with '&'.
func FormArrayToString(params []Param) string {
	return strings.Join(lo.FilterMap(params, func(param Param, _ int) (string, bool) {
		return ModelItemToFormDataString(param)
	}), "&")
}
