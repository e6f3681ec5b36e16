package formenc

import "github.com/samber/lo"

// Input is the shape accepted by EncodeUrlEncoded and DecodeUrlEncoded.
type Input interface {
	string | []Param
}

// EncodeUrlEncoded query-encodes every name and value.
// A string is read with CreateViewModel and re-serialized, a slice
// gives back a new slice. Empty input is returned unchanged.
func EncodeUrlEncoded[T Input](input T) T {
	return transcode(input, EncodeQueryString)
}

// DecodeUrlEncoded reverses EncodeUrlEncoded.
func DecodeUrlEncoded[T Input](input T) T {
	return transcode(input, DecodeQueryString)
}

func transcode[T Input](input T, fn func(string) string) T {
	if len(input) == 0 {
		return input
	}

	var result any
	switch typed := any(input).(type) {
	case string:
		result = FormArrayToString(transcodeParams(CreateViewModel(typed), fn))
	case []Param:
		result = transcodeParams(typed, fn)
	}
	return result.(T)
}

func transcodeParams(params []Param, fn func(string) string) []Param {
	return lo.Map(params, func(param Param, _ int) Param {
		param.Name = fn(param.Name)
		param.Value = mapValue(param.Value, fn)
		return param
	})
}
