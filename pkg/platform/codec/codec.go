// Package codec holds the process-wide JSON configuration. It is built once and
// frozen; event payloads and cache entries all go through it so producers and
// consumers can never disagree on encoding options.
package codec

import (
	jsoniter "github.com/json-iterator/go"
)

var api = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// JSON returns the shared frozen configuration.
func JSON() jsoniter.API {
	return api
}

func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}
