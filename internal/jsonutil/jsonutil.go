// Package jsonutil holds tree plumbing shared by the fixer and normalizer:
// deep copies of decoded JSON values and structural equality.
package jsonutil

import (
	"bytes"

	j "github.com/goccy/go-json"
)

// Clone deep-copies a decoded JSON value (maps, slices, scalars). Scalars are
// returned as-is; containers are rebuilt so mutations never reach the source.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return CloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Clone(t[i])
		}
		return out
	default:
		return v
	}
}

// CloneMap deep-copies an object node.
func CloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = Clone(v)
	}
	return out
}

// Equal reports structural equality of two decoded JSON values by comparing
// their canonical encodings (map keys marshal sorted).
func Equal(a, b any) bool {
	ab, err := j.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := j.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ab, bb)
}
