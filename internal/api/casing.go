package api

import (
	"encoding/json"
	"strings"
	"unicode"
)

// The wire format uses snake_case keys; the rest of the app sees camelCase.
// Conversion happens exactly once, here at the boundary: encodeBody
// decamelizes outgoing request bodies, camelizeBytes camelizes incoming
// response bodies. Both conversions are deep, covering nested objects and
// array elements.

// encodeBody marshals v and rewrites every key to snake_case.
func encodeBody(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return json.Marshal(convertKeys(tree, decamelize))
}

// camelizeBytes rewrites every key of a raw response body to camelCase.
func camelizeBytes(data []byte) ([]byte, error) {
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return json.Marshal(convertKeys(tree, camelize))
}

// convertKeys walks a decoded JSON tree and rewrites every object key.
func convertKeys(v any, convert func(string) string) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, child := range node {
			out[convert(k)] = convertKeys(child, convert)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, child := range node {
			out[i] = convertKeys(child, convert)
		}
		return out
	default:
		return v
	}
}

// camelize converts snake_case to camelCase: "first_date" -> "firstDate".
// Leading and trailing underscores are preserved.
func camelize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upperNext := false
	for i, r := range s {
		if r == '_' && i > 0 && i < len(s)-1 {
			upperNext = true
			continue
		}
		if upperNext {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// decamelize converts camelCase to snake_case: "firstDate" -> "first_date".
func decamelize(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
