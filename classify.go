package tokenlint

import (
	"encoding/json"
	"sort"
	"strings"
)

// Node classification. A node is a token iff it carries a value key ($value or
// legacy value), or it has zero non-$ children (an empty object is a token
// missing its value). Anything else group-shaped is a subgroup.

func hasValueKey(m map[string]any) bool {
	if _, ok := m["$value"]; ok {
		return true
	}
	_, ok := m["value"]
	return ok
}

// tokenValue returns the token's raw value, preferring $value over the legacy
// value key. legacy reports which key carried it.
func tokenValue(m map[string]any) (v any, legacy, ok bool) {
	if v, ok := m["$value"]; ok {
		return v, false, true
	}
	if v, ok := m["value"]; ok {
		return v, true, true
	}
	return nil, false, false
}

// nonMetaKeys returns the node's non-$-prefixed keys in sorted order so walks
// and reports are deterministic.
func nonMetaKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		if strings.HasPrefix(k, "$") {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isTokenNode(m map[string]any) bool {
	return hasValueKey(m) || len(nonMetaKeys(m)) == 0
}

// looksLikeToken reports whether a child value is token-shaped: an object
// carrying a value key or a $type. Used by the structure pass to spot nested
// clusters.
func looksLikeToken(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if hasValueKey(m) {
		return true
	}
	_, ok = m["$type"]
	return ok
}

// groupType reads a group's default token type from $type (or legacy type).
// Unrecognized strings are ignored here; the token-level walk reports them.
func groupType(m map[string]any) TokenType {
	if s, ok := m["$type"].(string); ok {
		if t, ok := ParseTokenType(s); ok {
			return t
		}
	}
	if s, ok := m["type"].(string); ok {
		if t, ok := ParseTokenType(s); ok {
			return t
		}
	}
	return ""
}

// numberValue coerces the numeric shapes JSON and YAML decoders produce.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
