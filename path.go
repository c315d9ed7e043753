package tokenlint

import "strings"

// Paths are dot-joined key chains rooted at "$", rebuilt positionally during
// the walk ($.colors.primary). Keys containing dots are not escaped; the token
// format does not use them.

const rootPath = "$"

func joinPath(parent, key string) string {
	return parent + "." + key
}

// splitPath returns the key segments below the root; "$" alone yields nil.
func splitPath(p string) []string {
	p = strings.TrimPrefix(p, rootPath)
	p = strings.TrimPrefix(p, ".")
	if p == "" {
		return nil
	}
	return strings.Split(p, ".")
}

// resolveMap walks doc down the given segments, requiring an object at every
// hop, and returns the map the final segment points at.
func resolveMap(doc any, segs []string) (map[string]any, bool) {
	cur, ok := doc.(map[string]any)
	if !ok {
		return nil, false
	}
	for _, seg := range segs {
		next, ok := cur[seg].(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// pathsOverlap reports whether one path is the other or an ancestor of it.
// Overlapping approved fixes have no defined application order and are
// rejected wholesale.
func pathsOverlap(a, b string) bool {
	if a == b {
		return true
	}
	return strings.HasPrefix(b, a+".") || strings.HasPrefix(a, b+".")
}
