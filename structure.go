package tokenlint

import (
	"fmt"
	"strings"

	"github.com/tokenlint/tokenlint/i18n"
	"github.com/tokenlint/tokenlint/internal/jsonutil"
)

// analyzeStructure is the pre-validation pass over a top-level group. A child
// lacking a value key whose own children look like tokens is a nested cluster;
// it is flagged with a synthesized hyphen-joined replacement instead of being
// silently recursed into. Ordinary subgroups recurse.
func (r *report) analyzeStructure(node map[string]any, path string) {
	for _, key := range nonMetaKeys(node) {
		cm, ok := node[key].(map[string]any)
		if !ok {
			continue // the token walk reports non-object entries
		}
		if hasValueKey(cm) {
			continue
		}
		kids := nonMetaKeys(cm)
		if len(kids) == 0 {
			continue // empty object: token missing its value, reported later
		}
		var nested []string
		for _, kk := range kids {
			if looksLikeToken(cm[kk]) {
				nested = append(nested, kk)
			}
		}
		if len(nested) == 0 {
			r.analyzeStructure(cm, joinPath(path, key))
			continue
		}
		r.structure = append(r.structure, newNestedTokensIssue(joinPath(path, key), key, cm, nested))
	}
}

// newNestedTokensIssue builds the structure issue together with its flattened
// replacement: every child of the cluster re-keyed as "<cluster>-<child>" at
// the parent group's level, values untouched.
func newNestedTokensIssue(path, key string, cluster map[string]any, nested []string) StructureIssue {
	flattened := make(map[string]any, len(cluster))
	for _, kk := range nonMetaKeys(cluster) {
		flattened[key+"-"+kk] = jsonutil.Clone(cluster[kk])
	}
	return StructureIssue{
		Path:    path,
		Issue:   IssueNestedTokens,
		Message: i18n.T(CodeNestedTokens, nil),
		Description: fmt.Sprintf(
			"%q is group-shaped but its children (%s) are tokens; the format expects tokens as direct group members",
			key, strings.Join(nested, ", ")),
		Suggestion: fmt.Sprintf("flatten into sibling tokens: %s",
			strings.Join(flattenedKeys(key, cluster), ", ")),
		OriginalStructure:  jsonutil.CloneMap(cluster),
		FlattenedStructure: flattened,
		NestedTokens:       nested,
		FixType:            FixFlatten,
		AutoFixable:        true,
	}
}

func flattenedKeys(key string, cluster map[string]any) []string {
	kids := nonMetaKeys(cluster)
	out := make([]string, len(kids))
	for i, kk := range kids {
		out[i] = key + "-" + kk
	}
	return out
}
