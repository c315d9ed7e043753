package tokenlint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenlint "github.com/tokenlint/tokenlint"
)

func TestStructure_NestedTokensDetected(t *testing.T) {
	doc := map[string]any{
		"colors": map[string]any{
			"brand": map[string]any{
				"hover": map[string]any{"$value": "#111", "$type": "color"},
			},
		},
	}
	res := tokenlint.Validate(doc)
	require.Len(t, res.StructureIssues, 1)
	si := res.StructureIssues[0]
	assert.Equal(t, "$.colors.brand", si.Path)
	assert.Equal(t, tokenlint.IssueNestedTokens, si.Issue)
	assert.Equal(t, tokenlint.FixFlatten, si.FixType)
	assert.True(t, si.AutoFixable)
	assert.Equal(t, []string{"hover"}, si.NestedTokens)
	require.Contains(t, si.FlattenedStructure, "brand-hover")

	// The nested token itself still validates: no errors here.
	assert.True(t, res.Valid)
}

func TestStructure_TokensDirectlyUnderGroupAreFine(t *testing.T) {
	doc := map[string]any{
		"colors": map[string]any{
			"primary":   map[string]any{"$value": "#E00069", "$type": "color"},
			"secondary": map[string]any{"$value": "#0069E0", "$type": "color"},
		},
	}
	res := tokenlint.Validate(doc)
	assert.Empty(t, res.StructureIssues)
}

func TestStructure_DeepClusterFlaggedAtItsParent(t *testing.T) {
	doc := map[string]any{
		"colors": map[string]any{
			"brand": map[string]any{
				"primary": map[string]any{
					"hover": map[string]any{"$value": "#111", "$type": "color"},
				},
			},
		},
	}
	res := tokenlint.Validate(doc)
	require.Len(t, res.StructureIssues, 1)
	si := res.StructureIssues[0]
	assert.Equal(t, "$.colors.brand.primary", si.Path)
	assert.Contains(t, si.FlattenedStructure, "primary-hover")
}

func TestStructure_FlattenPreservesLeafValues(t *testing.T) {
	cluster := map[string]any{
		"hover":  map[string]any{"$value": "#111", "$type": "color"},
		"active": map[string]any{"$value": "#222", "$type": "color"},
		"focus":  map[string]any{"value": "#333"},
	}
	doc := map[string]any{"colors": map[string]any{"brand": cluster}}
	res := tokenlint.Validate(doc)
	require.Len(t, res.StructureIssues, 1)
	si := res.StructureIssues[0]

	collect := func(m map[string]any) map[string]bool {
		vals := map[string]bool{}
		for _, v := range m {
			tok, ok := v.(map[string]any)
			if !ok {
				continue
			}
			if s, ok := tok["$value"].(string); ok {
				vals[s] = true
			}
			if s, ok := tok["value"].(string); ok {
				vals[s] = true
			}
		}
		return vals
	}
	assert.Equal(t, collect(si.OriginalStructure), collect(si.FlattenedStructure))
	assert.ElementsMatch(t, []string{"active", "focus", "hover"}, si.NestedTokens)
}

func TestStructure_IssueStructuresAreCopies(t *testing.T) {
	doc := map[string]any{
		"colors": map[string]any{
			"brand": map[string]any{
				"hover": map[string]any{"$value": "#111", "$type": "color"},
			},
		},
	}
	res := tokenlint.Validate(doc)
	require.Len(t, res.StructureIssues, 1)
	res.StructureIssues[0].OriginalStructure["hover"].(map[string]any)["$value"] = "mutated"

	inner := doc["colors"].(map[string]any)["brand"].(map[string]any)["hover"].(map[string]any)
	assert.Equal(t, "#111", inner["$value"])
}

func TestStructure_MixedClusterFlattensEverything(t *testing.T) {
	// One token child is enough to flag the cluster; non-token children come
	// along into the flattened replacement.
	doc := map[string]any{
		"colors": map[string]any{
			"brand": map[string]any{
				"hover": map[string]any{"$value": "#111", "$type": "color"},
				"tints": map[string]any{
					"light": map[string]any{"$value": "#eee", "$type": "color"},
				},
			},
		},
	}
	res := tokenlint.Validate(doc)
	require.Len(t, res.StructureIssues, 1)
	si := res.StructureIssues[0]
	assert.Equal(t, []string{"hover"}, si.NestedTokens)
	assert.Contains(t, si.FlattenedStructure, "brand-hover")
	assert.Contains(t, si.FlattenedStructure, "brand-tints")
}
