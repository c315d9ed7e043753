package tokenlint

import (
	"github.com/tokenlint/tokenlint/i18n"
	"github.com/tokenlint/tokenlint/internal/jsonutil"
)

// FixableIssues walks the document collecting addressable patches: add-type
// fixes for tokens whose type can be inferred, flatten fixes for every nested
// cluster found by the structure pass. Every fix starts unapproved.
func FixableIssues(doc any) []Fix {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	var fixes []Fix
	for _, name := range documentGroups(root) {
		gm, ok := root[name].(map[string]any)
		if !ok {
			continue
		}
		collectAddTypeFixes(&fixes, gm, joinPath(rootPath, name), groupType(gm))
	}
	for _, si := range Validate(doc).StructureIssues {
		fixes = append(fixes, Fix{
			ID:          FixFlatten + ":" + si.Path,
			Type:        FixFlatten,
			Path:        si.Path,
			Description: si.Suggestion,
			Before:      si.OriginalStructure,
			After:       si.FlattenedStructure,
		})
	}
	return fixes
}

func collectAddTypeFixes(fixes *[]Fix, node map[string]any, path string, inherited TokenType) {
	for _, key := range nonMetaKeys(node) {
		cm, ok := node[key].(map[string]any)
		if !ok {
			continue
		}
		childPath := joinPath(path, key)
		if !isTokenNode(cm) {
			sub := inherited
			if gt := groupType(cm); gt != "" {
				sub = gt
			}
			collectAddTypeFixes(fixes, cm, childPath, sub)
			continue
		}
		if _, ok := cm["$type"]; ok {
			continue
		}
		if _, ok := cm["type"]; ok {
			continue
		}
		if inherited != "" {
			continue // group default covers it
		}
		val, _, ok := tokenValue(cm)
		if !ok {
			continue
		}
		tt, ok := InferType(val)
		if !ok {
			continue
		}
		after := jsonutil.CloneMap(cm)
		after["$type"] = string(tt)
		*fixes = append(*fixes, Fix{
			ID:          FixAddType + ":" + childPath,
			Type:        FixAddType,
			Path:        childPath,
			Description: `set "$type": "` + string(tt) + `"`,
			Before:      jsonutil.CloneMap(cm),
			After:       after,
		})
	}
}

// ApplyApprovedFixes deep-copies the document and applies the approved subset.
// Approved fixes with overlapping paths are rejected up front with a
// fix_conflict error; their application order would otherwise be undefined.
func ApplyApprovedFixes(doc any, fixes []Fix) (any, error) {
	var approved []Fix
	for _, fx := range fixes {
		if fx.Approved {
			approved = append(approved, fx)
		}
	}
	for i := 0; i < len(approved); i++ {
		for k := i + 1; k < len(approved); k++ {
			if pathsOverlap(approved[i].Path, approved[k].Path) {
				return nil, Issues{{
					Path:     approved[k].Path,
					Code:     CodeFixConflict,
					Severity: SeverityError,
					Message:  i18n.T(CodeFixConflict, nil),
					Hint:     "approve at most one fix per subtree, then re-collect",
					Params:   map[string]any{"conflictsWith": approved[i].Path},
				}}
			}
		}
	}

	out := jsonutil.Clone(doc)
	for _, fx := range approved {
		if err := applyFix(out, fx); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func applyFix(doc any, fx Fix) error {
	segs := splitPath(fx.Path)
	switch fx.Type {
	case FixAddType:
		node, ok := resolveMap(doc, segs)
		if !ok {
			return fixPathError(fx)
		}
		after, ok := fx.After.(map[string]any)
		if !ok {
			return fixPathError(fx)
		}
		tt, ok := after["$type"]
		if !ok {
			return fixPathError(fx)
		}
		node["$type"] = tt
		return nil
	case FixFlatten:
		if len(segs) == 0 {
			return fixPathError(fx)
		}
		parent, ok := resolveMap(doc, segs[:len(segs)-1])
		if !ok {
			return fixPathError(fx)
		}
		after, ok := fx.After.(map[string]any)
		if !ok {
			return fixPathError(fx)
		}
		delete(parent, segs[len(segs)-1])
		for k, v := range after {
			parent[k] = jsonutil.Clone(v)
		}
		return nil
	default:
		return fixPathError(fx)
	}
}

func fixPathError(fx Fix) error {
	return Issues{{
		Path:     fx.Path,
		Code:     CodeFixPath,
		Severity: SeverityError,
		Message:  i18n.T(CodeFixPath, nil),
		Params:   map[string]any{"fix": fx.ID, "type": fx.Type},
	}}
}
