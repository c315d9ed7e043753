package tokenlint

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/tokenlint/tokenlint/internal/jsonutil"
)

// AutoFix is the unconditional whole-tree rewrite behind one-click "fix
// everything": wrapper keys collapse into their parent, legacy value/type keys
// rename, raw values convert to structured shapes, $type is assigned from the
// explicit/legacy/inherited/inferred chain, and bare primitive leaves are
// wrapped into proper tokens. The input is never mutated. Re-running AutoFix
// on its own output is a no-op.
func AutoFix(doc any, opts ...Options) any {
	opt := firstOpt(opts)
	root, ok := doc.(map[string]any)
	if !ok {
		return jsonutil.Clone(doc)
	}
	out := jsonutil.CloneMap(root)
	for _, key := range documentGroups(out) {
		gm, ok := out[key].(map[string]any)
		if !ok {
			continue
		}
		fixed := autoFixNode(gm, groupType(gm))
		delete(out, key)
		nk := key
		if opt.KebabKeys {
			nk = kebabKey(key)
		}
		out[nk] = fixed
	}
	if opt.KebabKeys {
		for _, key := range documentGroups(out) {
			if gm, ok := out[key].(map[string]any); ok {
				kebabGroupKeys(gm)
			}
		}
	}
	return out
}

func autoFixNode(m map[string]any, parentType TokenType) map[string]any {
	// Collapse single-child wrapper keys (DEFAULT/default/base/value) into the
	// parent. Loops in case the wrapped child is itself a wrapper.
	for {
		keys := nonMetaKeys(m)
		if len(keys) != 1 || !wrapperKeys[keys[0]] {
			break
		}
		cm, ok := m[keys[0]].(map[string]any)
		if !ok {
			break // legacy {value: <scalar>} is a token, not a wrapper
		}
		merged := make(map[string]any, len(m)+len(cm))
		for k, v := range m {
			if k != keys[0] {
				merged[k] = v
			}
		}
		for k, v := range cm {
			merged[k] = v
		}
		m = merged
	}

	if isTokenNode(m) {
		return autoFixToken(m, parentType)
	}

	gt := groupType(m)
	if gt == "" {
		gt = parentType
	}
	for _, k := range nonMetaKeys(m) {
		switch child := m[k].(type) {
		case map[string]any:
			m[k] = autoFixNode(child, gt)
		default:
			// Bare primitive (or array) leaf inside a group: wrap it into a
			// proper token before the usual token rewrite.
			m[k] = autoFixToken(map[string]any{"$value": child}, gt)
		}
	}
	return m
}

func autoFixToken(tok map[string]any, parentType TokenType) map[string]any {
	if v, ok := tok["value"]; ok {
		if _, ok := tok["$value"]; !ok {
			tok["$value"] = v
		}
		delete(tok, "value")
	}
	if t, ok := tok["type"]; ok {
		if _, ok := tok["$type"]; !ok {
			tok["$type"] = t
		}
		delete(tok, "type")
	}

	tt := ""
	if s, ok := tok["$type"].(string); ok {
		tt = s
	}
	if tt == "" && parentType != "" {
		tt = string(parentType)
	}
	val := tok["$value"]
	if tt == "" {
		if inferred, ok := InferType(val); ok {
			tt = string(inferred)
		}
	}
	if tt != "" {
		tok["$type"] = tt
	}

	switch TokenType(tt) {
	case TypeColor:
		if s, ok := val.(string); ok {
			if obj, ok := ConvertToColorObject(s); ok {
				tok["$value"] = obj
			}
		}
	case TypeDimension, TypeFontSize, TypeFontWeight, TypeLineHeight,
		TypeLetterSpacing, TypeParagraphSpacing, TypeBorderRadius:
		if s, ok := val.(string); ok {
			if d, ok := ParseDimension(s); ok {
				tok["$value"] = map[string]any{"value": d.Value, "unit": d.Unit}
			}
		}
	case TypeNumber, TypeOpacity:
		if s, ok := val.(string); ok && numericStringRe.MatchString(s) {
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				tok["$value"] = f
			}
		}
	}
	return tok
}

// ConvertToColorObject converts a hex color string into the structured
// {colorSpace, channels} shape, channels scaled to [0, 1] and rounded to three
// decimals. #RRGGBBAA adds an alpha field. Non-hex strings return false.
func ConvertToColorObject(hex string) (map[string]any, bool) {
	if !strings.HasPrefix(hex, "#") {
		return nil, false
	}
	digits := hex[1:]
	if !hexDigitsRe.MatchString(digits) {
		return nil, false
	}
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	if len(digits) != 6 && len(digits) != 8 {
		return nil, false
	}
	channel := func(i int) float64 {
		b, _ := strconv.ParseUint(digits[i:i+2], 16, 16)
		return round3(float64(b) / 255)
	}
	obj := map[string]any{
		"colorSpace": "srgb",
		"channels":   []any{channel(0), channel(2), channel(4)},
		"hex":        hex,
	}
	if len(digits) == 8 {
		obj["alpha"] = channel(6)
	}
	return obj, true
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}

var parseDimensionRe = regexp.MustCompile(`^(-?(?:\d+(?:\.\d+)?|\.\d+))(px|rem|em|%|vh|vw|vmin|vmax|pt|cm|mm|in|pc|ch)$`)

// ParseDimension parses a standard-unit dimension string into its structured
// form. Strings with non-standard units return false and are left alone.
func ParseDimension(s string) (Dimension, bool) {
	m := parseDimensionRe.FindStringSubmatch(s)
	if m == nil {
		return Dimension{}, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Dimension{}, false
	}
	return Dimension{Value: v, Unit: m[2]}, true
}

// kebabGroupKeys renames group and token keys to kebab-case in place. Token
// internals ($value fields like colorSpace) are left untouched.
func kebabGroupKeys(node map[string]any) {
	for _, k := range nonMetaKeys(node) {
		child := node[k]
		nk := kebabKey(k)
		if nk != k {
			delete(node, k)
			node[nk] = child
		}
		cm, ok := child.(map[string]any)
		if !ok || isTokenNode(cm) {
			continue
		}
		kebabGroupKeys(cm)
	}
}

func kebabKey(k string) string {
	return strcase.ToKebab(k)
}
