package tokenlint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tokenlint/tokenlint/i18n"
)

var (
	hexDigitsRe = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	// Standard dimension units. Strings with other parseable units are warned,
	// not rejected.
	dimensionRe      = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)(px|rem|em|%|vh|vw|vmin|vmax|pt|cm|mm|in|pc|ch)$`)
	looseDimensionRe = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)([a-zA-Z%]+)$`)
	durationRe       = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)(ms|s)$`)
	numericStringRe  = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)$`)
)

var (
	textCaseValues       = []string{"none", "uppercase", "lowercase", "capitalize"}
	textDecorationValues = []string{"none", "underline", "line-through", "overline"}
	strokeStyleValues    = []string{"solid", "dashed", "dotted", "double", "groove", "ridge", "outset", "inset"}
	lineCapValues        = []string{"round", "butt", "square"}
)

// validateValue dispatches on the closed type vocabulary. The switch is
// exhaustive over TokenType; unrecognized $type strings never reach here
// (resolveTokenType warns and bails first).
func (r *report) validateValue(groupName, tokenName, path string, tt TokenType, val any) {
	switch tt {
	case TypeColor:
		r.validateColor(path, val)
	case TypeDimension:
		r.validateDimension(path, val, false)
	case TypeFontSize, TypeFontWeight, TypeLineHeight, TypeLetterSpacing,
		TypeParagraphSpacing, TypeBorderRadius:
		// Dimension-shaped derivatives. Bare numbers are fine here
		// (fontWeight 700, lineHeight 1.5).
		r.validateDimension(path, val, true)
	case TypeNumber:
		if _, ok := numberValue(val); !ok {
			r.errorAt(path, CodeInvalidType, withHint("number tokens require a numeric $value"))
		}
	case TypeOpacity:
		r.validateOpacity(path, val)
	case TypeFontFamily:
		r.validateFontFamily(path, val)
	case TypeDuration:
		r.validateDuration(path, val)
	case TypeTextCase:
		r.validateEnum(path, val, textCaseValues)
	case TypeTextDecoration:
		r.validateEnum(path, val, textDecorationValues)
	case TypeTypography:
		r.validateTypography(path, val)
	case TypeShadow:
		r.validateShadow(path, val)
	case TypeGradient:
		r.validateGradient(path, val)
	case TypeBorder:
		r.validateBorder(path, val)
	case TypeStrokeStyle:
		r.validateStrokeStyle(path, val)
	case TypeTransition:
		r.validateTransition(path, val)
	case TypeCubicBezier:
		r.validateCubicBezier(path, val)
	}
}

func (r *report) validateColor(path string, v any) {
	switch c := v.(type) {
	case string:
		if strings.HasPrefix(c, "#") {
			digits := c[1:]
			switch len(digits) {
			case 3, 6, 8:
				if !hexDigitsRe.MatchString(digits) {
					r.invalidHex(path, c)
				}
			default:
				r.invalidHex(path, c)
			}
			return
		}
		if strings.HasPrefix(c, "rgb") {
			return
		}
		r.warnAt(path, CodeUnknownColorFormat,
			withMessage(i18n.T(CodeUnknownColorFormat, nil)+": "+c),
			withHint("use a hex string or a {colorSpace, channels} object"),
			withExample("#E00069"))
	case map[string]any:
		if _, ok := c["colorSpace"]; !ok {
			r.missingField(path, "colorSpace")
		}
		ch, ok := c["channels"]
		if !ok {
			r.missingField(path, "channels")
			return
		}
		if _, ok := ch.([]any); !ok {
			r.errorAt(joinPath(path, "channels"), CodeInvalidType,
				withHint("channels must be an array of numbers"))
		}
	default:
		r.errorAt(path, CodeInvalidType,
			withHint("color tokens take a hex string or a {colorSpace, channels} object"),
			withExample("#E00069"))
	}
}

func (r *report) invalidHex(path, got string) {
	r.errorAt(path, CodeInvalidHex,
		withMessage(i18n.T(CodeInvalidHex, nil)+": "+got),
		withHint("hex colors must be #RGB, #RRGGBB or #RRGGBBAA"),
		withExample("#E00069"),
		withParams(map[string]any{"got": got}))
}

func (r *report) validateDimension(path string, v any, allowBare bool) {
	switch d := v.(type) {
	case string:
		if dimensionRe.MatchString(d) {
			return
		}
		if looseDimensionRe.MatchString(d) {
			r.warnAt(path, CodeNonStandardUnit,
				withMessage(i18n.T(CodeNonStandardUnit, nil)+": "+d),
				withHint("standard units: px, rem, em, %, vh, vw, vmin, vmax, pt, cm, mm, in, pc, ch"))
			return
		}
		r.errorAt(path, CodeInvalidDimension,
			withMessage(i18n.T(CodeInvalidDimension, nil)+": "+d),
			withExample("16px"))
	case map[string]any:
		if _, ok := d["value"]; !ok {
			r.missingField(path, "value")
		} else if _, ok := numberValue(d["value"]); !ok {
			r.errorAt(joinPath(path, "value"), CodeInvalidType, withHint("value must be numeric"))
		}
		if _, ok := d["unit"]; !ok {
			r.missingField(path, "unit")
		} else if _, ok := d["unit"].(string); !ok {
			r.errorAt(joinPath(path, "unit"), CodeInvalidType, withHint("unit must be a string"))
		}
	default:
		if allowBare {
			if _, ok := numberValue(v); ok {
				return
			}
		}
		r.errorAt(path, CodeInvalidDimension,
			withHint(`use "<number><unit>" or a {value, unit} object`),
			withExample("16px"))
	}
}

func (r *report) validateOpacity(path string, v any) {
	f, ok := numberValue(v)
	if !ok {
		r.errorAt(path, CodeInvalidType, withHint("opacity tokens require a numeric $value"))
		return
	}
	if f < 0 || f > 1 {
		r.errorAt(path, CodeOutOfRange,
			withMessage(fmt.Sprintf("%s: opacity %v outside [0, 1]", i18n.T(CodeOutOfRange, nil), f)),
			withParams(map[string]any{"got": f, "min": 0, "max": 1}))
	}
}

func (r *report) validateFontFamily(path string, v any) {
	switch f := v.(type) {
	case string:
	case []any:
		for i, e := range f {
			if _, ok := e.(string); !ok {
				r.errorAt(joinPath(path, fmt.Sprintf("%d", i)), CodeInvalidType,
					withHint("fontFamily entries must be strings"))
			}
		}
	default:
		r.errorAt(path, CodeInvalidType,
			withHint("fontFamily takes a string or an array of strings"),
			withExample(`["Inter", "sans-serif"]`))
	}
}

func (r *report) validateDuration(path string, v any) {
	if _, ok := numberValue(v); ok {
		return // implicitly milliseconds
	}
	if s, ok := v.(string); ok && durationRe.MatchString(s) {
		return
	}
	r.errorAt(path, CodeInvalidDuration,
		withHint(`use a number (milliseconds) or "<number>ms"/"<number>s"`),
		withExample("200ms"))
}

func (r *report) validateEnum(path string, v any, allowed []string) {
	s, ok := v.(string)
	if ok {
		for _, a := range allowed {
			if s == a {
				return
			}
		}
	}
	r.errorAt(path, CodeInvalidEnum,
		withMessage(fmt.Sprintf("%s: %v", i18n.T(CodeInvalidEnum, nil), v)),
		withHint("allowed: "+strings.Join(allowed, ", ")))
}

func (r *report) validateTypography(path string, v any) {
	m, ok := v.(map[string]any)
	if !ok {
		r.errorAt(path, CodeInvalidType, withHint("typography tokens take an object value"))
		return
	}
	for _, req := range []string{"fontFamily", "fontSize", "fontWeight", "lineHeight"} {
		if _, ok := m[req]; !ok {
			r.missingField(path, req)
		}
	}
	if f, ok := m["fontFamily"]; ok {
		r.validateFontFamily(joinPath(path, "fontFamily"), f)
	}
	for _, dim := range []string{"fontSize", "fontWeight", "lineHeight", "letterSpacing", "paragraphSpacing"} {
		if d, ok := m[dim]; ok {
			r.validateDimension(joinPath(path, dim), d, true)
		}
	}
	if tc, ok := m["textCase"]; ok {
		r.validateEnum(joinPath(path, "textCase"), tc, textCaseValues)
	}
	if td, ok := m["textDecoration"]; ok {
		r.validateEnum(joinPath(path, "textDecoration"), td, textDecorationValues)
	}
}

func (r *report) validateShadow(path string, v any) {
	var layers []any
	switch s := v.(type) {
	case []any:
		layers = s
	case map[string]any:
		layers = []any{s} // single layer shorthand
	default:
		r.errorAt(path, CodeInvalidType,
			withHint("shadow tokens take an object or an array of objects"))
		return
	}
	for i, layer := range layers {
		lp := path
		if len(layers) > 1 {
			lp = joinPath(path, fmt.Sprintf("%d", i))
		}
		lm, ok := layer.(map[string]any)
		if !ok {
			r.errorAt(lp, CodeInvalidType, withHint("each shadow layer must be an object"))
			continue
		}
		for _, req := range []string{"color", "offsetX", "offsetY", "blur"} {
			if _, ok := lm[req]; !ok {
				r.missingField(lp, req)
			}
		}
		if c, ok := lm["color"]; ok {
			r.validateColor(joinPath(lp, "color"), c)
		}
		for _, dim := range []string{"offsetX", "offsetY", "blur", "spread"} {
			if d, ok := lm[dim]; ok {
				r.validateDimension(joinPath(lp, dim), d, true)
			}
		}
	}
}

func (r *report) validateGradient(path string, v any) {
	m, ok := v.(map[string]any)
	if !ok {
		r.errorAt(path, CodeInvalidType, withHint("gradient tokens take an object value"))
		return
	}
	stops, ok := m["stops"]
	if !ok {
		r.missingField(path, "stops")
		return
	}
	arr, ok := stops.([]any)
	if !ok || len(arr) == 0 {
		r.errorAt(joinPath(path, "stops"), CodeInvalidType,
			withHint("stops must be a non-empty array"))
	}
}

func (r *report) validateBorder(path string, v any) {
	m, ok := v.(map[string]any)
	if !ok {
		r.errorAt(path, CodeInvalidType, withHint("border tokens take an object value"))
		return
	}
	for _, req := range []string{"color", "width", "style"} {
		if _, ok := m[req]; !ok {
			r.missingField(path, req)
		}
	}
	if c, ok := m["color"]; ok {
		r.validateColor(joinPath(path, "color"), c)
	}
	if w, ok := m["width"]; ok {
		r.validateDimension(joinPath(path, "width"), w, true)
	}
	if s, ok := m["style"]; ok {
		r.validateStrokeStyle(joinPath(path, "style"), s)
	}
}

func (r *report) validateStrokeStyle(path string, v any) {
	switch s := v.(type) {
	case string:
		r.validateEnum(path, s, strokeStyleValues)
	case map[string]any:
		da, ok := s["dashArray"]
		if !ok {
			r.missingField(path, "dashArray")
		} else if _, ok := da.([]any); !ok {
			r.errorAt(joinPath(path, "dashArray"), CodeInvalidType,
				withHint("dashArray must be an array of dimensions"))
		}
		lc, ok := s["lineCap"]
		if !ok {
			r.missingField(path, "lineCap")
		} else {
			r.validateEnum(joinPath(path, "lineCap"), lc, lineCapValues)
		}
	default:
		r.errorAt(path, CodeInvalidType,
			withHint("strokeStyle takes an enum string or a {dashArray, lineCap} object"))
	}
}

func (r *report) validateTransition(path string, v any) {
	m, ok := v.(map[string]any)
	if !ok {
		r.errorAt(path, CodeInvalidType, withHint("transition tokens take an object value"))
		return
	}
	d, ok := m["duration"]
	if !ok {
		r.missingField(path, "duration")
	} else {
		r.validateDuration(joinPath(path, "duration"), d)
	}
	if delay, ok := m["delay"]; ok {
		r.validateDuration(joinPath(path, "delay"), delay)
	}
	if tf, ok := m["timingFunction"]; ok && !isCubicBezierShaped(tf) {
		r.warnAt(joinPath(path, "timingFunction"), CodeTimingFunction,
			withHint("timingFunction should be a cubicBezier value ([x1, y1, x2, y2])"))
	}
}

// isCubicBezierShaped accepts either a bare 4-number array or a nested token
// explicitly typed cubicBezier.
func isCubicBezierShaped(v any) bool {
	if arr, ok := v.([]any); ok {
		return isFourNumbers(arr)
	}
	if m, ok := v.(map[string]any); ok {
		if t, _ := m["$type"].(string); t == string(TypeCubicBezier) {
			return true
		}
	}
	return false
}

func isFourNumbers(arr []any) bool {
	if len(arr) != 4 {
		return false
	}
	for _, e := range arr {
		if _, ok := numberValue(e); !ok {
			return false
		}
	}
	return true
}

func (r *report) validateCubicBezier(path string, v any) {
	arr, ok := v.([]any)
	if !ok {
		// A nested token object carrying the array under $value is tolerated.
		if m, isMap := v.(map[string]any); isMap {
			if inner, ok := m["$value"].([]any); ok {
				arr = inner
			} else {
				r.errorAt(path, CodeInvalidType, withHint("cubicBezier takes an array of exactly 4 numbers"))
				return
			}
		} else {
			r.errorAt(path, CodeInvalidType, withHint("cubicBezier takes an array of exactly 4 numbers"))
			return
		}
	}
	if !isFourNumbers(arr) {
		r.errorAt(path, CodeInvalidType,
			withHint("cubicBezier takes an array of exactly 4 numbers"),
			withExample("[0.4, 0, 0.2, 1]"))
	}
}

func (r *report) missingField(path, field string) {
	r.errorAt(path, CodeMissingField,
		withMessage(i18n.T(CodeMissingField, nil)+": "+field),
		withParams(map[string]any{"field": field}))
}
