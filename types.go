package tokenlint

import (
	"strconv"
	"strings"
)

// TokenType is the closed vocabulary of token value types. The set is fixed;
// callers cannot extend it. Dispatch over TokenType is by exhaustive switch so
// that adding a variant forces every handler to be revisited.
type TokenType string

const (
	TypeColor            TokenType = "color"
	TypeDimension        TokenType = "dimension"
	TypeNumber           TokenType = "number"
	TypeOpacity          TokenType = "opacity"
	TypeFontFamily       TokenType = "fontFamily"
	TypeFontSize         TokenType = "fontSize"
	TypeFontWeight       TokenType = "fontWeight"
	TypeLineHeight       TokenType = "lineHeight"
	TypeLetterSpacing    TokenType = "letterSpacing"
	TypeParagraphSpacing TokenType = "paragraphSpacing"
	TypeDuration         TokenType = "duration"
	TypeBorderRadius     TokenType = "borderRadius"
	TypeTextCase         TokenType = "textCase"
	TypeTextDecoration   TokenType = "textDecoration"
	TypeTypography       TokenType = "typography"
	TypeShadow           TokenType = "shadow"
	TypeGradient         TokenType = "gradient"
	TypeBorder           TokenType = "border"
	TypeStrokeStyle      TokenType = "strokeStyle"
	TypeTransition       TokenType = "transition"
	TypeCubicBezier      TokenType = "cubicBezier"
)

var tokenTypes = []TokenType{
	TypeColor, TypeDimension, TypeNumber, TypeOpacity,
	TypeFontFamily, TypeFontSize, TypeFontWeight, TypeLineHeight,
	TypeLetterSpacing, TypeParagraphSpacing,
	TypeDuration, TypeBorderRadius,
	TypeTextCase, TypeTextDecoration,
	TypeTypography, TypeShadow, TypeGradient, TypeBorder,
	TypeStrokeStyle, TypeTransition, TypeCubicBezier,
}

// TokenTypes returns the recognized token-type vocabulary in stable order.
func TokenTypes() []TokenType {
	out := make([]TokenType, len(tokenTypes))
	copy(out, tokenTypes)
	return out
}

// ParseTokenType maps a raw $type string onto the vocabulary.
func ParseTokenType(s string) (TokenType, bool) {
	for _, t := range tokenTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

func tokenTypeNames() string {
	names := make([]string, len(tokenTypes))
	for i, t := range tokenTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Reserved keys recognized at the document root. `brand` is a metadata block
// validated separately from the token groups.
var rootReservedKeys = map[string]bool{
	"$schema":      true,
	"$id":          true,
	"$description": true,
	"$extensions":  true,
	"$type":        true,
}

const brandKey = "brand"

// Wrapper keys collapsed into their parent by AutoFix when they are the sole
// non-$ child.
var wrapperKeys = map[string]bool{
	"DEFAULT": true,
	"default": true,
	"base":    true,
	"value":   true,
}

// Dimension is the structured form of a dimension value.
type Dimension struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// String re-serializes the dimension into its compact string form ("16px").
func (d Dimension) String() string {
	return strconv.FormatFloat(d.Value, 'f', -1, 64) + d.Unit
}

// Options bundles validation and normalization options.
type Options struct {
	// MaxDepth aborts the walk with a max_depth error below the given nesting
	// depth. Zero means unlimited; plain JSON is acyclic so the guard is only
	// useful on hostile input.
	MaxDepth int
	// FailFast stops the walk at the first error (warnings do not trip it).
	FailFast bool
	// KebabKeys makes AutoFix rewrite group and token keys to kebab-case.
	KebabKeys bool
}

func firstOpt(opts []Options) Options {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return Options{}
}
