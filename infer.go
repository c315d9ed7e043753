package tokenlint

import (
	"strconv"
	"strings"
)

// InferType guesses a token's type from its raw value when $type is absent.
// String heuristics run pattern matches; numeric values in [0, 1] read as
// opacity, other numbers as plain numbers. The second return is false when no
// heuristic matches, in which case callers leave the token untyped.
func InferType(v any) (TokenType, bool) {
	switch t := v.(type) {
	case string:
		if strings.HasPrefix(t, "#") || strings.HasPrefix(t, "rgb") {
			return TypeColor, true
		}
		if durationRe.MatchString(t) {
			return TypeDuration, true
		}
		if dimensionRe.MatchString(t) {
			return TypeDimension, true
		}
		if numericStringRe.MatchString(t) {
			f, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return "", false
			}
			return inferNumeric(f), true
		}
		return "", false
	default:
		if f, ok := numberValue(v); ok {
			return inferNumeric(f), true
		}
	}
	return "", false
}

func inferNumeric(f float64) TokenType {
	if f >= 0 && f <= 1 {
		return TypeOpacity
	}
	return TypeNumber
}
