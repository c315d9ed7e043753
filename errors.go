package tokenlint

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidRoot   = "invalid_root"
	CodeEmptyDocument = "empty_document"
	CodeMissingSchema = "missing_schema"
	CodeUnknownKey    = "unknown_key"
	CodeInvalidGroup  = "invalid_group"
	CodeInvalidBrand  = "invalid_brand"
	CodeInvalidNode   = "invalid_node"
	CodeMaxDepth      = "max_depth"

	// Token-level codes.
	CodeMissingValue   = "missing_value"
	CodeLegacyValueKey = "legacy_value_key"
	CodeLegacyTypeKey  = "legacy_type_key"
	CodeMissingType    = "missing_type"
	CodeUnknownType    = "unknown_type"
	CodeInvalidType    = "invalid_type"

	// Value-level codes.
	CodeInvalidHex         = "invalid_hex"
	CodeUnknownColorFormat = "unknown_color_format"
	CodeInvalidDimension   = "invalid_dimension"
	CodeNonStandardUnit    = "non_standard_unit"
	CodeOutOfRange         = "out_of_range"
	CodeInvalidEnum        = "invalid_enum"
	CodeMissingField       = "missing_field"
	CodeInvalidDuration    = "invalid_duration"
	CodeTimingFunction     = "timing_function"

	// Structure and fix codes.
	CodeNestedTokens = "nested_tokens"
	CodeFixConflict  = "fix_conflict"
	CodeFixPath      = "fix_path"
	CodeParseError   = "parse_error"
)

// Severity expresses the severity level for issues. Only warnings and errors
// are reported; warnings never flip a document to invalid.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// MarshalJSON renders the severity as its string form for report consumers.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Issue represents a single validation entry.
type Issue struct {
	Path     string   `json:"path"` // Dot path rooted at $ (for example: $.colors.primary).
	Code     string   `json:"code"` // One of the codes listed above.
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Hint     string   `json:"hint,omitempty"` // Optional: remediation hints, format names, etc.
	// SuggestedFix optionally carries a concrete replacement the caller can show
	// next to the diagnostic.
	SuggestedFix string `json:"suggestedFix,omitempty"`
	// ActualStructure/CorrectExample render the offending shape beside a
	// conformant one. Best-effort, intended for UI surfaces.
	ActualStructure string `json:"actualStructure,omitempty"`
	CorrectExample  string `json:"correctExample,omitempty"`
	// Params carries structured parameters (e.g., {"got":"#ZZZ"}) for i18n and
	// observability.
	Params map[string]any `json:"params,omitempty"`
}

// Issues is a collection of validation entries that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_hex at $.colors.primary
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
