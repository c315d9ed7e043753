package tokenlint

import "fmt"

// StructureIssue reports a nested-token cluster: a group-shaped node whose
// children are themselves tokens. It is produced by the structure pass,
// independent of the error/warning lists, and feeds the flatten fix.
type StructureIssue struct {
	Path        string `json:"path"`
	Issue       string `json:"issue"` // Always IssueNestedTokens today.
	Message     string `json:"message"`
	Description string `json:"description"`
	Suggestion  string `json:"suggestion"`
	// OriginalStructure is the offending node; FlattenedStructure is the
	// hyphen-joined replacement merged into the parent group by the fix.
	OriginalStructure  map[string]any `json:"originalStructure"`
	FlattenedStructure map[string]any `json:"flattenedStructure"`
	NestedTokens       []string       `json:"nestedTokens"`
	FixType            string         `json:"fixType"`
	AutoFixable        bool           `json:"autoFixable"`
}

// IssueNestedTokens is the only structure-issue kind currently produced.
const IssueNestedTokens = "NESTED_TOKENS"

// Fix kinds.
const (
	FixAddType = "add-type"
	FixFlatten = "flatten"
)

// Fix is an addressable patch derived from a diagnostic. Approved defaults to
// false; ApplyApprovedFixes only touches fixes the caller flipped to true.
type Fix struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // FixAddType or FixFlatten.
	Path        string `json:"path"`
	Description string `json:"description"`
	Before      any    `json:"before"`
	After       any    `json:"after"`
	Approved    bool   `json:"approved"`
}

// Result is a full validation report. It is recomputed from scratch on every
// Validate call; nothing in it aliases the input document.
type Result struct {
	Valid           bool             `json:"valid"`
	Errors          Issues           `json:"errors"`
	Warnings        Issues           `json:"warnings"`
	StructureIssues []StructureIssue `json:"structureIssues"`
}

// Summary renders a compact one-line description of the report.
func (r Result) Summary() string {
	if r.Valid && len(r.Warnings) == 0 && len(r.StructureIssues) == 0 {
		return "valid"
	}
	state := "valid"
	if !r.Valid {
		state = "invalid"
	}
	return fmt.Sprintf("%s: %d errors, %d warnings, %d structure issues",
		state, len(r.Errors), len(r.Warnings), len(r.StructureIssues))
}
