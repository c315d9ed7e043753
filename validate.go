package tokenlint

import (
	"sort"
	"strings"

	"github.com/tokenlint/tokenlint/i18n"
)

// report is the per-call accumulator threaded through the walk. Nothing is
// kept on a long-lived instance, so validating independent documents from
// independent goroutines is safe.
type report struct {
	errors    Issues
	warnings  Issues
	structure []StructureIssue
	opts      Options
	stopped   bool
}

func (r *report) add(is Issue) {
	if r.stopped {
		return
	}
	switch is.Severity {
	case SeverityError:
		r.errors = AppendIssues(r.errors, is)
		if r.opts.FailFast {
			r.stopped = true
		}
	default:
		r.warnings = AppendIssues(r.warnings, is)
	}
}

func (r *report) errorAt(path, code string, extra ...func(*Issue)) {
	is := Issue{Path: path, Code: code, Severity: SeverityError, Message: i18n.T(code, nil)}
	for _, fn := range extra {
		fn(&is)
	}
	r.add(is)
}

func (r *report) warnAt(path, code string, extra ...func(*Issue)) {
	is := Issue{Path: path, Code: code, Severity: SeverityWarning, Message: i18n.T(code, nil)}
	for _, fn := range extra {
		fn(&is)
	}
	r.add(is)
}

func withHint(h string) func(*Issue)    { return func(is *Issue) { is.Hint = h } }
func withMessage(m string) func(*Issue) { return func(is *Issue) { is.Message = m } }
func withExample(e string) func(*Issue) { return func(is *Issue) { is.CorrectExample = e } }
func withParams(p map[string]any) func(*Issue) {
	return func(is *Issue) { is.Params = p }
}

func (r *report) result() Result {
	return Result{
		Valid:           len(r.errors) == 0,
		Errors:          r.errors,
		Warnings:        r.warnings,
		StructureIssues: r.structure,
	}
}

// Validate inspects a parsed token document and returns a full report. The
// input is never mutated and the report is rebuilt from scratch on every call.
func Validate(doc any, opts ...Options) Result {
	rep := &report{opts: firstOpt(opts)}

	root, ok := doc.(map[string]any)
	if !ok {
		rep.errorAt(rootPath, CodeInvalidRoot,
			withHint("the top-level value must be a JSON object of token groups"))
		return rep.result()
	}

	if _, ok := root["$schema"]; !ok {
		rep.warnAt(rootPath, CodeMissingSchema,
			withHint(`add "$schema" pointing at the token format schema`))
	}
	for _, k := range reservedRootViolations(root) {
		rep.warnAt(joinPath(rootPath, k), CodeUnknownKey,
			withMessage(i18n.T(CodeUnknownKey, nil)+": "+k),
			withHint("recognized root metadata keys: $schema, $id, $description, $extensions, $type"))
	}
	if b, ok := root[brandKey]; ok {
		rep.validateBrand(b)
	}

	groups := documentGroups(root)
	if len(groups) == 0 {
		rep.errorAt(rootPath, CodeEmptyDocument,
			withHint("add at least one token group, e.g. colors, spacing, typography"))
		return rep.result()
	}

	// Structure pass first: nested-token clusters must surface as first-class
	// issues before the token walk recurses past them.
	for _, name := range groups {
		if gm, ok := root[name].(map[string]any); ok {
			rep.analyzeStructure(gm, joinPath(rootPath, name))
		}
	}

	for _, name := range groups {
		path := joinPath(rootPath, name)
		gm, ok := root[name].(map[string]any)
		if !ok {
			rep.errorAt(path, CodeInvalidGroup,
				withHint("top-level keys must map to objects containing tokens"))
			continue
		}
		rep.validateGroup(name, gm, path, groupType(gm), 1)
	}
	return rep.result()
}

// reservedRootViolations lists $-prefixed root keys outside the recognized
// reserved vocabulary, in sorted order.
func reservedRootViolations(root map[string]any) []string {
	var out []string
	for k := range root {
		if strings.HasPrefix(k, "$") && !rootReservedKeys[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// documentGroups lists the root's token-group keys: everything that is not
// $-reserved and not the brand metadata block.
func documentGroups(root map[string]any) []string {
	keys := nonMetaKeys(root)
	out := keys[:0]
	for _, k := range keys {
		if k == brandKey {
			continue
		}
		out = append(out, k)
	}
	return out
}

// validateBrand checks the reserved brand metadata block: an object whose
// entries are scalar strings (name, version, author and friends).
func (r *report) validateBrand(v any) {
	path := joinPath(rootPath, brandKey)
	m, ok := v.(map[string]any)
	if !ok {
		r.errorAt(path, CodeInvalidBrand, withHint("brand must be an object of string fields"))
		return
	}
	for _, k := range nonMetaKeys(m) {
		if _, ok := m[k].(string); !ok {
			r.errorAt(joinPath(path, k), CodeInvalidBrand,
				withHint("brand fields must be strings"))
		}
	}
}

func (r *report) validateGroup(groupName string, node map[string]any, path string, inherited TokenType, depth int) {
	if r.stopped {
		return
	}
	if r.opts.MaxDepth > 0 && depth > r.opts.MaxDepth {
		r.errorAt(path, CodeMaxDepth)
		return
	}
	for _, key := range nonMetaKeys(node) {
		if r.stopped {
			return
		}
		childPath := joinPath(path, key)
		cm, ok := node[key].(map[string]any)
		if !ok {
			r.errorAt(childPath, CodeInvalidNode,
				withHint("group entries must be token or group objects"),
				withExample(`{"$value": "#E00069", "$type": "color"}`))
			continue
		}
		if isTokenNode(cm) {
			r.validateToken(groupName, key, cm, childPath, inherited)
			continue
		}
		sub := inherited
		if gt := groupType(cm); gt != "" {
			sub = gt
		}
		r.validateGroup(groupName, cm, childPath, sub, depth+1)
	}
}

func (r *report) validateToken(groupName, tokenName string, tok map[string]any, path string, inherited TokenType) {
	val, legacy, ok := tokenValue(tok)
	if !ok {
		r.errorAt(path, CodeMissingValue,
			withHint("every token needs a $value"),
			withExample(`{"$value": "#E00069"}`))
		return
	}
	if legacy {
		r.warnAt(path, CodeLegacyValueKey,
			withHint(`rename "value" to "$value"`),
			withSuggestedFix(`"value" -> "$value"`))
	}

	tt, ok := r.resolveTokenType(tok, path, val, inherited)
	if !ok {
		return
	}
	r.validateValue(groupName, tokenName, path, tt, val)
}

func withSuggestedFix(s string) func(*Issue) {
	return func(is *Issue) { is.SuggestedFix = s }
}

// resolveTokenType decides the token's type: explicit $type, legacy type,
// inherited group type, otherwise inference. When nothing matches the token is
// silently skipped per the format's lenient stance on untyped tokens.
func (r *report) resolveTokenType(tok map[string]any, path string, val any, inherited TokenType) (TokenType, bool) {
	if raw, ok := tok["$type"]; ok {
		s, ok := raw.(string)
		if !ok {
			r.errorAt(path, CodeInvalidType, withHint("$type must be a string"))
			return "", false
		}
		t, ok := ParseTokenType(s)
		if !ok {
			r.warnAt(path, CodeUnknownType,
				withMessage(i18n.T(CodeUnknownType, nil)+": "+s),
				withHint("valid types: "+tokenTypeNames()),
				withParams(map[string]any{"got": s}))
			return "", false
		}
		return t, true
	}
	if raw, ok := tok["type"]; ok {
		if s, ok := raw.(string); ok {
			r.warnAt(path, CodeLegacyTypeKey,
				withHint(`rename "type" to "$type"`),
				withSuggestedFix(`"type" -> "$type"`))
			if t, ok := ParseTokenType(s); ok {
				return t, true
			}
			r.warnAt(path, CodeUnknownType,
				withMessage(i18n.T(CodeUnknownType, nil)+": "+s),
				withHint("valid types: "+tokenTypeNames()))
			return "", false
		}
	}
	if inherited != "" {
		return inherited, true
	}
	if t, ok := InferType(val); ok {
		r.warnAt(path, CodeMissingType,
			withMessage(i18n.T(CodeMissingType, nil)+" - inferred as "+string(t)),
			withHint(`set "$type": "`+string(t)+`" explicitly`),
			withParams(map[string]any{"inferred": string(t)}))
		return t, true
	}
	return "", false
}
