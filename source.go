package tokenlint

import (
	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tokenlint/tokenlint/i18n"
)

// DecodeJSON decodes a JSON token document into the tree shape Validate and
// AutoFix consume. Decode failures come back as Issues so callers handle one
// error model end to end.
func DecodeJSON(data []byte) (any, error) {
	var v any
	if err := j.Unmarshal(data, &v); err != nil {
		return nil, AppendIssues(nil, Issue{
			Path:     rootPath,
			Code:     CodeParseError,
			Severity: SeverityError,
			Message:  i18n.T(CodeParseError, nil),
			Hint:     err.Error(),
		})
	}
	return v, nil
}

// DecodeYAML decodes a YAML token document, normalizing yaml.v3's map[any]any
// mappings into the JSON-like map[string]any tree the validator expects.
func DecodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, AppendIssues(nil, Issue{
			Path:     rootPath,
			Code:     CodeParseError,
			Severity: SeverityError,
			Message:  i18n.T(CodeParseError, nil),
			Hint:     err.Error(),
		})
	}
	return yamlNormalizeValue(v), nil
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
