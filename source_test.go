package tokenlint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenlint "github.com/tokenlint/tokenlint"
)

func TestDecodeJSON(t *testing.T) {
	doc, err := tokenlint.DecodeJSON([]byte(`{"colors":{"primary":{"$value":"#E00069","$type":"color"}}}`))
	require.NoError(t, err)
	res := tokenlint.Validate(doc)
	assert.True(t, res.Valid)
}

func TestDecodeJSON_ParseErrorAsIssues(t *testing.T) {
	_, err := tokenlint.DecodeJSON([]byte(`{"colors":`))
	require.Error(t, err)
	iss, ok := tokenlint.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, tokenlint.CodeParseError, iss[0].Code)
	assert.Equal(t, "$", iss[0].Path)
	assert.NotEmpty(t, iss[0].Hint)
}

func TestDecodeYAML(t *testing.T) {
	doc, err := tokenlint.DecodeYAML([]byte(`
colors:
  primary:
    $value: "#E00069"
    $type: color
spacing:
  gap:
    $value: 16px
    $type: dimension
`))
	require.NoError(t, err)
	root, ok := doc.(map[string]any)
	require.True(t, ok)
	_, ok = root["colors"].(map[string]any)
	require.True(t, ok)

	res := tokenlint.Validate(doc)
	assert.True(t, res.Valid, "errors: %v", res.Errors)
}

func TestDecodeYAML_NumericValues(t *testing.T) {
	// yaml.v3 yields int for whole numbers; the validators must accept them.
	doc, err := tokenlint.DecodeYAML([]byte(`
misc:
  weight:
    $value: 700
    $type: number
  half:
    $value: 0.5
    $type: opacity
`))
	require.NoError(t, err)
	res := tokenlint.Validate(doc)
	assert.True(t, res.Valid, "errors: %v", res.Errors)
}

func TestDecodeYAML_ParseError(t *testing.T) {
	_, err := tokenlint.DecodeYAML([]byte("colors: [unclosed"))
	require.Error(t, err)
	_, ok := tokenlint.AsIssues(err)
	assert.True(t, ok)
}
