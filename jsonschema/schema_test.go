package jsonschema

import (
	"testing"

	j "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSchemaMarshals(t *testing.T) {
	s := Report()
	require.NotNil(t, s)
	out, err := j.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), "structureIssues")
	assert.Contains(t, string(out), "valid")
}

func TestFixesSchemaMarshals(t *testing.T) {
	s := Fixes()
	require.NotNil(t, s)
	out, err := j.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), "approved")
}
