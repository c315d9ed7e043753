// Package jsonschema projects tokenlint's report types into JSON Schema so
// external tooling (editors, CI annotators) can consume reports with a
// published contract.
package jsonschema

import (
	js "github.com/invopop/jsonschema"

	tokenlint "github.com/tokenlint/tokenlint"
)

// Report returns the JSON Schema of a validation Result.
func Report() *js.Schema {
	return js.Reflect(&tokenlint.Result{})
}

// Fixes returns the JSON Schema of the Fix patch element.
func Fixes() *js.Schema {
	return js.Reflect(&tokenlint.Fix{})
}
