// Package tokenlint validates and normalizes design-token documents.
//
// A token document is a JSON (or YAML) tree of named groups whose leaves are
// tokens: objects carrying a design value under $value and a type tag under
// $type. tokenlint classifies every subtree as token or group, reports format
// violations as path-addressed issues with remediation hints, and can rewrite
// a document into conformant shape.
//
// Entry points:
//
//	res := tokenlint.Validate(doc)            // full report, input untouched
//	fixed := tokenlint.AutoFix(doc)           // aggressive one-shot rewrite
//	fixes := tokenlint.FixableIssues(doc)     // addressable, approvable patches
//	out, err := tokenlint.ApplyApprovedFixes(doc, fixes)
//
// Validate accepts any parsed JSON value; a non-object root yields a single
// root-level error. Warnings (legacy keys, inferred types, non-standard
// units) never make a document invalid; only errors do.
package tokenlint
