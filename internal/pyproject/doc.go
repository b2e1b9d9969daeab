// Package pyproject reads and edits a project's pyproject.toml manifest.
// It locates the manifest, detects an existing [tool.nitpick] table, appends
// the mogpack nitpick configuration while preserving the file's existing
// content, and validates the table shape against a JSON Schema.
package pyproject
