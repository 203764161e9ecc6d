package diag

// Detail provides key-value context for diagnostic issues.
//
// Details are used to add structured information to issues that can be
// programmatically inspected by tools. Use the standard detail key constants
// to ensure consistent key naming across the codebase.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys for consistent diagnostic metadata.
//
// Use these constants to avoid stringly-typed drift and enable programmatic
// inspection of diagnostic details. Custom detail keys are permitted for
// domain-specific diagnostics; use lower_snake_case for custom keys.
const (
	// DetailKeyExpected is the expected value or type.
	DetailKeyExpected = "expected"

	// DetailKeyGot is the actual value or type received.
	DetailKeyGot = "got"

	// DetailKeyArgument is the argument name involved (e.g., "data", "by").
	DetailKeyArgument = "argument"

	// DetailKeyField is the property field name involved (e.g., "num_records").
	DetailKeyField = "field"

	// DetailKeyCycle is the cycle participants as a comma-joined node id list.
	DetailKeyCycle = "cycle"

	// DetailKeyDepth is a numeric depth (used by E_EXPANSION_LOOP).
	DetailKeyDepth = "depth"
)

// ExpectedGot creates a pair of details for type mismatch diagnostics.
//
// This is the standard pattern for reporting "expected X, got Y" errors.
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// ArgumentField creates detail entries for diagnostics tied to a specific
// argument and property field, e.g. "data: missing num_records".
func ArgumentField(argument, field string) []Detail {
	return []Detail{
		{Key: DetailKeyArgument, Value: argument},
		{Key: DetailKeyField, Value: field},
	}
}
