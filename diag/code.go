package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// package that emits it. Most codes are emitted exclusively by their
// category's layer, but some codes represent cross-cutting concerns.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategoryStructural is for graph shape errors: cycles, missing nodes/arguments.
	CategoryStructural

	// CategoryType is for type/arity mismatches between values and components.
	CategoryType

	// CategoryProperty is for property-lattice errors: missing fields, invariant violations.
	CategoryProperty

	// CategoryPrivacy is for privacy-accounting errors: budget, undefined usage.
	CategoryPrivacy
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategoryStructural:
		return "structural"
	case CategoryType:
		return "type"
	case CategoryProperty:
		return "property"
	case CategoryPrivacy:
		return "privacy"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_CYCLE_DETECTED").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Structural codes (spec §7 "Structural").
var (
	// E_CYCLE_DETECTED indicates the computation graph is not a DAG.
	E_CYCLE_DETECTED = code("E_CYCLE_DETECTED", CategoryStructural)

	// E_MISSING_NODE indicates an argument references a node id absent from the graph.
	E_MISSING_NODE = code("E_MISSING_NODE", CategoryStructural)

	// E_MISSING_ARGUMENT indicates a component is missing a required named argument.
	E_MISSING_ARGUMENT = code("E_MISSING_ARGUMENT", CategoryStructural)

	// E_EXPANSION_LOOP indicates a node exceeded the expansion-depth limit.
	E_EXPANSION_LOOP = code("E_EXPANSION_LOOP", CategoryStructural)
)

// Type codes.
var (
	// E_TYPE_MISMATCH indicates a ValueProperties/Value projection failed
	// (e.g. Array() called on an Indexmap).
	E_TYPE_MISMATCH = code("E_TYPE_MISMATCH", CategoryType)

	// E_ARITY indicates a privacy-usage broadcast could not reconcile lengths.
	E_ARITY = code("E_ARITY", CategoryType)

	// E_UNSUPPORTED_CATEGORY_TYPE indicates a category column has an unsupported data type.
	E_UNSUPPORTED_CATEGORY_TYPE = code("E_UNSUPPORTED_CATEGORY_TYPE", CategoryType)
)

// Property codes.
var (
	// E_MISSING_FIELD indicates a required property attribute is undefined (None).
	E_MISSING_FIELD = code("E_MISSING_FIELD", CategoryProperty)

	// E_INVARIANT_VIOLATION indicates a property-lattice invariant (spec §3) does not hold.
	E_INVARIANT_VIOLATION = code("E_INVARIANT_VIOLATION", CategoryProperty)

	// W_PROPERTY_WIDENED is a warning emitted when a property is pessimistically
	// widened (e.g. num_records cleared) rather than tightened.
	W_PROPERTY_WIDENED = code("W_PROPERTY_WIDENED", CategoryProperty)
)

// Privacy codes.
var (
	// E_BUDGET_EXCEEDED indicates actual privacy usage exceeds the configured budget.
	E_BUDGET_EXCEEDED = code("E_BUDGET_EXCEEDED", CategoryPrivacy)

	// E_USAGE_UNDEFINED indicates a mechanism node has no declared or actual privacy usage.
	E_USAGE_UNDEFINED = code("E_USAGE_UNDEFINED", CategoryPrivacy)

	// E_INVALID_USAGE indicates a privacy usage arithmetic result is NaN or infinite.
	E_INVALID_USAGE = code("E_INVALID_USAGE", CategoryPrivacy)

	// W_BUDGET_EXCEEDED is the non-strict counterpart to E_BUDGET_EXCEEDED.
	W_BUDGET_EXCEEDED = code("W_BUDGET_EXCEEDED", CategoryPrivacy)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	E_INTERNAL,
	E_CYCLE_DETECTED,
	E_MISSING_NODE,
	E_MISSING_ARGUMENT,
	E_EXPANSION_LOOP,
	E_TYPE_MISMATCH,
	E_ARITY,
	E_UNSUPPORTED_CATEGORY_TYPE,
	E_MISSING_FIELD,
	E_INVARIANT_VIOLATION,
	W_PROPERTY_WIDENED,
	E_BUDGET_EXCEEDED,
	E_USAGE_UNDEFINED,
	E_INVALID_USAGE,
	W_BUDGET_EXCEEDED,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
