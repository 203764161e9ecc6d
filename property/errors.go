// Package property implements the static property lattice propagated
// alongside a dpval analysis graph: typed value shapes, bound/nullity/
// group-id tracking, and the accessors the graph engine and component
// variants use to inspect them without ever touching private data.
package property

import (
	"errors"
	"fmt"
)

// Error sentinels for property access failures.
var (
	// ErrInternal is the base error for internal property failures.
	ErrInternal = errors.New("internal property failure")

	// ErrTypeMismatch indicates a projection (Array/Indexmap/Jagged) was
	// called on a ValueProperties of a different variant.
	ErrTypeMismatch = fmt.Errorf("%w: type mismatch", ErrInternal)

	// ErrMissing indicates an attribute accessor was called on a field
	// that has not been (or can no longer be) determined statically.
	ErrMissing = fmt.Errorf("%w: attribute missing", ErrInternal)
)

// MissingField wraps ErrMissing with the name of the absent attribute.
func MissingField(field string) error {
	return fmt.Errorf("%w: %s", ErrMissing, field)
}
