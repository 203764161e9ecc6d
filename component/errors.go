package component

import (
	"errors"
	"fmt"
)

// Error sentinels for component-level failures.
var (
	// ErrInternal is the base error for internal component failures.
	ErrInternal = errors.New("internal component failure")

	// errAbstract signals that a composite's PropagateProperty was called
	// before it was expanded. The engine recognizes this and expands the
	// node rather than treating it as a propagation failure; it is never
	// surfaced to a caller.
	errAbstract = fmt.Errorf("%w: component is abstract", ErrInternal)

	// ErrInvalidArgument indicates a required argument was missing or had
	// the wrong shape (e.g. Partition's by argument with more than one
	// column).
	ErrInvalidArgument = fmt.Errorf("%w: invalid argument", ErrInternal)

	// ErrUnsupportedCategoryType indicates Partition's by argument carried
	// a category type that cannot be used as a partition key (floats).
	ErrUnsupportedCategoryType = fmt.Errorf("%w: unsupported category type", ErrInternal)
)

// IsAbstract reports whether err is (or wraps) the abstract-component
// sentinel.
func IsAbstract(err error) bool {
	return errors.Is(err, errAbstract)
}
