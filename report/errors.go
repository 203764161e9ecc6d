package report

import "errors"

// ErrInternal is the base error for internal report-generation failures.
var ErrInternal = errors.New("internal report failure")
