// Package errors provides error handling for farr.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Typed sentinel errors for the array domain
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidIndex) {
//	    // handle bad index
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the one-based array layer.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidIndex indicates an index expression the one-based convention
	// rejects: index 0 in any scalar, sequence or integer-array position, or
	// an index element of an unrecognized type.
	ErrInvalidIndex = New("invalid index")

	// ErrStaleView indicates an operation against a view whose backing
	// storage has been released.
	ErrStaleView = New("stale view: backing storage released")

	// ErrShape indicates a shape-dependent operation received an array of
	// incompatible shape or rank.
	ErrShape = New("incompatible shape")

	// ErrKind indicates an operation applied to an array of the wrong
	// element kind (e.g. string operations on a numeric array).
	ErrKind = New("wrong element kind")
)

// IsInvalidIndex checks if an error is or wraps ErrInvalidIndex.
func IsInvalidIndex(err error) bool {
	return err != nil && Is(err, ErrInvalidIndex)
}

// IsStaleView checks if an error is or wraps ErrStaleView.
func IsStaleView(err error) bool {
	return err != nil && Is(err, ErrStaleView)
}

// IsShape checks if an error is or wraps ErrShape.
func IsShape(err error) bool {
	return err != nil && Is(err, ErrShape)
}

// IsKind checks if an error is or wraps ErrKind.
func IsKind(err error) bool {
	return err != nil && Is(err, ErrKind)
}

// NewInvalidIndexf creates an invalid-index error with a formatted message.
func NewInvalidIndexf(format string, args ...interface{}) error {
	return Wrap(ErrInvalidIndex, Newf(format, args...).Error())
}

// NewShapef creates a shape error with a formatted message.
func NewShapef(format string, args ...interface{}) error {
	return Wrap(ErrShape, Newf(format, args...).Error())
}

// NewKindf creates a kind error with a formatted message.
func NewKindf(format string, args ...interface{}) error {
	return Wrap(ErrKind, Newf(format, args...).Error())
}
