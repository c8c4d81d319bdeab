// Package errors provides error handling for the analyzer.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
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
//	if errors.Is(err, errors.ErrLoad) {
//	    // handle bad input
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
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll
)

// GetStack is an alias for GetReportableStackTrace for convenience.
var GetStack = crdb.GetReportableStackTrace

// Domain sentinel errors. Use these with errors.Is() for type-safe
// checking, and errors.Wrap() to add context while preserving the kind.
var (
	// ErrLoad indicates the dataset source was unreadable or malformed
	ErrLoad = New("load error")

	// ErrRender indicates the requested chart is incompatible with the
	// shape of the given data
	ErrRender = New("render error")
)

// IsLoadError checks if an error is or wraps ErrLoad.
func IsLoadError(err error) bool {
	return err != nil && Is(err, ErrLoad)
}

// IsRenderError checks if an error is or wraps ErrRender.
func IsRenderError(err error) bool {
	return err != nil && Is(err, ErrRender)
}
