// Package errors provides error handling for refinery.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details for user-facing messages
//
// Refinement failures fall into two fatal categories, each backed by a
// sentinel so callers can branch with errors.Is:
//
//	if errors.IsConfigurationError(err) {
//	    // the run configuration points at something that does not exist
//	}
//
// Non-fatal findings are not errors at all; see SoftWarning.
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
	Mark         = crdb.Mark
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
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for refinement runs.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrConfiguration indicates a required lookup driven by the run
	// configuration failed (e.g. the client class does not exist)
	ErrConfiguration = New("configuration error")

	// ErrInvariantViolation indicates a pass precondition does not hold
	ErrInvariantViolation = New("invariant violation")

	// ErrUnsupportedLanguage indicates no refinement profile exists for a language
	ErrUnsupportedLanguage = New("unsupported language")

	// ErrCancelled indicates the run was cancelled between passes
	ErrCancelled = New("refinement cancelled")
)

// IsConfigurationError checks if an error is or wraps ErrConfiguration
func IsConfigurationError(err error) bool {
	return err != nil && Is(err, ErrConfiguration)
}

// IsInvariantViolation checks if an error is or wraps ErrInvariantViolation
func IsInvariantViolation(err error) bool {
	return err != nil && Is(err, ErrInvariantViolation)
}

// IsUnsupportedLanguageError checks if an error is or wraps ErrUnsupportedLanguage
func IsUnsupportedLanguageError(err error) bool {
	return err != nil && Is(err, ErrUnsupportedLanguage)
}

// IsCancelled checks if an error is or wraps ErrCancelled
func IsCancelled(err error) bool {
	return err != nil && Is(err, ErrCancelled)
}

// NewConfigurationError creates a configuration error with a formatted message
func NewConfigurationError(format string, args ...interface{}) error {
	return Wrap(ErrConfiguration, Newf(format, args...).Error())
}

// NewInvariantViolation creates an invariant violation with a formatted message
func NewInvariantViolation(format string, args ...interface{}) error {
	return Wrap(ErrInvariantViolation, Newf(format, args...).Error())
}

// WrapCancelled marks a context error as a cancelled refinement
func WrapCancelled(err error, context string) error {
	return Wrap(Mark(err, ErrCancelled), context)
}
