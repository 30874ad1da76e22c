// Package errors provides structured error handling for mnemonix.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes surfaced to the CLI.
const (
	ExitSuccess    = 0 // Successful execution
	ExitGeneral    = 1 // General/unknown error
	ExitInput      = 2 // Invalid input
	ExitAuth       = 3 // Authentication failed
	ExitNotFound   = 4 // Resource not found
	ExitPermission = 5 // Permission denied
)

// MnemonixError is the structured error type for mnemonix.
type MnemonixError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context (expected/obtained pairs)
	Suggestion string            // Actionable suggestion for the user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *MnemonixError) Error() string {
	msg := e.Message

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes the underlying cause.
func (e *MnemonixError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for MnemonixError by comparing error codes.
func (e *MnemonixError) Is(target error) bool {
	var t *MnemonixError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors, one per kind in the error taxonomy.
var (
	// ErrInvalidSize covers entropy bit length, mnemonic word count, or
	// seed byte length violations.
	ErrInvalidSize = &MnemonixError{
		Code:     "INVALID_SIZE",
		Message:  "invalid size",
		ExitCode: ExitInput,
	}

	// ErrInvalidValue covers malformed hex or out-of-range CLI selectors.
	ErrInvalidValue = &MnemonixError{
		Code:     "INVALID_VALUE",
		Message:  "invalid value",
		ExitCode: ExitInput,
	}

	// ErrInvalidWord indicates a mnemonic token absent from the word list.
	ErrInvalidWord = &MnemonixError{
		Code:     "INVALID_WORD",
		Message:  "mnemonic word not found in word list",
		ExitCode: ExitInput,
	}

	// ErrInvalidChecksum indicates a BIP-0039 checksum mismatch.
	ErrInvalidChecksum = &MnemonixError{
		Code:     "INVALID_CHECKSUM",
		Message:  "mnemonic checksum mismatch",
		ExitCode: ExitInput,
	}

	// ErrInvalidArgument covers an empty password or PASSWORD used where
	// it is disallowed (split/join).
	ErrInvalidArgument = &MnemonixError{
		Code:     "INVALID_ARGUMENT",
		Message:  "invalid argument",
		ExitCode: ExitInput,
	}

	// ErrAuthFailure indicates Fernet HMAC verification failed or the
	// token was malformed.
	ErrAuthFailure = &MnemonixError{
		Code:     "AUTH_FAILURE",
		Message:  "authentication failed",
		ExitCode: ExitAuth,
	}

	// ErrCapacityExceeded indicates a message is larger than the host
	// image can carry.
	ErrCapacityExceeded = &MnemonixError{
		Code:     "CAPACITY_EXCEEDED",
		Message:  "message exceeds image capacity",
		ExitCode: ExitInput,
	}

	// ErrNotFound indicates a requested resource (file, wallet) is absent.
	ErrNotFound = &MnemonixError{
		Code:     "NOT_FOUND",
		Message:  "resource not found",
		ExitCode: ExitNotFound,
	}
)

// New creates a new MnemonixError with the given code and message.
func New(code, message string) *MnemonixError {
	return &MnemonixError{
		Code:     code,
		Message:  message,
		ExitCode: ExitGeneral,
	}
}

// Wrap wraps an error with additional context, preserving code/exit code
// when the underlying error is already a MnemonixError.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var me *MnemonixError
	if errors.As(err, &me) {
		return &MnemonixError{
			Code:       me.Code,
			Message:    fmt.Sprintf("%s: %s", msg, me.Message),
			Details:    me.Details,
			Suggestion: me.Suggestion,
			Cause:      err,
			ExitCode:   me.ExitCode,
		}
	}

	return &MnemonixError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails attaches an expected/obtained style detail map to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var me *MnemonixError
	if errors.As(err, &me) {
		return &MnemonixError{
			Code:       me.Code,
			Message:    me.Message,
			Details:    details,
			Suggestion: me.Suggestion,
			Cause:      me.Cause,
			ExitCode:   me.ExitCode,
		}
	}

	return &MnemonixError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion attaches an actionable suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var me *MnemonixError
	if errors.As(err, &me) {
		return &MnemonixError{
			Code:       me.Code,
			Message:    me.Message,
			Details:    me.Details,
			Suggestion: suggestion,
			Cause:      me.Cause,
			ExitCode:   me.ExitCode,
		}
	}

	return &MnemonixError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate process exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var me *MnemonixError
	if errors.As(err, &me) {
		return me.ExitCode
	}

	return ExitGeneral
}

// Code returns the machine-readable error code for an error.
func Code(err error) string {
	var me *MnemonixError
	if errors.As(err, &me) {
		return me.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
