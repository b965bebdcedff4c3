// Package meta defines the metadata model shared by the rest of arcstk:
// audio sizes, tables of contents, and AccurateRip disc identifiers.
package meta

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a meta package error, matching the InvalidMetadata and
// InvalidAudio error kinds of the error taxonomy.
type Kind string

// Error kinds raised by this package.
const (
	KindNegativeValue  Kind = "negative_value"
	KindExceedsMaximum Kind = "exceeds_maximum"
	KindInvalidToC     Kind = "invalid_toc"
)

// Error is the error type returned by the meta package. It names the
// offending value and the rule that was violated, per the error handling
// design.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("meta: %s: %v", e.msg, e.cause)
	}
	return fmt.Sprintf("meta: %s", e.msg)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), cause: errors.WithStack(cause)}
}
