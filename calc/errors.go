// Package calc implements the streaming AccurateRip checksum computation:
// partitioning a sample buffer along track boundaries, the ARCSv1/v2
// recurrence, and the stateful Calculation driver that ties them together.
package calc

import "fmt"

// Kind classifies a calc package error.
type Kind string

// Error kinds raised by this package.
const (
	KindInvalidAudio = Kind("invalid_audio")
)

// Error is the error type returned by the calc package, carrying the
// InvalidAudio error kind from the error taxonomy.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string { return fmt.Sprintf("calc: %s", e.msg) }

func newError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidAudio, msg: fmt.Sprintf(format, args...)}
}
