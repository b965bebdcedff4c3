package match

import "github.com/pkg/errors"

// Error reports an out-of-range access into a Match, or a response block
// whose triplet count does not equal the local track count.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func newError(format string, args ...interface{}) *Error {
	return &Error{msg: errors.Errorf(format, args...).Error()}
}
