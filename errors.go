// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package binops

import (
	"github.com/pkg/errors"
)

// An InvalidInputError reports input that violates an operation's
// preconditions. Its message is human readable and does not include Op or
// Input.
//
type InvalidInputError struct {
	Op    string // operation that rejected the input
	Input string // offending input, verbatim
	Msg   string
}

func (e *InvalidInputError) Error() string {
	return e.Msg
}

// invalidInput returns an *InvalidInputError annotated with a stack trace.
//
func invalidInput(op, input, msg string) error {
	return errors.WithStack(&InvalidInputError{Op: op, Input: input, Msg: msg})
}

// IsInvalidInput returns true if the cause of err is an *InvalidInputError.
//
func IsInvalidInput(err error) bool {
	_, ok := errors.Cause(err).(*InvalidInputError)
	return ok
}
