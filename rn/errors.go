// Copyright 2020 Andrea Viganò. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rn

import "fmt"

// The reduction engine reports problems by panicking with one of the
// error types below. Every public entry point recovers the panic with
// catch and hands the error to the caller, so no partially-reduced
// value ever escapes.

// Error is the generic error type, used for internal invariant
// failures that have no richer classification.
type Error string

func (e Error) Error() string {
	return string(e)
}

func Errorf(format string, args ...interface{}) Error {
	return Error(fmt.Sprintf(format, args...))
}

// InvalidUnitError reports a unit that violates the domain constraints:
// a zero or undefined root index, an even index over a negative
// radicand, or a negative index paired with a zero radicand.
type InvalidUnitError struct {
	Reason string
}

func (e *InvalidUnitError) Error() string {
	return "invalid unit: " + e.Reason
}

func invalidUnitf(format string, args ...interface{}) *InvalidUnitError {
	return &InvalidUnitError{Reason: fmt.Sprintf(format, args...)}
}

// DivisionByZeroError reports a denominator that reduced to the zero
// linear, at construction or as the result of a division.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

// DepthError reports a nested-real chain deeper than the configured
// bound.
type DepthError struct {
	Depth int
	Max   int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("nesting depth %d exceeds limit %d", e.Depth, e.Max)
}

// catch recovers a panic raised by this package and stores it in *err.
// Foreign panics are re-raised.
func catch(err *error) {
	switch e := recover().(type) {
	case nil:
	case *InvalidUnitError:
		*err = e
	case *DivisionByZeroError:
		*err = e
	case *DepthError:
		*err = e
	case Error:
		*err = e
	default:
		panic(e)
	}
}
