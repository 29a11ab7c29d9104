package rop

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrPanic marks errors produced from a recovered panic.
var ErrPanic = errors.New("unit panicked")

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Recovered turns a value obtained from recover() into an error wrapping
// ErrPanic. When the panic value is itself an error it stays reachable
// through errors.Is / errors.As.
func Recovered(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrPanic, r)
}
