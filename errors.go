// Copyright 2023 by Gilbert Ramirez <gram@alumni.rice.edu>

package linkseq

import (
	"errors"
	"fmt"
	"reflect"
)

// The errors in this package signal contract violations by the caller,
// not transient failures. Every failed operation leaves the container
// unchanged. All are matchable with errors.Is.
var (
	// ErrNoItem is returned by an add operation given an absent value:
	// a nil interface, or a nil pointer, map, slice, function or
	// channel.
	ErrNoItem = errors.New("linkseq: no item given")

	// ErrEmpty is returned by remove and peek operations on an empty
	// container.
	ErrEmpty = errors.New("linkseq: container is empty")

	// ErrIndexRange is returned by a positional operation when the
	// index falls outside the valid range.
	ErrIndexRange = errors.New("linkseq: index out of range")
)

// The one runtime check kept regardless of static typing: an absent
// value is never a valid item. For kinds that cannot be nil, the check
// always passes.
func checkItem[T any](op string, item T) error {
	boxed := any(item)
	if boxed == nil {
		return fmt.Errorf("%s: %w", op, ErrNoItem)
	}
	switch v := reflect.ValueOf(boxed); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return fmt.Errorf("%s: %w", op, ErrNoItem)
		}
	}
	return nil
}

func emptyErr(op string) error {
	return fmt.Errorf("%s: %w", op, ErrEmpty)
}

func indexErr(op string, i int, size int) error {
	return fmt.Errorf("%s: index %d with size %d: %w", op, i, size, ErrIndexRange)
}
