// Copyright 2023 by Gilbert Ramirez <gram@alumni.rice.edu>

// Package linkseq provides linked-list-backed linear containers:
// Stack (LIFO), Queue (FIFO), Bag (add-only), and a general-purpose
// LinkedList. Each container exclusively owns its chain of nodes and
// keeps an item count in step with the chain, so Empty and Size are
// O(1), and every bound advertised in this package is worst-case,
// never amortized.
//
// The containers are not safe for concurrent use.
package linkseq

import (
	"fmt"
	"io/ioutil"
	"log"
	"strings"
)

// The debug logger for this module. By default, output is discarded.
var dlog *log.Logger

func init() {
	dlog = log.New(ioutil.Discard, "[DEBUG] ", log.Ldate|log.Lmicroseconds|log.Lshortfile)
}

// Change the debug logger object in this module
func SetDebugLogger(logger *log.Logger) {
	dlog = logger
}

// Returns the output of the current debug logger in this module.
// You can then call SetOutput on the object, for example.
func GetDebugLoggerOutput() *log.Logger {
	return dlog
}

// Container is the contract shared by every variant in this package.
type Container[T any] interface {
	// Empty reports whether the container holds no items.
	Empty() bool

	// Size returns the number of items held.
	Size() int

	// Iter returns a fresh iterator over the items, in the order
	// the variant defines.
	Iter() Iterator[T]

	// String renders the items in iteration order. Diagnostics only;
	// the format is not a stable contract.
	String() string
}

var (
	_ Container[int] = (*Stack[int])(nil)
	_ Container[int] = (*Queue[int])(nil)
	_ Container[int] = (*Bag[int])(nil)
	_ Container[int] = (*LinkedList[int])(nil)
)

// Renders a container as "Name[a, b, c]", in iteration order.
func renderItems[T any](name string, it Iterator[T]) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('[')
	first := true
	for item, ok := it.Next(); ok; item, ok = it.Next() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", item)
	}
	sb.WriteByte(']')
	return sb.String()
}
