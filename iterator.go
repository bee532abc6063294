// Copyright 2023 by Gilbert Ramirez <gram@alumni.rice.edu>

package linkseq

// Iterator walks a container's items from front to back. Obtain one
// from a container's Iter method, and call Iter again to restart from
// the front. Iterating does not mutate the container; mutating the
// container while iterating has undefined results.
type Iterator[T any] struct {
	cursor *nodeT[T]
}

// Next returns the next item in the sequence, with ok == false once
// the sequence is exhausted.
func (it *Iterator[T]) Next() (item T, ok bool) {
	if it.cursor == nil {
		var zero T
		return zero, false
	}
	item = it.cursor.item
	it.cursor = it.cursor.next
	return item, true
}
