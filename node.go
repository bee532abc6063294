// Copyright 2023 by Gilbert Ramirez <gram@alumni.rice.edu>

package linkseq

// A single link in a container's chain. Every nodeT belongs to exactly
// one container; detaching a node from its chain removes the only
// reference the package holds to it.
type nodeT[T any] struct {
	item T
	next *nodeT[T]
}
