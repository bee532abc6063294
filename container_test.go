// Copyright 2023 by Gilbert Ramirez <gram@alumni.rice.edu>

package linkseq

import (
	"bytes"
	"log"
	"strings"

	. "gopkg.in/check.v1"
)

// Size() == 0 exactly when Empty(), and after n adds and m removes
// the size is n - m, across a mixed sequence of operations.
func (s *MySuite) TestSizeEmptyInvariant(c *C) {
	st := NewStack[int]()
	adds, removes := 0, 0

	check := func() {
		c.Check(st.Size(), Equals, adds-removes)
		c.Check(st.Empty(), Equals, st.Size() == 0)
	}

	check()
	for i := 0; i < 5; i++ {
		c.Assert(st.Push(i), IsNil)
		adds++
		check()
	}
	for i := 0; i < 3; i++ {
		_, err := st.Pop()
		c.Assert(err, IsNil)
		removes++
		check()
	}
	c.Assert(st.Push(99), IsNil)
	adds++
	check()
	for !st.Empty() {
		_, err := st.Pop()
		c.Assert(err, IsNil)
		removes++
		check()
	}
}

// Every variant satisfies the shared Container contract.
func (s *MySuite) TestContainerContract(c *C) {
	st := NewStack[int]()
	c.Assert(st.Push(1), IsNil)
	q := NewQueue[int]()
	c.Assert(q.Enqueue(1), IsNil)
	b := NewBag[int]()
	c.Assert(b.Add(1), IsNil)
	l := NewLinkedList[int]()
	c.Assert(l.AddHead(1), IsNil)

	for _, cont := range []Container[int]{st, q, b, l} {
		c.Check(cont.Empty(), Equals, false)
		c.Check(cont.Size(), Equals, 1)

		it := cont.Iter()
		item, ok := it.Next()
		c.Assert(ok, Equals, true)
		c.Check(item, Equals, 1)
		_, ok = it.Next()
		c.Check(ok, Equals, false)
	}
}

// Initialize on a used container resets it to empty.
func (s *MySuite) TestReinitialize(c *C) {
	q := NewQueue[string]()
	c.Assert(q.Enqueue("a"), IsNil)
	c.Assert(q.Enqueue("b"), IsNil)

	q.Initialize()
	c.Check(q.Empty(), Equals, true)
	c.Check(q.Size(), Equals, 0)

	c.Assert(q.Enqueue("c"), IsNil)
	got, err := q.Dequeue()
	c.Assert(err, IsNil)
	c.Check(got, Equals, "c")
}

func (s *MySuite) TestDebugLogger(c *C) {
	orig := GetDebugLoggerOutput()
	defer SetDebugLogger(orig)

	var buf bytes.Buffer
	SetDebugLogger(log.New(&buf, "", 0))

	l := NewLinkedList[int]()
	c.Assert(l.AddHead(1), IsNil)
	c.Assert(l.AddHead(2), IsNil)
	l.Invert()

	c.Check(strings.Contains(buf.String(), "Invert: reversed 2 nodes"),
		Equals, true)
}
