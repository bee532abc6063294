// Copyright 2023 by Gilbert Ramirez <gram@alumni.rice.edu>

package linkseq

import (
	"errors"

	. "gopkg.in/check.v1"
)

func (s *MySuite) TestBagAdd(c *C) {
	b := NewBag[string]()
	c.Assert(b.Empty(), Equals, true)
	c.Assert(b.Size(), Equals, 0)

	for _, item := range []string{"x", "y", "z"} {
		err := b.Add(item)
		c.Assert(err, IsNil)
	}
	c.Check(b.Empty(), Equals, false)
	c.Check(b.Size(), Equals, 3)
}

// The iteration order is unspecified to clients, but it must not
// change between mutations: two walks over the same bag see the same
// sequence, and every added item shows up exactly once.
func (s *MySuite) TestBagIterStable(c *C) {
	b := NewBag[int]()
	for _, item := range []int{5, 6, 7, 8} {
		c.Assert(b.Add(item), IsNil)
	}

	collect := func() []int {
		var got []int
		it := b.Iter()
		for item, ok := it.Next(); ok; item, ok = it.Next() {
			got = append(got, item)
		}
		return got
	}

	first := collect()
	c.Assert(first, HasLen, 4)
	c.Check(collect(), DeepEquals, first)

	seen := make(map[int]int)
	for _, item := range first {
		seen[item]++
	}
	c.Check(seen, DeepEquals, map[int]int{5: 1, 6: 1, 7: 1, 8: 1})
}

// A Bag is a multiset: duplicates are kept.
func (s *MySuite) TestBagDuplicates(c *C) {
	b := NewBag[string]()
	c.Assert(b.Add("dup"), IsNil)
	c.Assert(b.Add("dup"), IsNil)
	c.Check(b.Size(), Equals, 2)
}

func (s *MySuite) TestBagRejectsAbsentItem(c *C) {
	b := NewBag[[]byte]()

	err := b.Add(nil)
	c.Assert(err, NotNil)
	c.Check(errors.Is(err, ErrNoItem), Equals, true)
	c.Check(b.Size(), Equals, 0)

	c.Assert(b.Add([]byte("ok")), IsNil)
	c.Check(b.Size(), Equals, 1)
}

func (s *MySuite) TestBagString(c *C) {
	b := NewBag[int]()
	c.Check(b.String(), Equals, "Bag[]")

	c.Assert(b.Add(1), IsNil)
	c.Check(b.String(), Equals, "Bag[1]")
}
