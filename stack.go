// Copyright 2023 by Gilbert Ramirez <gram@alumni.rice.edu>

package linkseq

// Stack is a last-in-first-out container. Push, Pop and Top are O(1),
// worst case.
//
// The zero value is an empty stack, ready to use.
type Stack[T any] struct {
	head *nodeT[T]
	size int
}

// Instantiates and initializes a new Stack.
func NewStack[T any]() *Stack[T] {
	s := &Stack[T]{}
	s.Initialize()
	return s
}

// Initializes a Stack. Use this if you have allocated a Stack object
// already, and only need to Initialize it.
func (s *Stack[T]) Initialize() {
	s.head = nil
	s.size = 0
}

// Empty reports whether the stack holds no items.
func (s *Stack[T]) Empty() bool {
	return s.size == 0
}

// Size returns the number of items on the stack.
func (s *Stack[T]) Size() int {
	return s.size
}

// Push places item on top of the stack.
func (s *Stack[T]) Push(item T) error {
	if err := checkItem("Push", item); err != nil {
		return err
	}
	s.head = &nodeT[T]{item: item, next: s.head}
	s.size++
	return nil
}

// Pop removes and returns the most recently pushed item.
func (s *Stack[T]) Pop() (T, error) {
	if s.head == nil {
		var zero T
		return zero, emptyErr("Pop")
	}
	n := s.head
	s.head = n.next
	n.next = nil
	s.size--
	return n.item, nil
}

// Top returns the most recently pushed item without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.head == nil {
		var zero T
		return zero, emptyErr("Top")
	}
	return s.head.item, nil
}

// Iter returns an iterator yielding items most-recently-pushed first.
func (s *Stack[T]) Iter() Iterator[T] {
	return Iterator[T]{cursor: s.head}
}

func (s *Stack[T]) String() string {
	return renderItems("Stack", s.Iter())
}
