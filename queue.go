// Copyright 2023 by Gilbert Ramirez <gram@alumni.rice.edu>

package linkseq

// Queue is a first-in-first-out container. It keeps a reference to the
// tail of its chain, so Enqueue and Dequeue are both O(1), worst case.
//
// The zero value is an empty queue, ready to use.
type Queue[T any] struct {
	head *nodeT[T]
	tail *nodeT[T]
	size int
}

// Instantiates and initializes a new Queue.
func NewQueue[T any]() *Queue[T] {
	s := &Queue[T]{}
	s.Initialize()
	return s
}

// Initializes a Queue. Use this if you have allocated a Queue object
// already, and only need to Initialize it.
func (s *Queue[T]) Initialize() {
	s.head = nil
	s.tail = nil
	s.size = 0
}

// Empty reports whether the queue holds no items.
func (s *Queue[T]) Empty() bool {
	return s.size == 0
}

// Size returns the number of items in the queue.
func (s *Queue[T]) Size() int {
	return s.size
}

// Enqueue appends item at the back of the queue.
func (s *Queue[T]) Enqueue(item T) error {
	if err := checkItem("Enqueue", item); err != nil {
		return err
	}
	n := &nodeT[T]{item: item}
	if s.tail == nil {
		s.head = n
		s.tail = n
	} else {
		s.tail.next = n
		s.tail = n
	}
	s.size++
	return nil
}

// Dequeue removes and returns the item at the front of the queue,
// the least recently enqueued one.
func (s *Queue[T]) Dequeue() (T, error) {
	if s.head == nil {
		var zero T
		return zero, emptyErr("Dequeue")
	}
	n := s.head
	s.head = n.next
	if s.head == nil {
		s.tail = nil
	}
	n.next = nil
	s.size--
	return n.item, nil
}

// Front returns the item at the front of the queue without removing it.
func (s *Queue[T]) Front() (T, error) {
	if s.head == nil {
		var zero T
		return zero, emptyErr("Front")
	}
	return s.head.item, nil
}

// Iter returns an iterator yielding items in insertion order.
func (s *Queue[T]) Iter() Iterator[T] {
	return Iterator[T]{cursor: s.head}
}

func (s *Queue[T]) String() string {
	return renderItems("Queue", s.Iter())
}
