// Copyright 2023 by Gilbert Ramirez <gram@alumni.rice.edu>

package linkseq

// LinkedList is a general-purpose singly-linked list. Head operations
// are O(1). A tail reference makes AddLast and Last O(1) as well;
// RemoveLast still walks to the predecessor of the tail and is O(n),
// as are all the index-based operations.
//
// The zero value is an empty list, ready to use.
type LinkedList[T any] struct {
	head *nodeT[T]
	tail *nodeT[T]
	size int
}

// Instantiates and initializes a new LinkedList.
func NewLinkedList[T any]() *LinkedList[T] {
	s := &LinkedList[T]{}
	s.Initialize()
	return s
}

// Initializes a LinkedList. Use this if you have allocated a
// LinkedList object already, and only need to Initialize it.
func (s *LinkedList[T]) Initialize() {
	s.head = nil
	s.tail = nil
	s.size = 0
}

// Empty reports whether the list holds no items.
func (s *LinkedList[T]) Empty() bool {
	return s.size == 0
}

// Size returns the number of items in the list.
func (s *LinkedList[T]) Size() int {
	return s.size
}

// AddHead inserts item at the front of the list. O(1).
func (s *LinkedList[T]) AddHead(item T) error {
	if err := checkItem("AddHead", item); err != nil {
		return err
	}
	n := &nodeT[T]{item: item, next: s.head}
	s.head = n
	if s.tail == nil {
		s.tail = n
	}
	s.size++
	return nil
}

// RemoveHead removes and returns the item at the front of the list.
// O(1).
func (s *LinkedList[T]) RemoveHead() (T, error) {
	if s.head == nil {
		var zero T
		return zero, emptyErr("RemoveHead")
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

// Head returns the item at the front of the list without removing it.
func (s *LinkedList[T]) Head() (T, error) {
	if s.head == nil {
		var zero T
		return zero, emptyErr("Head")
	}
	return s.head.item, nil
}

// AddLast appends item at the back of the list. O(1) thanks to the
// tail reference.
func (s *LinkedList[T]) AddLast(item T) error {
	if err := checkItem("AddLast", item); err != nil {
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

// RemoveLast removes and returns the item at the back of the list.
// O(n): a singly-linked chain has to be walked to find the
// predecessor of the tail.
func (s *LinkedList[T]) RemoveLast() (T, error) {
	if s.head == nil {
		var zero T
		return zero, emptyErr("RemoveLast")
	}
	if s.head == s.tail {
		return s.RemoveHead()
	}
	prev := s.head
	for prev.next != s.tail {
		prev = prev.next
	}
	n := s.tail
	prev.next = nil
	s.tail = prev
	s.size--
	return n.item, nil
}

// Last returns the item at the back of the list without removing it.
// O(1).
func (s *LinkedList[T]) Last() (T, error) {
	if s.tail == nil {
		var zero T
		return zero, emptyErr("Last")
	}
	return s.tail.item, nil
}

// Get returns the item at index i, counting from the head. O(n).
// The valid range is [0, Size).
func (s *LinkedList[T]) Get(i int) (T, error) {
	if i < 0 || i >= s.size {
		var zero T
		return zero, indexErr("Get", i, s.size)
	}
	n := s.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n.item, nil
}

// Insert places item at index i, shifting the items from i onward one
// position toward the tail. O(n). The valid range is [0, Size];
// Insert(Size, item) is equivalent to AddLast(item).
func (s *LinkedList[T]) Insert(i int, item T) error {
	if err := checkItem("Insert", item); err != nil {
		return err
	}
	if i < 0 || i > s.size {
		return indexErr("Insert", i, s.size)
	}
	if i == 0 {
		return s.AddHead(item)
	}
	if i == s.size {
		return s.AddLast(item)
	}
	prev := s.head
	for ; i > 1; i-- {
		prev = prev.next
	}
	prev.next = &nodeT[T]{item: item, next: prev.next}
	s.size++
	return nil
}

// Remove detaches and returns the item at index i. O(n). The valid
// range is [0, Size).
func (s *LinkedList[T]) Remove(i int) (T, error) {
	if i < 0 || i >= s.size {
		var zero T
		return zero, indexErr("Remove", i, s.size)
	}
	if i == 0 {
		return s.RemoveHead()
	}
	prev := s.head
	for ; i > 1; i-- {
		prev = prev.next
	}
	n := prev.next
	prev.next = n.next
	if n == s.tail {
		s.tail = prev
	}
	n.next = nil
	s.size--
	return n.item, nil
}

// Invert reverses the list in place, O(n) time and O(1) extra space.
// The head becomes the tail and vice versa; no nodes are allocated.
func (s *LinkedList[T]) Invert() {
	var prev *nodeT[T]
	cur := s.head
	s.tail = s.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	s.head = prev
	dlog.Printf("Invert: reversed %d nodes", s.size)
}

// Split partitions the list into two new lists of near-equal size,
// preserving order; with an odd size the first list receives the
// extra item. The receiver is left empty afterwards, so every node
// still has exactly one owning list. O(n).
func (s *LinkedList[T]) Split() (*LinkedList[T], *LinkedList[T]) {
	front := NewLinkedList[T]()
	back := NewLinkedList[T]()
	if s.size == 0 {
		return front, back
	}

	frontLen := (s.size + 1) / 2
	cut := s.head
	for i := 1; i < frontLen; i++ {
		cut = cut.next
	}

	front.head = s.head
	front.tail = cut
	front.size = frontLen

	back.head = cut.next
	back.size = s.size - frontLen
	if back.head != nil {
		back.tail = s.tail
	}
	cut.next = nil

	dlog.Printf("Split: %d nodes into %d + %d", front.size+back.size,
		front.size, back.size)
	s.Initialize()
	return front, back
}

// Iter returns an iterator yielding items from head to tail.
func (s *LinkedList[T]) Iter() Iterator[T] {
	return Iterator[T]{cursor: s.head}
}

func (s *LinkedList[T]) String() string {
	return renderItems("LinkedList", s.Iter())
}
