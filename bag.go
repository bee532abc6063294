package linkseq

// Bag is an add-only collection, for "add now, examine later" use.
// There is no removal operation. The iteration order is unspecified
// to clients, though it does not change between mutations of a given
// instance.
//
// The zero value is an empty bag, ready to use.
type Bag[T any] struct {
	head *nodeT[T]
	size int
}

// Instantiates and initializes a new Bag.
func NewBag[T any]() *Bag[T] {
	s := &Bag[T]{}
	s.Initialize()
	return s
}

// Initializes a Bag. Use this if you have allocated a Bag object
// already, and only need to Initialize it.
func (s *Bag[T]) Initialize() {
	s.head = nil
	s.size = 0
}

// Empty reports whether the bag holds no items.
func (s *Bag[T]) Empty() bool {
	return s.size == 0
}

// Size returns the number of items in the bag.
func (s *Bag[T]) Size() int {
	return s.size
}

// Add puts item in the bag. O(1).
func (s *Bag[T]) Add(item T) error {
	if err := checkItem("Add", item); err != nil {
		return err
	}
	s.head = &nodeT[T]{item: item, next: s.head}
	s.size++
	return nil
}

// Iter returns an iterator over the bag's items.
func (s *Bag[T]) Iter() Iterator[T] {
	return Iterator[T]{cursor: s.head}
}

func (s *Bag[T]) String() string {
	return renderItems("Bag", s.Iter())
}
