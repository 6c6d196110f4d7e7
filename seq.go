package shared

// node is one element of the sequence owned by a store. Node pointers stay
// valid across inserts and removes of other nodes, which is what makes
// iterator positions stable.
type node[T any] struct {
	next  *node[T]
	prev  *node[T]
	value T
}

// seq is a circular doubly linked sequence with a sentinel root.
// root.next is the first node, root.prev is the last node, and the sentinel
// itself is the end position. The zero seq is not usable, call init first.
type seq[T any] struct {
	root node[T]
	len  int
}

func (self *seq[T]) init() {
	self.root.next = &self.root
	self.root.prev = &self.root
	self.len = 0
}

func (self *seq[T]) head() *node[T] {
	return self.root.next
}

func (self *seq[T]) tail() *node[T] {
	return self.root.prev
}

// end returns the sentinel. head() == end() exactly when the sequence is
// empty.
func (self *seq[T]) end() *node[T] {
	return &self.root
}

func (self *seq[T]) insertBefore(at *node[T], value T) *node[T] {
	n := &node[T]{
		value: value,
	}
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
	self.len += 1
	return n
}

// remove unlinks n and returns the node that followed it. The removed node's
// links are cleared so a stale pointer cannot walk back into the sequence.
func (self *seq[T]) remove(n *node[T]) *node[T] {
	next := n.next
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	self.len -= 1
	return next
}

func (self *seq[T]) pushBack(value T) *node[T] {
	return self.insertBefore(self.end(), value)
}

func (self *seq[T]) pushFront(value T) *node[T] {
	return self.insertBefore(self.head(), value)
}

// at walks to the node at index i from the head, or returns nil when i is
// out of range. O(i).
func (self *seq[T]) at(i int) *node[T] {
	if i < 0 || self.len <= i {
		return nil
	}
	n := self.head()
	for j := 0; j < i; j += 1 {
		n = n.next
	}
	return n
}
