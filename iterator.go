package shared

import (
	"fmt"
)

// Iterator is a position in a list's backing store.
//
// An iterator is bound to the store it was taken from. It stays valid
// across Insert and Erase at other positions on the same store, but not
// across operations that detach or replace the store. Insert and Erase
// panic when given an iterator bound to another store, which also catches
// iterators left stale by a detach.
//
// The zero Iterator is not valid. Take iterators from Begin, End, or Find.
type Iterator[T comparable] struct {
	s *store[T]
	n *node[T]
}

// Begin detaches and returns an iterator at the first element, or at the
// end position if the list is empty.
//
// The iterator addresses the now exclusively owned store. Iterators must be
// taken after the last Copy of the list. Insert and Erase do not detach, so
// mutating through an iterator while a copy taken in between still shares
// the store writes into both views.
//
// Iterate:
//
//	for it := list.Begin(); !it.AtEnd(); it.Next() {
//		value := it.Value()
//	}
func (self *List[T]) Begin() Iterator[T] {
	self.detach()
	return Iterator[T]{
		s: self.d,
		n: self.d.seq.head(),
	}
}

// End detaches and returns the position one past the last element. Insert
// at End appends.
func (self *List[T]) End() Iterator[T] {
	self.detach()
	return Iterator[T]{
		s: self.d,
		n: self.d.seq.end(),
	}
}

// Find detaches and returns an iterator at the first element equal to
// value, or the end position if no element matches.
func (self *List[T]) Find(value T) Iterator[T] {
	self.detach()
	for n := self.d.seq.head(); n != self.d.seq.end(); n = n.next {
		if n.value == value {
			return Iterator[T]{
				s: self.d,
				n: n,
			}
		}
	}
	return Iterator[T]{
		s: self.d,
		n: self.d.seq.end(),
	}
}

// Insert inserts value before at and returns an iterator at the new
// element. Insert does not detach, see Begin.
func (self *List[T]) Insert(at Iterator[T], value T) Iterator[T] {
	self.requireOwn(at)
	n := self.d.seq.insertBefore(at.n, value)
	return Iterator[T]{
		s: self.d,
		n: n,
	}
}

// Erase removes the element at `at` and returns an iterator at the element
// that followed it. The removed value is not disposed, the caller takes
// ownership. Erase does not detach, see Begin. Panics at the end position.
func (self *List[T]) Erase(at Iterator[T]) Iterator[T] {
	self.requireOwn(at)
	if at.n == self.d.seq.end() {
		panic(fmt.Errorf("Erase at end of list"))
	}
	next := self.d.seq.remove(at.n)
	return Iterator[T]{
		s: self.d,
		n: next,
	}
}

func (self *List[T]) requireOwn(at Iterator[T]) {
	if at.s != self.d {
		panic(fmt.Errorf("Iterator from another store"))
	}
}

// Next advances to the following element and returns whether the iterator
// is at an element afterward. At the last element, Next advances to the end
// position and returns false. At the end position, Next does not move.
func (self *Iterator[T]) Next() bool {
	if self.n == self.s.seq.end() {
		return false
	}
	self.n = self.n.next
	return self.n != self.s.seq.end()
}

// Prev moves to the preceding element and returns whether it moved. From
// the end position, Prev moves to the last element. At the first element,
// Prev does not move.
func (self *Iterator[T]) Prev() bool {
	if self.n.prev == self.s.seq.end() {
		return false
	}
	self.n = self.n.prev
	return true
}

// AtEnd returns whether the iterator is at the position one past the last
// element.
func (self *Iterator[T]) AtEnd() bool {
	return self.n == self.s.seq.end()
}

// Value returns the element at the iterator. Panics at the end position.
func (self *Iterator[T]) Value() T {
	if self.n == self.s.seq.end() {
		panic(fmt.Errorf("Iterator at end of list"))
	}
	return self.n.value
}

// Set replaces the element at the iterator. The replaced value is not
// disposed. Panics at the end position.
func (self *Iterator[T]) Set(value T) {
	if self.n == self.s.seq.end() {
		panic(fmt.Errorf("Iterator at end of list"))
	}
	self.n.value = value
}
