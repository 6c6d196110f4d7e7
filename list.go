/*
Package shared implements implicitly shared value containers.

An implicitly shared container behaves like a value. Copying it is constant
time, and copies stay independent because the first mutation on a shared
store detaches the writer onto a private deep copy (copy on write). The cost
model is pay on first write instead of pay on copy, which makes it cheap to
hand containers through layered call paths that mostly read.

Sharing protocol:

  - Copy shares the backing store and increments its reference count.
  - Every mutating operation detaches first, except Insert and Erase. Those
    take iterator positions and operate directly on the current store, so
    iterators must be taken after the last Copy. See Begin.
  - Read operations never detach.
  - The last handle to release a store frees it, disposing elements when
    auto delete mode is enabled. See SetAutoDelete.

A handle must only be mutated from one goroutine at a time. Handles that
share a store can be used from different goroutines only while none of them
mutates. Copy and Close are safe to call concurrently from different handles
because reference counting is atomic.

Logging convention for this package:

	Info: abnormal events. normal operation is silent.
	V(1): detach events, where elements are deep copied, and Trace timing.
	V(2): store lifecycle. create, destroy, and dispose events.
*/
package shared

import (
	"fmt"

	"github.com/golang/glog"
)

// List is a sequential container with implicit sharing.
//
// The zero List is not usable. Create lists with NewList, or as copies of
// an existing list with Copy.
type List[T comparable] struct {
	d *store[T]
}

func NewList[T comparable](values ...T) *List[T] {
	return &List[T]{
		d: newStore[T](values...),
	}
}

// Copy returns a new handle on the same store in constant time. Both
// handles observe the same elements until either one mutates.
func (self *List[T]) Copy() *List[T] {
	self.d.acquire()
	return &List[T]{
		d: self.d,
	}
}

// Assign rebinds this handle to share other's store and releases the
// current store. Assigning a list to itself is a no-op.
func (self *List[T]) Assign(other *List[T]) {
	if self.d == other.d {
		return
	}
	other.d.acquire()
	prev := self.d
	self.d = other.d
	prev.release()
}

// SetValues replaces the contents with a fresh store holding values.
// Handles sharing the previous store are unaffected. The auto delete mode
// of this handle carries over to the new store.
func (self *List[T]) SetValues(values ...T) {
	autoDelete := self.d.autoDelete
	prev := self.d
	self.d = newStore[T](values...)
	self.d.autoDelete = autoDelete
	prev.release()
}

// Swap exchanges the stores of the two handles without copying elements.
func (self *List[T]) Swap(other *List[T]) {
	self.d, other.d = other.d, self.d
}

// Close releases this handle's reference on the store. The last handle to
// close a store in auto delete mode disposes the remaining elements. Close
// is idempotent. Any other operation on a closed list panics.
func (self *List[T]) Close() {
	if self.d == nil {
		return
	}
	self.d.release()
	self.d = nil
}

// Detach ensures this handle exclusively owns its store, deep copying the
// elements if the store is shared. Mutating operations detach implicitly.
// Detach exists for callers that want to pay the copy up front, for example
// immediately before taking iterators.
func (self *List[T]) Detach() {
	self.detach()
}

// Detached returns whether this handle exclusively owns its store.
func (self *List[T]) Detached() bool {
	return self.d.refs.Load() == 1
}

// SharesStoreWith returns whether both handles are attached to the same
// store.
func (self *List[T]) SharesStoreWith(other *List[T]) bool {
	return self.d == other.d
}

// StoreId identifies the backing store for diagnostics. Two handles report
// the same id exactly when they share a store.
func (self *List[T]) StoreId() Id {
	return self.d.id
}

func (self *List[T]) detach() {
	if self.d.refs.Load() == 1 {
		return
	}
	prev := self.d
	self.d = copyStore(prev)
	prev.release()
	glog.V(1).Infof("[list]detach %s->%s len=%d\n", prev.id, self.d.id, self.d.seq.len)
}

// Len returns the number of elements in constant time. Len never detaches.
func (self *List[T]) Len() int {
	return self.d.seq.len
}

func (self *List[T]) IsEmpty() bool {
	return self.d.seq.len == 0
}

// Append adds values at the back.
func (self *List[T]) Append(values ...T) {
	self.detach()
	for _, value := range values {
		self.d.seq.pushBack(value)
	}
}

// AppendList adds all elements of other at the back in order. other may be
// this list or share a store with it.
func (self *List[T]) AppendList(other *List[T]) {
	self.detach()
	count := other.d.seq.len
	n := other.d.seq.head()
	for i := 0; i < count; i += 1 {
		self.d.seq.pushBack(n.value)
		n = n.next
	}
}

// Prepend adds values at the front, keeping their argument order, so
// Prepend(1, 2) puts 1 at the head followed by 2.
func (self *List[T]) Prepend(values ...T) {
	self.detach()
	at := self.d.seq.head()
	for _, value := range values {
		self.d.seq.insertBefore(at, value)
	}
}

// PrependList adds all elements of other at the front, keeping their
// relative order. other may be this list or share a store with it.
func (self *List[T]) PrependList(other *List[T]) {
	self.detach()
	count := other.d.seq.len
	at := self.d.seq.head()
	n := other.d.seq.head()
	for i := 0; i < count; i += 1 {
		self.d.seq.insertBefore(at, n.value)
		n = n.next
	}
}

// Clear removes all elements. With auto delete enabled, the dropped
// elements are disposed. Handles sharing the store keep the previous
// contents.
func (self *List[T]) Clear() {
	self.detach()
	self.d.clear()
}

// Front returns the first element without detaching. Panics if the list is
// empty. To write through the front position use SetAt or an iterator.
func (self *List[T]) Front() T {
	if self.d.seq.len == 0 {
		panic(fmt.Errorf("Front of empty list"))
	}
	return self.d.seq.head().value
}

// Back returns the last element without detaching. Panics if the list is
// empty.
func (self *List[T]) Back() T {
	if self.d.seq.len == 0 {
		panic(fmt.Errorf("Back of empty list"))
	}
	return self.d.seq.tail().value
}

// At returns the element at index i, walking from the head. O(i). Panics
// if i is out of range, see Get for the checked form.
func (self *List[T]) At(i int) T {
	n := self.d.seq.at(i)
	if n == nil {
		panic(fmt.Errorf("List index out of range: %d of %d", i, self.d.seq.len))
	}
	return n.value
}

// Get returns the element at index i and whether i was in range. O(i).
func (self *List[T]) Get(i int) (T, bool) {
	n := self.d.seq.at(i)
	if n == nil {
		var empty T
		return empty, false
	}
	return n.value, true
}

// SetAt replaces the element at index i. SetAt detaches. The replaced value
// is not disposed. Panics if i is out of range.
func (self *List[T]) SetAt(i int, value T) {
	self.detach()
	n := self.d.seq.at(i)
	if n == nil {
		panic(fmt.Errorf("List index out of range: %d of %d", i, self.d.seq.len))
	}
	n.value = value
}

// Index returns the position of the first element equal to value, or -1 if
// no element matches.
func (self *List[T]) Index(value T) int {
	i := 0
	for n := self.d.seq.head(); n != self.d.seq.end(); n = n.next {
		if n.value == value {
			return i
		}
		i += 1
	}
	return -1
}

func (self *List[T]) Contains(value T) bool {
	return 0 <= self.Index(value)
}

// Equal returns whether both lists hold equal elements in the same order.
// Equality is structural. Lists sharing a store are equal without element
// comparison.
func (self *List[T]) Equal(other *List[T]) bool {
	if self.d == other.d {
		return true
	}
	if self.d.seq.len != other.d.seq.len {
		return false
	}
	a := self.d.seq.head()
	b := other.d.seq.head()
	for a != self.d.seq.end() {
		if a.value != b.value {
			return false
		}
		a = a.next
		b = b.next
	}
	return true
}

// Values copies the elements into a new slice. The snapshot does not follow
// later mutations.
func (self *List[T]) Values() []T {
	values := make([]T, 0, self.d.seq.len)
	for n := self.d.seq.head(); n != self.d.seq.end(); n = n.next {
		values = append(values, n.value)
	}
	return values
}

// Range calls fn for each element from front to back until fn returns
// false. Range never detaches. fn must not mutate the list.
func (self *List[T]) Range(fn func(value T) bool) {
	for n := self.d.seq.head(); n != self.d.seq.end(); n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// SetAutoDelete turns auto delete mode on or off. SetAutoDelete detaches,
// so the mode applies to this handle's store only. See Disposable for what
// auto delete does and when to avoid it.
func (self *List[T]) SetAutoDelete(autoDelete bool) {
	self.detach()
	self.d.autoDelete = autoDelete
}

// AutoDelete returns whether auto delete mode is enabled on the store.
func (self *List[T]) AutoDelete() bool {
	return self.d.autoDelete
}
