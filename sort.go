package shared

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// ListCmpFunction orders elements for SortFunc. Negative means a before b,
// positive means b before a, zero keeps the existing relative order.
type ListCmpFunction[T comparable] func(a T, b T) int

// SortFunc stably sorts the elements by cmp. SortFunc detaches. Values move
// between nodes, so iterators keep their position in the list, not their
// element.
func (self *List[T]) SortFunc(cmp ListCmpFunction[T]) {
	self.detach()
	if self.d.seq.len < 2 {
		return
	}
	values := make([]T, 0, self.d.seq.len)
	for n := self.d.seq.head(); n != self.d.seq.end(); n = n.next {
		values = append(values, n.value)
	}
	slices.SortStableFunc(values, cmp)
	i := 0
	for n := self.d.seq.head(); n != self.d.seq.end(); n = n.next {
		n.value = values[i]
		i += 1
	}
}

// Sort stably sorts the elements ascending. Sort detaches.
func Sort[T constraints.Ordered](list *List[T]) {
	list.SortFunc(func(a T, b T) int {
		if a < b {
			return -1
		} else if b < a {
			return 1
		}
		return 0
	})
}

// SortedInsert inserts value into a list whose elements are already in
// ascending order, before the first element not less than value. With
// unique, an equal element at that position suppresses the insert.
// SortedInsert detaches. O(n).
func SortedInsert[T constraints.Ordered](list *List[T], value T, unique bool) {
	list.detach()
	at := list.d.seq.head()
	for at != list.d.seq.end() && at.value < value {
		at = at.next
	}
	if unique && at != list.d.seq.end() && at.value == value {
		return
	}
	list.d.seq.insertBefore(at, value)
}
