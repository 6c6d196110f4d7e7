package shared

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestIterateForward(t *testing.T) {
	l := NewList(1, 2, 3, 4)

	values := []int{}
	for it := l.Begin(); !it.AtEnd(); it.Next() {
		values = append(values, it.Value())
	}
	assert.Equal(t, values, []int{1, 2, 3, 4})

	// an empty list begins at the end
	empty := NewList[int]()
	it := empty.Begin()
	assert.Equal(t, it.AtEnd(), true)
}

func TestIterateBackward(t *testing.T) {
	l := NewList(1, 2, 3)

	values := []int{}
	it := l.End()
	for it.Prev() {
		values = append(values, it.Value())
	}
	assert.Equal(t, values, []int{3, 2, 1})

	// at the first element Prev does not move
	assert.Equal(t, it.Value(), 1)
	assert.Equal(t, it.Prev(), false)
	assert.Equal(t, it.Value(), 1)

	// Prev from the end of an empty list does not move either
	empty := NewList[int]()
	endIt := empty.End()
	assert.Equal(t, endIt.Prev(), false)
	assert.Equal(t, endIt.AtEnd(), true)
}

func TestNextStopsAtEnd(t *testing.T) {
	l := NewList(1)
	it := l.Begin()
	assert.Equal(t, it.Value(), 1)
	assert.Equal(t, it.Next(), false)
	assert.Equal(t, it.AtEnd(), true)
	assert.Equal(t, it.Next(), false)
	assert.Equal(t, it.AtEnd(), true)
}

func TestBeginDetaches(t *testing.T) {
	a := NewList(1, 2)

	b := a.Copy()
	b.Begin()
	assert.Equal(t, a.SharesStoreWith(b), false)
	assert.Equal(t, a.Values(), []int{1, 2})
	assert.Equal(t, b.Values(), []int{1, 2})

	c := a.Copy()
	c.End()
	assert.Equal(t, a.SharesStoreWith(c), false)

	d := a.Copy()
	d.Find(2)
	assert.Equal(t, a.SharesStoreWith(d), false)
}

func TestFind(t *testing.T) {
	l := NewList("a", "b", "c", "b")

	it := l.Find("b")
	assert.Equal(t, it.AtEnd(), false)
	assert.Equal(t, it.Value(), "b")

	// the first match wins
	it.Set("x")
	assert.Equal(t, l.Values(), []string{"a", "x", "c", "b"})

	missing := l.Find("z")
	assert.Equal(t, missing.AtEnd(), true)
}

func TestInsert(t *testing.T) {
	l := NewList(1, 3)

	it := l.Begin()
	it.Next()
	at := l.Insert(it, 2)
	assert.Equal(t, l.Values(), []int{1, 2, 3})
	assert.Equal(t, at.Value(), 2)

	// insert at the end appends
	l.Insert(l.End(), 4)
	assert.Equal(t, l.Values(), []int{1, 2, 3, 4})

	// insert at the beginning prepends
	l.Insert(l.Begin(), 0)
	assert.Equal(t, l.Values(), []int{0, 1, 2, 3, 4})
}

func TestErase(t *testing.T) {
	l := NewList(1, 2, 3)

	it := l.Find(2)
	next := l.Erase(it)
	assert.Equal(t, l.Values(), []int{1, 3})
	assert.Equal(t, l.Len(), 2)
	assert.Equal(t, next.Value(), 3)

	// erasing the last element returns the end position
	last := l.Find(3)
	next = l.Erase(last)
	assert.Equal(t, next.AtEnd(), true)
	assert.Equal(t, l.Values(), []int{1})

	assert.PanicMatches(t, func() {
		l.Erase(l.End())
	}, "Erase at end of list")
}

func TestEraseWhileIterating(t *testing.T) {
	// remove the even values in one pass
	l := NewList(1, 2, 3, 4, 5, 6)

	it := l.Begin()
	for !it.AtEnd() {
		if it.Value()%2 == 0 {
			it = l.Erase(it)
		} else {
			it.Next()
		}
	}
	assert.Equal(t, l.Values(), []int{1, 3, 5})
}

func TestIteratorSet(t *testing.T) {
	l := NewList(1, 2, 3)
	b := l.Copy()

	// Begin detaches, so writes through the iterator stay private
	it := l.Begin()
	for !it.AtEnd() {
		it.Set(it.Value() * 10)
		it.Next()
	}
	assert.Equal(t, l.Values(), []int{10, 20, 30})
	assert.Equal(t, b.Values(), []int{1, 2, 3})
}

func TestIteratorAtEndPanics(t *testing.T) {
	empty := NewList[int]()
	it := empty.Begin()

	assert.PanicMatches(t, func() {
		it.Value()
	}, "Iterator at end of list")
	assert.PanicMatches(t, func() {
		it.Set(1)
	}, "Iterator at end of list")
}

func TestForeignIteratorPanics(t *testing.T) {
	a := NewList(1, 2)
	b := NewList(1, 2)

	it := a.Begin()
	assert.PanicMatches(t, func() {
		b.Insert(it, 3)
	}, "Iterator from another store")
	assert.PanicMatches(t, func() {
		b.Erase(it)
	}, "Iterator from another store")
}

func TestStaleIteratorPanics(t *testing.T) {
	// a detach leaves previously taken iterators bound to the old store

	a := NewList(1, 2)
	it := a.Begin()

	c := a.Copy()
	a.Append(9)
	assert.Equal(t, c.Values(), []int{1, 2})

	assert.PanicMatches(t, func() {
		a.Insert(it, 3)
	}, "Iterator from another store")
	assert.PanicMatches(t, func() {
		a.Erase(it)
	}, "Iterator from another store")
}

func TestInsertOnSharedStore(t *testing.T) {
	// Insert and Erase do not detach. a copy taken between Begin and
	// Insert observes the mutation. iterators must be taken after the last
	// copy, see Begin.

	a := NewList(1, 3)
	it := a.Begin()
	it.Next()

	b := a.Copy()
	a.Insert(it, 2)

	assert.Equal(t, a.Values(), []int{1, 2, 3})
	assert.Equal(t, b.Values(), []int{1, 2, 3})
	assert.Equal(t, a.SharesStoreWith(b), true)
}

func TestIteratorStability(t *testing.T) {
	// iterators keep pointing at their element across inserts and erases
	// at other positions

	l := NewList(1, 2, 3, 4)
	it := l.Find(3)

	l.Insert(l.Begin(), 0)
	assert.Equal(t, it.Value(), 3)

	first := l.Begin()
	l.Erase(first)
	assert.Equal(t, it.Value(), 3)

	l.Insert(l.End(), 5)
	assert.Equal(t, it.Value(), 3)
	assert.Equal(t, l.Values(), []int{1, 2, 3, 4, 5})
}
