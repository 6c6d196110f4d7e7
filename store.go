package shared

import (
	"sync/atomic"

	"github.com/golang/glog"
)

// store is the backing store behind one or more list handles.
//
// refs counts the handles attached to the store. A store with refs of one is
// exclusively owned and may be mutated in place. Reference counting is
// atomic so handles can be copied and closed from different goroutines, but
// the sequence itself carries no locks. See the package comment for the
// sharing rules.
type store[T comparable] struct {
	id         Id
	refs       atomic.Int32
	autoDelete bool
	seq        seq[T]
}

func newStore[T comparable](values ...T) *store[T] {
	s := &store[T]{
		id: NewId(),
	}
	s.seq.init()
	for _, value := range values {
		s.seq.pushBack(value)
	}
	s.refs.Store(1)
	glog.V(2).Infof("[store]create %s len=%d\n", s.id, s.seq.len)
	return s
}

// copyStore deep copies the sequence into a new exclusively owned store and
// carries over the auto delete mode. Element values are copied, so for
// pointer elements both stores alias the same pointees afterward.
func copyStore[T comparable](from *store[T]) *store[T] {
	to := newStore[T]()
	to.autoDelete = from.autoDelete
	for n := from.seq.head(); n != from.seq.end(); n = n.next {
		to.seq.pushBack(n.value)
	}
	return to
}

func (self *store[T]) acquire() {
	self.refs.Add(1)
}

// release drops one handle. The last release clears the store, which
// disposes the remaining elements when auto delete is enabled.
func (self *store[T]) release() {
	if refs := self.refs.Add(-1); refs == 0 {
		glog.V(2).Infof("[store]destroy %s len=%d\n", self.id, self.seq.len)
		self.clear()
	}
}

// clear unlinks all nodes. With auto delete enabled, each dropped element
// that implements Disposable is disposed exactly once.
func (self *store[T]) clear() {
	if self.autoDelete {
		disposed := 0
		for n := self.seq.head(); n != self.seq.end(); n = n.next {
			if dispose(n.value) {
				disposed += 1
			}
		}
		if 0 < disposed {
			glog.V(2).Infof("[store]dispose %s n=%d\n", self.id, disposed)
		}
	}
	self.seq.init()
}
