package topk

import (
	"cmp"
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/GLD5000/gld-heap/priority"
)

// ErrInvalidK is returned by New when k is less than one.
var ErrInvalidK = errors.New("topk: k must be positive")

// Collector keeps the k best entries offered so far. Best means the
// largest priority by default; see WithOrdering.
type Collector[P constraints.Ordered, V any] struct {
	k        int
	ordering priority.Ordering
	heap     *priority.Heap[P, V]
}

// New creates a collector with room for k entries. It returns
// ErrInvalidK when k is less than one.
func New[P constraints.Ordered, V any](k int, opts ...Option) (*Collector[P, V], error) {
	if k < 1 {
		return nil, ErrInvalidK
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// The internal heap is ordered opposite to the collection, so its
	// root is the worst entry held: the one to compare candidates with
	// and the first to go.
	internal := priority.Min
	if o.ordering == priority.Min {
		internal = priority.Max
	}
	return &Collector[P, V]{
		k:        k,
		ordering: o.ordering,
		heap: priority.New[P, V](
			priority.WithOrdering(internal),
			priority.WithCapacity(k),
		),
	}, nil
}

// Offer considers an entry for the collection and reports whether it
// was admitted. Every entry is admitted while fewer than k are held;
// after that a candidate evicts the worst entry held only when it is
// strictly better, so on a priority tie the earliest-seen entry stays.
func (c *Collector[P, V]) Offer(p P, value V) bool {
	if c.heap.Len() < c.k {
		c.heap.Push(p, value)
		return true
	}
	worst, _ := c.heap.Peek()
	diff := cmp.Compare(p, worst.Priority)
	if c.ordering == priority.Min {
		diff = -diff
	}
	if diff <= 0 {
		return false
	}
	c.heap.Replace(p, value)
	return true
}

// Len returns the number of entries held, at most k.
func (c *Collector[P, V]) Len() int {
	return c.heap.Len()
}

// K returns the collection bound.
func (c *Collector[P, V]) K() int {
	return c.k
}

// Entries returns a snapshot of the entries held, in no particular
// order.
func (c *Collector[P, V]) Entries() []priority.Entry[P, V] {
	return c.heap.Entries()
}

// Drain removes and returns every entry held, best first.
func (c *Collector[P, V]) Drain() []priority.Entry[P, V] {
	entries := make([]priority.Entry[P, V], c.heap.Len())
	for i := len(entries) - 1; i >= 0; i-- {
		entries[i], _ = c.heap.Pop()
	}
	return entries
}
