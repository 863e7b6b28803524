package priority

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// Entry is a prioritized payload held by a Heap.
type Entry[P constraints.Ordered, V any] struct {
	Priority P
	Value    V
}

// node augments an Entry with the sequence number assigned at creation
// time, used to break priority ties first-inserted-first. Sequence
// numbers are internal and never surfaced.
type node[P constraints.Ordered, V any] struct {
	entry Entry[P, V]
	seq   uint64
}

// Heap implements an array-backed binary heap over prioritized entries.
// The zero-indexed storage forms an implicit complete binary tree: the
// parent of index i is (i-1)/2 and its children are 2i+1 and 2i+2.
type Heap[P constraints.Ordered, V any] struct {
	nodes    []node[P, V]
	seq      uint64
	ordering Ordering
}

// New creates an empty heap with the given options. By default the heap
// is min-ordered: the entry with the smallest priority is extracted
// first. The ordering is fixed for the heap's lifetime.
func New[P constraints.Ordered, V any](opts ...Option) *Heap[P, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Heap[P, V]{
		nodes:    make([]node[P, V], 0, o.capacity),
		ordering: o.ordering,
	}
}

// Len returns the number of entries in the heap.
func (h *Heap[P, V]) Len() int {
	return len(h.nodes)
}

// IsEmpty reports whether the heap holds no entries.
func (h *Heap[P, V]) IsEmpty() bool {
	return len(h.nodes) == 0
}

// Push inserts a value with the given priority. It always succeeds.
func (h *Heap[P, V]) Push(priority P, value V) {
	h.nodes = append(h.nodes, node[P, V]{
		entry: Entry[P, V]{Priority: priority, Value: value},
		seq:   h.nextSeq(),
	})
	h.up(len(h.nodes) - 1)
}

// Pop removes and returns the root entry: the smallest priority under
// Min ordering, the largest under Max, with equal priorities extracted
// in insertion order. The second return is false when the heap is
// empty.
func (h *Heap[P, V]) Pop() (Entry[P, V], bool) {
	if len(h.nodes) == 0 {
		var zero Entry[P, V]
		return zero, false
	}
	n := len(h.nodes) - 1
	root := h.nodes[0].entry
	h.nodes[0] = h.nodes[n]
	h.nodes[n] = node[P, V]{} // avoid memory leak
	h.nodes = h.nodes[:n]
	if n > 0 {
		h.down(0)
	}
	return root, true
}

// Peek returns the root entry without removing it. The second return
// is false when the heap is empty.
func (h *Heap[P, V]) Peek() (Entry[P, V], bool) {
	if len(h.nodes) == 0 {
		var zero Entry[P, V]
		return zero, false
	}
	return h.nodes[0].entry, true
}

// Clear removes every entry. The sequence counter is not reset; it
// stays monotonic for the heap's lifetime.
func (h *Heap[P, V]) Clear() {
	clear(h.nodes)
	h.nodes = h.nodes[:0]
}

// Entries returns a snapshot of the entries in internal array order.
// The order is a valid heap layout, not a sort by priority; callers
// must not assume sorted output.
func (h *Heap[P, V]) Entries() []Entry[P, V] {
	entries := make([]Entry[P, V], len(h.nodes))
	for i := range h.nodes {
		entries[i] = h.nodes[i].entry
	}
	return entries
}

// All iterates the entries in internal array order, like Entries but
// without copying. The heap must not be mutated during iteration.
func (h *Heap[P, V]) All() iter.Seq[Entry[P, V]] {
	return func(yield func(Entry[P, V]) bool) {
		for i := range h.nodes {
			if !yield(h.nodes[i].entry) {
				return
			}
		}
	}
}

// Load replaces the heap's contents with the given entries, assigning
// fresh sequence numbers in input order, and rebuilds heap order in
// O(n). Prior contents and their sequence numbers are discarded.
func (h *Heap[P, V]) Load(entries []Entry[P, V]) {
	clear(h.nodes)
	h.nodes = h.nodes[:0]
	for _, e := range entries {
		h.nodes = append(h.nodes, node[P, V]{entry: e, seq: h.nextSeq()})
	}
	for i := len(h.nodes)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}

// Replace swaps a new entry for the root in a single sift-down pass,
// cheaper than a Pop followed by a Push, and returns the previous
// root. On an empty heap the entry is inserted and the second return
// is false, there being no previous root.
func (h *Heap[P, V]) Replace(priority P, value V) (Entry[P, V], bool) {
	if len(h.nodes) == 0 {
		h.Push(priority, value)
		var zero Entry[P, V]
		return zero, false
	}
	prev := h.nodes[0].entry
	h.nodes[0] = node[P, V]{
		entry: Entry[P, V]{Priority: priority, Value: value},
		seq:   h.nextSeq(),
	}
	h.down(0)
	return prev, true
}

// PushPop pushes an entry and immediately pops the root, in a single
// pass. When the heap is empty or the new entry orders strictly before
// the root, the entry comes straight back and the heap is untouched;
// on a priority tie the root is older and is returned instead.
func (h *Heap[P, V]) PushPop(priority P, value V) Entry[P, V] {
	entry := Entry[P, V]{Priority: priority, Value: value}
	if len(h.nodes) == 0 {
		return entry
	}
	c := cmp.Compare(h.nodes[0].entry.Priority, priority)
	if h.ordering == Max {
		c = -c
	}
	if c > 0 {
		return entry
	}
	prev := h.nodes[0].entry
	h.nodes[0] = node[P, V]{entry: entry, seq: h.nextSeq()}
	h.down(0)
	return prev
}

// RemoveFunc removes the first entry, in internal array order, for
// which match returns true, and reports whether one was removed. The
// predicate sees the priority and value only, never the sequence
// number.
func (h *Heap[P, V]) RemoveFunc(match func(Entry[P, V]) bool) bool {
	for i := range h.nodes {
		if !match(h.nodes[i].entry) {
			continue
		}
		n := len(h.nodes) - 1
		h.nodes[i] = h.nodes[n]
		h.nodes[n] = node[P, V]{} // avoid memory leak
		h.nodes = h.nodes[:n]
		if i < n {
			// The replacement came from a different position, so its
			// resting place may be below or above i. At most one of
			// these moves it.
			h.down(i)
			h.up(i)
		}
		return true
	}
	return false
}

// nextSeq returns the next sequence number. Numbers strictly increase
// over the heap's lifetime and are never reused.
func (h *Heap[P, V]) nextSeq() uint64 {
	n := h.seq
	h.seq++
	return n
}

// less reports whether the node at index i must order before the node
// at index j: by priority under the configured ordering, then by
// sequence number so that equal priorities extract in insertion order.
func (h *Heap[P, V]) less(i, j int) bool {
	c := cmp.Compare(h.nodes[i].entry.Priority, h.nodes[j].entry.Priority)
	if h.ordering == Max {
		c = -c
	}
	if c != 0 {
		return c < 0
	}
	return h.nodes[i].seq < h.nodes[j].seq
}

// swap swaps the nodes at index i and j.
func (h *Heap[P, V]) swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
}

// up moves the node at index i up to its proper position.
func (h *Heap[P, V]) up(i int) {
	for {
		parent := (i - 1) / 2
		if parent == i || !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down moves the node at index i down to its proper position.
func (h *Heap[P, V]) down(i int) {
	for {
		best := i
		left := 2*i + 1
		right := 2*i + 2

		if left < len(h.nodes) && h.less(left, best) {
			best = left
		}
		if right < len(h.nodes) && h.less(right, best) {
			best = right
		}

		if best == i {
			break
		}

		h.swap(i, best)
		i = best
	}
}
