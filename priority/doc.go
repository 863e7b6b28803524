// Package priority implements a generic array-backed binary heap of
// (priority, value) entries. The heap supports efficient insertion,
// extraction of the highest-priority entry, peeking, bulk rebuilding
// from a slice, root replacement, and conditional removal.
//
// The heap is configured as min-ordered (the default) or max-ordered
// at construction time. Entries with equal priorities are extracted in
// insertion order: every entry is stamped with a monotonically
// increasing sequence number that breaks ties first-in-first-out, so
// extraction is stable.
//
// Key features:
//   - Generic implementation: any ordered priority type, any value type
//   - O(log n) insertion, extraction, replacement and removal
//   - O(1) peek, length and emptiness checks
//   - O(n) bulk rebuild from an existing slice of entries
//   - Stable FIFO extraction among equal priorities
//   - No error paths: empty and not-found conditions are comma-ok returns
//
// Basic usage:
//
//	// Create a min-ordered heap (smaller priorities come out first)
//	h := priority.New[int, string]()
//
//	// Add entries
//	h.Push(5, "write report")
//	h.Push(1, "fix outage")
//	h.Push(3, "review change")
//
//	// Inspect the most urgent entry
//	entry, ok := h.Peek()
//	if ok {
//	    fmt.Printf("next up: %s (priority %d)\n", entry.Value, entry.Priority)
//	}
//
//	// Drain in priority order
//	for !h.IsEmpty() {
//	    entry, _ := h.Pop()
//	    fmt.Println(entry.Value)
//	}
//
//	// Or rebuild wholesale from a slice in O(n)
//	h.Load([]priority.Entry[int, string]{
//	    {Priority: 2, Value: "two"},
//	    {Priority: 1, Value: "one"},
//	})
//
// A max-ordered heap is requested at construction:
//
//	h := priority.New[float64, string](priority.WithOrdering(priority.Max))
//
// The heap is not safe for concurrent use; callers sharing one across
// goroutines must serialize access with a single lock around every
// operation.
package priority
