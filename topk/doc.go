// Package topk collects the k best entries of a stream while never
// holding more than k entries at a time.
//
// The collector is a bounded heap ordered opposite to the collection:
// its root is the worst entry currently held, so deciding whether a
// candidate displaces anything is a single comparison. A stream of any
// length is reduced to its k best entries in O(n log k) time and O(k)
// space.
//
// Key features:
//   - Collects the k largest (the default) or k smallest priorities
//   - O(log k) per offered entry regardless of stream length
//   - On priority ties the earliest-seen entry is retained
//   - Drain returns the collection best first
//
// Basic usage:
//
//	// Track the three highest-scoring results
//	c, err := topk.New[float64, string](3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, r := range results {
//	    c.Offer(r.Score, r.Name)
//	}
//
//	for _, e := range c.Drain() {
//	    fmt.Printf("%s: %.2f\n", e.Value, e.Priority)
//	}
//
// Like the heap it is built on, a Collector is not safe for concurrent
// use.
package topk
