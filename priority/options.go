package priority

// Ordering selects which end of the priority scale a heap extracts
// first.
type Ordering int

const (
	// Min extracts the smallest priority first. This is the default.
	Min Ordering = iota
	// Max extracts the largest priority first.
	Max
)

// options defines all configuration options for a Heap.
type options struct {
	ordering Ordering // Which extreme Pop and Peek surface first
	capacity int      // Storage to pre-allocate
}

// Option is a function that configures the heap options.
type Option func(*options)

// WithOrdering selects min- or max-ordering. The setting is fixed for
// the heap's lifetime.
func WithOrdering(o Ordering) Option {
	return func(opts *options) {
		opts.ordering = o
	}
}

// WithCapacity pre-allocates storage for n entries. Values below one
// are ignored.
func WithCapacity(n int) Option {
	return func(opts *options) {
		if n > 0 {
			opts.capacity = n
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		ordering: Min,
		capacity: 0,
	}
}
