package topk

import "github.com/GLD5000/gld-heap/priority"

// options defines all configuration options for a Collector.
type options struct {
	ordering priority.Ordering // Which extreme counts as best
}

// Option is a function that configures the collector options.
type Option func(*options)

// WithOrdering selects which extreme the collector keeps:
// priority.Max (the default) collects the k largest priorities,
// priority.Min the k smallest.
func WithOrdering(o priority.Ordering) Option {
	return func(opts *options) {
		opts.ordering = o
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		ordering: priority.Max,
	}
}
