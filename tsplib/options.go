package tsplib

import "log/slog"

// DefaultMaxDimension caps DIMENSION when no WithMaxDimension is given.
// A graph of this order needs (n+1)² ≈ 400 MB of adjacency storage.
const DefaultMaxDimension = 20000

// Option customizes a read.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	maxDimension int
	source       string
}

// WithLogger routes diagnostics to l at WARN level. nil means slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMaxDimension sets the largest DIMENSION accepted before the read
// fails with ErrAllocation. Values ≤ 0 restore DefaultMaxDimension.
func WithMaxDimension(n int) Option {
	return func(o *options) { o.maxDimension = n }
}

// WithSource labels diagnostics and log records (LoadGraph/LoadTour pass the path).
func WithSource(name string) Option {
	return func(o *options) { o.source = name }
}

func newOptions(opts ...Option) options {
	o := options{maxDimension: DefaultMaxDimension}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.maxDimension <= 0 {
		o.maxDimension = DefaultMaxDimension
	}
	if o.source == "" {
		o.source = "<input>"
	}

	return o
}

// withSourceFirst prepends WithSource without touching the caller's slice,
// so an explicit WithSource from the caller still wins.
func withSourceFirst(path string, opts []Option) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, WithSource(path))

	return append(out, opts...)
}
