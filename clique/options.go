package clique

// Options configures a Searcher. Zero value: enumerate every solution,
// no maximality filter, collect into an internal Collect sink.
type Options struct {
	// FirstOnly stops the whole search as soon as one solution has been
	// emitted.
	FirstOnly bool

	// MaximalOnly restricts output to cliques maximal in the whole
	// graph, not merely within the seed's active set.
	MaximalOnly bool

	// Sink receives solutions; nil installs a fresh Collect.
	Sink Sink
}

// Option mutates Options before the Searcher is built.
type Option func(*Options)

// DefaultOptions returns the zero configuration described on Options.
func DefaultOptions() Options { return Options{} }

// WithFirstOnly stops after the first solution.
func WithFirstOnly() Option {
	return func(o *Options) { o.FirstOnly = true }
}

// WithMaximalOnly emits only cliques maximal in the whole graph.
func WithMaximalOnly() Option {
	return func(o *Options) { o.MaximalOnly = true }
}

// WithSink streams solutions to s instead of collecting them.
func WithSink(s Sink) Option {
	return func(o *Options) { o.Sink = s }
}
