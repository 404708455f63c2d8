package dsu

import "errors"

// Sentinel errors for dsu operations.
var (
	// ErrNegativeSize indicates New was called with a negative universe size.
	ErrNegativeSize = errors.New("dsu: universe size must be non-negative")
	// ErrOutOfRange indicates an element id outside [0, N).
	ErrOutOfRange = errors.New("dsu: element out of range")
)

// Options configures a DSU. Use DefaultOptions() for the standard setup.
type Options struct {
	// PathCompression enables path halving in Find.
	PathCompression bool
}

// Option modifies Options.
type Option func(*Options)

// DefaultOptions returns Options with path compression enabled.
func DefaultOptions() Options {
	return Options{
		PathCompression: true,
	}
}

// WithoutPathCompression disables path halving; Find becomes a plain walk.
func WithoutPathCompression() Option {
	return func(o *Options) {
		o.PathCompression = false
	}
}

// DSU is a disjoint-set forest over 0..Len()-1.
// parent[i] == i marks a root; size[r] is only meaningful for roots.
// Not safe for concurrent use.
type DSU struct {
	parent   []int
	size     []int
	count    int
	compress bool
}
