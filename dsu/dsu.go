package dsu

import "fmt"

// New builds a DSU of n singleton classes.
// Returns ErrNegativeSize if n < 0. n == 0 yields an empty universe on which
// every query fails with ErrOutOfRange.
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) (*DSU, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrNegativeSize)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &DSU{
		parent:   make([]int, n),
		size:     make([]int, n),
		count:    n,
		compress: o.PathCompression,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Len returns the universe size N.
func (d *DSU) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint classes.
func (d *DSU) Count() int {
	return d.count
}

// Find returns the root of x's class.
// Complexity: O(α(N)) amortized.
func (d *DSU) Find(x int) (int, error) {
	if err := d.validate(x); err != nil {
		return 0, err
	}

	return d.root(x), nil
}

// Union merges the classes of x and y. It is a no-op when they already share
// a root. Both ids are validated before anything is touched.
// Complexity: O(α(N)) amortized.
func (d *DSU) Union(x, y int) error {
	if err := d.validate(x); err != nil {
		return err
	}
	if err := d.validate(y); err != nil {
		return err
	}

	rx, ry := d.root(x), d.root(y)
	if rx == ry {
		return nil
	}
	// Keep rx as the larger tree; ties go to x.
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	d.count--

	return nil
}

// Connected reports whether x and y belong to the same class.
func (d *DSU) Connected(x, y int) (bool, error) {
	if err := d.validate(x); err != nil {
		return false, err
	}
	if err := d.validate(y); err != nil {
		return false, err
	}

	return d.root(x) == d.root(y), nil
}

// SizeOf returns the number of elements in x's class.
func (d *DSU) SizeOf(x int) (int, error) {
	if err := d.validate(x); err != nil {
		return 0, err
	}

	return d.size[d.root(x)], nil
}

// root walks to the representative of x. x must already be validated.
func (d *DSU) root(x int) int {
	for d.parent[x] != x {
		if d.compress {
			// Path halving: point x at its grandparent.
			d.parent[x] = d.parent[d.parent[x]]
		}
		x = d.parent[x]
	}

	return x
}

func (d *DSU) validate(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("element %d not in [0,%d): %w", x, len(d.parent), ErrOutOfRange)
	}

	return nil
}
