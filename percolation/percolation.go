package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/dsu"
)

// New builds an n×n grid with every site blocked.
// n == 0 is accepted: the grid has no addressable sites and never percolates.
// Returns ErrInvalidSize if n < 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidSize)
	}
	uf, err := dsu.New(n*n + 2)
	if err != nil {
		return nil, err
	}

	return &Grid{
		n:      n,
		open:   make([]bool, n*n),
		uf:     uf,
		bottom: n*n + 1,
	}, nil
}

// FromSites builds a grid of size len(sites) and opens every true cell in
// row-major order. sites[r][c] addresses site (r+1, c+1).
// Returns ErrNonSquare if any row length differs from len(sites).
func FromSites(sites [][]bool) (*Grid, error) {
	n := len(sites)
	for r, row := range sites {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r+1, len(row), n, ErrNonSquare)
		}
	}
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for r, row := range sites {
		for c, isOpen := range row {
			if !isOpen {
				continue
			}
			if err = g.Open(r+1, c+1); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Size returns n.
func (g *Grid) Size() int {
	return g.n
}

// NumberOfOpenSites returns how many sites have been opened.
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// Open marks (row, col) open and joins it with its open neighbors, and with
// TOP or BOTTOM when it sits on the first or last row. Opening an open site is
// a no-op. Returns ErrOutOfBounds without touching the grid on bad input.
func (g *Grid) Open(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	id := g.id(row, col)
	if g.open[id-1] {
		return nil
	}
	g.open[id-1] = true
	g.openCount++

	if row == 1 {
		if err := g.uf.Union(top, id); err != nil {
			return err
		}
	}
	if row == g.n {
		if err := g.uf.Union(g.bottom, id); err != nil {
			return err
		}
	}
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.inBounds(nr, nc) {
			continue
		}
		nid := g.id(nr, nc)
		if !g.open[nid-1] {
			continue
		}
		if err := g.uf.Union(id, nid); err != nil {
			return err
		}
	}

	return nil
}

// IsOpen reports whether (row, col) has been opened.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.open[g.id(row, col)-1], nil
}

// IsFull reports whether (row, col) is connected to the top row through open
// sites. Blocked sites are never unioned, so they always report false.
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.uf.Connected(top, g.id(row, col))
}

// Connected reports whether two sites belong to the same open cluster.
// A blocked site is only connected to itself.
func (g *Grid) Connected(row1, col1, row2, col2 int) (bool, error) {
	if err := g.validate(row1, col1); err != nil {
		return false, err
	}
	if err := g.validate(row2, col2); err != nil {
		return false, err
	}

	return g.uf.Connected(g.id(row1, col1), g.id(row2, col2))
}

// Percolates reports whether TOP and BOTTOM are connected.
// It is false on a fresh grid and on a zero-size grid.
func (g *Grid) Percolates() bool {
	// Both sentinels are always inside the universe.
	ok, _ := g.uf.Connected(top, g.bottom)

	return ok
}

// id maps a validated (row, col) to its union-find id in [1, n²].
func (g *Grid) id(row, col int) int {
	return (row-1)*g.n + col
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

func (g *Grid) validate(row, col int) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("site (%d,%d) not in [1,%d]: %w", row, col, g.n, ErrOutOfBounds)
	}

	return nil
}
