package percolation

import (
	"errors"

	"github.com/katalvlaran/percolation/dsu"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidSize indicates a negative grid size.
	ErrInvalidSize = errors.New("percolation: grid size must be non-negative")
	// ErrNonSquare indicates FromSites received a grid that is not n×n.
	ErrNonSquare = errors.New("percolation: site grid must be square")
	// ErrOutOfBounds indicates a row or column outside [1, n].
	ErrOutOfBounds = errors.New("percolation: site out of bounds")
)

// top is the id of the virtual site joined to every open first-row site.
const top = 0

// neighborOffsets lists the 4-connected (row, col) deltas: left, right, up, down.
var neighborOffsets = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Grid is an n×n percolation system. It exclusively owns its union-find;
// neither the open-state slice nor the union-find is exposed.
// Not safe for concurrent use.
type Grid struct {
	n         int
	open      []bool // row-major, index id-1
	openCount int
	uf        *dsu.DSU
	bottom    int // n*n + 1
}
