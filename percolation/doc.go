// Package percolation models site percolation on an n×n grid as a dynamic
// connectivity problem backed by a weighted union-find.
//
// What:
//
//   - Grid holds n² sites addressed by 1-indexed (row, col); each is BLOCKED
//     until Open is called, and opening is one-way.
//   - Site (row, col) maps to union-find id (row-1)*n + col.
//   - Two virtual sentinels, TOP = 0 and BOTTOM = n²+1, stand for the whole
//     first and last row. Percolates is a single Connected(TOP, BOTTOM).
//
// Why:
//
//   - Without sentinels "does any top site reach any bottom site" is a
//     multi-source search per query; with them it is O(α(n²)).
//
// Complexity:
//
//   - New:        O(n²) time and memory.
//   - Open:       at most 6 unions, O(α(n²)) amortized.
//   - IsOpen:     O(1).
//   - IsFull:     O(α(n²)) amortized.
//   - Percolates: O(α(n²)) amortized.
//
// Errors:
//
//   - ErrInvalidSize: negative grid size.
//   - ErrNonSquare: FromSites input rows differ in length from the row count.
//   - ErrOutOfBounds: row or col outside [1, n].
//
// Caveat: a bottom-row site may report IsFull once the grid percolates, even
// if its only route to the top runs through BOTTOM ("backwash").
package percolation
