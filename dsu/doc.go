// Package dsu provides a fixed-size disjoint-set (union-find) structure over
// the integer universe 0..N-1.
//
// What:
//
//   - DSU keeps a forest of parent pointers plus per-root size counters.
//   - Union attaches the smaller tree under the larger one (union-by-size).
//   - Find shortens paths while walking to the root (path halving).
//
// Why:
//
//   - Dynamic connectivity: answer "are x and y connected?" while edges keep
//     arriving, without re-running a traversal.
//   - Building block for Kruskal-style MST, percolation, image labeling.
//
// Complexity:
//
//   - New:       O(N) time, O(N) memory.
//   - Find:      O(α(N)) amortized; O(log N) worst case without compression.
//   - Union:     O(α(N)) amortized.
//   - Connected: O(α(N)) amortized.
//
// Options:
//
//   - WithoutPathCompression(): plain parent walks in Find. Trees stay
//     bounded by O(log N) height thanks to union-by-size.
//
// Errors:
//
//   - ErrNegativeSize: universe size passed to New is negative.
//   - ErrOutOfRange: an element id is outside [0, N).
package dsu
