// Package percolate is an in-memory toolkit for studying site percolation
// as a dynamic connectivity problem.
//
// Under the hood, everything is organized under two subpackages:
//
//	dsu/         — fixed-size disjoint-set (union-find) with union-by-size
//	               and path halving
//	percolation/ — n×n site grid mapped onto dsu with TOP/BOTTOM sentinels
//
// Quick ASCII example (# = open):
//
//	  TOP
//	 . # .
//	 . # #
//	 . . #
//	 BOTTOM
//
// percolates: the open sites form a path from the first row to the last.
//
//	go get github.com/katalvlaran/percolation
package percolate
