// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// edges.go - the coordinate collector shared by all constructors.

package builder

// edgeList accumulates COO triplets for a single BuildMatrix call.
// Vertices are numbered densely from 0 in allocation order.
type edgeList struct {
	n    int
	rows []int
	cols []int
	w    []float64
}

// addVertices reserves k vertices and returns the index of the first one.
func (el *edgeList) addVertices(k int) int {
	base := el.n
	el.n += k

	return base
}

// addEdge emits u→v with weight w, plus v→u when cfg is undirected.
func (el *edgeList) addEdge(cfg builderConfig, u, v int, w float64) {
	el.rows = append(el.rows, u)
	el.cols = append(el.cols, v)
	el.w = append(el.w, w)
	if !cfg.directed && u != v {
		el.rows = append(el.rows, v)
		el.cols = append(el.cols, u)
		el.w = append(el.w, w)
	}
}

// edges reports how many triplets have been collected.
func (el *edgeList) edges() int { return len(el.w) }
