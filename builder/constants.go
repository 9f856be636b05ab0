// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by the constructors, so
// defaults and validation stay consistent across topologies.

package builder

// Method tags prefix constructor errors.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
	MethodBuildMatrix  = "BuildMatrix"
)

// Minimum sizes.
const (
	// MinPathNodes: a path of fewer than 2 vertices has no edges.
	MinPathNodes = 2
	// MinCycleNodes: fewer than 3 vertices cannot form a ring without
	// loops or parallel edges.
	MinCycleNodes = 3
	// MinStarNodes: one center plus at least one leaf.
	MinStarNodes = 2
	// MinCompleteNodes: K_1 is a single isolated vertex.
	MinCompleteNodes = 1
	// MinGridDim: a 1×1 grid has no edges but is valid.
	MinGridDim = 1
	// MinRandomSparseNodes is the smallest RandomSparse size.
	MinRandomSparseNodes = 1
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
