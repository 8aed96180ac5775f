// Package adjacency defines the CSR graph type and its accessors.
package adjacency

// DistanceEpsilon is added to every edge length before inversion, so the
// weight of an edge between coincident vertices stays finite.
const DistanceEpsilon = 1e-4

// CSR is a compressed-sparse-row adjacency graph over vertex indices
// [0, NumVerts). For vertex v, Indices[Starts[v]:Starts[v+1]] are its
// neighbors with parallel inverse-distance entries in Weights.
//
// The three slices are caller-owned when produced by BuildStrided and
// module-owned when produced by Build; either way the graph is treated as
// read-only once constructed. Lifecycle follows mesh topology: rebuild on
// any edge change.
type CSR struct {
	// Starts has NumVerts+1 entries; Starts[NumVerts] is the total entry count.
	Starts []int32

	// Indices holds neighbor vertex indices, 2 entries per input edge.
	Indices []int32

	// Weights holds 1/(distance+DistanceEpsilon) per neighbor entry.
	Weights []float32
}

// NumVerts returns the number of vertices the graph spans.
// Complexity: O(1).
func (g *CSR) NumVerts() int {
	if len(g.Starts) == 0 {
		return 0
	}

	return len(g.Starts) - 1
}

// Neighbors returns the neighbor-index and edge-weight runs of vertex v as
// zero-copy subslices. Both runs are empty for an isolated vertex.
// Complexity: O(1).
func (g *CSR) Neighbors(v int) ([]int32, []float32) {
	lo, hi := g.Starts[v], g.Starts[v+1]

	return g.Indices[lo:hi], g.Weights[lo:hi]
}

// Degree returns the number of neighbor entries of vertex v.
// Complexity: O(1).
func (g *CSR) Degree(v int) int {
	return int(g.Starts[v+1] - g.Starts[v])
}
