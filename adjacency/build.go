package adjacency

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// BuildStrided constructs the CSR graph from flat host arrays, writing into
// caller-allocated output buffers of exact size: starts[numVerts+1],
// indices[len(edges)] and weights[len(edges)]. edges holds vertex-index
// pairs (edges[2e], edges[2e+1]); coords holds x,y,z per vertex.
//
// Edge endpoints are trusted to be valid vertex indices — index validation
// belongs to the collaborator that extracted the edge list from the mesh.
// The returned CSR aliases the three output buffers.
//
// Two passes over the edge list: degrees are counted first because CSR
// offsets are unknown until every degree is. Complexity: O(V+E) time,
// O(V) scratch for the write cursors.
func BuildStrided(numVerts int, edges []int32, coords []float32, starts, indices []int32, weights []float32) (*CSR, error) {
	if len(edges)%2 != 0 {
		return nil, ErrEdgeListOdd
	}
	if len(coords) != 3*numVerts {
		return nil, ErrCoordLen
	}
	if len(starts) != numVerts+1 || len(indices) != len(edges) || len(weights) != len(edges) {
		return nil, ErrBufferSize
	}

	edgeWeight := func(v1, v2 int32) float32 {
		x := float64(coords[v1*3] - coords[v2*3])
		y := float64(coords[v1*3+1] - coords[v2*3+1])
		z := float64(coords[v1*3+2] - coords[v2*3+2])
		dist := math.Sqrt(x*x + y*y + z*z)

		return float32(1 / (dist + DistanceEpsilon))
	}
	populate(numVerts, edges, edgeWeight, starts, indices, weights)

	return &CSR{Starts: starts, Indices: indices, Weights: weights}, nil
}

// Build is the allocating convenience: edge pairs and r3.Vec positions in,
// freshly allocated CSR out. Same two-pass construction and inverse-distance
// weighting as BuildStrided.
// Complexity: O(V+E) time, O(V+E) memory.
func Build(numVerts int, edges [][2]int32, pos []r3.Vec) (*CSR, error) {
	if len(pos) < numVerts {
		return nil, ErrPositionLen
	}

	flat := make([]int32, 2*len(edges))
	for e, pair := range edges {
		flat[2*e] = pair[0]
		flat[2*e+1] = pair[1]
	}

	g := &CSR{
		Starts:  make([]int32, numVerts+1),
		Indices: make([]int32, len(flat)),
		Weights: make([]float32, len(flat)),
	}
	edgeWeight := func(v1, v2 int32) float32 {
		dist := r3.Norm(r3.Sub(pos[v1], pos[v2]))

		return float32(1 / (dist + DistanceEpsilon))
	}
	populate(numVerts, flat, edgeWeight, g.Starts, g.Indices, g.Weights)

	return g, nil
}

// populate runs the two-pass counting-sort CSR construction:
//
//  1. count each vertex's degree (each undirected edge contributes to both
//     endpoints);
//  2. exclusive prefix sum of the degrees into starts, leaving
//     starts[numVerts] = total entry count;
//  3. re-walk the edge list, placing the two directed entries of every edge
//     at each endpoint's write cursor and advancing the cursor.
func populate(numVerts int, edges []int32, edgeWeight func(v1, v2 int32) float32, starts, indices []int32, weights []float32) {
	for i := range starts {
		starts[i] = 0
	}
	numEdges := len(edges) / 2
	for e := 0; e < numEdges; e++ {
		starts[edges[2*e]]++
		starts[edges[2*e+1]]++
	}

	var cursor int32
	for v := 0; v < numVerts; v++ {
		degree := starts[v]
		starts[v] = cursor
		cursor += degree
	}
	starts[numVerts] = cursor

	// Per-vertex write cursors, seeded from the fresh offsets.
	next := make([]int32, numVerts)
	copy(next, starts[:numVerts])

	for e := 0; e < numEdges; e++ {
		v1, v2 := edges[2*e], edges[2*e+1]
		w := edgeWeight(v1, v2)

		pos1 := next[v1]
		next[v1]++
		indices[pos1] = v2
		weights[pos1] = w

		pos2 := next[v2]
		next[v2]++
		indices[pos2] = v1
		weights[pos2] = w
	}
}
