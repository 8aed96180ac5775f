// Package adjacency builds and exposes the CSR mesh-connectivity graph
// consumed by the smoothing operator.
//
// What:
//
//   - CSR is the classic compressed-sparse-row layout: Starts offsets a
//     vertex's contiguous neighbor run inside Indices, with a parallel
//     Weights entry per neighbor.
//   - Every undirected input edge (a,b) yields one entry in a's run and one
//     in b's run, so the graph is symmetric by construction.
//   - Edge weight is 1/(distance+ε): closer neighbors diffuse more, and the
//     ε floor keeps coincident vertices finite.
//   - BuildStrided fills caller-allocated output buffers from flat edge and
//     coordinate arrays; Build is the allocating convenience over r3.Vec
//     positions.
//
// Why:
//
//   - The smoothing hot path wants neighbor runs as two contiguous slices
//     with no pointer chasing and no per-vertex containers.
//   - Construction is the standard two-pass counting sort — count degrees,
//     exclusive-prefix-sum into Starts, then place entries with per-vertex
//     write cursors — which keeps the whole build at O(1) allocations
//     instead of flattening per-vertex growable lists.
//
// Complexity:
//
//   - BuildStrided / Build: O(V+E) time, O(V) scratch.
//   - Neighbors / Degree: O(1).
//
// The graph is read-only once built; on topology change the host rebuilds
// it wholesale, there is no incremental update. Parallel input edges are
// not deduplicated and self-loops are stored verbatim.
//
// Errors:
//
//   - ErrEdgeListOdd: flat edge array length is not a multiple of 2.
//   - ErrCoordLen: coordinate array does not hold 3 floats per vertex.
//   - ErrBufferSize: an output buffer has the wrong pre-allocated size.
//   - ErrPositionLen: position slice shorter than the vertex count.
package adjacency
