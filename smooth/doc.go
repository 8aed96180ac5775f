// Package smooth diffuses skin weights across mesh connectivity: each target
// vertex is blended toward the edge-weighted average of its neighbors'
// weight records.
//
// Algorithm outline (per target vertex v):
//
//  1. Accumulate: for each neighbor n with edge weight e, add e·w into an
//     accumulator keyed by group, for every occupied slot (g,w) of n; track
//     totalEdge = Σe.
//  2. Isolated vertex (totalEdge ≈ 0): skip v entirely, leave its record
//     byte-identical.
//  3. Blend: for every accumulated group, avg = accum[g]/totalEdge and
//     new = cur·(1−factor) + avg·factor; keep when new > MinWeight.
//  4. Decay: groups occupied on v but carried by no neighbor shrink by
//     cur·(1−factor); same keep threshold.
//  5. Commit the candidates through the shared weights policy (sort, limit,
//     renormalize, sentinel-fill).
//
// Update modes:
//
//   - Seidel (default) — immediate in-place write: a later target that
//     neighbors an earlier one reads the already-smoothed record. Order-
//     dependent on the target list by design; this matches the interactive
//     brush's smearing feel and costs zero extra memory.
//   - Jacobi — every read goes to a pre-iteration snapshot, so results are
//     independent of target order. Costs one buffer copy per iteration.
//     A distinct opt-in mode, never a silent replacement for Seidel.
//
// The accumulator is a reusable association list scanned linearly — group
// fan-in of a vertex neighborhood is small, and the hot path stays at O(1)
// allocations per call rather than churning a heap map per vertex.
//
// Complexity:
//
//	O(iterations · Σ_targets (degree·MaxStorage + a²)) time, where a is the
//	accumulated group count per vertex; O(a) scratch, plus O(V) snapshot in
//	Jacobi mode.
//
// Errors:
//
//   - ErrNilGraph, ErrNilBuffer: missing collaborators.
//   - ErrFactorRange: factor outside [0,1].
//   - ErrBadIterations: Options.Iterations < 1.
//   - ErrUnknownUpdateMode: Options.Update not Seidel or Jacobi.
//
// Numeric degeneracies (isolated vertices, collapsing totals) degrade
// silently instead of erroring, matching the host contract.
package smooth
