// Package brush applies vertex-local weight edits that need no mesh
// connectivity: every target vertex is transformed independently from its
// own record, its per-vertex strength factor, and the active group.
//
// Modes:
//
//   - Smear — pull the active group's weight toward a sampled value:
//     new = cur + (value−cur)·f. A negative value is the "no sample under
//     the brush" sentinel and turns the whole call into a no-op.
//   - Harden — continuous contrast stretch away from the 0.5 midpoint:
//     new = cur + (cur−0.5)·f, clamped to [0,1]. Repeated small strokes
//     converge toward 0 or 1 without the discontinuity of a hard snap.
//   - Add — clamped additive delta: new = clamp01(cur + value·f), value
//     being the signed stroke strength.
//
// Per target vertex:
//
//  1. Read the occupied slots into a fixed-size working set and note the
//     active group's current weight (0 when absent).
//  2. Compute the mode's new weight.
//  3. Skip the vertex when the change is below MinWeight — no observable
//     difference, no normalization churn.
//  4. Update the active group's entry, or append it when absent. When the
//     record is already full, the new entry evicts the current minimum-
//     weight slot only if it outweighs it; otherwise the edit is dropped
//     for that vertex.
//  5. Commit through the shared weights policy.
//
// Complexity: O(targets · MaxStorage²) worst case, zero allocations.
//
// Errors:
//
//   - ErrNilBuffer: missing weight buffer.
//   - ErrLengthMismatch: target and factor slices differ in length.
//   - ErrUnknownMode: mode outside Smear/Harden/Add.
package brush
