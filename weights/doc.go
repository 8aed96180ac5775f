// Package weights implements the strided skin-weight storage format shared
// by every operator in the module, plus the single limit/normalize/write-back
// policy that keeps it consistent.
//
// What:
//
//   - Every vertex owns a fixed window of MaxStorage (8) slots inside two
//     parallel, caller-owned slices: group indices (int32) and weight values
//     (float32). Slot k of vertex v lives at index v*MaxStorage+k.
//   - A slot is empty when its group index is negative or its weight is ≤ 0;
//     empty slots carry the sentinel pair (EmptyGroup, 0).
//   - Buffer is a zero-copy view over the two slices. It never reallocates,
//     never resizes, and retains nothing beyond what the caller handed in.
//
// Why:
//
//   - Interactive weight brushes rewrite thousands of records per stroke;
//     a fixed stride keeps every record rewrite a handful of in-place
//     stores with zero heap traffic.
//   - The strided int32/float32 layout is binary-compatible with hosts
//     that share the buffers through a flat FFI surface.
//
// Invariants (hold after every Commit on a vertex):
//
//   - At most MaxInfluence occupied slots.
//   - Occupied slots sorted by weight, descending.
//   - Occupied weights sum to exactly 1, or the record is fully cleared.
//   - No duplicate group indices among occupied slots.
//   - Every slot past the occupied count holds the empty sentinel.
//
// Complexity:
//
//   - Commit: O(c²) worst-case insertion sort over c candidates, c ≤ a few
//     dozen in practice; O(MaxStorage) stores. No allocation.
//   - Slots/Weight/Clear: O(MaxStorage).
//   - Validate: O(V·MaxStorage).
//
// Errors:
//
//   - ErrLengthMismatch: group and value slices differ in length.
//   - ErrBadStride: slice length is not a multiple of MaxStorage.
//   - ErrVertexRange: vertex index outside the buffer.
//   - ErrUnsorted, ErrNotNormalized, ErrDuplicateGroup, ErrStaleSlot,
//     ErrOverCapacity: invariant violations found by Validate.
package weights
