package brush

import (
	"github.com/lolwinnerlol/Wynn-sToolKits/weights"
)

// Apply runs one vertex-local edit over the targets, mutating buf in place.
// factors is parallel to targets (per-vertex strength × falloff, computed by
// the host's brush). value is the smear sample for Smear (negative = no-op
// sentinel), the signed delta strength for Add, and ignored by Harden.
//
// Vertices are processed in target order, each independently; a vertex whose
// new weight differs from the current one by less than weights.MinWeight is
// skipped without a record rewrite. Target indices are trusted to be valid,
// per the host contract.
//
// Complexity: O(len(targets)·MaxStorage²) worst case; zero allocations.
func Apply(buf *weights.Buffer, targets []int32, factors []float32, activeGroup int32, mode Mode, value float32) error {
	if buf == nil {
		return ErrNilBuffer
	}
	if len(targets) != len(factors) {
		return ErrLengthMismatch
	}
	if mode != Smear && mode != Harden && mode != Add {
		return ErrUnknownMode
	}
	// Nothing sampled under the brush yet (stroke just started): no-op.
	if mode == Smear && value < 0 {
		return nil
	}

	var working [weights.MaxStorage]weights.Slot
	for t, vi := range targets {
		editVertex(buf, int(vi), factors[t], activeGroup, mode, value, working[:0])
	}

	return nil
}

// editVertex applies one edit to vertex v through the scratch working set.
func editVertex(buf *weights.Buffer, v int, factor float32, activeGroup int32, mode Mode, value float32, working []weights.Slot) {
	working = buf.Slots(v, working)

	var cur float32
	found := -1
	for i, s := range working {
		if s.Group == activeGroup {
			cur = s.Weight
			found = i
			break
		}
	}

	next := cur
	switch mode {
	case Smear:
		next = cur + (value-cur)*factor
	case Harden:
		next = cur + (cur-0.5)*factor
		next = clamp01(next)
	case Add:
		next = clamp01(cur + value*factor)
	}

	delta := next - cur
	if delta < 0 {
		delta = -delta
	}
	if delta < weights.MinWeight {
		return
	}

	switch {
	case found >= 0:
		working[found].Weight = next
	case next > weights.MinWeight:
		if len(working) < weights.MaxStorage {
			working = append(working, weights.Slot{Group: activeGroup, Weight: next})
			break
		}
		// Record full and the group is new: evict the current minimum-weight
		// slot, but only when the incoming weight outweighs it. The scan
		// takes the last minimum, i.e. the lowest-priority slot of a sorted
		// record, keeping the choice deterministic under ties.
		minIdx := 0
		for i := 1; i < len(working); i++ {
			if working[i].Weight <= working[minIdx].Weight {
				minIdx = i
			}
		}
		if next <= working[minIdx].Weight {
			return
		}
		working[minIdx] = weights.Slot{Group: activeGroup, Weight: next}
	default:
		// Absent and still negligible: nothing to store.
		return
	}

	buf.Commit(v, working)
}

// clamp01 clamps w to the valid weight range [0,1].
func clamp01(w float32) float32 {
	if w < 0 {
		return 0
	}
	if w > 1 {
		return 1
	}

	return w
}
