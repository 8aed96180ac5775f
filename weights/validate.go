package weights

import (
	"fmt"
	"math"
)

// sumTolerance is how far an occupied record's total may drift from 1 before
// Validate flags it. Matches the tolerance the operators are tested against.
const sumTolerance = 1e-4

// ValidateRecord audits the record of vertex v against the format
// invariants: occupied-slot count ≤ MaxInfluence, descending weight order,
// no duplicate groups, total ≈ 1 when any slot is occupied, and a fully
// sentinel-filled tail. Intended for host sanity checks and tests; the
// operators never call it on the hot path.
//
// Returns nil on a clean record, ErrVertexRange for a bad index, or the
// first violated sentinel wrapped with the vertex and slot that tripped it.
// Complexity: O(MaxStorage).
func (b *Buffer) ValidateRecord(v int) error {
	if v < 0 || v >= b.numVerts {
		return fmt.Errorf("vertex %d of %d: %w", v, b.numVerts, ErrVertexRange)
	}

	base := b.base(v)
	var (
		count int
		total float32
		prev  = float32(math.Inf(1))
		seen  bool // a sentinel slot has been passed
	)
	for k := 0; k < MaxStorage; k++ {
		g, w := b.Groups[base+k], b.Values[base+k]
		if g < 0 || w <= 0 {
			if g != EmptyGroup || w != 0 {
				return fmt.Errorf("vertex %d slot %d (group %d, weight %g): %w", v, k, g, w, ErrStaleSlot)
			}
			seen = true
			continue
		}
		if seen {
			// Occupied slot after a sentinel: the tail was not rewritten.
			return fmt.Errorf("vertex %d slot %d occupied after sentinel: %w", v, k, ErrStaleSlot)
		}
		if w > prev {
			return fmt.Errorf("vertex %d slot %d: %w", v, k, ErrUnsorted)
		}
		for j := 0; j < k; j++ {
			if b.Groups[base+j] == g {
				return fmt.Errorf("vertex %d group %d in slots %d and %d: %w", v, g, j, k, ErrDuplicateGroup)
			}
		}
		prev = w
		total += w
		count++
	}

	if count > MaxInfluence {
		return fmt.Errorf("vertex %d has %d occupied slots: %w", v, count, ErrOverCapacity)
	}
	if count > 0 && math.Abs(float64(total)-1) > sumTolerance {
		return fmt.Errorf("vertex %d sums to %g: %w", v, total, ErrNotNormalized)
	}

	return nil
}

// Validate audits every record in the buffer, returning the first violation
// found (lowest vertex index first) or nil when all records are clean.
// Complexity: O(V·MaxStorage).
func (b *Buffer) Validate() error {
	for v := 0; v < b.numVerts; v++ {
		if err := b.ValidateRecord(v); err != nil {
			return err
		}
	}

	return nil
}
