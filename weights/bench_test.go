package weights_test

import (
	"math/rand"
	"testing"

	"github.com/lolwinnerlol/Wynn-sToolKits/weights"
)

// BenchmarkCommit measures the full sort/limit/normalize/write-back policy
// on a record-sized candidate list, the unit of work repeated per vertex on
// every brush step.
// Complexity: O(c²) compares + O(MaxStorage) stores, zero allocations.
func BenchmarkCommit(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	buf, err := weights.Wrap(
		make([]int32, weights.MaxStorage),
		make([]float32, weights.MaxStorage),
	)
	if err != nil {
		b.Fatalf("setup Wrap failed: %v", err)
	}
	buf.Reset()

	// Pre-generate candidate lists so the loop measures Commit alone.
	const pool = 128
	cands := make([][]weights.Slot, pool)
	for i := range cands {
		n := 1 + rng.Intn(weights.MaxStorage)
		c := make([]weights.Slot, n)
		for k := range c {
			c[k] = weights.Slot{Group: int32(k), Weight: rng.Float32() + 1e-3}
		}
		cands[i] = c
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Commit(0, cands[i%pool])
	}
}

// BenchmarkSlots measures reading a full record into a reused scratch slice.
func BenchmarkSlots(b *testing.B) {
	buf, err := weights.Wrap(
		make([]int32, weights.MaxStorage),
		make([]float32, weights.MaxStorage),
	)
	if err != nil {
		b.Fatalf("setup Wrap failed: %v", err)
	}
	buf.Reset()
	full := make([]weights.Slot, 0, weights.MaxStorage)
	for g := int32(0); g < weights.MaxStorage; g++ {
		full = append(full, weights.Slot{Group: g, Weight: 0.125})
	}
	buf.Commit(0, full)

	scratch := make([]weights.Slot, 0, weights.MaxStorage)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scratch = buf.Slots(0, scratch[:0])
	}
	_ = scratch
}
