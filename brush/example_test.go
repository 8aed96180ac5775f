// File: brush/example_test.go
package brush_test

import (
	"fmt"

	"github.com/lolwinnerlol/Wynn-sToolKits/brush"
	"github.com/lolwinnerlol/Wynn-sToolKits/weights"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Apply (Harden)
////////////////////////////////////////////////////////////////////////////////

// ExampleApply demonstrates a full-strength harden stroke on a vertex split
// 60/40 between two bones: the dominant weight is stretched away from the
// midpoint and the record renormalized.
func ExampleApply() {
	groups := make([]int32, weights.MaxStorage)
	values := make([]float32, weights.MaxStorage)
	buf, _ := weights.Wrap(groups, values)
	buf.Reset()
	buf.Commit(0, []weights.Slot{
		{Group: 0, Weight: 0.6},
		{Group: 1, Weight: 0.4},
	})

	targets := []int32{0}
	factors := []float32{1}
	if err := brush.Apply(buf, targets, factors, 0, brush.Harden, 0); err != nil {
		fmt.Println("apply failed:", err)
		return
	}

	// 0.6 → 0.7 pre-normalization, then scaled back to a unit sum.
	fmt.Printf("bone 0: %.3f\n", buf.Weight(0, 0))
	fmt.Printf("bone 1: %.3f\n", buf.Weight(0, 1))

	// Output:
	// bone 0: 0.636
	// bone 1: 0.364
}
