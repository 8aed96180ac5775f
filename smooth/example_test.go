// File: smooth/example_test.go
package smooth_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lolwinnerlol/Wynn-sToolKits/adjacency"
	"github.com/lolwinnerlol/Wynn-sToolKits/smooth"
	"github.com/lolwinnerlol/Wynn-sToolKits/weights"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Smooth
////////////////////////////////////////////////////////////////////////////////

// ExampleSmooth blurs a hard weight seam between two bones.
// Scenario:
//
//	0───1     vertex 0 is fully bone 0, vertex 1 fully bone 1,
//	          one unit edge between them — a hard seam.
//
// A half-strength smooth of vertex 0 blends it 50/50 across the seam.
func ExampleSmooth() {
	groups := make([]int32, 2*weights.MaxStorage)
	values := make([]float32, 2*weights.MaxStorage)
	buf, _ := weights.Wrap(groups, values)
	buf.Reset()
	buf.Commit(0, []weights.Slot{{Group: 0, Weight: 1}})
	buf.Commit(1, []weights.Slot{{Group: 1, Weight: 1}})

	g, _ := adjacency.Build(2, [][2]int32{{0, 1}}, []r3.Vec{{X: 0}, {X: 1}})

	if err := smooth.Smooth(g, buf, []int32{0}, 0.5, nil); err != nil {
		fmt.Println("smooth failed:", err)
		return
	}

	fmt.Printf("bone 0: %.2f\n", buf.Weight(0, 0))
	fmt.Printf("bone 1: %.2f\n", buf.Weight(0, 1))

	// Output:
	// bone 0: 0.50
	// bone 1: 0.50
}
