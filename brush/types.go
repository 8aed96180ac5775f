// Package brush defines the edit modes for connectivity-free weight edits.
package brush

// Mode selects the per-vertex edit applied by Apply. The numeric values of
// Smear and Harden are fixed — hosts pass them across the flat call surface.
type Mode int32

const (
	// Smear pulls the active group's weight toward a sampled value.
	Smear Mode = 0

	// Harden pushes the active group's weight away from the 0.5 midpoint.
	Harden Mode = 1

	// Add applies a clamped signed delta to the active group's weight.
	Add Mode = 2
)

// SmearIgnore is the smear-value sentinel meaning "nothing sampled under the
// brush": a Smear call carrying it (or any negative value) does nothing.
const SmearIgnore = float32(-1)

// String returns the mode name for logs and test output.
func (m Mode) String() string {
	switch m {
	case Smear:
		return "Smear"
	case Harden:
		return "Harden"
	case Add:
		return "Add"
	default:
		return "Unknown"
	}
}
