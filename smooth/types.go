// Package smooth defines options and update modes for weight diffusion.
package smooth

// UpdateMode controls where neighbor reads come from during a pass.
//
//   - Seidel — read the live buffer, so earlier targets' smoothed records
//     feed later targets in the same pass. Fastest, order-dependent.
//   - Jacobi — read a snapshot taken before the pass, so every target sees
//     pre-pass state. Order-independent, one buffer copy per iteration.
type UpdateMode int

const (
	// Seidel mode: immediate in-place updates (the brush default).
	Seidel UpdateMode = iota

	// Jacobi mode: buffered updates against a pre-iteration snapshot.
	Jacobi
)

// Options configures a Smooth call.
//
// Fields:
//   - Update     — Seidel (default) or Jacobi, see UpdateMode.
//   - Iterations — number of complete passes over the target list; each
//     pass re-reads the previous pass's output, so more iterations diffuse
//     further. Must be ≥ 1.
//
// Example:
//
//	opts := smooth.DefaultOptions()
//	opts.Iterations = 3
//	err := smooth.Smooth(g, buf, targets, 0.5, &opts)
type Options struct {
	Update     UpdateMode
	Iterations int
}

// DefaultOptions returns the brush defaults: Seidel update, a single pass.
func DefaultOptions() Options {
	return Options{
		Update:     Seidel,
		Iterations: 1,
	}
}
