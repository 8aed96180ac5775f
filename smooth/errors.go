package smooth

import "errors"

// Sentinel errors for smoothing calls.
var (
	// ErrNilGraph indicates a nil adjacency graph.
	ErrNilGraph = errors.New("smooth: adjacency graph is nil")

	// ErrNilBuffer indicates a nil weight buffer.
	ErrNilBuffer = errors.New("smooth: weight buffer is nil")

	// ErrFactorRange indicates a blend factor outside [0,1].
	ErrFactorRange = errors.New("smooth: factor must be in [0,1]")

	// ErrBadIterations indicates Options.Iterations < 1.
	ErrBadIterations = errors.New("smooth: iterations must be ≥ 1")

	// ErrUnknownUpdateMode indicates an Options.Update value that is neither Seidel nor Jacobi.
	ErrUnknownUpdateMode = errors.New("smooth: unknown update mode")
)
