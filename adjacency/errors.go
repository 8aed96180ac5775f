package adjacency

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrEdgeListOdd indicates a flat edge array whose length is not a multiple of 2.
	ErrEdgeListOdd = errors.New("adjacency: flat edge array must hold index pairs")

	// ErrCoordLen indicates a coordinate array that is not 3 floats per vertex.
	ErrCoordLen = errors.New("adjacency: coordinate array must hold 3 floats per vertex")

	// ErrBufferSize indicates a pre-allocated output buffer of the wrong size.
	ErrBufferSize = errors.New("adjacency: output buffer has wrong size")

	// ErrPositionLen indicates a position slice shorter than the vertex count.
	ErrPositionLen = errors.New("adjacency: position slice must cover every vertex")
)
