package weights

import "errors"

// Sentinel errors for buffer construction and invariant validation.
var (
	// ErrLengthMismatch indicates the group and value slices differ in length.
	ErrLengthMismatch = errors.New("weights: group and value slices must have equal length")

	// ErrBadStride indicates the slice length is not a multiple of MaxStorage.
	ErrBadStride = errors.New("weights: slice length must be a multiple of MaxStorage")

	// ErrVertexRange indicates a vertex index outside the wrapped buffer.
	ErrVertexRange = errors.New("weights: vertex index out of range")

	// ErrOverCapacity indicates a record with more than MaxInfluence occupied slots.
	ErrOverCapacity = errors.New("weights: record exceeds MaxInfluence occupied slots")

	// ErrUnsorted indicates occupied slots not in descending weight order.
	ErrUnsorted = errors.New("weights: occupied slots not sorted by descending weight")

	// ErrNotNormalized indicates occupied weights that do not sum to 1.
	ErrNotNormalized = errors.New("weights: occupied weights do not sum to 1")

	// ErrDuplicateGroup indicates the same group occupying two slots of one record.
	ErrDuplicateGroup = errors.New("weights: duplicate group index in record")

	// ErrStaleSlot indicates a trailing slot not reset to the empty sentinel.
	ErrStaleSlot = errors.New("weights: trailing slot not set to the empty sentinel")
)
