// Package weights defines the slot format constants, the Slot pair, and the
// Buffer view used by all weight operators.
package weights

// Storage geometry. MaxStorage is the per-vertex stride; MaxInfluence is the
// cap applied when a record is committed. They are equal today, so truncation
// is latent, but the limiting mechanism stays in place for future configs
// with MaxInfluence < MaxStorage.
const (
	// MaxStorage is the number of slots reserved per vertex in the strided
	// buffer. The slot window of vertex v is [v*MaxStorage, (v+1)*MaxStorage).
	MaxStorage = 8

	// MaxInfluence is the maximum number of occupied slots a record may hold
	// after Commit.
	MaxInfluence = 8

	// EmptyGroup is the sentinel group index marking an empty slot.
	EmptyGroup = int32(-1)
)

// Numeric thresholds shared by the operators.
const (
	// MinWeight is the smallest weight worth keeping: candidates at or below
	// it are pruned before normalization, and edits moving a weight by less
	// than it are skipped as unobservable.
	MinWeight = float32(1e-4)

	// MinTotal is the collapse threshold: if a record's candidate weights sum
	// to MinTotal or less, the record is cleared outright instead of being
	// renormalized into numeric noise.
	MinTotal = float32(1e-5)
)

// Slot is one (group, weight) influence pair.
// A Slot is empty when Group < 0 or Weight ≤ 0.
type Slot struct {
	// Group is the bone/vertex-group index, or EmptyGroup for an empty slot.
	Group int32

	// Weight is the influence of Group on the owning vertex.
	Weight float32
}

// Empty reports whether s holds no influence.
// Complexity: O(1).
func (s Slot) Empty() bool {
	return s.Group < 0 || s.Weight <= 0
}

// Buffer is a zero-copy view over the caller-owned strided weight arrays.
// Groups and Values are parallel, each numVerts*MaxStorage long. The Buffer
// mutates them in place and never reallocates; ownership stays with the
// caller for the lifetime of the rig.
//
// Concurrent mutation of overlapping vertex ranges is the caller's problem:
// the view carries no locks, matching the single-threaded host contract.
type Buffer struct {
	// Groups holds the strided group indices (EmptyGroup when empty).
	Groups []int32

	// Values holds the strided weight values (0 when empty).
	Values []float32

	numVerts int
}
