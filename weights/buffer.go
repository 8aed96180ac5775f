package weights

// Wrap builds a Buffer view over the caller-owned strided slices.
// It copies nothing: the returned Buffer reads and writes groups/values
// directly. Returns ErrLengthMismatch if the slices differ in length, or
// ErrBadStride if the length is not a multiple of MaxStorage.
// Complexity: O(1).
func Wrap(groups []int32, values []float32) (*Buffer, error) {
	if len(groups) != len(values) {
		return nil, ErrLengthMismatch
	}
	if len(groups)%MaxStorage != 0 {
		return nil, ErrBadStride
	}

	return &Buffer{
		Groups:   groups,
		Values:   values,
		numVerts: len(groups) / MaxStorage,
	}, nil
}

// NumVerts returns the number of vertex records the buffer spans.
// Complexity: O(1).
func (b *Buffer) NumVerts() int {
	return b.numVerts
}

// base returns the first slot index of vertex v.
func (b *Buffer) base(v int) int {
	return v * MaxStorage
}

// Reset fills every slot of every record with the empty sentinel.
// Hosts call it once after allocating the raw arrays, since a zeroed int32
// array reads as "everything weighted to group 0" rather than "empty".
// Complexity: O(V·MaxStorage).
func (b *Buffer) Reset() {
	for i := range b.Groups {
		b.Groups[i] = EmptyGroup
		b.Values[i] = 0
	}
}

// Clear empties the record of vertex v, slot by slot.
// Complexity: O(MaxStorage).
func (b *Buffer) Clear(v int) {
	base := b.base(v)
	for k := 0; k < MaxStorage; k++ {
		b.Groups[base+k] = EmptyGroup
		b.Values[base+k] = 0
	}
}

// Slots appends the occupied slots of vertex v to scratch and returns the
// extended slice. Pass a stack-backed scratch (e.g. make([]Slot, 0, MaxStorage)
// reused across calls) to keep the hot path allocation-free.
// Complexity: O(MaxStorage).
func (b *Buffer) Slots(v int, scratch []Slot) []Slot {
	base := b.base(v)
	for k := 0; k < MaxStorage; k++ {
		g, w := b.Groups[base+k], b.Values[base+k]
		if g < 0 || w <= 0 {
			continue
		}
		scratch = append(scratch, Slot{Group: g, Weight: w})
	}

	return scratch
}

// Weight returns the weight of group on vertex v, or 0 when the group does
// not occupy any slot of the record.
// Complexity: O(MaxStorage).
func (b *Buffer) Weight(v int, group int32) float32 {
	base := b.base(v)
	for k := 0; k < MaxStorage; k++ {
		if b.Groups[base+k] == group {
			return b.Values[base+k]
		}
	}

	return 0
}

// Commit applies the shared limit-and-normalize policy to cand and rewrites
// the whole record of vertex v:
//
//  1. sort cand in place, descending by weight (stable insertion sort);
//  2. truncate to MaxInfluence entries;
//  3. sum the survivors; if the total exceeds MinTotal, renormalize every
//     weight so the record sums to exactly 1, otherwise clear the record;
//  4. write the result from slot 0 and sentinel-fill the remaining slots.
//
// The rewrite is always total — partial updates are not permitted, so a
// shrinking record can never leave stale slots behind. Candidates must not
// contain duplicate group indices; both operators guarantee that by
// construction. Empty cand clears the record.
//
// cand is mutated (sorted, scaled). Complexity: O(c²) compares for c
// candidates plus O(MaxStorage) stores; zero allocation.
func (b *Buffer) Commit(v int, cand []Slot) {
	sortByWeightDesc(cand)

	n := len(cand)
	if n > MaxInfluence {
		n = MaxInfluence
	}

	// Sorted descending, so the first non-positive candidate ends the
	// occupied run; anything past it would become a stale pseudo-slot.
	for n > 0 && cand[n-1].Weight <= 0 {
		n--
	}

	var total float32
	for i := 0; i < n; i++ {
		total += cand[i].Weight
	}
	if total <= MinTotal {
		b.Clear(v)
		return
	}

	ratio := 1 / total
	base := b.base(v)
	for i := 0; i < n; i++ {
		b.Groups[base+i] = cand[i].Group
		b.Values[base+i] = cand[i].Weight * ratio
	}
	for k := n; k < MaxStorage; k++ {
		b.Groups[base+k] = EmptyGroup
		b.Values[base+k] = 0
	}
}

// sortByWeightDesc sorts slots by descending weight with a stable insertion
// sort. Candidate lists are bounded by the realistic group fan-in of a
// vertex neighborhood (a few dozen at most), where insertion sort beats
// sort.Slice and avoids its closure allocation on the brush hot path.
func sortByWeightDesc(s []Slot) {
	for i := 1; i < len(s); i++ {
		cur := s[i]
		j := i - 1
		for j >= 0 && s[j].Weight < cur.Weight {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = cur
	}
}
