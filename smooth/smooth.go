package smooth

import (
	"github.com/lolwinnerlol/Wynn-sToolKits/adjacency"
	"github.com/lolwinnerlol/Wynn-sToolKits/weights"
)

// accumEntry is one bucket of the per-vertex group accumulator.
type accumEntry struct {
	group int32
	sum   float32
}

// diffuser holds the reusable per-call scratch so the per-vertex loop makes
// no allocations after warm-up.
type diffuser struct {
	graph  *adjacency.CSR
	live   *weights.Buffer // written every vertex
	source *weights.Buffer // read for neighbor/current weights (== live in Seidel)

	factor float32
	accum  []accumEntry
	cand   []weights.Slot
	self   []weights.Slot
}

// Smooth blends every target vertex's weight record toward the edge-weighted
// average of its neighbors' records, in target order, mutating buf in place.
// factor 0 leaves every record bit-for-bit untouched; factor 1 replaces each
// record with the pure neighbor average (groups only the vertex itself
// carried vanish). Isolated vertices are skipped.
//
// opts may be nil for DefaultOptions. With Options.Update == Jacobi, reads
// go to a snapshot taken before each pass instead of the live buffer.
//
// Target indices are trusted to be valid vertices of both g and buf, per
// the host contract; only structural arguments are validated here.
func Smooth(g *adjacency.CSR, buf *weights.Buffer, targets []int32, factor float64, opts *Options) error {
	if g == nil {
		return ErrNilGraph
	}
	if buf == nil {
		return ErrNilBuffer
	}
	if factor < 0 || factor > 1 {
		return ErrFactorRange
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Iterations < 1 {
		return ErrBadIterations
	}
	if o.Update != Seidel && o.Update != Jacobi {
		return ErrUnknownUpdateMode
	}

	// factor==0 is an exact identity: new = cur·1 + avg·0. Skipping the
	// arithmetic keeps the no-op bit-exact instead of merely close.
	if factor == 0 || len(targets) == 0 {
		return nil
	}

	d := &diffuser{
		graph:  g,
		live:   buf,
		source: buf,
		factor: float32(factor),
		accum:  make([]accumEntry, 0, 4*weights.MaxStorage),
		cand:   make([]weights.Slot, 0, 4*weights.MaxStorage),
		self:   make([]weights.Slot, 0, weights.MaxStorage),
	}

	var snap *weights.Buffer
	if o.Update == Jacobi {
		var err error
		snap, err = weights.Wrap(make([]int32, len(buf.Groups)), make([]float32, len(buf.Values)))
		if err != nil {
			return err
		}
		d.source = snap
	}

	for iter := 0; iter < o.Iterations; iter++ {
		if snap != nil {
			copy(snap.Groups, buf.Groups)
			copy(snap.Values, buf.Values)
		}
		for _, v := range targets {
			d.vertex(int(v))
		}
	}

	return nil
}

// vertex runs one accumulate/blend/commit cycle on target vertex v.
func (d *diffuser) vertex(v int) {
	nbr, ew := d.graph.Neighbors(v)

	d.accum = d.accum[:0]
	var totalEdge float32
	for i, n := range nbr {
		e := ew[i]
		totalEdge += e
		d.self = d.source.Slots(int(n), d.self[:0])
		for _, s := range d.self {
			d.add(s.Group, s.Weight*e)
		}
	}

	// Isolated vertex (or all-zero edge weights): leave the record alone.
	if totalEdge <= weights.MinTotal {
		return
	}

	invFactor := 1 - d.factor
	invTotal := 1 / totalEdge

	d.cand = d.cand[:0]
	for _, a := range d.accum {
		avg := a.sum * invTotal
		cur := d.source.Weight(v, a.group)
		next := cur*invFactor + avg*d.factor
		if next > weights.MinWeight {
			d.cand = append(d.cand, weights.Slot{Group: a.group, Weight: next})
		}
	}

	// Groups only v itself carries receive pure decay.
	d.self = d.source.Slots(v, d.self[:0])
	for _, s := range d.self {
		if d.has(s.Group) {
			continue
		}
		next := s.Weight * invFactor
		if next > weights.MinWeight {
			d.cand = append(d.cand, weights.Slot{Group: s.Group, Weight: next})
		}
	}

	d.live.Commit(v, d.cand)
}

// add folds w into the bucket of group, appending a bucket on first sight.
// Linear scan: neighborhood group fan-in is small.
func (d *diffuser) add(group int32, w float32) {
	for i := range d.accum {
		if d.accum[i].group == group {
			d.accum[i].sum += w
			return
		}
	}
	d.accum = append(d.accum, accumEntry{group: group, sum: w})
}

// has reports whether group already owns an accumulator bucket.
func (d *diffuser) has(group int32) bool {
	for i := range d.accum {
		if d.accum[i].group == group {
			return true
		}
	}

	return false
}
