// Package wynnweights is the numeric core of the Wynn's ToolKits weight
// brush: fast, allocation-conscious editing of per-vertex skin weights
// for a 3D mesh rig.
//
// 🚀 What is wynnweights?
//
//	Each vertex is influenced by a small, bounded set of bone/group
//	indices whose weights always sum to 1. This module keeps that sparse
//	representation correct while two kinds of interactive edits hammer
//	on it:
//	  • graph-based smoothing that diffuses weights across mesh
//	    connectivity, and
//	  • vertex-local brush edits (smear, harden, add) that need no
//	    connectivity at all.
//
// ✨ Why choose this core?
//
//   - Fixed memory layout — eight strided slots per vertex, no per-vertex
//     heap allocation on the brush hot path
//   - Numerically careful — exact renormalization, small-weight pruning,
//     silent degradation on degenerate input instead of NaN/Inf
//   - Host-owned buffers — every operator mutates caller memory in place;
//     nothing long-lived is allocated here
//
// Everything is organized under four subpackages:
//
//	weights/   — the strided slot format, shared limit/normalize policy,
//	             and invariant validation
//	adjacency/ — CSR mesh adjacency built from an edge list with
//	             inverse-distance edge weights
//	smooth/    — edge-weighted diffusion of neighbor weights (Seidel or
//	             Jacobi update, repeatable passes)
//	brush/     — connectivity-free smear / harden / add edits
//
// Quick ASCII example:
//
//	    0───1        weight records: 8 slots per vertex,
//	    │   │        (group, weight) pairs, sorted, Σ = 1
//	    2───3
//
// Dive into the examples/ directory for end-to-end brush strokes.
package wynnweights
