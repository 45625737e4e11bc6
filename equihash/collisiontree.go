package equihash

import (
	"crypto/subtle"
	"fmt"
	"slices"
)

// ValidateIndices checks that indices, in solution order, form a valid
// collision tree for the seeded state. It returns nil for a valid solution and
// otherwise an error wrapping exactly one of the rejection sentinels.
//
// The checks run cheapest first: global distinctness, then the canonical
// ordering of every subtree pair, and only then the leaf expansion and the K
// rounds of digest collapse.
func ValidateIndices(state *HashState, indices []uint32) error {
	p := state.Params()
	if uint64(len(indices)) != p.SolutionIndices() {
		return fmt.Errorf(
			"%w: got %d indices, %s requires %d", ErrSolutionLength, len(indices), p, p.SolutionIndices())
	}
	if err := checkDistinct(indices); err != nil {
		return err
	}
	if err := checkOrdering(indices, p.K); err != nil {
		return err
	}
	return collapse(state, indices)
}

// checkDistinct requires every leaf index to appear once. Pairwise ordering
// alone does not imply this.
func checkDistinct(indices []uint32) error {
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return fmt.Errorf("%w: index %d", ErrDuplicateIndex, sorted[i])
		}
	}
	return nil
}

// checkOrdering requires, for every subtree at every round, that the first
// index of the left half is less than the first index of the right half. This
// makes the encoding of a collision set canonical.
func checkOrdering(indices []uint32, k uint32) error {
	for r := uint32(1); r <= k; r++ {
		width := 1 << r
		half := width >> 1
		for start := 0; start < len(indices); start += width {
			if indices[start] >= indices[start+half] {
				return fmt.Errorf(
					"%w: round %d subtree %d: %d is not before %d",
					ErrBadOrdering, r, start/width, indices[start], indices[start+half])
			}
		}
	}
	return nil
}

// collapse expands every leaf and xors sibling digests together bottom up.
//
// The tree is never materialised. A single arena holds one digest slot per
// leaf and after round r slot j holds the xor of the 2^r leaves under subtree
// j. Slot j is only written after slots 2j and 2j+1 have been read, so each
// round can work in place.
//
// After round r < K the leading r*N/(K+1) bits of each slot must be zero.
// After round K the whole N bit digest must be zero. For K == 0 that reduces to
// the single leaf digest being zero.
func collapse(state *HashState, indices []uint32) error {
	p := state.Params()
	size := int(p.DigestBytes())
	arena := make([]byte, len(indices)*size)
	slot := func(i int) []byte { return arena[i*size : (i+1)*size] }

	for i, index := range indices {
		if err := state.expandInto(slot(i), index); err != nil {
			return err
		}
	}

	c := p.CollisionBits()
	nodes := len(indices)
	for r := uint32(1); r <= p.K; r++ {
		nodes >>= 1
		for j := 0; j < nodes; j++ {
			subtle.XORBytes(slot(j), slot(2*j), slot(2*j+1))
			if r < p.K && !leadingBitsZero(slot(j), r*c) {
				return fmt.Errorf(
					"%w: round %d subtree %d, leading %d bits", ErrCollisionMismatch, r, j, r*c)
			}
		}
	}

	if !leadingBitsZero(slot(0), p.N) {
		return fmt.Errorf("%w: %d bit digest after round %d", ErrNonZeroDigest, p.N, p.K)
	}
	return nil
}
