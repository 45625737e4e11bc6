package equihash

import "fmt"

// DecodeSolution unpacks the minimal solution encoding into its 2^K indices.
//
// The blob is a contiguous MSB first bitstream of IndexBits wide values in
// solution order, padded with zero bits to a whole byte. The length must be
// exactly SolutionBytes and set padding bits are rejected, so that every index
// sequence has exactly one valid encoding.
func DecodeSolution(p Params, solution []byte) ([]uint32, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if uint64(len(solution)) != p.SolutionBytes() {
		return nil, fmt.Errorf(
			"%w: got %d bytes, %s requires %d", ErrSolutionLength, len(solution), p, p.SolutionBytes())
	}

	w := p.IndexBits()
	indices := make([]uint32, p.SolutionIndices())

	var acc uint64
	var accBits uint32
	next := 0
	for i := range indices {
		for accBits < w {
			acc = acc<<8 | uint64(solution[next])
			next++
			accBits += 8
		}
		accBits -= w
		indices[i] = uint32(acc >> accBits)
		acc &= (1 << accBits) - 1
	}

	// Whatever remains in the accumulator is the final byte's padding.
	if acc != 0 {
		return nil, fmt.Errorf("%w: %d padding bits are not zero", ErrIndexOutOfRange, accBits)
	}
	return indices, nil
}

// EncodeSolution is the inverse of DecodeSolution.
func EncodeSolution(p Params, indices []uint32) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if uint64(len(indices)) != p.SolutionIndices() {
		return nil, fmt.Errorf(
			"%w: got %d indices, %s requires %d", ErrSolutionLength, len(indices), p, p.SolutionIndices())
	}

	w := p.IndexBits()
	out := make([]byte, 0, p.SolutionBytes())

	var acc uint64
	var accBits uint32
	for i, index := range indices {
		if index>>w != 0 {
			return nil, fmt.Errorf(
				"%w: index %d at position %d is wider than %d bits", ErrIndexOutOfRange, index, i, w)
		}
		acc = acc<<w | uint64(index)
		accBits += w
		for accBits >= 8 {
			accBits -= 8
			out = append(out, byte(acc>>accBits))
		}
		acc &= (1 << accBits) - 1
	}
	if accBits > 0 {
		out = append(out, byte(acc<<(8-accBits)))
	}
	return out, nil
}
