package equihash

import "fmt"

// Verify returns true if solution is a valid equihash (n, k) solution for
// header under the personalization prefix. Every reason for rejection,
// including unsupported parameters, yields false.
func Verify(header, solution []byte, personalization string, n, k uint32) bool {
	return VerifySolution(Params{N: n, K: k}, personalization, header, solution) == nil
}

// VerifySolution is Verify with the reason. It returns nil for a valid
// solution. Use errors.Is against the package sentinels, or IsRejection, to
// classify a failure.
//
// The header length is checked before anything else, then the solution is
// decoded, the hash state seeded and the collision tree validated.
func VerifySolution(p Params, personalization string, header, solution []byte) error {
	if len(header) != HeaderBytes {
		return fmt.Errorf("%w: got %d bytes", ErrHeaderLength, len(header))
	}

	indices, err := DecodeSolution(p, solution)
	if err != nil {
		return err
	}

	state, err := NewHashState(p, personalization, header)
	if err != nil {
		return err
	}

	return ValidateIndices(state, indices)
}
