package equihash

import (
	"testing"

	"github.com/s-nomp/equihashverify/equihashtesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_KnownSolutions(t *testing.T) {
	for _, known := range KnownSolutions() {
		t.Run(known.Name, func(t *testing.T) {
			got := Verify(known.Header, known.Solution, known.Personalization, known.Params.N, known.Params.K)
			assert.Equal(t, known.Valid, got)

			err := VerifySolution(known.Params, known.Personalization, known.Header, known.Solution)
			if known.Valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, IsRejection(err), "%v", err)
		})
	}
}

func TestVerifySolution_Rejections(t *testing.T) {
	known := knownSolution("96_5 zero header")
	require.True(t, known.Valid)

	tests := []struct {
		name            string
		header          []byte
		solution        []byte
		personalization string
		wantErr         error
	}{
		{"short header", known.Header[:HeaderBytes-1], known.Solution, "ZcashPoW", ErrHeaderLength},
		{"long header", equihashtesting.Pad(known.Header, 1), known.Solution, "ZcashPoW", ErrHeaderLength},
		{"nil header", nil, known.Solution, "ZcashPoW", ErrHeaderLength},
		{"truncated solution", known.Header, equihashtesting.Truncate(known.Solution, 1), "ZcashPoW", ErrSolutionLength},
		{"padded solution", known.Header, equihashtesting.Pad(known.Solution, 1), "ZcashPoW", ErrSolutionLength},
		{"empty solution", known.Header, nil, "ZcashPoW", ErrSolutionLength},
		{"first header bit", equihashtesting.FlipBit(known.Header, 0), known.Solution, "ZcashPoW", ErrCollisionMismatch},
		{"last header bit", equihashtesting.FlipBit(known.Header, 8*HeaderBytes-1), known.Solution, "ZcashPoW", ErrCollisionMismatch},
		{"last solution bit", known.Header, equihashtesting.FlipBit(known.Solution, 8*len(known.Solution)-1), "ZcashPoW", ErrCollisionMismatch},
		{"other personalization", known.Header, known.Solution, "BgoldPoW", ErrCollisionMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySolution(known.Params, tt.personalization, tt.header, tt.solution)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, Verify(tt.header, tt.solution, tt.personalization, known.Params.N, known.Params.K))
		})
	}
}

func TestVerifySolution_ReencodedMutations(t *testing.T) {
	known := knownSolution("96_5 zero header")
	p := known.Params

	tests := []struct {
		name    string
		indices []uint32
		wantErr error
	}{
		{"halves swapped", equihashtesting.SwapHalves(zeroHeader96x5Indices), ErrBadOrdering},
		{"duplicate", equihashtesting.Duplicate(zeroHeader96x5Indices, 0, 1), ErrDuplicateIndex},
		{"perturbed", equihashtesting.FlipIndexBit(zeroHeader96x5Indices, 7), ErrCollisionMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solution, err := EncodeSolution(p, tt.indices)
			require.NoError(t, err)
			assert.ErrorIs(t, VerifySolution(p, "ZcashPoW", known.Header, solution), tt.wantErr)
		})
	}
}

func TestVerify_ParamsFaults(t *testing.T) {
	header := make([]byte, HeaderBytes)

	// the parameters are not a rejection of the content, but Verify still
	// reports false
	err := VerifySolution(Params{N: 8, K: 8}, "ZcashPoW", header, []byte{0})
	assert.ErrorIs(t, err, ErrParamsInvalid)
	assert.False(t, IsRejection(err))
	assert.False(t, Verify(header, []byte{0}, "ZcashPoW", 8, 8))
	assert.False(t, Verify(header, []byte{0}, "ZcashPoW", 0, 0))
	assert.False(t, Verify(header, []byte{0}, "ZcashPoW", 1024, 1))
}

func TestVerify_SingleLeaf(t *testing.T) {
	header := make([]byte, HeaderBytes)

	assert.True(t, Verify(header, decodeHex(t, "0400"), "ZcashPoW", 8, 0))
	assert.True(t, Verify(header, decodeHex(t, "3680"), "ZcashPoW", 8, 0))
	assert.ErrorIs(t,
		VerifySolution(Params{8, 0}, "ZcashPoW", header, decodeHex(t, "0080")), ErrNonZeroDigest)
}

func TestVerify_Concurrent(t *testing.T) {
	known := knownSolution("96_5 zero header")
	done := make(chan bool, 8)
	for w := 0; w < 8; w++ {
		go func() {
			done <- Verify(known.Header, known.Solution, known.Personalization, 96, 5)
		}()
	}
	for w := 0; w < 8; w++ {
		assert.True(t, <-done)
	}
}
