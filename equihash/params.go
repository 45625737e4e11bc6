package equihash

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minio/blake2b-simd"
)

const (
	// HeaderBytes is the fixed length of the block header bound into every
	// leaf hash.
	HeaderBytes = 140

	// MaxK keeps the solution index count representable as a uint32.
	MaxK = 31

	// MaxIndexBits is the widest index the minimal encoding supports.
	MaxIndexBits = 32

	hashOutputBits = blake2b.Size * 8
)

// Params are the equihash (N, K) parameters. N is the bit width of a leaf
// digest and K is the number of collision rounds.
type Params struct {
	N uint32
	K uint32
}

func (p Params) String() string {
	return fmt.Sprintf("%d_%d", p.N, p.K)
}

// Validate checks the parameters are usable by this verifier.
func (p Params) Validate() error {
	if p.N == 0 {
		return fmt.Errorf("%w: n must be positive", ErrParamsInvalid)
	}
	if p.K >= p.N {
		return fmt.Errorf("%w: k=%d must be less than n=%d", ErrParamsInvalid, p.K, p.N)
	}
	if p.K > MaxK {
		return fmt.Errorf("%w: k=%d exceeds %d", ErrParamsInvalid, p.K, MaxK)
	}
	if p.N > hashOutputBits {
		return fmt.Errorf("%w: n=%d exceeds the %d bit hash output", ErrParamsInvalid, p.N, hashOutputBits)
	}
	if p.IndexBits() > MaxIndexBits {
		return fmt.Errorf(
			"%w: %s needs %d bit indices, at most %d are supported", ErrParamsInvalid, p, p.IndexBits(), MaxIndexBits)
	}
	return nil
}

// CollisionBits returns N/(K+1), the number of digest bits each round must
// zero.
func (p Params) CollisionBits() uint32 {
	return p.N / (p.K + 1)
}

// IndexBits returns the width of one packed solution index.
func (p Params) IndexBits() uint32 {
	return p.CollisionBits() + 1
}

// SolutionIndices returns 2^K
func (p Params) SolutionIndices() uint64 {
	return uint64(1) << p.K
}

// SolutionBytes returns ceil(2^K * IndexBits / 8)
func (p Params) SolutionBytes() uint64 {
	return (p.SolutionIndices()*uint64(p.IndexBits()) + 7) / 8
}

// IndicesPerHashOutput is the number of leaf digests cut from one hash
// invocation.
func (p Params) IndicesPerHashOutput() uint32 {
	return hashOutputBits / p.N
}

// HashOutputBytes returns the digest length the hash primitive is configured
// with: ceil(IndicesPerHashOutput * N / 8)
func (p Params) HashOutputBytes() uint32 {
	return (p.IndicesPerHashOutput()*p.N + 7) / 8
}

// DigestBytes returns ceil(N/8), the storage size of one leaf digest.
func (p Params) DigestBytes() uint32 {
	return (p.N + 7) / 8
}

// ParseParams accepts "N_K" (the conventional spelling, eg "200_9") or "N,K"
// and returns validated parameters.
func ParseParams(s string) (Params, error) {
	sep := "_"
	if strings.Contains(s, ",") {
		sep = ","
	}
	parts := strings.Split(strings.TrimSpace(s), sep)
	if len(parts) != 2 {
		return Params{}, fmt.Errorf("%w: %q is not of the form N_K", ErrParamsInvalid, s)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return Params{}, fmt.Errorf("%w: n: %v", ErrParamsInvalid, err)
	}
	k, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return Params{}, fmt.Errorf("%w: k: %v", ErrParamsInvalid, err)
	}
	p := Params{N: uint32(n), K: uint32(k)}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
