package equihash

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/minio/blake2b-simd"
)

// HashState is the immutable seed for leaf expansion: the hash configuration
// (digest length and personalization) plus a private copy of the header.
//
// Every call to Expand builds a fresh hash from the seed, so a HashState may be
// shared freely between goroutines.
type HashState struct {
	params Params
	person []byte
	header []byte
}

// NewHashState validates p, derives the personalization tag and seeds the
// state with header. Any length header is accepted here; the 140 byte rule is
// enforced by VerifySolution.
func NewHashState(p Params, personalization string, header []byte) (*HashState, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &HashState{
		params: p,
		person: Personalization(personalization, p),
		header: bytes.Clone(header),
	}

	// Surface primitive configuration errors at construction rather than
	// part way through a verification.
	if _, err := s.newHash(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *HashState) Params() Params { return s.params }

// Personalization returns a copy of the 16 byte tag the state hashes with.
func (s *HashState) Personalization() []byte { return bytes.Clone(s.person) }

// Expand returns the N bit digest for the leaf at index, left aligned in
// ceil(N/8) bytes with any trailing pad bits zero.
func (s *HashState) Expand(index uint32) ([]byte, error) {
	digest := make([]byte, s.params.DigestBytes())
	if err := s.expandInto(digest, index); err != nil {
		return nil, err
	}
	return digest, nil
}

// expandInto hashes seed || uint32le(index / L) and cuts the (index mod L)'th
// N bit slice out of the output, where L is IndicesPerHashOutput.
func (s *HashState) expandInto(dst []byte, index uint32) error {
	perHash := s.params.IndicesPerHashOutput()

	hasher, err := s.newHash()
	if err != nil {
		return err
	}
	_, _ = hasher.Write(s.header)
	hashWriteUint32LE(hasher, index/perHash)
	out := hasher.Sum(nil)

	extractBits(dst, out, (index%perHash)*s.params.N, s.params.N)
	return nil
}

func (s *HashState) newHash() (hash.Hash, error) {
	hasher, err := blake2b.New(&blake2b.Config{
		Size:   uint8(s.params.HashOutputBytes()),
		Person: s.person,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHashInit, err)
	}
	return hasher, nil
}

// hashWriteUint32LE writes value to hasher least significant byte first.
func hashWriteUint32LE(hasher hash.Hash, value uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	_, _ = hasher.Write(b[:])
}
