package equihash

import (
	"encoding/binary"

	"github.com/minio/blake2b-simd"
)

const (
	// PersonalizationBytes is the size of the tag handed to the hash primitive.
	PersonalizationBytes = blake2b.PersonSize

	// PersonalizationPrefixBytes is how much of the caller's string is used.
	// Longer strings are truncated and shorter ones zero padded.
	PersonalizationPrefixBytes = 8
)

// Personalization returns the 16 byte domain separation tag:
//
//	prefix[0:8] || uint32le(N) || uint32le(K)
//
// This is the layout zcash and its forks use, eg "ZcashPoW" for 200_9.
func Personalization(prefix string, p Params) []byte {
	tag := make([]byte, PersonalizationBytes)
	copy(tag[:PersonalizationPrefixBytes], prefix)
	binary.LittleEndian.PutUint32(tag[PersonalizationPrefixBytes:], p.N)
	binary.LittleEndian.PutUint32(tag[PersonalizationPrefixBytes+4:], p.K)
	return tag
}
