package equihash

/*

# Equihash solution verification

Equihash is a memory hard proof of work built on Wagner's generalized birthday
problem. A miner searches for 2^K leaf indices whose N bit hash digests xor to
zero, arranged as a binary tree in which every pair of siblings already
collides on a growing prefix. Producing such a set is expensive; checking one
is cheap, and checking is all this package does.

# Parameters

For (N, K):

	c = N/(K+1)                collision bits zeroed per round
	w = c + 1                  bits per packed solution index
	2^K                        indices in a solution
	ceil(2^K * w / 8)          solution bytes
	L = 512/N                  leaf digests cut from one BLAKE2b output
	ceil(L*N/8)                BLAKE2b digest length

So zcash (200, 9) has 512 indices of 21 bits, a 1344 byte solution and two 200
bit leaves per 50 byte hash.

# Leaf expansion

The hash is BLAKE2b with a 16 byte personalization

	prefix[0:8] || uint32le(N) || uint32le(K)

seeded with the 140 byte header. The digest for leaf i is

	H(header || uint32le(i / L))[bits (i mod L)*N .. (i mod L + 1)*N)

where bit 0 is the most significant bit of byte 0. When N is not a multiple of
8 the digest is stored left aligned with the trailing pad bits zero.

HashState holds only the configuration and a copy of the header. Every
expansion builds a fresh hash, there is no shared hash context to fork.

# Solution layout

The 2^K indices are packed as one MSB first bitstream, w bits each, in tree
order. Positions [0, 2^(r-1)) and [2^(r-1), 2^r) of every aligned 2^r window
are the left and right subtrees joined at round r:

	round 3                    [ 0 1 2 3 4 5 6 7 ]
	round 2            [ 0 1 2 3 ]         [ 4 5 6 7 ]
	round 1        [ 0 1 ]   [ 2 3 ]   [ 4 5 ]   [ 6 7 ]

# Validity

A solution is valid if and only if

 1. all 2^K indices are distinct
 2. for every subtree, the first index of the left half is strictly less than
    the first index of the right half. Without this a single collision set has
    many encodings.
 3. after round r < K, the xor of the leaf digests under every subtree has r*c
    leading zero bits
 4. after round K, the xor of all leaf digests is zero across all N bits

The verifier checks 1 and 2 before doing any hashing. 3 and 4 are checked bottom
up over an arena of digest slots, see collapse.

Every rejection is reported as an error wrapping one of the sentinels in
errors.go. Verify collapses them all to false. Nothing in this package panics on
solution content or performs I/O.
*/
