package equihash

import (
	"bytes"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/minio/blake2b-simd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeHex(t *testing.T, s string) []byte {
	v, err := hex.DecodeString(s)
	if err != nil {
		t.Errorf("could not hex decode %s", s)
	}
	return v
}

func TestHashState_Expand(t *testing.T) {
	zeroHeader := make([]byte, HeaderBytes)
	zcashInput := append([]byte("block header"), make([]byte, 32)...)

	tests := []struct {
		name   string
		p      Params
		header []byte
		index  uint32
		want   string
	}{
		{"96_5 first leaf", Params{96, 5}, zeroHeader, 0, "8a87f5bc166c85184e2d8199"},
		{"96_5 second leaf same hash", Params{96, 5}, zeroHeader, 1, "535db99bc182a80a3e25c1df"},
		{"96_5 last leaf of first hash", Params{96, 5}, zeroHeader, 4, "b390113d7cc3319c8dd91a9b"},
		{"96_5 first leaf of second hash", Params{96, 5}, zeroHeader, 5, "798de82e16f630f726531aad"},
		{"96_5 highest leaf", Params{96, 5}, zeroHeader, 131071, "dda05f215b58efad0479d88f"},
		{"48_5 first leaf", Params{48, 5}, zeroHeader, 0, "8252ecef301d"},
		{"48_5 last leaf of first hash", Params{48, 5}, zeroHeader, 9, "4122614ecef5"},
		{"48_5 first leaf of second hash", Params{48, 5}, zeroHeader, 10, "bf44fef4cf7e"},
		{"8_0 non zero leaf", Params{8, 0}, zeroHeader, 1, "38"},
		{"8_0 zero leaf", Params{8, 0}, zeroHeader, 8, "00"},
		{"12_1 unaligned first leaf", Params{12, 1}, zeroHeader, 0, "2d00"},
		{"12_1 unaligned second leaf", Params{12, 1}, zeroHeader, 1, "f640"},
		{"zcash vector leaf 976", Params{96, 5}, zcashInput, 976, "15d63145e1d8ca8afeab4da1"},
		{"zcash vector leaf 126621", Params{96, 5}, zcashInput, 126621, "15d6a7d25e7d95194798a348"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := NewHashState(tt.p, "ZcashPoW", tt.header)
			require.NoError(t, err)
			got, err := state.Expand(tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, hex.EncodeToString(got))
		})
	}
}

// The leaves of one hash invocation are consecutive N bit slices of a single
// personalized BLAKE2b output.
func TestHashState_ExpandSlicesOneHashOutput(t *testing.T) {
	p := Params{N: 96, K: 5}
	header := make([]byte, HeaderBytes)

	hasher, err := blake2b.New(&blake2b.Config{Size: 60, Person: Personalization("ZcashPoW", p)})
	require.NoError(t, err)
	hasher.Write(header)
	hasher.Write([]byte{0, 0, 0, 0})
	out := hasher.Sum(nil)

	state, err := NewHashState(p, "ZcashPoW", header)
	require.NoError(t, err)
	for i := uint32(0); i < p.IndicesPerHashOutput(); i++ {
		leaf, err := state.Expand(i)
		require.NoError(t, err)
		assert.Equal(t, out[i*12:(i+1)*12], leaf, "leaf %d", i)
	}
}

func TestHashState_IsolatedFromCaller(t *testing.T) {
	header := make([]byte, HeaderBytes)
	state, err := NewHashState(Params{96, 5}, "ZcashPoW", header)
	require.NoError(t, err)

	before, err := state.Expand(7)
	require.NoError(t, err)

	// Mutating the callers header, or the returned tag, must not reach the seed
	header[0] = 0xff
	tag := state.Personalization()
	tag[0] = 0
	after, err := state.Expand(7)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, Personalization("ZcashPoW", Params{96, 5}), state.Personalization())
}

func TestHashState_ConcurrentExpand(t *testing.T) {
	state, err := NewHashState(Params{48, 5}, "ZcashPoW", make([]byte, HeaderBytes))
	require.NoError(t, err)

	want := make([][]byte, 64)
	for i := range want {
		want[i], err = state.Expand(uint32(i))
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	failed := make(chan uint32, len(want))
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range want {
				got, err := state.Expand(uint32(i))
				if err != nil || !bytes.Equal(got, want[i]) {
					failed <- uint32(i)
				}
			}
		}()
	}
	wg.Wait()
	close(failed)
	assert.Empty(t, failed)
}

func TestNewHashState_RejectsBadParams(t *testing.T) {
	_, err := NewHashState(Params{N: 8, K: 8}, "ZcashPoW", nil)
	assert.ErrorIs(t, err, ErrParamsInvalid)
}
