package equihash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_extractBits(t *testing.T) {
	src := []byte{0b10110011, 0b01011100, 0b11110000}
	tests := []struct {
		name   string
		offset uint32
		nbits  uint32
		want   []byte
	}{
		{"aligned whole byte", 8, 8, []byte{0b01011100}},
		{"aligned two bytes", 0, 16, []byte{0b10110011, 0b01011100}},
		{"unaligned nibble", 4, 4, []byte{0b00110000}},
		{"unaligned across bytes", 4, 8, []byte{0b00110101}},
		{"unaligned 12 bits", 12, 12, []byte{0b11001111, 0b00000000}},
		{"single last bit", 23, 1, []byte{0b00000000}},
		{"single first bit", 0, 1, []byte{0b10000000}},
		{"tail of source", 17, 7, []byte{0b11100000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, (tt.nbits+7)/8)
			for i := range dst {
				dst[i] = 0xff // must be overwritten, including pad bits
			}
			extractBits(dst, src, tt.offset, tt.nbits)
			assert.Equal(t, tt.want, dst)
		})
	}
}

func Test_leadingBitsZero(t *testing.T) {
	tests := []struct {
		name  string
		b     []byte
		nbits uint32
		want  bool
	}{
		{"no bits", []byte{0xff}, 0, true},
		{"whole byte zero", []byte{0x00, 0xff}, 8, true},
		{"whole byte not zero", []byte{0x01, 0x00}, 8, false},
		{"partial zero", []byte{0x00, 0x0f}, 12, true},
		{"partial not zero", []byte{0x00, 0x10}, 12, false},
		{"all zero", []byte{0x00, 0x00, 0x00}, 24, true},
		{"one leading bit", []byte{0x7f}, 1, true},
		{"one leading bit set", []byte{0x80}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, leadingBitsZero(tt.b, tt.nbits))
		})
	}
}
