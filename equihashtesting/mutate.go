package equihashtesting

// Helpers producing near miss variants of a valid solution. None of them
// modify their input.

// FlipBit returns a copy of b with bit i flipped, counting from the most
// significant bit of b[0].
func FlipBit(b []byte, i int) []byte {
	out := append([]byte(nil), b...)
	out[i/8] ^= 0x80 >> (i % 8)
	return out
}

// FlipIndexBit returns a copy of indices with the low bit of indices[i]
// flipped.
func FlipIndexBit(indices []uint32, i int) []uint32 {
	out := append([]uint32(nil), indices...)
	out[i] ^= 1
	return out
}

// SwapHalves returns a copy of indices with the two top level subtrees
// exchanged.
func SwapHalves(indices []uint32) []uint32 {
	half := len(indices) / 2
	out := make([]uint32, 0, len(indices))
	out = append(out, indices[half:]...)
	return append(out, indices[:half]...)
}

// Swap returns a copy of indices with elements i and j exchanged.
func Swap(indices []uint32, i, j int) []uint32 {
	out := append([]uint32(nil), indices...)
	out[i], out[j] = out[j], out[i]
	return out
}

// Duplicate returns a copy of indices with indices[to] replaced by
// indices[from].
func Duplicate(indices []uint32, from, to int) []uint32 {
	out := append([]uint32(nil), indices...)
	out[to] = out[from]
	return out
}

// Truncate drops the last n bytes of a copy of b.
func Truncate(b []byte, n int) []byte {
	return append([]byte(nil), b[:len(b)-n]...)
}

// Pad appends n zero bytes to a copy of b.
func Pad(b []byte, n int) []byte {
	return append(append([]byte(nil), b...), make([]byte, n)...)
}
