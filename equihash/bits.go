package equihash

// Bit numbering throughout is MSB first: bit 0 is the most significant bit of
// byte 0. This matches both the leaf digest slicing and the solution packing.

// extractBits copies nbits of src, starting at bit offset, into dst left
// aligned. dst must hold ceil(nbits/8) bytes and any bits past nbits are
// zeroed. The caller ensures offset+nbits <= 8*len(src).
func extractBits(dst, src []byte, offset, nbits uint32) {
	n := (nbits + 7) / 8
	start := offset / 8
	shift := offset % 8

	for i := uint32(0); i < n; i++ {
		v := src[start+i] << shift
		if shift != 0 && int(start+i+1) < len(src) {
			v |= src[start+i+1] >> (8 - shift)
		}
		dst[i] = v
	}
	if rem := nbits % 8; rem != 0 {
		dst[n-1] &= 0xff << (8 - rem)
	}
}

// leadingBitsZero returns true if the first nbits of b are all zero.
func leadingBitsZero(b []byte, nbits uint32) bool {
	full := nbits / 8
	for _, v := range b[:full] {
		if v != 0 {
			return false
		}
	}
	rem := nbits % 8
	if rem == 0 {
		return true
	}
	return b[full]&(0xff<<(8-rem)) == 0
}
