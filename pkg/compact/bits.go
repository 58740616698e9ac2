package compact

// packBits packs bits into bytes, most significant bit first, with
// the final byte zero-padded on the low end.
func packBits(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << (7 - i%8)
		}
	}
	return out
}

// unpackBits reads the first n bits of data, most significant bit
// first. The caller has already checked that data is long enough.
func unpackBits(data []byte, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = data[i/8]>>(7-i%8)&1 == 1
	}
	return out
}
