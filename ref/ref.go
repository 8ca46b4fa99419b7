// Package ref is a direct transcription of FIPS 180-4 used to check the
// streaming implementation. It favors obviousness over speed: the whole
// message is padded up front and every block gets a full schedule array.
package ref

func rotr32(x uint32, n uint) uint32 { return x>>n | x<<(32-n) }
func rotr64(x uint64, n uint) uint64 { return x>>n | x<<(64-n) }

// Pad returns the padding FIPS 180-4 section 5.1 appends to a message of n
// bytes for the given block size (64 or 128).
func Pad(n uint64, blockSize int) []byte {
	lenField := blockSize / 8

	out := []byte{0x80}
	for (n+uint64(len(out)))%uint64(blockSize) != uint64(blockSize-lenField) {
		out = append(out, 0)
	}

	// bit length, big-endian, in a field of lenField bytes. the high 3 bits
	// of the 64 bit byte count land in the byte before the last 8.
	field := make([]byte, lenField)
	bitsLo := n << 3
	for i := 0; i < 8; i++ {
		field[lenField-1-i] = byte(bitsLo >> (8 * i))
	}
	if lenField > 8 {
		field[lenField-9] = byte(n >> 61)
	}

	return append(out, field...)
}
