package ref

import "github.com/zeebo/sha2/internal/consts"

// Compress256 applies the SHA-256 compression function to one block.
func Compress256(state *[8]uint32, block *[64]byte) {
	var w [64]uint32
	for t := 0; t < 16; t++ {
		w[t] = uint32(block[4*t])<<24 | uint32(block[4*t+1])<<16 |
			uint32(block[4*t+2])<<8 | uint32(block[4*t+3])
	}
	for t := 16; t < 64; t++ {
		s0 := rotr32(w[t-15], 7) ^ rotr32(w[t-15], 18) ^ w[t-15]>>3
		s1 := rotr32(w[t-2], 17) ^ rotr32(w[t-2], 19) ^ w[t-2]>>10
		w[t] = w[t-16] + s0 + w[t-7] + s1
	}

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for t := 0; t < 64; t++ {
		S1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
		ch := (e & f) ^ (^e & g)
		T1 := h + S1 + ch + consts.K256[t] + w[t]
		S0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		T2 := S0 + maj

		h = g
		g = f
		f = e
		e = d + T1
		d = c
		c = b
		b = a
		a = T1 + T2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// Sum256 returns the SHA-256 digest of msg.
func Sum256(msg []byte) (out [32]byte) {
	padded := append(append([]byte(nil), msg...), Pad(uint64(len(msg)), 64)...)

	state := consts.IV256
	for i := 0; i < len(padded); i += 64 {
		var block [64]byte
		copy(block[:], padded[i:i+64])
		Compress256(&state, &block)
	}

	for i, v := range state {
		out[4*i] = byte(v >> 24)
		out[4*i+1] = byte(v >> 16)
		out[4*i+2] = byte(v >> 8)
		out[4*i+3] = byte(v)
	}
	return out
}
