package ref

import "github.com/zeebo/sha2/internal/consts"

// Compress512 applies the SHA-512 compression function to one block.
func Compress512(state *[8]uint64, block *[128]byte) {
	var w [80]uint64
	for t := 0; t < 16; t++ {
		for i := 0; i < 8; i++ {
			w[t] = w[t]<<8 | uint64(block[8*t+i])
		}
	}
	for t := 16; t < 80; t++ {
		s0 := rotr64(w[t-15], 1) ^ rotr64(w[t-15], 8) ^ w[t-15]>>7
		s1 := rotr64(w[t-2], 19) ^ rotr64(w[t-2], 61) ^ w[t-2]>>6
		w[t] = w[t-16] + s0 + w[t-7] + s1
	}

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for t := 0; t < 80; t++ {
		S1 := rotr64(e, 14) ^ rotr64(e, 18) ^ rotr64(e, 41)
		ch := (e & f) ^ (^e & g)
		T1 := h + S1 + ch + consts.K512[t] + w[t]
		S0 := rotr64(a, 28) ^ rotr64(a, 34) ^ rotr64(a, 39)
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

// Sum512 returns the SHA-512 digest of msg.
func Sum512(msg []byte) (out [64]byte) {
	padded := append(append([]byte(nil), msg...), Pad(uint64(len(msg)), 128)...)

	state := consts.IV512
	for i := 0; i < len(padded); i += 128 {
		var block [128]byte
		copy(block[:], padded[i:i+128])
		Compress512(&state, &block)
	}

	for i, v := range state {
		for j := 0; j < 8; j++ {
			out[8*i+j] = byte(v >> (56 - 8*j))
		}
	}
	return out
}
