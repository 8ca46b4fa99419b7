package sha2

import (
	"math/bits"

	"github.com/zeebo/sha2/internal/consts"
	"github.com/zeebo/sha2/internal/utils"
)

//
// logical functions, FIPS 180-4 section 4.1.2 and 4.1.3
//

func ch32(e, f, g uint32) uint32  { return (e & f) ^ (^e & g) }
func maj32(a, b, c uint32) uint32 { return (a & b) ^ (a & c) ^ (b & c) }

func bigSigma0_32(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bigSigma1_32(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func sigma0_32(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func sigma1_32(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

func ch64(e, f, g uint64) uint64  { return (e & f) ^ (^e & g) }
func maj64(a, b, c uint64) uint64 { return (a & b) ^ (a & c) ^ (b & c) }

func bigSigma0_64(x uint64) uint64 {
	return bits.RotateLeft64(x, -28) ^ bits.RotateLeft64(x, -34) ^ bits.RotateLeft64(x, -39)
}

func bigSigma1_64(x uint64) uint64 {
	return bits.RotateLeft64(x, -14) ^ bits.RotateLeft64(x, -18) ^ bits.RotateLeft64(x, -41)
}

func sigma0_64(x uint64) uint64 {
	return bits.RotateLeft64(x, -1) ^ bits.RotateLeft64(x, -8) ^ (x >> 7)
}

func sigma1_64(x uint64) uint64 {
	return bits.RotateLeft64(x, -19) ^ bits.RotateLeft64(x, -61) ^ (x >> 6)
}

//
// message schedules
//

func expand256(block *[consts.BlockLen256]byte, w *[consts.Rounds256]uint32) {
	utils.BytesToWords32(block, (*[16]uint32)(w[:16]))
	for i := 16; i < consts.Rounds256; i++ {
		w[i] = sigma1_32(w[i-2]) + w[i-7] + sigma0_32(w[i-15]) + w[i-16]
	}
}

func expand512(block *[consts.BlockLen512]byte, w *[consts.Rounds512]uint64) {
	utils.BytesToWords64(block, (*[16]uint64)(w[:16]))
	for i := 16; i < consts.Rounds512; i++ {
		w[i] = sigma1_64(w[i-2]) + w[i-7] + sigma0_64(w[i-15]) + w[i-16]
	}
}

//
// compression. all additions wrap mod 2^32 or 2^64, which is what the
// algorithm requires.
//

// compress256 runs every complete block of p through the compression
// function, updating h. Any trailing partial block is ignored.
func compress256(h *[8]uint32, p []byte) {
	var w [consts.Rounds256]uint32

	for len(p) >= consts.BlockLen256 {
		expand256((*[consts.BlockLen256]byte)(p), &w)
		rounds256(h, &w)
		p = p[consts.BlockLen256:]
	}
}

func rounds256(h *[8]uint32, w *[consts.Rounds256]uint32) {
	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for i := 0; i < consts.Rounds256; i++ {
		t1 := hh + bigSigma1_32(e) + ch32(e, f, g) + consts.K256[i] + w[i]
		t2 := bigSigma0_32(a) + maj32(a, b, c)

		hh, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

// compress512 is compress256 for SHA-512.
func compress512(h *[8]uint64, p []byte) {
	var w [consts.Rounds512]uint64

	for len(p) >= consts.BlockLen512 {
		expand512((*[consts.BlockLen512]byte)(p), &w)
		rounds512(h, &w)
		p = p[consts.BlockLen512:]
	}
}

func rounds512(h *[8]uint64, w *[consts.Rounds512]uint64) {
	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]

	for i := 0; i < consts.Rounds512; i++ {
		t1 := hh + bigSigma1_64(e) + ch64(e, f, g) + consts.K512[i] + w[i]
		t2 := bigSigma0_64(a) + maj64(a, b, c)

		hh, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}
