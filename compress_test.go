package sha2

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"

	"github.com/zeebo/sha2/internal/consts"
	"github.com/zeebo/sha2/ref"
)

func TestCompress256(t *testing.T) {
	var block [consts.BlockLen256]byte

	for i := 0; i < 1e4; i++ {
		var s1, s2 [8]uint32
		for j := range &s1 {
			s1[j] = pcg.Uint32()
		}
		for j := range &block {
			block[j] = byte(pcg.Uint32())
		}
		s2 = s1

		compress256(&s1, block[:])
		ref.Compress256(&s2, &block)

		assert.Equal(t, s1, s2)
	}
}

func TestCompress512(t *testing.T) {
	var block [consts.BlockLen512]byte

	for i := 0; i < 1e4; i++ {
		var s1, s2 [8]uint64
		for j := range &s1 {
			s1[j] = pcg.Uint64()
		}
		for j := range &block {
			block[j] = byte(pcg.Uint32())
		}
		s2 = s1

		compress512(&s1, block[:])
		ref.Compress512(&s2, &block)

		assert.Equal(t, s1, s2)
	}
}

func TestCompressIgnoresPartialBlock(t *testing.T) {
	s1, s2 := consts.IV256, consts.IV256
	data := pattern(3*consts.BlockLen256 - 1)

	compress256(&s1, data)
	compress256(&s2, data[:2*consts.BlockLen256])
	assert.Equal(t, s1, s2)

	compress256(&s2, data[:consts.BlockLen256-1])
	assert.Equal(t, s1, s2)
}

func TestExpand(t *testing.T) {
	var b256 [consts.BlockLen256]byte
	var w256 [consts.Rounds256]uint32
	copy(b256[:], pattern(len(b256)))
	expand256(&b256, &w256)

	// the first sixteen words are the block itself
	assert.Equal(t, w256[0], uint32(0x01020304))
	assert.Equal(t, w256[15], uint32(0x3d3e3f40))
	assert.Equal(t, w256[16], sigma1_32(w256[14])+w256[9]+sigma0_32(w256[1])+w256[0])

	var b512 [consts.BlockLen512]byte
	var w512 [consts.Rounds512]uint64
	copy(b512[:], pattern(len(b512)))
	expand512(&b512, &w512)

	assert.Equal(t, w512[0], uint64(0x0102030405060708))
	assert.Equal(t, w512[79], sigma1_64(w512[77])+w512[72]+sigma0_64(w512[64])+w512[63])
}

func TestPad(t *testing.T) {
	var tmp256 [2 * consts.BlockLen256]byte
	var tmp512 [2 * consts.BlockLen512]byte

	for n := uint64(0); n < 4*consts.BlockLen512; n++ {
		assert.Equal(t, string(pad256(n, &tmp256)), string(ref.Pad(n, consts.BlockLen256)))
		assert.Equal(t, string(pad512(0, n, &tmp512)), string(ref.Pad(n, consts.BlockLen512)))
	}

	// the length field carries the bits shifted out of the low half
	p := pad512(1, 1<<61|5, &tmp512)
	field := p[len(p)-consts.LenField512:]
	assert.Equal(t, field[7], byte(0x09))
	assert.Equal(t, field[15], byte(5<<3))
}
