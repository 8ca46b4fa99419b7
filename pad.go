package sha2

import (
	"encoding/binary"

	"github.com/zeebo/sha2/internal/consts"
)

// pad256 returns the padding that follows a message of n bytes: a single 1
// bit, zeros up to 56 mod 64, and the bit length as a 64 bit big-endian
// integer. The returned slice aliases tmp.
func pad256(n uint64, tmp *[2 * consts.BlockLen256]byte) []byte {
	const tail = consts.BlockLen256 - consts.LenField256

	*tmp = [2 * consts.BlockLen256]byte{}
	tmp[0] = 0x80

	zeros := (2*consts.BlockLen256 + tail - 1 - n%consts.BlockLen256) % consts.BlockLen256
	binary.BigEndian.PutUint64(tmp[1+zeros:], n<<3)

	return tmp[:1+zeros+consts.LenField256]
}

// pad512 is pad256 for SHA-512: zeros up to 112 mod 128 and a 128 bit length.
// The byte count is given as its high and low halves.
func pad512(hi, lo uint64, tmp *[2 * consts.BlockLen512]byte) []byte {
	const tail = consts.BlockLen512 - consts.LenField512

	*tmp = [2 * consts.BlockLen512]byte{}
	tmp[0] = 0x80

	zeros := (2*consts.BlockLen512 + tail - 1 - lo%consts.BlockLen512) % consts.BlockLen512
	binary.BigEndian.PutUint64(tmp[1+zeros:], hi<<3|lo>>61)
	binary.BigEndian.PutUint64(tmp[1+zeros+8:], lo<<3)

	return tmp[:1+zeros+consts.LenField512]
}
