package sha2

import (
	"github.com/zeebo/sha2/internal/consts"
	"github.com/zeebo/sha2/internal/utils"
)

// finalize writes the digest of everything absorbed so far into out, which
// must have room for consts.Size256 bytes. It works on a copy, so d can keep
// absorbing afterwards.
func (d *digest256) finalize(out []byte) {
	var tmp [2 * consts.BlockLen256]byte

	c := *d
	c.absorb(pad256(c.len, &tmp))
	if c.nx != 0 {
		panic("sha2: padding left a partial block")
	}

	utils.WordsToBytes32(c.h[:], out[:consts.Size256])
}

func (d *digest512) finalize(out []byte) {
	var tmp [2 * consts.BlockLen512]byte

	c := *d
	c.absorb(pad512(c.hi, c.lo, &tmp))
	if c.nx != 0 {
		panic("sha2: padding left a partial block")
	}

	utils.WordsToBytes64(c.h[:], out[:consts.Size512])
}
