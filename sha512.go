package sha2

import (
	"math"
	"math/bits"

	"github.com/pkg/errors"

	"github.com/zeebo/sha2/internal/consts"
)

// maxHi512 bounds the high half of the byte count so that the bit length fits
// the 128 bit length field.
const maxHi512 = 1 << 61

//
// digest512 contains state for a sha512 hash
//

type digest512 struct {
	h  [8]uint64
	x  [consts.BlockLen512]byte
	nx int
	hi uint64 // byte count, high half
	lo uint64 // byte count, low half
}

func (d *digest512) reset() {
	d.h = consts.IV512
	d.nx = 0
	d.hi, d.lo = 0, 0
}

func (d *digest512) update(p []byte) error {
	lo, carry := bits.Add64(d.lo, uint64(len(p)), 0)
	if hi := d.hi + carry; hi >= maxHi512 {
		return errors.Wrapf(ErrLengthOverflow, "sha512: %d bytes after %d*2^64+%d", len(p), d.hi, d.lo)
	}
	d.hi += carry
	d.lo = lo
	d.absorb(p)
	return nil
}

func (d *digest512) absorb(p []byte) {
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		p = p[n:]

		if d.nx < consts.BlockLen512 {
			return
		}
		compress512(&d.h, d.x[:])
		d.nx = 0
	}

	if n := len(p) &^ (consts.BlockLen512 - 1); n > 0 {
		compress512(&d.h, p[:n])
		p = p[n:]
	}

	d.nx = copy(d.x[:], p)
}

func (d *digest512) clone() engine {
	c := *d
	return &c
}

func (d *digest512) size() int      { return consts.Size512 }
func (d *digest512) blockSize() int { return consts.BlockLen512 }

// length saturates once the count no longer fits in 64 bits.
func (d *digest512) length() uint64 {
	if d.hi > 0 {
		return math.MaxUint64
	}
	return d.lo
}
