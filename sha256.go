package sha2

import (
	"github.com/pkg/errors"

	"github.com/zeebo/sha2/internal/consts"
)

// maxLen256 is the largest number of bytes whose bit length fits the 64 bit
// length field.
const maxLen256 = 1<<61 - 1

//
// digest256 contains state for a sha256 hash
//

type digest256 struct {
	h   [8]uint32
	x   [consts.BlockLen256]byte
	nx  int
	len uint64
}

func (d *digest256) reset() {
	d.h = consts.IV256
	d.nx = 0
	d.len = 0
}

func (d *digest256) update(p []byte) error {
	if uint64(len(p)) > maxLen256-d.len {
		return errors.Wrapf(ErrLengthOverflow, "sha256: %d bytes after %d", len(p), d.len)
	}
	d.len += uint64(len(p))
	d.absorb(p)
	return nil
}

// absorb feeds p through the block buffer without touching the length.
func (d *digest256) absorb(p []byte) {
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		p = p[n:]

		if d.nx < consts.BlockLen256 {
			return
		}
		compress256(&d.h, d.x[:])
		d.nx = 0
	}

	if n := len(p) &^ (consts.BlockLen256 - 1); n > 0 {
		compress256(&d.h, p[:n])
		p = p[n:]
	}

	d.nx = copy(d.x[:], p)
}

func (d *digest256) clone() engine {
	c := *d
	return &c
}

func (d *digest256) size() int      { return consts.Size256 }
func (d *digest256) blockSize() int { return consts.BlockLen256 }
func (d *digest256) length() uint64 { return d.len }
