package sha2

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/zeebo/sha2/internal/consts"
)

// A marshaled state is the magic, the algorithm byte, the chaining words, the
// block buffer (zero past the buffered bytes), the buffered byte count and
// the message byte count, all big-endian.
const (
	magic = "sha2"

	marshaledSize256 = len(magic) + 1 + 8*4 + consts.BlockLen256 + 1 + 8
	marshaledSize512 = len(magic) + 1 + 8*8 + consts.BlockLen512 + 1 + 16
)

func (d *digest256) appendState(b []byte) []byte {
	b = append(b, magic...)
	b = append(b, byte(SHA256))
	for _, v := range d.h {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	b = append(b, d.x[:d.nx]...)
	b = append(b, make([]byte, consts.BlockLen256-d.nx)...)
	b = append(b, byte(d.nx))
	return binary.BigEndian.AppendUint64(b, d.len)
}

func (d *digest256) loadState(b []byte) error {
	if len(b) != marshaledSize256 || string(b[:len(magic)]) != magic || b[len(magic)] != byte(SHA256) {
		return errors.Wrap(ErrInvalidState, "sha256: bad header or size")
	}
	b = b[len(magic)+1:]

	var c digest256
	for i := range c.h {
		c.h[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	b = b[copy(c.x[:], b):]
	c.nx = int(b[0])
	c.len = binary.BigEndian.Uint64(b[1:])

	if c.nx >= consts.BlockLen256 || c.len > maxLen256 || c.len%consts.BlockLen256 != uint64(c.nx) {
		return errors.Wrap(ErrInvalidState, "sha256: inconsistent lengths")
	}

	*d = c
	return nil
}

func (d *digest512) appendState(b []byte) []byte {
	b = append(b, magic...)
	b = append(b, byte(SHA512))
	for _, v := range d.h {
		b = binary.BigEndian.AppendUint64(b, v)
	}
	b = append(b, d.x[:d.nx]...)
	b = append(b, make([]byte, consts.BlockLen512-d.nx)...)
	b = append(b, byte(d.nx))
	b = binary.BigEndian.AppendUint64(b, d.hi)
	return binary.BigEndian.AppendUint64(b, d.lo)
}

func (d *digest512) loadState(b []byte) error {
	if len(b) != marshaledSize512 || string(b[:len(magic)]) != magic || b[len(magic)] != byte(SHA512) {
		return errors.Wrap(ErrInvalidState, "sha512: bad header or size")
	}
	b = b[len(magic)+1:]

	var c digest512
	for i := range c.h {
		c.h[i] = binary.BigEndian.Uint64(b)
		b = b[8:]
	}
	b = b[copy(c.x[:], b):]
	c.nx = int(b[0])
	c.hi = binary.BigEndian.Uint64(b[1:])
	c.lo = binary.BigEndian.Uint64(b[9:])

	if c.nx >= consts.BlockLen512 || c.hi >= maxHi512 || c.lo%consts.BlockLen512 != uint64(c.nx) {
		return errors.Wrap(ErrInvalidState, "sha512: inconsistent lengths")
	}

	*d = c
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The result can be given
// to UnmarshalBinary to resume hashing later, possibly in another process.
func (h *Hasher) MarshalBinary() ([]byte, error) {
	return h.engine().appendState(make([]byte, 0, marshaledSize512)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. A Hasher created by
// a constructor only accepts state for its own algorithm. A zero Hasher takes
// on the algorithm recorded in the state. On error the Hasher is unchanged.
func (h *Hasher) UnmarshalBinary(data []byte) error {
	if len(data) <= len(magic) {
		return errors.Wrap(ErrInvalidState, "short state")
	}
	alg := Algorithm(data[len(magic)])

	if h.e != nil {
		if alg != h.alg {
			return errors.Wrapf(ErrInvalidState, "state is for %s, hasher is %s", alg, h.alg)
		}
		return h.e.loadState(data)
	}

	fresh, err := alg.hasher()
	if err != nil {
		return errors.Wrapf(ErrInvalidState, "%v", err)
	}
	if err := fresh.e.loadState(data); err != nil {
		return err
	}
	*h = *fresh
	return nil
}
