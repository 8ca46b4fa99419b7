// Package sha2 implements the SHA-256 and SHA-512 hash functions of FIPS 180-4
// behind an incremental interface modelled on Python's hashlib: construct,
// update any number of times, and read the digest whenever you like.
package sha2

import (
	"encoding/hex"

	"github.com/zeebo/sha2/internal/consts"
)

const (
	// Size256 is the number of bytes in a SHA-256 digest.
	Size256 = consts.Size256

	// Size512 is the number of bytes in a SHA-512 digest.
	Size512 = consts.Size512

	// BlockSize256 is the SHA-256 block size in bytes.
	BlockSize256 = consts.BlockLen256

	// BlockSize512 is the SHA-512 block size in bytes.
	BlockSize512 = consts.BlockLen512
)

type engine interface {
	update(p []byte) error
	finalize(out []byte)
	reset()
	clone() engine
	size() int
	blockSize() int
	length() uint64
	appendState(b []byte) []byte
	loadState(b []byte) error
}

// Hasher is a hash.Hash for SHA-256 or SHA-512. Reading the digest never
// consumes the Hasher: more data may be written afterwards and the next digest
// covers everything written so far.
//
// A Hasher must not be used from multiple goroutines at once. Use Clone to get
// an independent copy. The zero value is only useful as the target of
// UnmarshalBinary. Other methods panic on it.
type Hasher struct {
	alg Algorithm
	e   engine
}

// engine returns the state behind h, panicking with a readable message for
// a zero Hasher.
func (h *Hasher) engine() engine {
	if h.e == nil {
		panic("sha2: use of zero Hasher")
	}
	return h.e
}

// New returns a Hasher for the algorithm with the given name that has already
// absorbed data, which may be nil. See ParseAlgorithm for accepted names.
func New(name string, data []byte) (*Hasher, error) {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return alg.New(data)
}

// New256 returns a new SHA-256 Hasher.
func New256() *Hasher {
	d := new(digest256)
	d.reset()
	return &Hasher{alg: SHA256, e: d}
}

// New512 returns a new SHA-512 Hasher.
func New512() *Hasher {
	d := new(digest512)
	d.reset()
	return &Hasher{alg: SHA512, e: d}
}

// Update absorbs p. It only fails with ErrLengthOverflow, in which case none
// of p was absorbed.
func (h *Hasher) Update(p []byte) error {
	return h.engine().update(p)
}

// Write implements part of the hash.Hash interface. It only returns an error
// when Update would.
func (h *Hasher) Write(p []byte) (int, error) {
	if err := h.engine().update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString is like Write but takes a string.
func (h *Hasher) WriteString(s string) (int, error) {
	return h.Write([]byte(s))
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.engine().reset()
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes in the digest: 32 for SHA-256 and 64 for SHA-512.
func (h *Hasher) Size() int {
	return h.engine().size()
}

// BlockSize implements part of the hash.Hash interface. It returns 64 for
// SHA-256 and 128 for SHA-512.
func (h *Hasher) BlockSize() int {
	return h.engine().blockSize()
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it.
func (h *Hasher) Sum(b []byte) []byte {
	e := h.engine()
	size := e.size()
	if top := len(b) + size; top <= cap(b) && top >= len(b) {
		e.finalize(b[len(b):top])
		return b[:top]
	}

	tmp := make([]byte, size)
	e.finalize(tmp)
	return append(b, tmp...)
}

// Digest returns the digest of everything written so far.
func (h *Hasher) Digest() []byte {
	return h.Sum(nil)
}

// HexDigest returns Digest as lowercase hex.
func (h *Hasher) HexDigest() string {
	return hex.EncodeToString(h.Digest())
}

// Name returns the canonical name of the algorithm, "sha256" or "sha512".
func (h *Hasher) Name() string {
	return h.alg.String()
}

// Algorithm returns the algorithm the Hasher computes.
func (h *Hasher) Algorithm() Algorithm {
	return h.alg
}

// Len returns the number of bytes written so far. For SHA-512 it saturates at
// the largest uint64.
func (h *Hasher) Len() uint64 {
	return h.engine().length()
}

// Clone returns a new Hasher with the same state as h. Writes to either do not
// affect the other.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{alg: h.alg, e: h.engine().clone()}
}

// Sum256 returns the SHA-256 digest of data. It panics with ErrLengthOverflow
// if data is longer than 2^61-1 bytes.
func Sum256(data []byte) (sum [Size256]byte) {
	var d digest256
	d.reset()
	if err := d.update(data); err != nil {
		panic(err)
	}
	d.finalize(sum[:])
	return sum
}

// Sum512 returns the SHA-512 digest of data. It panics with ErrLengthOverflow
// if data is longer than 2^125-1 bytes.
func Sum512(data []byte) (sum [Size512]byte) {
	var d digest512
	d.reset()
	if err := d.update(data); err != nil {
		panic(err)
	}
	d.finalize(sum[:])
	return sum
}
