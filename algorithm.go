package sha2

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/zeebo/sha2/internal/consts"
)

// Algorithm selects one of the supported hash functions. The zero value is not
// a valid Algorithm.
type Algorithm uint8

const (
	SHA256 Algorithm = iota + 1
	SHA512
)

// ParseAlgorithm returns the Algorithm named by name. Matching ignores case as
// well as '-' and '_' separators, so "SHA-256", "sha_256" and "sha2-256" all
// select SHA256.
func ParseAlgorithm(name string) (Algorithm, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(name))
	switch norm {
	case "sha256", "sha2256":
		return SHA256, nil
	case "sha512", "sha2512":
		return SHA512, nil
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// String returns the canonical lowercase name, as used by hashlib.
func (a Algorithm) String() string {
	switch a {
	case SHA256:
		return "sha256"
	case SHA512:
		return "sha512"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// Size returns the number of bytes in a digest, or 0 for an invalid Algorithm.
func (a Algorithm) Size() int {
	switch a {
	case SHA256:
		return consts.Size256
	case SHA512:
		return consts.Size512
	default:
		return 0
	}
}

// BlockSize returns the number of bytes consumed by one compression, or 0 for
// an invalid Algorithm.
func (a Algorithm) BlockSize() int {
	switch a {
	case SHA256:
		return consts.BlockLen256
	case SHA512:
		return consts.BlockLen512
	default:
		return 0
	}
}

// New returns a Hasher for the algorithm that has already absorbed data. It is
// equivalent to creating the Hasher and calling Update once.
func (a Algorithm) New(data []byte) (*Hasher, error) {
	h, err := a.hasher()
	if err != nil {
		return nil, err
	}
	if err := h.Update(data); err != nil {
		return nil, err
	}
	return h, nil
}

func (a Algorithm) hasher() (*Hasher, error) {
	switch a {
	case SHA256:
		return New256(), nil
	case SHA512:
		return New512(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%s", a)
	}
}
