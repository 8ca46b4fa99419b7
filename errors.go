package sha2

import "github.com/pkg/errors"

var (
	// ErrUnknownAlgorithm is returned when a name does not select SHA-256 or
	// SHA-512.
	ErrUnknownAlgorithm = errors.New("sha2: unknown algorithm")

	// ErrLengthOverflow is returned when absorbing more data would push the
	// message past the largest length the algorithm can encode: 2^64 bits for
	// SHA-256 and 2^128 bits for SHA-512. The Hasher is left unchanged.
	ErrLengthOverflow = errors.New("sha2: message length overflow")

	// ErrInvalidState is returned by UnmarshalBinary for malformed input.
	ErrInvalidState = errors.New("sha2: invalid hash state")
)
