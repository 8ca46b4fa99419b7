package utils

import "encoding/binary"

// BytesToWords32 loads a 64 byte block as 16 big-endian words.
func BytesToWords32(bytes *[64]uint8, words *[16]uint32) {
	words[0] = binary.BigEndian.Uint32(bytes[0*4:])
	words[1] = binary.BigEndian.Uint32(bytes[1*4:])
	words[2] = binary.BigEndian.Uint32(bytes[2*4:])
	words[3] = binary.BigEndian.Uint32(bytes[3*4:])
	words[4] = binary.BigEndian.Uint32(bytes[4*4:])
	words[5] = binary.BigEndian.Uint32(bytes[5*4:])
	words[6] = binary.BigEndian.Uint32(bytes[6*4:])
	words[7] = binary.BigEndian.Uint32(bytes[7*4:])
	words[8] = binary.BigEndian.Uint32(bytes[8*4:])
	words[9] = binary.BigEndian.Uint32(bytes[9*4:])
	words[10] = binary.BigEndian.Uint32(bytes[10*4:])
	words[11] = binary.BigEndian.Uint32(bytes[11*4:])
	words[12] = binary.BigEndian.Uint32(bytes[12*4:])
	words[13] = binary.BigEndian.Uint32(bytes[13*4:])
	words[14] = binary.BigEndian.Uint32(bytes[14*4:])
	words[15] = binary.BigEndian.Uint32(bytes[15*4:])
}

// BytesToWords64 loads a 128 byte block as 16 big-endian words.
func BytesToWords64(bytes *[128]uint8, words *[16]uint64) {
	words[0] = binary.BigEndian.Uint64(bytes[0*8:])
	words[1] = binary.BigEndian.Uint64(bytes[1*8:])
	words[2] = binary.BigEndian.Uint64(bytes[2*8:])
	words[3] = binary.BigEndian.Uint64(bytes[3*8:])
	words[4] = binary.BigEndian.Uint64(bytes[4*8:])
	words[5] = binary.BigEndian.Uint64(bytes[5*8:])
	words[6] = binary.BigEndian.Uint64(bytes[6*8:])
	words[7] = binary.BigEndian.Uint64(bytes[7*8:])
	words[8] = binary.BigEndian.Uint64(bytes[8*8:])
	words[9] = binary.BigEndian.Uint64(bytes[9*8:])
	words[10] = binary.BigEndian.Uint64(bytes[10*8:])
	words[11] = binary.BigEndian.Uint64(bytes[11*8:])
	words[12] = binary.BigEndian.Uint64(bytes[12*8:])
	words[13] = binary.BigEndian.Uint64(bytes[13*8:])
	words[14] = binary.BigEndian.Uint64(bytes[14*8:])
	words[15] = binary.BigEndian.Uint64(bytes[15*8:])
}

// WordsToBytes32 stores the words big-endian into bytes, which must have room
// for 4*len(words) bytes.
func WordsToBytes32(words []uint32, bytes []byte) {
	bytes = bytes[:4*len(words)]
	for i, w := range words {
		binary.BigEndian.PutUint32(bytes[4*i:], w)
	}
}

// WordsToBytes64 stores the words big-endian into bytes, which must have room
// for 8*len(words) bytes.
func WordsToBytes64(words []uint64, bytes []byte) {
	bytes = bytes[:8*len(words)]
	for i, w := range words {
		binary.BigEndian.PutUint64(bytes[8*i:], w)
	}
}
