// Package varint implements the signed variable-length integer encoding
// shared by every compressed component codec (VectorComp, VectorDelta, Set,
// IndexCompressed, InvertedIndex).
//
// Unlike the zigzag+LEB128 varints mebo uses for its own delta encoders
// (encoding/ts_delta.go), this is a distinct, self-contained scheme: the
// first byte carries a dedicated sign bit alongside 6 magnitude bits, and
// bytes encode 7 magnitude bits each thereafter, with a 9-byte escape that
// trades the continuation bit on the final byte for a full 8 bits of
// magnitude. It is authored fresh per spec §4.1 rather than reusing
// encoding/binary's Uvarint, which has no sign bit and a different byte
// layout.
package varint

// MaxLen is the maximum number of bytes a single encoded value can occupy.
const MaxLen = 9

// Encode appends the signed varint encoding of x to dst and returns the
// extended slice.
//
// The encoding uses 1 to 9 bytes: the first byte holds a continuation flag
// (bit 7), a sign flag (bit 6), and the top 6 bits of the (possibly
// complemented) magnitude; each subsequent byte before the last holds a
// continuation flag and 7 magnitude bits; the last byte (for 2..8 byte
// forms) holds 7 magnitude bits with no continuation flag. A 9-byte form is
// used when the magnitude doesn't fit in the 6+7*7=55 bits of the 8-byte
// form; its final byte carries a full 8 bits with no continuation flag at
// all.
func Encode(dst []byte, x int64) []byte {
	negative := x < 0
	mag := uint64(x)
	if negative {
		mag = uint64(^x)
	}

	return encodeMagnitude(dst, mag, negative)
}

// EncodeUnsigned appends the varint encoding of the full-range unsigned
// value mag to dst. Use this for values that are conceptually unsigned
// (e.g. ascending u64 key deltas). A value below 2^63 is written as a
// magnitude with the sign flag clear. The 9-byte form carries at most 63
// magnitude bits, so a value of 2^63 or more is written as Encode of the
// same 64-bit pattern read as an int64 (sign flag set). In both cases,
// converting Decode's result to uint64 restores mag exactly.
func EncodeUnsigned(dst []byte, mag uint64) []byte {
	if mag >= 1<<63 {
		return Encode(dst, int64(mag))
	}

	return encodeMagnitude(dst, mag, false)
}

func encodeMagnitude(dst []byte, mag uint64, negative bool) []byte {
	nBytes := byteCount(mag)

	var buf [MaxLen]byte
	k := nBytes - 1

	if nBytes == MaxLen {
		buf[k] = byte(mag)
		mag >>= 8
		k--
	}

	for k > 0 {
		b := byte(mag & 0x7f)
		mag >>= 7
		if k < nBytes-1 {
			b |= 0x80
		}
		buf[k] = b
		k--
	}

	b0 := byte(mag & 0x3f)
	if nBytes > 1 {
		b0 |= 0x80
	}
	if negative {
		b0 |= 0x40
	}
	buf[0] = b0

	return append(dst, buf[:nBytes]...)
}

// byteCount determines the number of bytes needed to encode the given
// (already sign-stripped) magnitude, per spec §4.1: starting with a mask
// covering bits above bit 5, grow by 7 bits at a time while the masked
// magnitude is nonzero.
func byteCount(mag uint64) int {
	const maxBytes = MaxLen

	mask := ^uint64(0x3f)
	n := 1
	for mag&mask != 0 && n < maxBytes {
		mask <<= 7
		n++
	}

	return n
}

// Decode reads a single signed varint from the front of src, returning the
// decoded value and the number of bytes consumed. It returns (0, 0) if src
// is empty or the encoding is truncated.
//
// Decode is provided so the encoding is round-trip testable (spec §8, item
// 6) even though this module never reads back its own containers.
func Decode(src []byte) (int64, int) {
	if len(src) == 0 {
		return 0, 0
	}

	b0 := src[0]
	negative := b0&0x40 != 0
	mag := uint64(b0 & 0x3f)

	if b0&0x80 == 0 {
		return finish(mag, negative), 1
	}

	// Multi-byte form: consume continuation bytes, then a final byte.
	i := 1
	for {
		if i >= len(src) {
			return 0, 0
		}

		b := src[i]
		if i == MaxLen-1 {
			// 9-byte form's final byte carries a full 8 bits, no flag.
			mag = mag<<8 | uint64(b)
			i++

			return finish(mag, negative), i
		}

		mag = mag<<7 | uint64(b&0x7f)
		i++

		if b&0x80 == 0 {
			return finish(mag, negative), i
		}
		if i > MaxLen-1 {
			return 0, 0
		}
	}
}

func finish(mag uint64, negative bool) int64 {
	if negative {
		return ^int64(mag)
	}

	return int64(mag)
}

// EncodedLen returns the number of bytes Encode(nil, x) would produce,
// without allocating.
func EncodedLen(x int64) int {
	mag := uint64(x)
	if x < 0 {
		mag = uint64(^x)
	}

	return byteCount(mag)
}
