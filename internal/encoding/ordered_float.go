package encoding

import (
	"math"
	"math/bits"

	"github.com/arloliu/ordkey/endian"
	"github.com/arloliu/ordkey/format"
	"github.com/arloliu/ordkey/internal/debug"
)

const (
	signMask = uint64(1) << 63

	// canonicalNaN is the quiet NaN every NaN input is folded into before the
	// transform, so all NaNs share one encoding above +Inf.
	canonicalNaN = uint64(0x7FF8000000000000)

	ascendingMask  byte = 0x00
	descendingMask byte = 0xFF
)

var keyEngine = endian.KeyEngine()

// OrderedBits maps v to a 64-bit pattern whose unsigned order matches the
// IEEE-754 order of v, with -0 < +0 and every NaN above +Inf.
//
// The pattern is derived from the raw bits of v (math.Float64bits), never
// from a numeric conversion:
//   - negative values have every bit complemented, reversing their magnitude order
//   - non-negative values have only the sign bit flipped, placing them after all negatives
func OrderedBits(v float64) uint64 {
	b := math.Float64bits(v)
	if math.IsNaN(v) {
		b = canonicalNaN
	}

	if b&signMask != 0 {
		return ^b
	}

	return b ^ signMask
}

// MagnitudeLen returns the number of bytes left after stripping the leading
// zero bytes of the big-endian form of u. It is 0 only when u is 0.
func MagnitudeLen(u uint64) int {
	return (bits.Len64(u) + 7) / 8
}

// EncodedLen returns the size of the encoding of v, length prefix included.
// The size is the same for both directions.
func EncodedLen(v float64) int {
	return 1 + MagnitudeLen(OrderedBits(v))
}

// AppendAscending appends the ascending encoding of v to dst and returns the extended slice.
func AppendAscending(dst []byte, v float64) []byte {
	return appendBits(dst, OrderedBits(v), ascendingMask)
}

// AppendDescending appends the descending encoding of v to dst and returns the extended slice.
// Every byte of the ascending encoding, length prefix included, is complemented.
func AppendDescending(dst []byte, v float64) []byte {
	return appendBits(dst, OrderedBits(v), descendingMask)
}

// Append appends the encoding of v in the given direction.
// Panics if dir is not a valid direction.
func Append(dst []byte, v float64, dir format.Direction) []byte {
	switch dir {
	case format.Ascending:
		return AppendAscending(dst, v)
	case format.Descending:
		return AppendDescending(dst, v)
	default:
		panic("ordkey: invalid direction " + dir.String())
	}
}

// appendBits writes [len][magnitude...] for u, XORing every byte with mask.
// The length is always computed on the ascending form.
func appendBits(dst []byte, u uint64, mask byte) []byte {
	n := MagnitudeLen(u)

	var scratch [format.MaxMagnitudeLen]byte
	keyEngine.PutUint64(scratch[:], u)
	magnitude := scratch[format.MaxMagnitudeLen-n:]

	debug.Assert(n == 0 || magnitude[0] != 0, "magnitude %x has a leading zero byte", magnitude)

	dst = append(dst, lengthPrefix(n)^mask)
	for _, b := range magnitude {
		dst = append(dst, b^mask)
	}

	return dst
}

// lengthPrefix converts a magnitude length to its prefix byte.
// n must be within [0, format.MaxMagnitudeLen].
func lengthPrefix(n int) byte {
	debug.Assert(n >= 0 && n <= format.MaxMagnitudeLen, "magnitude length %d out of range", n)

	return byte(n)
}
