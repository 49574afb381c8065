package encoding

import (
	"fmt"

	"github.com/arloliu/ordkey/errs"
	"github.com/arloliu/ordkey/format"
	ienc "github.com/arloliu/ordkey/internal/encoding"
)

// AppendAscending appends the ascending encoding of v to dst and returns the extended slice.
// It is the stateless form of NumericKeyEncoder.WriteAscending and is safe for concurrent
// use on distinct dst slices.
func AppendAscending(dst []byte, v float64) []byte {
	return ienc.AppendAscending(dst, v)
}

// AppendDescending appends the descending encoding of v to dst and returns the extended slice.
func AppendDescending(dst []byte, v float64) []byte {
	return ienc.AppendDescending(dst, v)
}

// EncodedLen returns the number of bytes the encoding of v occupies, length prefix included.
// Both directions have the same length.
func EncodedLen(v float64) int {
	return ienc.EncodedLen(v)
}

// ValidateDirection returns errs.ErrInvalidDirection if dir is not a defined direction.
//
// Write and WriteSlice panic on an invalid direction, so callers taking directions from
// configuration should validate them first.
func ValidateDirection(dir format.Direction) error {
	if !dir.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidDirection, uint8(dir))
	}

	return nil
}
