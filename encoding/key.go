package encoding

import "github.com/arloliu/ordkey/format"

// KeyEncoder appends order-preserving encodings of values of type T to an internal buffer.
//
// Comparing two outputs with bytes.Compare gives the same result as comparing the
// written values in order, field by field, honoring each field's direction.
type KeyEncoder[T any] interface {
	// WriteAscending appends the encoding of data whose byte order follows the natural value order.
	WriteAscending(data T)

	// WriteDescending appends the encoding of data whose byte order is the reverse of the
	// natural value order.
	WriteDescending(data T)

	// Write appends data in the given direction.
	//
	// Panics if dir is not format.Ascending or format.Descending.
	Write(dir format.Direction, data T)

	// WriteSlice appends every value of data in the given direction.
	//
	// This method is optimized for bulk writes: the buffer grows at most once.
	WriteSlice(dir format.Direction, data []T)

	// Snapshot returns a copy of the bytes written since the last Reset.
	//
	// The copy is owned by the caller; later writes, Reset or Finish never change it.
	Snapshot() []byte

	// Bytes returns the bytes written since the last Reset without copying.
	// The returned slice is valid until the next call to Write*, Reset or Finish.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of values written since the last Reset.
	Len() int

	// Size returns the number of bytes written since the last Reset.
	Size() int

	// Reset discards the written bytes and keeps the buffer for reuse.
	//
	// After Reset, Snapshot returns an empty slice, and repeating a sequence of writes
	// produces exactly the bytes a new encoder would produce.
	Reset()

	// Finish releases buffer resources.
	//
	// After calling Finish(), the encoder is no longer usable. Any subsequent call to
	// a Write method, Snapshot, Bytes or Size panics.
	Finish()
}
