package encoding

import (
	"github.com/arloliu/ordkey/format"
	ienc "github.com/arloliu/ordkey/internal/encoding"
	"github.com/arloliu/ordkey/internal/hash"
	"github.com/arloliu/ordkey/internal/options"
	"github.com/arloliu/ordkey/internal/pool"
)

// NumericKeyEncoder appends order-preserving encodings of float64 values.
//
// Each value is written as a length prefix followed by the minimal big-endian
// magnitude of its ordered bit pattern:
//
//	ascending:  [len 0..8][magnitude bytes]
//	descending: [^len 255..247][^magnitude bytes]
//
// so bytes.Compare over two outputs agrees with the IEEE-754 order of the
// inputs. Negative zero sorts strictly before positive zero, and every NaN sorts
// after +Inf and equal to every other NaN.
//
// Note: The NumericKeyEncoder is NOT thread-safe. Use one encoder per key-building
// goroutine.
type NumericKeyEncoder struct {
	buf    *pool.ByteBuffer
	count  int
	pooled bool
}

var _ KeyEncoder[float64] = (*NumericKeyEncoder)(nil)

// NewNumericKeyEncoder creates a new encoder.
//
// By default the buffer has DefaultInitialCapacity bytes and comes from the shared
// key buffer pool. See WithInitialCapacity and WithPooledBuffer.
//
// Returns:
//   - *NumericKeyEncoder: A new encoder instance ready for writes
//   - error: errs.ErrInvalidCapacity if an invalid capacity was configured
func NewNumericKeyEncoder(opts ...NumericKeyEncoderOption) (*NumericKeyEncoder, error) {
	cfg := newNumericKeyEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	e := &NumericKeyEncoder{pooled: cfg.Pooled()}
	if e.pooled {
		e.buf = pool.GetKeyBuffer()
	} else {
		e.buf = pool.NewByteBuffer(cfg.InitialCapacity())
	}

	return e, nil
}

// WriteAscending appends the ascending encoding of val.
//
// The buffer is grown before any byte is written, so the cursor only advances
// once the whole value is in place.
//
// Panics if Finish() has been called.
func (e *NumericKeyEncoder) WriteAscending(val float64) {
	e.mustBeActive()

	e.buf.Grow(ienc.EncodedLen(val))
	e.buf.B = ienc.AppendAscending(e.buf.B, val)
	e.count++
}

// WriteDescending appends the descending encoding of val: the ascending encoding
// with every byte complemented.
//
// Panics if Finish() has been called.
func (e *NumericKeyEncoder) WriteDescending(val float64) {
	e.mustBeActive()

	e.buf.Grow(ienc.EncodedLen(val))
	e.buf.B = ienc.AppendDescending(e.buf.B, val)
	e.count++
}

// Write appends val in the given direction.
//
// Panics if dir is invalid or Finish() has been called.
func (e *NumericKeyEncoder) Write(dir format.Direction, val float64) {
	switch dir {
	case format.Ascending:
		e.WriteAscending(val)
	case format.Descending:
		e.WriteDescending(val)
	default:
		panic("invalid direction: " + dir.String())
	}
}

// WriteSlice appends every value in the given direction.
//
// The exact size of all encodings is computed first so the buffer grows at
// most once for the whole slice.
//
// Panics if dir is invalid or Finish() has been called.
func (e *NumericKeyEncoder) WriteSlice(dir format.Direction, values []float64) {
	e.mustBeActive()

	if !dir.IsValid() {
		panic("invalid direction: " + dir.String())
	}

	if len(values) == 0 {
		return
	}

	size := 0
	for _, v := range values {
		size += ienc.EncodedLen(v)
	}
	e.buf.Grow(size)

	for _, v := range values {
		e.buf.B = ienc.Append(e.buf.B, v, dir)
	}
	e.count += len(values)
}

// Snapshot returns a copy of the bytes written since the last Reset.
//
// The copy never shares storage with the encoder, so later writes, Reset or
// Finish cannot be observed through it. Snapshot does not change encoder state.
//
// Panics if Finish() has been called.
func (e *NumericKeyEncoder) Snapshot() []byte {
	e.mustBeActive()

	return e.buf.Clone()
}

// Bytes returns the bytes written since the last Reset without copying.
//
// The returned slice is valid until the next call to a Write method, Reset or Finish.
// Use Snapshot when the bytes must outlive the encoder state.
//
// Panics if Finish() has been called.
func (e *NumericKeyEncoder) Bytes() []byte {
	e.mustBeActive()

	return e.buf.Bytes()
}

// Len returns the number of values written since the last Reset.
func (e *NumericKeyEncoder) Len() int {
	return e.count
}

// Size returns the number of bytes written since the last Reset.
//
// Panics if Finish() has been called.
func (e *NumericKeyEncoder) Size() int {
	e.mustBeActive()

	return e.buf.Len()
}

// Cap returns the current buffer capacity in bytes.
//
// Panics if Finish() has been called.
func (e *NumericKeyEncoder) Cap() int {
	e.mustBeActive()

	return e.buf.Cap()
}

// Fingerprint returns the xxHash64 of the bytes written since the last Reset.
//
// It is meant for deduplication and cache lookups of built keys. It does not
// preserve order.
//
// Panics if Finish() has been called.
func (e *NumericKeyEncoder) Fingerprint() uint64 {
	e.mustBeActive()

	return hash.Sum64(e.buf.Bytes())
}

// Reset moves the write cursor back to zero and keeps the buffer for reuse.
func (e *NumericKeyEncoder) Reset() {
	if e.buf == nil {
		return
	}

	e.buf.Reset()
	e.count = 0
}

// Finish releases the buffer. Pooled buffers go back to the key buffer pool.
//
// After calling Finish(), the encoder is no longer usable. Calling Finish again is a no-op.
func (e *NumericKeyEncoder) Finish() {
	if e.buf == nil {
		return
	}

	if e.pooled {
		pool.PutKeyBuffer(e.buf)
	}
	e.buf = nil
	e.count = 0
}

func (e *NumericKeyEncoder) mustBeActive() {
	if e.buf == nil {
		panic("encoder already finished - cannot use after Finish()")
	}
}
