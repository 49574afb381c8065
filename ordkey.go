// Package ordkey encodes numbers into byte strings that sort like the numbers.
//
// Comparing two encoded keys with bytes.Compare gives the same result as comparing
// the original float64 values, which lets sorted key-value stores answer numeric
// range scans with plain byte-range scans.
//
// # Core Features
//
//   - Ascending and descending encodings, mirrored by complementing every byte
//   - Self-delimiting components (1 length byte + 0-8 magnitude bytes)
//   - Total over float64: ±0, ±Inf and every NaN bit pattern are encodable
//   - -0 sorts strictly before +0; all NaNs sort equal, after +Inf
//   - Pooled, growable buffers with snapshot copies for callers
//
// # Basic Usage
//
// Building a composite key (price ASC, score DESC):
//
//	import "github.com/arloliu/ordkey"
//
//	encoder, _ := ordkey.NewEncoder()
//	defer encoder.Finish()
//
//	encoder.WriteAscending(19.99)
//	encoder.WriteDescending(4.5)
//	key := encoder.Snapshot()
//
// One-shot encoding of a single component:
//
//	lo := ordkey.Ascending(10)
//	hi := ordkey.Ascending(20)
//	// scan [lo, hi) in the store to visit every value in [10, 20)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding package.
// For options and bulk writes, use the encoding package directly.
package ordkey

import (
	"bytes"

	"github.com/arloliu/ordkey/encoding"
	"github.com/arloliu/ordkey/internal/hash"
)

// NewEncoder creates a numeric key encoder with the given options.
//
// Available options:
//   - encoding.WithInitialCapacity(n)
//   - encoding.WithPooledBuffer(true|false)
//
// Returns an error if the configuration is invalid.
//
// Example:
//
//	encoder, err := ordkey.NewEncoder(encoding.WithInitialCapacity(64))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer encoder.Finish()
func NewEncoder(opts ...encoding.NumericKeyEncoderOption) (*encoding.NumericKeyEncoder, error) {
	return encoding.NewNumericKeyEncoder(opts...)
}

// Ascending returns the ascending encoding of v as a new slice.
func Ascending(v float64) []byte {
	return encoding.AppendAscending(nil, v)
}

// Descending returns the descending encoding of v as a new slice.
func Descending(v float64) []byte {
	return encoding.AppendDescending(nil, v)
}

// Compare compares two encoded keys. The result is -1, 0 or +1, as bytes.Compare.
//
// Encoded keys must never be decoded and compared as floats: the encoding treats all
// NaNs as equal and orders -0 before +0, which Go's float operators do not.
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Fingerprint returns the xxHash64 of an encoded key, for deduplication and caching.
// It does not preserve order.
func Fingerprint(key []byte) uint64 {
	return hash.Sum64(key)
}
