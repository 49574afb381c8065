// Package encoding provides order-preserving key encoders for numeric values.
//
// The encoders produce byte strings whose lexicographic order, as computed by
// bytes.Compare, matches the order of the encoded values. They are meant for
// building keys of sorted key-value stores, where a range scan over encoded
// keys must visit values in numeric order.
//
// # Wire Format
//
// Each float64 is written as a self-delimiting component:
//
//	ascending:  [L][m1 m2 ... mL]         L in 0..8
//	descending: [^L][^m1 ^m2 ... ^mL]     ^L in 255..247
//
// The magnitude bytes m1..mL are the big-endian form of an ordered bit pattern
// with leading zero bytes stripped, so m1 is never zero. The ordered bit pattern
// is derived from math.Float64bits:
//
//	sign bit set:   complement all 64 bits
//	sign bit clear: flip the sign bit only
//
// Shorter magnitudes always denote smaller patterns, so comparing the length
// prefix first and the magnitude bytes second is equivalent to comparing the
// patterns as unsigned integers.
//
// # Ordering Rules
//
//   - Values follow IEEE-754 order: -Inf < -MaxFloat64 < ... < -0 < +0 < ... < +Inf.
//   - -0 sorts strictly before +0, even though -0 == +0 in Go.
//   - Every NaN sorts after +Inf, and all NaNs (any sign, any payload) encode identically.
//
// Do not compare encoded keys by decoding them and using Go's float operators:
// NaN comparisons are always false there, but encoded NaNs are equal.
//
// # Usage
//
//	encoder, err := encoding.NewNumericKeyEncoder()
//	if err != nil {
//	    return err
//	}
//	defer encoder.Finish()
//
//	encoder.WriteAscending(price)   // price ASC
//	encoder.WriteDescending(score)  // then score DESC
//	key := encoder.Snapshot()       // caller-owned copy
//
// Direction mixing inside one key is the caller's decision: a key built as
// (ASC, DESC) must always be compared with other keys built the same way.
//
// # Memory Usage
//
// Encoders start with a DefaultInitialCapacity buffer taken from a shared pool.
// When a write does not fit, the capacity doubles, or grows to exactly the
// required size when doubling is not enough. Reset keeps the buffer; Finish
// returns it to the pool.
//
// # Thread Safety
//
// Encoders: Not thread-safe. Use one encoder per goroutine.
//
// AppendAscending, AppendDescending and EncodedLen are stateless and safe for
// concurrent use.
package encoding
