// Package encoding implements the order-preserving transform behind ordkey's key encoders.
//
// The functions here are pure: they map a float64 to an ordered 64-bit pattern,
// compute the minimal magnitude length of that pattern, and append the
// length-prefixed encoding to a caller-supplied slice. Buffer management and
// lifecycle live in the public github.com/arloliu/ordkey/encoding package.
//
// This package is internal and should not be imported by external code. Use
// encoding.NumericKeyEncoder or the encoding.Append* helpers instead.
package encoding
