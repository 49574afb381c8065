// Package endian provides the byte order used for ordered key bytes.
//
// Order-preserving keys are compared with bytes.Compare, so the most
// significant byte of a value must come first. Every ordkey encoder therefore
// writes big-endian, independent of the host byte order. The engine is exposed
// through an interface combining binary.ByteOrder and binary.AppendByteOrder
// so encoders can either put into a scratch array or append in place.
//
// # Thread Safety
//
// The returned engine is immutable and stateless; it is safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// KeyEngine returns the engine used for ordered key bytes.
//
// It is always big-endian: lexicographic comparison of the output must see the
// most significant byte first.
func KeyEngine() EndianEngine {
	return binary.BigEndian
}
