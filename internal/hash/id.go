package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of an encoded key.
func Sum64(key []byte) uint64 {
	return xxhash.Sum64(key)
}
