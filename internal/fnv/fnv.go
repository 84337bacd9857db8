// Package fnv computes the 64-bit FNV-1a hash used to key the (hash,
// position) pairs that back StringHash and LexHash indexes. The container
// format only commits to the FNV-1a/64 algorithm, not a particular
// implementation, so this wraps the standard library's hash/fnv rather than
// porting a third-party hasher: no entry in the example pack carries an
// FNV-1a implementation, and hash/fnv is the canonical one.
package fnv

import "hash/fnv"

// Sum64a returns the FNV-1a 64-bit hash of s.
func Sum64a(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
