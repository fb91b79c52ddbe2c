// Package determinism provides the primitives that make a suggestion reproducible:
// an injectable clock, an injectable random source, stable ordering and content hashes.
package determinism

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// ContentHash is a SHA-256 hash for content integrity
type ContentHash [32]byte

// Hex returns the hash as a hex string
func (h ContentHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// String implements Stringer
func (h ContentHash) String() string {
	return h.Hex()[:16] + "..."
}

// HashJSON hashes the JSON encoding of the given values, in order.
// Struct fields encode in declaration order, so equal inputs hash equally.
func HashJSON(values ...any) (ContentHash, error) {
	h := sha256.New()
	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return ContentHash{}, err
		}
		h.Write(data)
		h.Write([]byte{0})
	}
	var out ContentHash
	copy(out[:], h.Sum(nil))
	return out, nil
}

// SortSlice sorts a slice in a stable, deterministic manner
func SortSlice[T any](slice []T, less func(a, b T) bool) {
	sort.SliceStable(slice, func(i, j int) bool {
		return less(slice[i], slice[j])
	})
}
