package store

import "sync"

// Key prefixes for the record kinds held in the local database.
const (
	progressPrefix = "progress:"
	settingsPrefix = "settings:"
)

// keyPool provides reusable byte slices for building database keys.
// This reduces allocations on the hot path of database operations.
var keyPool = sync.Pool{
	New: func() any {
		// 128 bytes covers a prefix plus a prefixed NanoID account ID.
		return make([]byte, 0, 128)
	},
}

// buildKey constructs a database key from prefix and suffix using a pooled buffer.
// The returned slice is valid until releaseKey is called.
// Callers MUST call releaseKey when done with the key.
//
// Usage:
//
//	key := buildKey(progressPrefix, accountID)
//	defer releaseKey(key)
//	item, err := txn.Get(key)
func buildKey(prefix, suffix string) []byte {
	buf, _ := keyPool.Get().([]byte)
	buf = buf[:0] // Reset length, keep capacity
	buf = append(buf, prefix...)
	buf = append(buf, suffix...)
	return buf
}

// releaseKey returns a key buffer to the pool for reuse.
// After calling this, the key slice must not be used.
func releaseKey(key []byte) {
	// Avoids keeping oversized buffers in the pool.
	if cap(key) <= 256 {
		keyPool.Put(key[:0])
	}
}
