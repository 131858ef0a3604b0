package quill

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ============================================================
// Key Interning Cache
// ============================================================
//
// Object member names repeat heavily across and within documents. The
// decoder routes every member name through a fixed-capacity table that
// maps a content hash to a previously retained key string, so repeated
// names share one backing string instead of each document retaining its
// own copy.
//
// The table is sized once and never grows. Inserting into an occupied
// slot overwrites it: the cost of an occasional evicted entry is a
// missed dedup, never incorrect data. A hit compares only the stored
// 64-bit hash, not the key bytes; xxhash is treated as collision-free
// over realistic member-name alphabets. See DESIGN.md for the
// trade-off discussion.

const (
	// DefaultKeyCacheCapacity is the slot count of the process-wide
	// cache backing the package-level decode entry points.
	DefaultKeyCacheCapacity = 512

	// maxInternedKeyLen is the longest member name eligible for
	// interning. Longer names are rare and would pollute the table,
	// so they are materialized fresh every time.
	maxInternedKeyLen = 64
)

type keySlot struct {
	hash uint64
	key  string
	used bool
}

// KeyCache is a bounded content-addressed cache of object member
// names. It is safe for concurrent use. The zero value is not usable;
// call NewKeyCache.
type KeyCache struct {
	mu    sync.Mutex
	slots []keySlot
	live  int
}

// NewKeyCache creates a cache with the given slot count. Capacities
// below 1 fall back to DefaultKeyCacheCapacity.
func NewKeyCache(capacity int) *KeyCache {
	if capacity < 1 {
		capacity = DefaultKeyCacheCapacity
	}
	return &KeyCache{slots: make([]keySlot, capacity)}
}

// defaultKeys backs the package-level Decode entry points. Sized at
// process start, never resized.
var defaultKeys = NewKeyCache(DefaultKeyCacheCapacity)

// Intern returns a key string with the same content as s, shared with
// previous calls when possible. Names longer than 64 bytes bypass the
// cache. Intern never fails; the worst case is a missed dedup.
func (c *KeyCache) Intern(s string) string {
	if len(s) > maxInternedKeyLen {
		return s
	}
	hash := xxhash.Sum64String(s)
	slot := hash % uint64(len(c.slots))

	c.mu.Lock()
	defer c.mu.Unlock()
	e := &c.slots[slot]
	if e.used && e.hash == hash {
		return e.key
	}
	if !e.used {
		c.live++
	}
	e.hash = hash
	e.key = s
	e.used = true
	return s
}

// Len returns the number of occupied slots.
func (c *KeyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.live
}

// Reset empties the cache.
func (c *KeyCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.slots {
		c.slots[i] = keySlot{}
	}
	c.live = 0
}
