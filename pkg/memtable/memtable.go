package memtable

import (
	"time"

	"github.com/coocood/freecache"
)

// MemTable is a process local byte cache with per entry expiry
type MemTable struct {
	cache *freecache.Cache
	ttl   time.Duration
}

// New creates freecache with size, entries expire after ttl, zero means never
func New(size int, ttl time.Duration) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
		ttl:   ttl,
	}
}

// Get ...
func (m *MemTable) Get(key string) (data []byte, ok bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set silently drops entries larger than the cache can hold
func (m *MemTable) Set(key string, data []byte) {
	_ = m.cache.Set([]byte(key), data, int(m.ttl/time.Second))
}

// Delete ...
func (m *MemTable) Delete(key string) {
	m.cache.Del([]byte(key))
}
