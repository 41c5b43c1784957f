// Package cache stores fetched site pages by URL. Providers register
// themselves by name; "memory" keeps an expiring LRU in process and
// "redis" shares pages between instances.
package cache

// EvictCallback is called when an entry is evicted. The redis provider
// passes a nil value.
type EvictCallback func(key string, value []byte)

// Cache is a size-bounded key/value store with expiring entries.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)

	// Len returns the number of live entries.
	Len() int

	Close() error
}
