package concurrency

import "sync"

// KeyedLock serializes operations on the same numeric key while letting
// operations on different keys proceed in parallel. Locks are created on
// first use and never reclaimed; the key space here is material IDs, which
// is small and stable.
type KeyedLock struct {
	locks sync.Map
}

// NewKeyedLock creates a new KeyedLock
func NewKeyedLock() *KeyedLock {
	return &KeyedLock{}
}

// Lock acquires the lock for key, blocking until it is available.
func (k *KeyedLock) Lock(key int64) {
	k.mutexFor(key).Lock()
}

// Unlock releases the lock for key.
func (k *KeyedLock) Unlock(key int64) {
	k.mutexFor(key).Unlock()
}

func (k *KeyedLock) mutexFor(key int64) *sync.Mutex {
	mu, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
