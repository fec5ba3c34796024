package concurrency

import (
	"sync"
)

// LockManager handles per-key locks. Locks are created on first use and
// never removed, so keys should come from a bounded set such as user IDs.
type LockManager[K comparable] struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager[K comparable]() *LockManager[K] {
	return &LockManager[K]{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager[K]) GetLock(key K) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// TryLock acquires the key's lock without blocking.
// On success the returned unlock func must be called exactly once.
func (lm *LockManager[K]) TryLock(key K) (unlock func(), ok bool) {
	mu := lm.GetLock(key)
	if !mu.TryLock() {
		return nil, false
	}
	return mu.Unlock, true
}

// Held reports whether the key's lock is currently taken
func (lm *LockManager[K]) Held(key K) bool {
	v, ok := lm.locks.Load(key)
	if !ok {
		return false
	}
	mu := v.(*sync.Mutex)
	if mu.TryLock() {
		mu.Unlock()
		return false
	}
	return true
}
