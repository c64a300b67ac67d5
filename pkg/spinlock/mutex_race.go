//go:build race

package spinlock

import "sync"

// Mutex is backed by sync.Mutex in race-instrumented builds so the race
// detector sees the acquire/release pairs it understands. The spin variant
// in mutex.go would otherwise be reported as racy even though its atomics
// order correctly. Same API, same contract; an added benefit is that
// unlocking an unheld Mutex panics in these builds.
type Mutex struct {
	mu sync.Mutex
}

// Lock acquires m, blocking until it is available.
func (m *Mutex) Lock() {
	m.mu.Lock()
}

// TryLock attempts to acquire m without blocking and reports whether it
// succeeded.
func (m *Mutex) TryLock() bool {
	return m.mu.TryLock()
}

// Unlock releases m. It must only be called while m is held.
func (m *Mutex) Unlock() {
	m.mu.Unlock()
}
