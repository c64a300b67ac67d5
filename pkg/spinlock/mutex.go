//go:build !race

package spinlock

import (
	"runtime"
	"sync/atomic"
)

// Mutex is a test-and-set spin lock. The zero value is an unlocked Mutex.
// A Mutex must not be copied after first use.
type Mutex uint32

// maxSpins bounds the relaxed read loop before yielding to the scheduler.
// Goroutines share OS threads, so an unbounded burn could starve the very
// goroutine that needs to release the lock.
const maxSpins = 16

// Lock acquires m, spinning until it is available.
func (m *Mutex) Lock() {
	for !atomic.CompareAndSwapUint32((*uint32)(m), 0, 1) {
		// Spin on plain loads instead of hammering CAS. Failed exclusive
		// attempts bounce the cache line between cores; loads do not.
		spins := 0
		for atomic.LoadUint32((*uint32)(m)) != 0 {
			spins++
			if spins > maxSpins {
				spins = 0
				runtime.Gosched()
			}
		}
	}
}

// TryLock attempts to acquire m without blocking and reports whether it
// succeeded.
func (m *Mutex) TryLock() bool {
	return atomic.CompareAndSwapUint32((*uint32)(m), 0, 1)
}

// Unlock releases m. It must only be called while m is held; the lock is
// not associated with a particular goroutine, so the holder may arrange
// for another goroutine to unlock it.
func (m *Mutex) Unlock() {
	atomic.StoreUint32((*uint32)(m), 0)
}
