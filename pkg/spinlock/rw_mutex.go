package spinlock

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// RWMutex is a reader/writer spin lock. It can be held by an arbitrary
// number of readers or a single writer. The zero value is an unlocked
// RWMutex. Like Mutex it is unfair and tracks no owner.
//
// The entire lock is one word: bit 0 flags a writer, the remaining bits
// count readers.
type RWMutex struct {
	state uint32
}

const (
	rwUnlocked   = 0
	rwWriter     = 1 << 0
	rwReader     = 1 << 1
	rwReaderMask = ^uint32(rwWriter)

	// Two's complement decrements for atomic.AddUint32.
	rwWriterUnset = ^uint32(rwWriter - 1)
	rwReaderUnset = ^uint32(rwReader - 1)

	maxRWSpins = 16
)

// RLock locks rw for reading.
func (rw *RWMutex) RLock() {
	// Optimistically register as a reader. If a writer holds the lock we
	// stay registered and wait for the writer bit to clear; the pending
	// reader count keeps TryLock failing in the meantime.
	if atomic.AddUint32(&rw.state, rwReader)&rwWriter == 0 {
		return
	}
	spins := 0
	for atomic.LoadUint32(&rw.state)&rwWriter != 0 {
		spins++
		if spins > maxRWSpins {
			spins = 0
			runtime.Gosched()
		}
	}
}

// TryRLock attempts to lock rw for reading and reports whether it
// succeeded.
func (rw *RWMutex) TryRLock() bool {
	if atomic.AddUint32(&rw.state, rwReader)&rwWriter == 0 {
		return true
	}
	atomic.AddUint32(&rw.state, rwReaderUnset)
	return false
}

// RUnlock undoes a single RLock call. It panics if rw is not locked for
// reading.
func (rw *RWMutex) RUnlock() {
	if atomic.AddUint32(&rw.state, rwReaderUnset)&rwReaderMask == rwReaderMask {
		panic("spinlock: RUnlock of unlocked RWMutex")
	}
}

// Lock locks rw for writing, spinning until no readers or writer remain.
func (rw *RWMutex) Lock() {
	spins := 0
	for !atomic.CompareAndSwapUint32(&rw.state, rwUnlocked, rwWriter) {
		spins++
		if spins > maxRWSpins {
			spins = 0
			runtime.Gosched()
		}
	}
}

// TryLock attempts to lock rw for writing and reports whether it
// succeeded.
func (rw *RWMutex) TryLock() bool {
	return atomic.CompareAndSwapUint32(&rw.state, rwUnlocked, rwWriter)
}

// Unlock unlocks rw for writing. It must only be called while rw is
// write-locked.
func (rw *RWMutex) Unlock() {
	atomic.AddUint32(&rw.state, rwWriterUnset)
}

// RLocker returns a sync.Locker whose Lock and Unlock call RLock and
// RUnlock.
func (rw *RWMutex) RLocker() sync.Locker {
	return (*rlocker)(rw)
}

type rlocker RWMutex

func (r *rlocker) Lock()   { (*RWMutex)(r).RLock() }
func (r *rlocker) Unlock() { (*RWMutex)(r).RUnlock() }
