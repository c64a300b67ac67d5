// Package spinlock provides busy-wait mutual exclusion for very short
// critical sections. Locks are word-sized, carry no owner identity and make
// no fairness guarantee; a goroutine that already holds a lock must not
// acquire it again.
//
// Under the race detector the same API is backed by sync.Mutex so the
// detector observes the synchronization natively instead of reporting
// false races on the hand-rolled flag (see mutex_race.go).
package spinlock

import "sync"

var (
	_ sync.Locker = (*Mutex)(nil)
	_ sync.Locker = (*RWMutex)(nil)
)
