// Package locktab provides fixed-size tables of spin locks for guarding
// many independent hot items without a lock per item. A caller-supplied
// integer key selects a slot via key & (N-1); distinct keys may alias to
// the same slot and are then serialized against each other, which is
// accepted in exchange for bounded memory. Slots are padded to a cache
// line each so contention on one slot never slows its neighbors through
// false sharing.
//
// Tables have no teardown: slots hold no OS resources and are reclaimed
// with the table by the garbage collector.
package locktab

import (
	"errors"
	"fmt"
	"sync"

	"github.com/moontrade/latch/pkg/counter"
	"github.com/moontrade/latch/pkg/pmath"
	"github.com/moontrade/latch/pkg/spinlock"
	"golang.org/x/sys/cpu"
)

// DefaultSlots is the slot count used by Default. Large enough to keep
// collision-induced contention rare for typical key populations.
const DefaultSlots = 1024

// ErrSlotCount is returned by New for a slot count that is not a power of
// two. Counts are never rounded silently; callers that want rounding can
// use pmath.CeilToPowerOf2 before construction.
var ErrSlotCount = errors.New("locktab: slot count must be a power of two")

// slot places its lock and bookkeeping on a dedicated cache line. The
// padding is the mechanism that keeps independent slots independent; do
// not reorder or remove fields without considering layout.
type slot struct {
	mu        spinlock.Mutex
	acquired  counter.Counter
	contended counter.Counter
	_         cpu.CacheLinePad
}

// Table is a fixed power-of-two array of padded spin locks. The slot array
// is immutable after construction; only slot states change concurrently.
type Table struct {
	slots []slot
	mask  uint64
}

// New returns a Table with slotCount slots. slotCount must be a power of
// two.
func New(slotCount int) (*Table, error) {
	if !pmath.IsPowerOf2(slotCount) {
		return nil, fmt.Errorf("%w: %d", ErrSlotCount, slotCount)
	}
	return &Table{
		slots: make([]slot, slotCount),
		mask:  uint64(slotCount - 1),
	}, nil
}

// Default returns a Table with DefaultSlots slots.
func Default() *Table {
	t, err := New(DefaultSlots)
	if err != nil {
		panic(err)
	}
	return t
}

// Slots returns the table's slot count.
func (t *Table) Slots() int {
	return len(t.slots)
}

func (t *Table) slotFor(key uint64) *slot {
	return &t.slots[key&t.mask]
}

// AcquireFor locks the slot for key, spinning until it is available.
// Writes made while the slot was last held are visible once AcquireFor
// returns. The calling goroutine must not already hold the slot.
func (t *Table) AcquireFor(key uint64) {
	s := t.slotFor(key)
	if !s.mu.TryLock() {
		s.contended.Incr()
		s.mu.Lock()
	}
	s.acquired.Incr()
}

// TryAcquireFor attempts to lock the slot for key without blocking and
// reports whether it succeeded.
func (t *Table) TryAcquireFor(key uint64) bool {
	s := t.slotFor(key)
	if !s.mu.TryLock() {
		return false
	}
	s.acquired.Incr()
	return true
}

// ReleaseFor unlocks the slot for key. The caller must hold that slot,
// normally via a prior AcquireFor with the same key.
func (t *Table) ReleaseFor(key uint64) {
	t.slotFor(key).mu.Unlock()
}

// LockerFor returns the slot for key as a sync.Locker, for defer-based
// release:
//
//	l := tab.LockerFor(key)
//	l.Lock()
//	defer l.Unlock()
func (t *Table) LockerFor(key uint64) sync.Locker {
	return &t.slotFor(key).mu
}

// Stats is a point-in-time aggregate of table activity.
type Stats struct {
	// Acquired counts successful acquisitions, blocking or not.
	Acquired int64
	// Contended counts acquisitions that found their slot already held.
	Contended int64
}

// Stats sums per-slot counters. The snapshot is not atomic across slots.
func (t *Table) Stats() Stats {
	var st Stats
	for i := range t.slots {
		st.Acquired += t.slots[i].acquired.Load()
		st.Contended += t.slots[i].contended.Load()
	}
	return st
}
