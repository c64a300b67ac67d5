package locktab

import (
	"fmt"
	"sync"

	"github.com/moontrade/latch/pkg/pmath"
	"github.com/moontrade/latch/pkg/spinlock"
	"golang.org/x/sys/cpu"
)

type rwSlot struct {
	mu spinlock.RWMutex
	_  cpu.CacheLinePad
}

// RWTable is a Table over reader/writer spin locks, for items that are
// read far more often than written. Addressing and aliasing behave exactly
// as in Table.
type RWTable struct {
	slots []rwSlot
	mask  uint64
}

// NewRW returns an RWTable with slotCount slots. slotCount must be a power
// of two.
func NewRW(slotCount int) (*RWTable, error) {
	if !pmath.IsPowerOf2(slotCount) {
		return nil, fmt.Errorf("%w: %d", ErrSlotCount, slotCount)
	}
	return &RWTable{
		slots: make([]rwSlot, slotCount),
		mask:  uint64(slotCount - 1),
	}, nil
}

// Slots returns the table's slot count.
func (t *RWTable) Slots() int {
	return len(t.slots)
}

func (t *RWTable) slotFor(key uint64) *rwSlot {
	return &t.slots[key&t.mask]
}

// AcquireFor write-locks the slot for key.
func (t *RWTable) AcquireFor(key uint64) {
	t.slotFor(key).mu.Lock()
}

// TryAcquireFor attempts to write-lock the slot for key without blocking
// and reports whether it succeeded.
func (t *RWTable) TryAcquireFor(key uint64) bool {
	return t.slotFor(key).mu.TryLock()
}

// ReleaseFor releases the write lock on the slot for key.
func (t *RWTable) ReleaseFor(key uint64) {
	t.slotFor(key).mu.Unlock()
}

// RAcquireFor read-locks the slot for key. Readers of the same slot do not
// block each other.
func (t *RWTable) RAcquireFor(key uint64) {
	t.slotFor(key).mu.RLock()
}

// TryRAcquireFor attempts to read-lock the slot for key without blocking
// and reports whether it succeeded.
func (t *RWTable) TryRAcquireFor(key uint64) bool {
	return t.slotFor(key).mu.TryRLock()
}

// RReleaseFor undoes a single RAcquireFor on the slot for key.
func (t *RWTable) RReleaseFor(key uint64) {
	t.slotFor(key).mu.RUnlock()
}

// LockerFor returns the slot's write lock as a sync.Locker.
func (t *RWTable) LockerFor(key uint64) sync.Locker {
	return &t.slotFor(key).mu
}

// RLockerFor returns the slot's read lock as a sync.Locker.
func (t *RWTable) RLockerFor(key uint64) sync.Locker {
	return t.slotFor(key).mu.RLocker()
}
