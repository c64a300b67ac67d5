package locktab

import (
	"errors"
	"sync"
	"testing"
)

func TestNewRWValidatesSlotCount(t *testing.T) {
	if _, err := NewRW(12); !errors.Is(err, ErrSlotCount) {
		t.Fatalf("NewRW(12): got %v, want ErrSlotCount", err)
	}
	tab, err := NewRW(8)
	if err != nil {
		t.Fatalf("NewRW(8): %v", err)
	}
	if tab.Slots() != 8 {
		t.Fatalf("Slots() = %d, want 8", tab.Slots())
	}
}

func TestRWTableReadersShareSlot(t *testing.T) {
	tab, _ := NewRW(4)
	tab.RAcquireFor(9)
	if !tab.TryRAcquireFor(9) {
		t.Fatal("second reader rejected on slot")
	}
	if tab.TryAcquireFor(9) {
		t.Fatal("writer admitted alongside readers")
	}
	tab.RReleaseFor(9)
	tab.RReleaseFor(9)
	if !tab.TryAcquireFor(9) {
		t.Fatal("writer rejected after readers released")
	}
	tab.ReleaseFor(9)
}

func TestRWTableWriterExcludes(t *testing.T) {
	tab, _ := NewRW(4)
	tab.AcquireFor(2)
	if tab.TryRAcquireFor(6) { // 6 & 3 == 2 & 3
		t.Fatal("reader admitted on a write-held aliased slot")
	}
	if !tab.TryRAcquireFor(1) {
		t.Fatal("reader rejected on an independent slot")
	}
	tab.RReleaseFor(1)
	tab.ReleaseFor(2)
}

func TestRWTableConcurrentReadersProgress(t *testing.T) {
	const (
		goroutines = 8
		iterations = 10000
	)
	tab, _ := NewRW(2)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				tab.RAcquireFor(0)
				tab.RReleaseFor(0)
			}
		}()
	}
	wg.Wait()
}

func TestRWTableLockers(t *testing.T) {
	tab, _ := NewRW(4)
	r := tab.RLockerFor(5)
	r.Lock()
	if tab.TryAcquireFor(5) {
		t.Fatal("writer admitted while RLocker held")
	}
	r.Unlock()

	w := tab.LockerFor(5)
	w.Lock()
	if tab.TryRAcquireFor(5) {
		t.Fatal("reader admitted while write Locker held")
	}
	w.Unlock()
}
