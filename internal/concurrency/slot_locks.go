package concurrency

import "sync"

// SlotLocks serializes read-modify-write cycles per dex number. Replace and
// Clear both load a slot, append to its history, and write it back; without
// per-slot locking two concurrent calls could drop a history entry.
type SlotLocks struct {
	locks sync.Map // int -> *sync.Mutex
}

// NewSlotLocks creates a new per-slot lock set
func NewSlotLocks() *SlotLocks {
	return &SlotLocks{}
}

// Lock acquires the mutex for a dex number, creating it on first use.
// The returned function releases it.
func (s *SlotLocks) Lock(number int) func() {
	lock, _ := s.locks.LoadOrStore(number, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
