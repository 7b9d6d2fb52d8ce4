package repository

import (
	"context"

	"github.com/osse101/DexBinder_Go/internal/domain"
)

// SlotFilter narrows a slot listing. Nil fields leave that dimension
// unbounded; From/To are inclusive dex number bounds.
type SlotFilter struct {
	Owned *bool
	From  *int
	To    *int
}

// Slot defines the interface for slot persistence
type Slot interface {
	// FindByNumber returns the slot for a dex number, or domain.ErrSlotNotFound.
	FindByNumber(ctx context.Context, number int) (*domain.Slot, error)

	// List returns slots matching the filter, ascending by dex number.
	List(ctx context.Context, filter SlotFilter) ([]domain.Slot, error)

	// Create inserts a new slot; domain.ErrSlotExists on a duplicate number.
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)

	// BulkSeed inserts a minimal empty slot for every number in [from, to]
	// that does not already exist. Idempotent: existing slots are never
	// touched. Returns the number of slots covered by the range.
	BulkSeed(ctx context.Context, from, to int) (int, error)

	// Save persists the full mutated slot state and refreshes updatedAt.
	Save(ctx context.Context, slot *domain.Slot) error

	// PatchFields applies only the provided metadata fields, leaving current
	// and history untouched. domain.ErrSlotNotFound when the slot is absent.
	PatchFields(ctx context.Context, number int, patch domain.SlotMetaPatch) (*domain.Slot, error)
}
