package binder

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/DexBinder_Go/internal/concurrency"
	"github.com/osse101/DexBinder_Go/internal/domain"
	"github.com/osse101/DexBinder_Go/internal/logger"
	"github.com/osse101/DexBinder_Go/internal/metrics"
	"github.com/osse101/DexBinder_Go/internal/repository"
)

// Service defines the interface for slot lifecycle operations.
//
// A slot is empty (no current card) or owned (current card present). Replace
// and Clear are the only transitions between the two states, and both archive
// the outgoing card into the slot's history before touching current. History
// is append-only; no operation mutates or removes past entries.
type Service interface {
	Get(ctx context.Context, number int) (*domain.Slot, error)
	List(ctx context.Context, filter repository.SlotFilter) ([]domain.Slot, error)
	Create(ctx context.Context, create domain.SlotCreate) (*domain.Slot, error)
	Replace(ctx context.Context, number int, card domain.CardSnapshot) (*domain.Slot, error)
	Clear(ctx context.Context, number int) error
	PatchMetadata(ctx context.Context, number int, patch domain.SlotMetaPatch) (*domain.Slot, error)
	Seed(ctx context.Context) (int, error)
}

type service struct {
	repo  repository.Slot
	locks *concurrency.SlotLocks
	now   func() time.Time // Injectable for testing
}

// NewService creates a new binder lifecycle service
func NewService(repo repository.Slot) Service {
	return &service{
		repo:  repo,
		locks: concurrency.NewSlotLocks(),
		now:   time.Now,
	}
}

// Get returns a single slot by dex number
func (s *service) Get(ctx context.Context, number int) (*domain.Slot, error) {
	return s.repo.FindByNumber(ctx, number)
}

// List returns slots matching the filter, ascending by dex number
func (s *service) List(ctx context.Context, filter repository.SlotFilter) ([]domain.Slot, error) {
	return s.repo.List(ctx, filter)
}

// Create inserts a new slot. Status is derived from whether an initial
// current card was supplied; the dex number can never be changed afterwards.
func (s *service) Create(ctx context.Context, create domain.SlotCreate) (*domain.Slot, error) {
	log := logger.FromContext(ctx)

	slot := &domain.Slot{
		Number:        create.Number,
		ReferenceName: create.ReferenceName,
		Wishlist:      create.Wishlist,
		Priority:      create.Priority,
		Current:       create.Current,
		History:       []domain.HistoryEntry{},
		Status:        domain.StatusEmpty,
	}
	if slot.Current != nil {
		slot.Status = domain.StatusOwned
	}

	created, err := s.repo.Create(ctx, slot)
	if err != nil {
		return nil, err
	}

	log.Info("Slot created", "number", created.Number, "status", created.Status)
	return created, nil
}

// Replace files a new card into the slot. When a card is already present it
// is archived to history with reason "upgrade" before being overwritten -
// this is the only path that appends upgrade entries. Exactly one entry is
// added per call when a prior current existed, zero when the slot was empty.
func (s *service) Replace(ctx context.Context, number int, card domain.CardSnapshot) (*domain.Slot, error) {
	log := logger.FromContext(ctx)

	// Serialize with other history-appending writes to the same slot
	unlock := s.locks.Lock(number)
	defer unlock()

	slot, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	archived := false
	if slot.Current != nil {
		slot.History = append(slot.History, domain.HistoryEntry{
			ReplacedAt: s.now().UTC(),
			Reason:     domain.ReasonUpgrade,
			Card:       *slot.Current,
		})
		archived = true
	}
	slot.Current = &card
	slot.Status = domain.StatusOwned

	if err := s.repo.Save(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to save replaced slot: %w", err)
	}

	metrics.SlotTransitions.WithLabelValues(metrics.TransitionReplace).Inc()
	log.Info("Slot card replaced", "number", number, "card", card.Name, "archived", archived)
	return slot, nil
}

// Clear removes the current card, archiving it to history with reason
// "remove". Clearing an already-empty slot succeeds without touching
// anything (idempotent).
func (s *service) Clear(ctx context.Context, number int) error {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(number)
	defer unlock()

	slot, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return err
	}

	if slot.Current == nil {
		return nil
	}

	slot.History = append(slot.History, domain.HistoryEntry{
		ReplacedAt: s.now().UTC(),
		Reason:     domain.ReasonRemove,
		Card:       *slot.Current,
	})
	slot.Current = nil
	slot.Status = domain.StatusEmpty

	if err := s.repo.Save(ctx, slot); err != nil {
		return fmt.Errorf("failed to save cleared slot: %w", err)
	}

	metrics.SlotTransitions.WithLabelValues(metrics.TransitionClear).Inc()
	log.Info("Slot cleared", "number", number)
	return nil
}

// PatchMetadata overwrites only the provided metadata fields, never touching
// current or history.
//
// The patch may set status independently of the current card, temporarily
// breaking the owned-iff-current invariant. Existing clients use this as a
// manual correction path, so the behavior is kept; a mismatch is logged.
func (s *service) PatchMetadata(ctx context.Context, number int, patch domain.SlotMetaPatch) (*domain.Slot, error) {
	log := logger.FromContext(ctx)

	slot, err := s.repo.PatchFields(ctx, number, patch)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil && (*patch.Status == domain.StatusOwned) != slot.Owned() {
		log.Warn("Metadata patch set status out of sync with current card",
			"number", number, "status", *patch.Status, "owned", slot.Owned())
	}
	return slot, nil
}

// Seed ensures a slot exists for every dex number. Idempotent: re-running
// never duplicates slots or resets existing current cards and history.
func (s *service) Seed(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	count, err := s.repo.BulkSeed(ctx, domain.MinDexNumber, domain.MaxDexNumber)
	if err != nil {
		return 0, err
	}

	metrics.SlotsSeeded.Add(float64(count))
	log.Info("Binder seeded", "count", count)
	return count, nil
}
