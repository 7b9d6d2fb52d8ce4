package binder

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DexBinder_Go/internal/domain"
	"github.com/osse101/DexBinder_Go/internal/repository"
)

// MockSlotRepository implements repository.Slot for testing
type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) FindByNumber(ctx context.Context, number int) (*domain.Slot, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *MockSlotRepository) List(ctx context.Context, filter repository.SlotFilter) ([]domain.Slot, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Slot), args.Error(1)
}

func (m *MockSlotRepository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	args := m.Called(ctx, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *MockSlotRepository) BulkSeed(ctx context.Context, from, to int) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockSlotRepository) Save(ctx context.Context, slot *domain.Slot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockSlotRepository) PatchFields(ctx context.Context, number int, patch domain.SlotMetaPatch) (*domain.Slot, error) {
	args := m.Called(ctx, number, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}
