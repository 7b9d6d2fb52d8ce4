package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DexBinder_Go/internal/domain"
	"github.com/osse101/DexBinder_Go/internal/repository"
)

// MockBinderService is a hand-written mock for binder.Service
type MockBinderService struct {
	mock.Mock
}

func (m *MockBinderService) Get(ctx context.Context, number int) (*domain.Slot, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *MockBinderService) List(ctx context.Context, filter repository.SlotFilter) ([]domain.Slot, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Slot), args.Error(1)
}

func (m *MockBinderService) Create(ctx context.Context, create domain.SlotCreate) (*domain.Slot, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *MockBinderService) Replace(ctx context.Context, number int, card domain.CardSnapshot) (*domain.Slot, error) {
	args := m.Called(ctx, number, card)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *MockBinderService) Clear(ctx context.Context, number int) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}

func (m *MockBinderService) PatchMetadata(ctx context.Context, number int, patch domain.SlotMetaPatch) (*domain.Slot, error) {
	args := m.Called(ctx, number, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *MockBinderService) Seed(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockDexService is a hand-written mock for dex.Service
type MockDexService struct {
	mock.Mock
}

func (m *MockDexService) Get(ctx context.Context, number int) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}

func (m *MockDexService) List(ctx context.Context, filter repository.CatalogFilter) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

func (m *MockDexService) Create(ctx context.Context, entry domain.CatalogEntry) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}

func (m *MockDexService) Update(ctx context.Context, number int, patch domain.CatalogEntryPatch) (*domain.CatalogEntry, error) {
	args := m.Called(ctx, number, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CatalogEntry), args.Error(1)
}

func (m *MockDexService) Delete(ctx context.Context, number int) error {
	args := m.Called(ctx, number)
	return args.Error(0)
}
