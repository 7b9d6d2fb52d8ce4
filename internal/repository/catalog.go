package repository

import (
	"context"

	"github.com/osse101/DexBinder_Go/internal/domain"
)

// CatalogFilter narrows a catalog entry listing. Name is a case-insensitive
// substring match, Type an exact tag match; From/To are inclusive dex bounds.
type CatalogFilter struct {
	Name string
	Type string
	From *int
	To   *int
}

// Catalog defines the interface for catalog reference data persistence
type Catalog interface {
	// Get returns the entry for a dex number, or domain.ErrEntryNotFound.
	Get(ctx context.Context, number int) (*domain.CatalogEntry, error)

	// List returns entries matching the filter, ascending by dex number.
	List(ctx context.Context, filter CatalogFilter) ([]domain.CatalogEntry, error)

	// Create inserts a new entry; domain.ErrEntryExists on a duplicate number.
	Create(ctx context.Context, entry *domain.CatalogEntry) (*domain.CatalogEntry, error)

	// Update applies the provided fields; domain.ErrEntryNotFound when absent.
	Update(ctx context.Context, number int, patch domain.CatalogEntryPatch) (*domain.CatalogEntry, error)

	// Delete removes the entry; domain.ErrEntryNotFound when absent.
	Delete(ctx context.Context, number int) error
}
