package dex

import (
	"context"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/DexBinder_Go/internal/domain"
	"github.com/osse101/DexBinder_Go/internal/logger"
	"github.com/osse101/DexBinder_Go/internal/repository"
)

// Service defines the interface for catalog reference data operations.
// Catalog entries are lookup data only; they never participate in slot
// lifecycle, and deleting an entry leaves the matching slot untouched.
type Service interface {
	Get(ctx context.Context, number int) (*domain.CatalogEntry, error)
	List(ctx context.Context, filter repository.CatalogFilter) ([]domain.CatalogEntry, error)
	Create(ctx context.Context, entry domain.CatalogEntry) (*domain.CatalogEntry, error)
	Update(ctx context.Context, number int, patch domain.CatalogEntryPatch) (*domain.CatalogEntry, error)
	Delete(ctx context.Context, number int) error
}

type service struct {
	repo   repository.Catalog
	folder cases.Caser
}

// NewService creates a new catalog reference service
func NewService(repo repository.Catalog) Service {
	return &service{
		repo:   repo,
		folder: cases.Fold(),
	}
}

// Get returns a single entry by dex number
func (s *service) Get(ctx context.Context, number int) (*domain.CatalogEntry, error) {
	return s.repo.Get(ctx, number)
}

// List returns entries matching the filter. The type tag is folded the same
// way Create folds stored tags, so tag matching is case-insensitive end to
// end; name matching is handled case-insensitively by the repository.
func (s *service) List(ctx context.Context, filter repository.CatalogFilter) ([]domain.CatalogEntry, error) {
	if filter.Type != "" {
		filter.Type = s.foldTag(filter.Type)
	}
	return s.repo.List(ctx, filter)
}

// Create inserts a new entry with normalized type tags
func (s *service) Create(ctx context.Context, entry domain.CatalogEntry) (*domain.CatalogEntry, error) {
	log := logger.FromContext(ctx)

	entry.Types = s.foldTags(entry.Types)
	created, err := s.repo.Create(ctx, &entry)
	if err != nil {
		return nil, err
	}

	log.Info("Catalog entry created", "number", created.Number, "name", created.Name)
	return created, nil
}

// Update applies the provided fields, normalizing type tags when supplied
func (s *service) Update(ctx context.Context, number int, patch domain.CatalogEntryPatch) (*domain.CatalogEntry, error) {
	if patch.Types != nil {
		patch.Types = s.foldTags(patch.Types)
	}
	return s.repo.Update(ctx, number, patch)
}

// Delete removes an entry
func (s *service) Delete(ctx context.Context, number int) error {
	log := logger.FromContext(ctx)

	if err := s.repo.Delete(ctx, number); err != nil {
		return err
	}

	log.Info("Catalog entry deleted", "number", number)
	return nil
}

// foldTag case-folds one type tag for storage and matching. Unicode folding
// rather than ToLower so tags compare equal regardless of source casing.
func (s *service) foldTag(tag string) string {
	return s.folder.String(strings.TrimSpace(tag))
}

func (s *service) foldTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	folded := make([]string, len(tags))
	for i, tag := range tags {
		folded[i] = s.foldTag(tag)
	}
	return folded
}
