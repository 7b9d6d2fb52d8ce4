package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DexBinder_Go/internal/domain"
	"github.com/osse101/DexBinder_Go/internal/repository"
)

// CatalogRepository implements the catalog reference repository for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const catalogColumns = `number, name, types, generation, sprite_url, created_at, updated_at`

// Get returns the entry for a dex number
func (r *CatalogRepository) Get(ctx context.Context, number int) (*domain.CatalogEntry, error) {
	query := fmt.Sprintf(`SELECT %s FROM catalog_entries WHERE number = $1`, catalogColumns)
	entry, err := scanCatalogEntry(r.db.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get catalog entry %d: %w", number, err)
	}
	return entry, nil
}

// List returns entries matching the filter, ascending by dex number
func (r *CatalogRepository) List(ctx context.Context, filter repository.CatalogFilter) ([]domain.CatalogEntry, error) {
	var conditions []string
	var args []interface{}

	if filter.Name != "" {
		args = append(args, "%"+escapeLike(filter.Name)+"%")
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("$%d = ANY(types)", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("number >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("number <= $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM catalog_entries`, catalogColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY number ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.CatalogEntry{}
	for rows.Next() {
		entry, err := scanCatalogEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}
	return entries, nil
}

// Create inserts a new catalog entry
func (r *CatalogRepository) Create(ctx context.Context, entry *domain.CatalogEntry) (*domain.CatalogEntry, error) {
	types := entry.Types
	if types == nil {
		types = []string{}
	}

	query := fmt.Sprintf(`
		INSERT INTO catalog_entries (number, name, types, generation, sprite_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, catalogColumns)

	created, err := scanCatalogEntry(r.db.QueryRow(ctx, query,
		entry.Number, entry.Name, types, entry.Generation, entry.SpriteURL))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEntryExists
		}
		return nil, fmt.Errorf("failed to create catalog entry %d: %w", entry.Number, err)
	}
	return created, nil
}

// Update applies the provided fields to an existing entry
func (r *CatalogRepository) Update(ctx context.Context, number int, patch domain.CatalogEntryPatch) (*domain.CatalogEntry, error) {
	if patch.IsEmpty() {
		return r.Get(ctx, number)
	}

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{number}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.Types != nil {
		addSet("types", patch.Types)
	}
	if patch.Generation != nil {
		addSet("generation", *patch.Generation)
	}
	if patch.SpriteURL != nil {
		addSet("sprite_url", *patch.SpriteURL)
	}

	query := fmt.Sprintf(`UPDATE catalog_entries SET %s WHERE number = $1 RETURNING %s`,
		strings.Join(sets, ", "), catalogColumns)

	entry, err := scanCatalogEntry(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to update catalog entry %d: %w", number, err)
	}
	return entry, nil
}

// Delete removes the entry
func (r *CatalogRepository) Delete(ctx context.Context, number int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM catalog_entries WHERE number = $1`, number)
	if err != nil {
		return fmt.Errorf("failed to delete catalog entry %d: %w", number, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}
	return nil
}

// scanCatalogEntry reads one catalog entry row
func scanCatalogEntry(row pgx.Row) (*domain.CatalogEntry, error) {
	var entry domain.CatalogEntry
	err := row.Scan(&entry.Number, &entry.Name, &entry.Types, &entry.Generation,
		&entry.SpriteURL, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if entry.Types == nil {
		entry.Types = []string{}
	}
	return &entry, nil
}

// escapeLike escapes LIKE pattern metacharacters in user-supplied search text
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
