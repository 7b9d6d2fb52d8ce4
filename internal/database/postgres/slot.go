package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DexBinder_Go/internal/domain"
	"github.com/osse101/DexBinder_Go/internal/repository"
)

// SlotRepository implements the slot repository for PostgreSQL
type SlotRepository struct {
	db *pgxpool.Pool
}

// NewSlotRepository creates a new SlotRepository
func NewSlotRepository(db *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{db: db}
}

const slotColumns = `number, reference_name, status, priority, wishlist, current_card, history, created_at, updated_at`

// FindByNumber returns the slot for a dex number
func (r *SlotRepository) FindByNumber(ctx context.Context, number int) (*domain.Slot, error) {
	query := fmt.Sprintf(`SELECT %s FROM binder_slots WHERE number = $1`, slotColumns)
	slot, err := scanSlot(r.db.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot %d: %w", number, err)
	}
	return slot, nil
}

// List returns slots matching the filter, ascending by dex number
func (r *SlotRepository) List(ctx context.Context, filter repository.SlotFilter) ([]domain.Slot, error) {
	var conditions []string
	var args []interface{}

	if filter.Owned != nil {
		if *filter.Owned {
			conditions = append(conditions, "current_card IS NOT NULL")
		} else {
			conditions = append(conditions, "current_card IS NULL")
		}
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("number >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("number <= $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM binder_slots`, slotColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY number ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer rows.Close()

	slots := []domain.Slot{}
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan slot: %w", err)
		}
		slots = append(slots, *slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read slot rows: %w", err)
	}
	return slots, nil
}

// Create inserts a new slot
func (r *SlotRepository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	currentJSON, historyJSON, err := marshalSlotDocuments(slot)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		INSERT INTO binder_slots (number, reference_name, status, priority, wishlist, current_card, history)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, slotColumns)

	created, err := scanSlot(r.db.QueryRow(ctx, query,
		slot.Number, slot.ReferenceName, slot.Status, slot.Priority, slot.Wishlist, currentJSON, historyJSON))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrSlotExists
		}
		return nil, fmt.Errorf("failed to create slot %d: %w", slot.Number, err)
	}
	return created, nil
}

// BulkSeed inserts a minimal empty slot for every absent number in [from, to].
// Existing slots keep their current card, history, and metadata untouched.
func (r *SlotRepository) BulkSeed(ctx context.Context, from, to int) (int, error) {
	query := `
		INSERT INTO binder_slots (number)
		SELECT generate_series($1::int, $2::int)
		ON CONFLICT (number) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, from, to); err != nil {
		return 0, fmt.Errorf("failed to seed slots %d..%d: %w", from, to, err)
	}
	return to - from + 1, nil
}

// Save persists the full mutated slot state and refreshes updated_at
func (r *SlotRepository) Save(ctx context.Context, slot *domain.Slot) error {
	currentJSON, historyJSON, err := marshalSlotDocuments(slot)
	if err != nil {
		return err
	}

	query := `
		UPDATE binder_slots
		SET reference_name = $2, status = $3, priority = $4, wishlist = $5,
		    current_card = $6, history = $7, updated_at = NOW()
		WHERE number = $1`

	tag, err := r.db.Exec(ctx, query,
		slot.Number, slot.ReferenceName, slot.Status, slot.Priority, slot.Wishlist, currentJSON, historyJSON)
	if err != nil {
		return fmt.Errorf("failed to save slot %d: %w", slot.Number, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSlotNotFound
	}
	return nil
}

// PatchFields applies only the provided metadata fields
func (r *SlotRepository) PatchFields(ctx context.Context, number int, patch domain.SlotMetaPatch) (*domain.Slot, error) {
	if patch.IsEmpty() {
		return r.FindByNumber(ctx, number)
	}

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{number}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Wishlist != nil {
		addSet("wishlist", *patch.Wishlist)
	}
	if patch.Priority != nil {
		addSet("priority", *patch.Priority)
	}
	if patch.Status != nil {
		addSet("status", *patch.Status)
	}
	if patch.ReferenceName != nil {
		addSet("reference_name", *patch.ReferenceName)
	}

	query := fmt.Sprintf(`UPDATE binder_slots SET %s WHERE number = $1 RETURNING %s`,
		strings.Join(sets, ", "), slotColumns)

	slot, err := scanSlot(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to patch slot %d: %w", number, err)
	}
	return slot, nil
}

// scanSlot reads one slot row, decoding the JSONB card documents
func scanSlot(row pgx.Row) (*domain.Slot, error) {
	var slot domain.Slot
	var currentData, historyData []byte

	err := row.Scan(&slot.Number, &slot.ReferenceName, &slot.Status, &slot.Priority,
		&slot.Wishlist, &currentData, &historyData, &slot.CreatedAt, &slot.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if currentData != nil {
		var card domain.CardSnapshot
		if err := json.Unmarshal(currentData, &card); err != nil {
			return nil, fmt.Errorf("failed to unmarshal current card: %w", err)
		}
		slot.Current = &card
	}

	slot.History = []domain.HistoryEntry{}
	if historyData != nil {
		if err := json.Unmarshal(historyData, &slot.History); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history: %w", err)
		}
	}
	return &slot, nil
}

// marshalSlotDocuments encodes the JSONB card documents for a write. A nil
// current card is stored as SQL NULL, never the JSON literal null.
func marshalSlotDocuments(slot *domain.Slot) ([]byte, []byte, error) {
	var currentJSON []byte
	if slot.Current != nil {
		data, err := json.Marshal(slot.Current)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal current card: %w", err)
		}
		currentJSON = data
	}

	history := slot.History
	if history == nil {
		history = []domain.HistoryEntry{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal history: %w", err)
	}
	return currentJSON, historyJSON, nil
}
