package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Binder Slots
-- One row per national dex number. The card currently filed in the slot and
-- the append-only history of superseded cards are stored as JSONB documents.
CREATE TABLE IF NOT EXISTS binder_slots (
    number INTEGER PRIMARY KEY CHECK (number BETWEEN 1 AND 1025),
    reference_name TEXT NOT NULL DEFAULT '',
    status VARCHAR(10) NOT NULL DEFAULT 'empty' CHECK (status IN ('empty', 'owned')),
    priority INTEGER NOT NULL DEFAULT 3 CHECK (priority BETWEEN 1 AND 5),
    wishlist TEXT NOT NULL DEFAULT '',
    current_card JSONB,
    history JSONB NOT NULL DEFAULT '[]'::jsonb,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Owned/empty listings filter on whether a current card is present.
CREATE INDEX IF NOT EXISTS idx_binder_slots_owned ON binder_slots ((current_card IS NOT NULL));

-- Catalog Reference Data
-- Species lookup table, independent of slot lifecycle.
CREATE TABLE IF NOT EXISTS catalog_entries (
    number INTEGER PRIMARY KEY CHECK (number BETWEEN 1 AND 1025),
    name VARCHAR(100) NOT NULL,
    types TEXT[] NOT NULL DEFAULT '{}',
    generation INTEGER CHECK (generation BETWEEN 1 AND 9),
    sprite_url TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_catalog_entries_name ON catalog_entries (LOWER(name));
`
