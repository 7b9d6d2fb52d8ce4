package domain

import "time"

// Generation bounds for catalog entries.
const (
	MinGeneration = 1
	MaxGeneration = 9
)

// MaxCatalogTypes caps the type tags on a catalog entry.
const MaxCatalogTypes = 2

// CatalogEntry is reference data for one dex number: the species name and
// lookup metadata. It is independent of slot lifecycle; deleting an entry
// never touches the matching slot.
type CatalogEntry struct {
	Number     int       `json:"number"`
	Name       string    `json:"name"`
	Types      []string  `json:"types"`
	Generation *int      `json:"generation,omitempty"`
	SpriteURL  string    `json:"spriteUrl,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
