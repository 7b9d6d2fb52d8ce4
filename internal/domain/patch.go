package domain

// SlotMetaPatch carries only the metadata fields a patch provided. Nil means
// "leave untouched". Current and history are never reachable through a patch.
type SlotMetaPatch struct {
	Wishlist      *string
	Priority      *int
	Status        *string
	ReferenceName *string
}

// IsEmpty reports whether the patch provides no fields at all.
func (p SlotMetaPatch) IsEmpty() bool {
	return p.Wishlist == nil && p.Priority == nil && p.Status == nil && p.ReferenceName == nil
}

// CatalogEntryPatch carries only the fields a catalog update provided. A nil
// Types slice means the tags were not supplied.
type CatalogEntryPatch struct {
	Name       *string
	Types      []string
	Generation *int
	SpriteURL  *string
}

// IsEmpty reports whether the patch provides no fields at all.
func (p CatalogEntryPatch) IsEmpty() bool {
	return p.Name == nil && p.Types == nil && p.Generation == nil && p.SpriteURL == nil
}
