package validation

import (
	"time"

	"github.com/osse101/DexBinder_Go/internal/domain"
)

// Request schemas. Each input struct mirrors one JSON payload shape; Parse
// validates it in full, fills defaults, and returns the normalized domain
// value. Parsing is pure - it never touches storage.

// CardSnapshotInput is the wire shape of a card snapshot.
type CardSnapshotInput struct {
	Name        string     `json:"cardName" validate:"required"`
	SetCode     string     `json:"setCode" validate:"required"`
	SetName     string     `json:"setName"`
	Subset      string     `json:"subset"`
	CardNumber  string     `json:"cardNumber"`
	Rarity      string     `json:"rarity" validate:"required"`
	Language    string     `json:"language" validate:"omitempty,oneof=EN JP KR DE FR ES IT PT"`
	Condition   string     `json:"condition" validate:"omitempty,oneof=NM LP MP HP DMG"`
	Finish      string     `json:"finish"`
	IsGraded    *bool      `json:"isGraded"`
	Grade       string     `json:"grade"`
	ImageURL    string     `json:"imageUrl" validate:"omitempty,url"`
	AcquiredAt  *time.Time `json:"acquiredAt"`
	PricePaid   *float64   `json:"pricePaid" validate:"omitempty,gte=0"`
	MarketPrice *float64   `json:"marketPrice" validate:"omitempty,gte=0"`
	Notes       string     `json:"notes" validate:"omitempty,max=500"`
}

// normalize converts a validated input into the domain value, applying
// defaults for language, condition, and grading.
func (in *CardSnapshotInput) normalize() domain.CardSnapshot {
	card := domain.CardSnapshot{
		Name:        in.Name,
		SetCode:     in.SetCode,
		SetName:     in.SetName,
		Subset:      in.Subset,
		CardNumber:  in.CardNumber,
		Rarity:      in.Rarity,
		Language:    in.Language,
		Condition:   in.Condition,
		Finish:      in.Finish,
		Grade:       in.Grade,
		ImageURL:    in.ImageURL,
		AcquiredAt:  in.AcquiredAt,
		PricePaid:   in.PricePaid,
		MarketPrice: in.MarketPrice,
		Notes:       in.Notes,
	}
	if card.Language == "" {
		card.Language = domain.DefaultLanguage
	}
	if card.Condition == "" {
		card.Condition = domain.DefaultCondition
	}
	if in.IsGraded != nil {
		card.IsGraded = *in.IsGraded
	}
	return card
}

// ParseCardSnapshot validates a standalone card snapshot payload.
func ParseCardSnapshot(in *CardSnapshotInput) (domain.CardSnapshot, error) {
	if err := check(in); err != nil {
		return domain.CardSnapshot{}, err
	}
	return in.normalize(), nil
}

// CreateSlotInput is the wire shape of an explicit slot create.
type CreateSlotInput struct {
	Number        int                `json:"number" validate:"required,min=1,max=1025"`
	ReferenceName string             `json:"referenceName"`
	Wishlist      string             `json:"wishlist"`
	Priority      *int               `json:"priority" validate:"omitnil,min=1,max=5"`
	Current       *CardSnapshotInput `json:"current"`
}

// ParseCreateSlot validates a slot create payload. A nil current is valid and
// means the slot starts empty; a present current must satisfy the full card
// snapshot contract.
func ParseCreateSlot(in *CreateSlotInput) (domain.SlotCreate, error) {
	if err := check(in); err != nil {
		return domain.SlotCreate{}, err
	}

	out := domain.SlotCreate{
		Number:        in.Number,
		ReferenceName: in.ReferenceName,
		Wishlist:      in.Wishlist,
		Priority:      domain.DefaultPriority,
	}
	if in.Priority != nil {
		out.Priority = *in.Priority
	}
	if in.Current != nil {
		card := in.Current.normalize()
		out.Current = &card
	}
	return out, nil
}

// ReplaceCurrentInput is the wire shape of a replace/upgrade request.
type ReplaceCurrentInput struct {
	Current *CardSnapshotInput `json:"current" validate:"required"`
}

// ParseReplaceCurrent validates a replace payload; the incoming card is
// mandatory and must satisfy the card snapshot contract.
func ParseReplaceCurrent(in *ReplaceCurrentInput) (domain.CardSnapshot, error) {
	if err := check(in); err != nil {
		return domain.CardSnapshot{}, err
	}
	return in.Current.normalize(), nil
}

// PatchMetaInput is the wire shape of a metadata patch. Every field is
// optional; absent fields are left untouched. An empty patch is valid.
type PatchMetaInput struct {
	Wishlist      *string `json:"wishlist"`
	Priority      *int    `json:"priority" validate:"omitnil,min=1,max=5"`
	Status        *string `json:"status" validate:"omitnil,oneof=empty owned"`
	ReferenceName *string `json:"referenceName"`
}

// ParsePatchMeta validates a metadata patch payload.
func ParsePatchMeta(in *PatchMetaInput) (domain.SlotMetaPatch, error) {
	if err := check(in); err != nil {
		return domain.SlotMetaPatch{}, err
	}
	return domain.SlotMetaPatch{
		Wishlist:      in.Wishlist,
		Priority:      in.Priority,
		Status:        in.Status,
		ReferenceName: in.ReferenceName,
	}, nil
}

// CreateCatalogEntryInput is the wire shape of a catalog entry create.
type CreateCatalogEntryInput struct {
	Number     int      `json:"number" validate:"required,min=1,max=1025"`
	Name       string   `json:"name" validate:"required"`
	Types      []string `json:"types" validate:"omitempty,max=2,dive,required"`
	Generation *int     `json:"generation" validate:"omitnil,min=1,max=9"`
	SpriteURL  string   `json:"spriteUrl" validate:"omitempty,url"`
}

// ParseCreateCatalogEntry validates a catalog entry create payload.
func ParseCreateCatalogEntry(in *CreateCatalogEntryInput) (domain.CatalogEntry, error) {
	if err := check(in); err != nil {
		return domain.CatalogEntry{}, err
	}
	entry := domain.CatalogEntry{
		Number:     in.Number,
		Name:       in.Name,
		Types:      in.Types,
		Generation: in.Generation,
		SpriteURL:  in.SpriteURL,
	}
	if entry.Types == nil {
		entry.Types = []string{}
	}
	return entry, nil
}

// UpdateCatalogEntryInput is the partial counterpart of the create schema.
// The dex number is taken from the URL and cannot be changed.
type UpdateCatalogEntryInput struct {
	Name       *string  `json:"name" validate:"omitnil,min=1"`
	Types      []string `json:"types" validate:"omitempty,max=2,dive,required"`
	Generation *int     `json:"generation" validate:"omitnil,min=1,max=9"`
	SpriteURL  *string  `json:"spriteUrl" validate:"omitnil,url"`
}

// ParseUpdateCatalogEntry validates a catalog entry update payload.
func ParseUpdateCatalogEntry(in *UpdateCatalogEntryInput) (domain.CatalogEntryPatch, error) {
	if err := check(in); err != nil {
		return domain.CatalogEntryPatch{}, err
	}
	return domain.CatalogEntryPatch{
		Name:       in.Name,
		Types:      in.Types,
		Generation: in.Generation,
		SpriteURL:  in.SpriteURL,
	}, nil
}
