package domain

import "time"

// Slot status values. A slot is owned exactly when it holds a current card;
// the lifecycle service keeps the two in sync (with the metadata-patch
// exception documented on binder.Service.PatchMetadata).
const (
	StatusEmpty = "empty"
	StatusOwned = "owned"
)

// History entry reason codes.
const (
	ReasonUpgrade = "upgrade"
	ReasonRemove  = "remove"
)

// Dex number domain. Fixed; the binder tracks one slot per national dex entry.
const (
	MinDexNumber = 1
	MaxDexNumber = 1025
)

// Priority bounds for a slot's upgrade urgency ranking.
const (
	MinPriority     = 1
	MaxPriority     = 5
	DefaultPriority = 3
)

// Language codes accepted on a card snapshot.
var Languages = []string{"EN", "JP", "KR", "DE", "FR", "ES", "IT", "PT"}

// DefaultLanguage is applied when a snapshot omits the language.
const DefaultLanguage = "EN"

// Condition codes accepted on a card snapshot.
var Conditions = []string{"NM", "LP", "MP", "HP", "DMG"}

// DefaultCondition is applied when a snapshot omits the condition.
const DefaultCondition = "NM"

// MaxNotesLength caps the free-text notes on a card snapshot.
const MaxNotesLength = 500

// CardSnapshot is the immutable record of a physical card. Once a snapshot is
// archived into a slot's history it is never modified.
type CardSnapshot struct {
	Name        string     `json:"cardName"`
	SetCode     string     `json:"setCode"`
	SetName     string     `json:"setName,omitempty"`
	Subset      string     `json:"subset,omitempty"`
	CardNumber  string     `json:"cardNumber,omitempty"`
	Rarity      string     `json:"rarity"`
	Language    string     `json:"language"`
	Condition   string     `json:"condition"`
	Finish      string     `json:"finish,omitempty"`
	IsGraded    bool       `json:"isGraded"`
	Grade       string     `json:"grade,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	AcquiredAt  *time.Time `json:"acquiredAt,omitempty"`
	PricePaid   *float64   `json:"pricePaid,omitempty"`
	MarketPrice *float64   `json:"marketPrice,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// HistoryEntry is an archived former current card with the reason it was
// superseded. History is strictly append-only.
type HistoryEntry struct {
	ReplacedAt time.Time    `json:"replacedAt"`
	Reason     string       `json:"reason"`
	Card       CardSnapshot `json:"card"`
}

// Slot is one national dex number's binder entry: the card currently filed
// there plus every card that previously occupied it.
type Slot struct {
	Number        int            `json:"number"`
	ReferenceName string         `json:"referenceName,omitempty"`
	Status        string         `json:"status"`
	Priority      int            `json:"priority"`
	Wishlist      string         `json:"wishlist,omitempty"`
	Current       *CardSnapshot  `json:"current"`
	History       []HistoryEntry `json:"history"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// Owned reports whether the slot currently holds a card.
func (s *Slot) Owned() bool {
	return s.Current != nil
}

// SlotCreate is the normalized payload for an explicit slot create. A nil
// Current means the slot starts empty.
type SlotCreate struct {
	Number        int
	ReferenceName string
	Wishlist      string
	Priority      int
	Current       *CardSnapshot
}
