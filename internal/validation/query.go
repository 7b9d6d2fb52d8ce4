package validation

import (
	"net/url"
	"strconv"

	"github.com/osse101/DexBinder_Go/internal/domain"
)

// Query schemas coerce and bound-check list filter parameters. Bad values are
// reported the same way as body violations, keyed by parameter name.

// SlotListQuery is the parsed filter for GET /slots.
type SlotListQuery struct {
	Owned *bool
	From  *int
	To    *int
}

// CatalogListQuery is the parsed filter for GET /dex.
type CatalogListQuery struct {
	Name string
	Type string
	From *int
	To   *int
}

// ParseSlotListQuery parses owned/from/to query parameters.
func ParseSlotListQuery(values url.Values) (SlotListQuery, error) {
	fields := make(map[string]string)
	var q SlotListQuery

	if raw := values.Get("owned"); raw != "" {
		owned, err := strconv.ParseBool(raw)
		if err != nil {
			fields["owned"] = "Must be true or false"
		} else {
			q.Owned = &owned
		}
	}
	q.From = parseBound(values.Get("from"), "from", fields)
	q.To = parseBound(values.Get("to"), "to", fields)

	if len(fields) > 0 {
		return SlotListQuery{}, &Error{Fields: fields}
	}
	return q, nil
}

// ParseCatalogListQuery parses name/type/from/to query parameters.
func ParseCatalogListQuery(values url.Values) (CatalogListQuery, error) {
	fields := make(map[string]string)
	q := CatalogListQuery{
		Name: values.Get("name"),
		Type: values.Get("type"),
	}
	q.From = parseBound(values.Get("from"), "from", fields)
	q.To = parseBound(values.Get("to"), "to", fields)

	if len(fields) > 0 {
		return CatalogListQuery{}, &Error{Fields: fields}
	}
	return q, nil
}

// parseBound coerces one inclusive range bound, recording a violation when the
// value is not an integer or falls outside the dex number domain.
func parseBound(raw, name string, fields map[string]string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		fields[name] = "Must be an integer"
		return nil
	}
	if n < domain.MinDexNumber || n > domain.MaxDexNumber {
		fields[name] = "Must be between 1 and 1025"
		return nil
	}
	return &n
}
