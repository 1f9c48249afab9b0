package catalog

import (
	"strings"

	"github.com/mithuncards/cardpos/internal/domain/entity"
)

// Subtype names a subcategory of invitation cards. Items are assigned
// by case-insensitive substring match on the title; SubtypeOthers is
// the complement of all keyword matches. The inventory-browsing and
// order-building flows share this partition.
type Subtype string

const (
	SubtypeWedding       Subtype = "wedding"
	SubtypeEngagement    Subtype = "engagement"
	SubtypeBaptism       Subtype = "baptism"
	SubtypeHolyCommunion Subtype = "holy-communion"
	SubtypeOthers        Subtype = "others"
)

// keyword returns the title substring a subtype matches on.
func (s Subtype) keyword() string {
	switch s {
	case SubtypeWedding:
		return "wedding"
	case SubtypeEngagement:
		return "engagement"
	case SubtypeBaptism:
		return "baptism"
	case SubtypeHolyCommunion:
		return "communion"
	}
	return ""
}

// Subtypes lists all recognized subtypes in display order.
func Subtypes() []Subtype {
	return []Subtype{SubtypeWedding, SubtypeEngagement, SubtypeBaptism, SubtypeHolyCommunion, SubtypeOthers}
}

// ParseSubtype normalizes a raw path/query value to a Subtype. The
// empty string means no filtering; any other unknown value also maps
// to the empty subtype so the full list passes through unchanged.
func ParseSubtype(raw string) Subtype {
	s := Subtype(strings.ToLower(raw))
	switch s {
	case SubtypeWedding, SubtypeEngagement, SubtypeBaptism, SubtypeHolyCommunion, SubtypeOthers:
		return s
	}
	return ""
}

// Matches reports whether a title belongs to the subtype.
func (s Subtype) Matches(title string) bool {
	t := strings.ToLower(title)
	if s == SubtypeOthers {
		for _, other := range Subtypes() {
			if kw := other.keyword(); kw != "" && strings.Contains(t, kw) {
				return false
			}
		}
		return true
	}
	kw := s.keyword()
	return kw != "" && strings.Contains(t, kw)
}

// FilterBySubtype partitions the inventory list down to the items
// matching the subtype. An empty subtype returns the list unchanged.
func FilterBySubtype(items []entity.InventoryItem, subtype Subtype) []entity.InventoryItem {
	if subtype == "" {
		return items
	}
	out := make([]entity.InventoryItem, 0, len(items))
	for _, item := range items {
		if subtype.Matches(item.Title) {
			out = append(out, item)
		}
	}
	return out
}

// SearchByTitle narrows a list by case-insensitive substring match on
// the title. An empty query returns the list unchanged.
func SearchByTitle(items []entity.InventoryItem, query string) []entity.InventoryItem {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	out := make([]entity.InventoryItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), q) {
			out = append(out, item)
		}
	}
	return out
}
