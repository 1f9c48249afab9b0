package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mithuncards/cardpos/internal/domain/entity"
)

func titles(items []entity.InventoryItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Title)
	}
	return out
}

func sampleInventory() []entity.InventoryItem {
	return []entity.InventoryItem{
		{ID: 1, Title: "Wedding Gold Invite"},
		{ID: 2, Title: "Engagement Blue"},
		{ID: 3, Title: "Holy Communion Classic"},
		{ID: 4, Title: "Baptism Dove"},
		{ID: 5, Title: "Plain Card"},
	}
}

func TestParseSubtype(t *testing.T) {
	assert.Equal(t, SubtypeWedding, ParseSubtype("wedding"))
	assert.Equal(t, SubtypeWedding, ParseSubtype("WEDDING"))
	assert.Equal(t, SubtypeHolyCommunion, ParseSubtype("holy-communion"))
	assert.Equal(t, Subtype(""), ParseSubtype("birthday"))
	assert.Equal(t, Subtype(""), ParseSubtype(""))
}

func TestMatchesIsCaseInsensitive(t *testing.T) {
	assert.True(t, SubtypeWedding.Matches("Royal WEDDING set"))
	assert.False(t, SubtypeWedding.Matches("Engagement Blue"))
	assert.True(t, SubtypeHolyCommunion.Matches("First Communion white"))
}

func TestFilterBySubtype(t *testing.T) {
	items := sampleInventory()

	assert.Equal(t, []string{"Wedding Gold Invite"}, titles(FilterBySubtype(items, SubtypeWedding)))
	assert.Equal(t, []string{"Holy Communion Classic"}, titles(FilterBySubtype(items, SubtypeHolyCommunion)))
}

func TestFilterBySubtypeOthersIsComplement(t *testing.T) {
	items := sampleInventory()

	assert.Equal(t, []string{"Plain Card"}, titles(FilterBySubtype(items, SubtypeOthers)))
}

func TestFilterBySubtypeEmptyPassesThrough(t *testing.T) {
	items := sampleInventory()

	assert.Len(t, FilterBySubtype(items, ""), len(items))
}

func TestSearchByTitle(t *testing.T) {
	items := sampleInventory()

	assert.Equal(t, []string{"Engagement Blue"}, titles(SearchByTitle(items, "blue")))
	assert.Len(t, SearchByTitle(items, ""), len(items))
	assert.Empty(t, SearchByTitle(items, "birthday"))
}
