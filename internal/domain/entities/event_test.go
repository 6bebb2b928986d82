package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	require.Len(t, catalog, 5)

	paperQuest := catalog.Get("Paper Quest")
	require.NotNil(t, paperQuest)
	assert.True(t, paperQuest.RequiresFile)
	assert.Equal(t, CategoryTechnical, paperQuest.Category)
	assert.Equal(t, 3, paperQuest.MaxTeamMembers)

	for _, e := range catalog {
		assert.GreaterOrEqual(t, e.MaxTeamMembers, 1)
		assert.LessOrEqual(t, e.MaxTeamMembers, 3)
	}
}

func TestCatalogGetUnknown(t *testing.T) {
	assert.Nil(t, DefaultCatalog().Get("Ghost Event"))
}

func TestCatalogNamesIn(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, []string{"Paper Quest", "Hack'n'Hammer", "Byte Fest"}, catalog.NamesIn(CategoryTechnical))
	assert.Equal(t, []string{"Cinephile", "e-sports"}, catalog.NamesIn(CategoryNonTechnical))
	assert.Empty(t, catalog.NamesIn(Category("Sports")))
}

func TestCatalogCategoriesDistinctOrdered(t *testing.T) {
	assert.Equal(t, []Category{CategoryTechnical, CategoryNonTechnical}, DefaultCatalog().Categories())
}

func TestTeamSize(t *testing.T) {
	tests := []struct {
		name string
		reg  Registration
		want int
	}{
		{"solo", Registration{TeamMember1: "A"}, 1},
		{"pair", Registration{TeamMember1: "A", TeamMember2: "B"}, 2},
		{"trio", Registration{TeamMember1: "A", TeamMember2: "B", TeamMember3: "C"}, 3},
		{"gap in slots", Registration{TeamMember1: "A", TeamMember3: "C"}, 2},
		{"empty", Registration{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reg.TeamSize())
		})
	}
}
