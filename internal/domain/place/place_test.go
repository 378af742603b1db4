package place

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceInfo(t *testing.T) {
	result := EnrichmentResult{
		Title:    "Gwangjang Market",
		Category: "시장",
		Menu:     []MenuItem{{Name: "Bindaetteok", Price: "5000 KRW"}},
		Reviews:  []string{"Crowded but worth it"},
	}

	t.Run("creates entry with trimmed key", func(t *testing.T) {
		p, err := NewPlaceInfo(" Gwangjang Market ", " Jongno ", "en", result)
		require.NoError(t, err)

		assert.Equal(t, "Gwangjang Market", p.Name)
		assert.Equal(t, "Jongno", p.Address)
		assert.Equal(t, "en", p.Language)
		assert.Equal(t, "시장", p.Category)
		assert.Len(t, p.Menu, 1)
	})

	t.Run("address may be absent", func(t *testing.T) {
		p, err := NewPlaceInfo("Gwangjang Market", "", "en", result)
		require.NoError(t, err)
		assert.Empty(t, p.Address)
	})

	t.Run("requires name and language", func(t *testing.T) {
		_, err := NewPlaceInfo("", "Jongno", "en", result)
		assert.Error(t, err)

		_, err = NewPlaceInfo("Gwangjang Market", "Jongno", "", result)
		assert.Error(t, err)
	})

	t.Run("rejects empty enrichment result", func(t *testing.T) {
		_, err := NewPlaceInfo("Gwangjang Market", "", "en", EnrichmentResult{})
		assert.Error(t, err)
	})
}

func TestPlaceInfo_Overwrite(t *testing.T) {
	p, err := NewPlaceInfo("Cafe Onion", "Seongsu", "en", EnrichmentResult{Title: "Cafe Onion", Category: "카페"})
	require.NoError(t, err)
	version := p.Version

	p.Overwrite("Onion Seongsu", "", []MenuItem{{Name: "Pandoro", Price: "6000 KRW"}}, nil)

	assert.Equal(t, "Onion Seongsu", p.Title)
	assert.Equal(t, "카페", p.Category, "empty fields keep prior values")
	assert.Len(t, p.Menu, 1)
	assert.Equal(t, version+1, p.Version)
}

func TestPlaceInfo_ReplaceMenu(t *testing.T) {
	p, err := NewPlaceInfo("Cafe Onion", "Seongsu", "en", EnrichmentResult{Title: "Cafe Onion"})
	require.NoError(t, err)

	menu := []MenuItem{{Name: "Espresso", Price: "4000 KRW"}}
	p.ReplaceMenu(menu)
	assert.Equal(t, menu, p.Menu)
}

func TestEnrichmentResult_Empty(t *testing.T) {
	assert.True(t, EnrichmentResult{}.Empty())
	assert.False(t, EnrichmentResult{Title: "x"}.Empty())
	assert.False(t, EnrichmentResult{Reviews: []string{"r"}}.Empty())
	assert.False(t, EnrichmentResult{ReferenceURLs: []string{"https://example.com"}}.Empty())
}

func TestNewCategoryTranslation(t *testing.T) {
	tr, err := NewCategoryTranslation(" 한식 ", "Korean food")
	require.NoError(t, err)
	assert.Equal(t, "한식", tr.Korean)
	assert.Equal(t, "Korean food", tr.English)

	_, err = NewCategoryTranslation("", "Korean food")
	assert.Error(t, err)
}

func TestNewRegionTranslation(t *testing.T) {
	tr, err := NewRegionTranslation("Seoul", "서울")
	require.NoError(t, err)
	assert.Equal(t, "Seoul", tr.English)
	assert.Equal(t, "서울", tr.Korean)

	_, err = NewRegionTranslation("Seoul", "")
	assert.Error(t, err)
}
