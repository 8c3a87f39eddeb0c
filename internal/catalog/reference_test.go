package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultReference(t *testing.T) {
	ref := DefaultReference()

	ghibli, ok := ref.Special("ghibli")
	require.True(t, ok)
	assert.Len(t, ghibli.Titles, 25)
	assert.Equal(t, "スタジオジブリ(映画)", ghibli.PageTitle())
	assert.Contains(t, ghibli.Titles, "Spirited Away")
	assert.Equal(t, AnimeCategory, ghibli.Category)

	conan, ok := ref.Special("conan")
	require.True(t, ok)
	assert.Len(t, conan.Titles, 26)

	_, ok = ref.Special("pixar")
	assert.False(t, ok)

	assert.Len(t, ref.Featured, 19)
	assert.Equal(t, "アメリカ", ref.CountryName("US"))
	assert.Equal(t, "香港", ref.CountryName("HK"))
	assert.Equal(t, "XX", ref.CountryName("XX"))

	codes, ok := ref.GroupCodes("ad-tier-ok")
	require.True(t, ok)
	assert.Len(t, codes, 16)
	_, ok = ref.GroupCodes("missing")
	assert.False(t, ok)
}

func TestLoadReference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reference.yaml")
	content := `
specials:
  - key: pixar
    name: Pixar
    category: Animation
    keywords: [pixar]
    titles:
      - Toy Story
      - Up
featured:
  - Up
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ref, err := LoadReference(path)
	require.NoError(t, err)

	pixar, ok := ref.Special("pixar")
	require.True(t, ok)
	assert.Equal(t, []string{"Toy Story", "Up"}, pixar.Titles)
	assert.Equal(t, []string{"pixar"}, pixar.Keywords)
	assert.Equal(t, []string{"Up"}, ref.Featured)

	_, ok = ref.Special("ghibli")
	assert.False(t, ok, "specials section replaces the defaults")
	// untouched sections keep defaults
	assert.Len(t, ref.CountryCodes(), 36)
}

func TestLoadReference_Errors(t *testing.T) {
	_, err := LoadReference(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("specials: [oops"), 0o644))
	_, err = LoadReference(path)
	assert.Error(t, err)

	ref, err := LoadReference("")
	require.NoError(t, err)
	assert.Len(t, ref.Specials, 4)
}
