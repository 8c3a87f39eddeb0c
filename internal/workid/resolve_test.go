package workid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flixhub/internal/identity"
	"flixhub/pkg/models"
)

func TestParse(t *testing.T) {
	p, ok := Parse("ghost-story-movie-live-2020")
	require.True(t, ok)
	assert.Equal(t, Parsed{Title: "ghost-story", Genre: GenreMovie, MediaKind: MediaLive, Year: "2020"}, p)

	p, ok = Parse("-movie-anime-unknown")
	require.True(t, ok)
	assert.Equal(t, "", p.Title)
	assert.Equal(t, MediaAnime, p.MediaKind)

	p, ok = Parse("twin-movie-live-2001-a")
	require.True(t, ok)
	assert.Equal(t, Parsed{Title: "twin", Genre: GenreMovie, MediaKind: MediaLive, Year: "2001", Suffix: "a"}, p)

	p, ok = Parse("same-tv-anime-1999-27")
	require.True(t, ok)
	assert.Equal(t, "27", p.Suffix)
	assert.Equal(t, GenreTV, p.Genre)

	for _, id := range []string{"nope", "ghost-story-film-live-2020", "ghost-story-movie-cgi-2020", "a-b-c-d-e"} {
		_, ok = Parse(id)
		assert.False(t, ok, id)
	}
}

func resolveCatalog() []*models.Work {
	return []*models.Work{
		{ID: "1", Title: "Ghost Story", Year: "2020", Category: "Horror", Type: "movie"},
		{ID: "2", Title: "Ghost Story", Year: "2020", Category: "Horror", Type: "series"},
		{ID: "3", Title: "Spirited Away", Year: "2001", Category: "日本の映画(アニメ)", Type: "movie"},
		{ID: "4", Title: "Twin", Year: "2001", Category: "Drama", Type: "movie"},
		{ID: "5", Title: "Twin", Year: "2001", Category: "Drama", Type: "movie"},
	}
}

func TestResolve_ByReconstruction(t *testing.T) {
	catalog := resolveCatalog()
	g := NewGenerator(identity.NewHistory(identity.NewMemoryBackend()))
	ix := NewIndex()

	w, err := g.Resolve("spirited-away-movie-anime-2001", catalog, ix)
	require.NoError(t, err)
	assert.Equal(t, models.FlexString("3"), w.ID)

	// indexed for next time
	cached, ok := ix.Lookup("spirited-away-movie-anime-2001")
	require.True(t, ok)
	assert.Same(t, w, cached)
}

func TestResolve_SuffixedAndGenreVariants(t *testing.T) {
	catalog := resolveCatalog()
	g := NewGenerator(identity.NewHistory(identity.NewMemoryBackend()))
	ix := NewIndex()

	w, err := g.Resolve("ghost-story-tv-live-2020", catalog, ix)
	require.NoError(t, err)
	assert.Equal(t, models.FlexString("2"), w.ID)

	w, err = g.Resolve("twin-movie-live-2001-a", catalog, ix)
	require.NoError(t, err)
	assert.Equal(t, models.FlexString("5"), w.ID)
}

func TestResolve_NotFound(t *testing.T) {
	catalog := resolveCatalog()
	g := NewGenerator(identity.NewHistory(identity.NewMemoryBackend()))

	_, err := g.Resolve("left-the-catalog-movie-live-1999", catalog, NewIndex())
	assert.ErrorIs(t, err, ErrWorkNotFound)

	_, err = g.Resolve("garbage", catalog, NewIndex())
	assert.ErrorIs(t, err, ErrWorkNotFound)

	_, err = g.Resolve("ghost-story-film-live-2020", catalog, NewIndex())
	assert.ErrorIs(t, err, ErrWorkNotFound)

	_, err = g.Resolve("ghost-story-movie-live-1999", catalog, NewIndex())
	assert.ErrorIs(t, err, ErrWorkNotFound)
}

func TestResolve_IndexHit(t *testing.T) {
	w := &models.Work{ID: "x", Title: "Anything"}
	ix := NewIndex()
	ix.Put("custom-id", w)

	got, err := NewGenerator(identity.NewHistory(identity.NewMemoryBackend())).Resolve("custom-id", nil, ix)
	require.NoError(t, err)
	assert.Same(t, w, got)
}
