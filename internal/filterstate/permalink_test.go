package filterstate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flixhub/internal/catalog"
	"flixhub/pkg/models"
)

func TestPermalink(t *testing.T) {
	assert.Equal(t, "https://example.org/works/ghost-story-movie-live-2020.html",
		Permalink("https://example.org/", "ghost-story-movie-live-2020"))
	assert.Equal(t, "http://localhost:8080/works/-movie-live-unknown.html",
		Permalink("http://localhost:8080", "-movie-live-unknown"))
}

func TestDeepLink_KeepsSpecial(t *testing.T) {
	c := testCodec()
	st := c.Defaults()
	st.Special = "ghibli"
	st.Categories = []string{catalog.AnimeCategory}

	link := c.DeepLink("https://example.org", st, "ponyo-movie-anime-2008")
	assert.Equal(t, "https://example.org/?special=ghibli&work=ponyo-movie-anime-2008", link)

	empty := c.DeepLink("https://example.org", models.FilterState{
		Countries: c.Defaults().Countries, Categories: c.Defaults().Categories, Years: c.Defaults().Years,
	}, "x-movie-live-2000")
	assert.Equal(t, "https://example.org/?work=x-movie-live-2000", empty)
}

func TestWorkIDFromPage(t *testing.T) {
	id, ok := WorkIDFromPage("ponyo-movie-anime-2008.html")
	assert.True(t, ok)
	assert.Equal(t, "ponyo-movie-anime-2008", id)

	_, ok = WorkIDFromPage("ponyo-movie-anime-2008")
	assert.False(t, ok)
	_, ok = WorkIDFromPage(".html")
	assert.False(t, ok)
}
