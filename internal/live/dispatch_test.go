package live

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flixhub/internal/catalog"
	"flixhub/internal/identity"
	"flixhub/internal/session"
	"flixhub/internal/works"
	"flixhub/pkg/models"
)

func testService() *works.Service {
	svc := works.NewService(works.Options{
		History: identity.NewHistory(identity.NewMemoryBackend()),
		Origin:  "https://flix.example",
	})
	svc.SetCatalog([]*models.Work{
		{ID: "1", Title: "Ghost Story", Type: "movie", Category: "Horror", Year: "2020",
			Countries: models.CountryList(models.Country{Code: "US"})},
		{ID: "2", Title: "The Ghost Ship", Type: "movie", Category: "Horror", Year: "2018",
			Countries: models.CountryList(models.Country{Code: "GB"})},
		{ID: "3", Title: "Spirited Away", Type: "movie", Category: catalog.AnimeCategory, Year: "2001",
			Countries: models.CountryList(models.Country{Code: "US"})},
	})
	return svc
}

type results struct {
	mu   sync.Mutex
	list []works.Result
}

func (r *results) add(res works.Result) {
	r.mu.Lock()
	r.list = append(r.list, res)
	r.mu.Unlock()
}

func (r *results) last() works.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.list[len(r.list)-1]
}

func newTestSession() (*session.Session, *results) {
	rec := &results{}
	return session.New(testService(), session.Options{OnResults: rec.add}), rec
}

func TestDispatch_FilterMessages(t *testing.T) {
	s, rec := newTestSession()

	assert.Empty(t, Dispatch(s, Message{Type: "search", Value: "ghost"}))
	assert.Equal(t, 2, rec.last().Total)

	Dispatch(s, Message{Type: "toggle_country", Values: []string{"US"}})
	assert.Equal(t, 1, rec.last().Total)

	Dispatch(s, Message{Type: "clear_search"})
	Dispatch(s, Message{Type: "select_all_countries"})
	assert.Equal(t, 3, rec.last().Total)

	Dispatch(s, Message{Type: "toggle_category", Value: "Horror"})
	assert.Equal(t, 1, rec.last().Total)

	Dispatch(s, Message{Type: "clear_categories"})
	assert.Equal(t, 0, rec.last().Total)
	Dispatch(s, Message{Type: "select_all_categories"})
	assert.Equal(t, 3, rec.last().Total)

	Dispatch(s, Message{Type: "start_year", Value: "2019"})
	assert.Equal(t, 1, rec.last().Total)
	Dispatch(s, Message{Type: "end_year", Value: "2005"})
	assert.Equal(t, models.YearRange{Start: 2005, End: 2005}, s.State().Years)
}

func TestDispatch_Errors(t *testing.T) {
	s, _ := newTestSession()

	tests := []struct {
		msg  Message
		want string
	}{
		{Message{Type: "start_year", Value: "soon"}, EventError},
		{Message{Type: "special", Value: "pixar"}, EventError},
		{Message{Type: "select_group", Value: "nope"}, EventError},
		{Message{Type: "teleport"}, EventError},
		{Message{Type: "select", Value: "999"}, EventNotFound},
		{Message{Type: "resolve", Value: "nope-movie-live-1999"}, EventNotFound},
		{Message{Type: "load", Value: "work=nope-movie-live-1999"}, EventNotFound},
	}
	for _, tt := range tests {
		evs := Dispatch(s, tt.msg)
		require.Len(t, evs, 1, tt.msg.Type)
		assert.Equal(t, tt.want, evs[0].Type, tt.msg.Type)
		assert.False(t, evs[0].At.IsZero())
	}

	evs := Dispatch(s, Message{Type: "resolve", Value: "nope-movie-live-1999"})
	assert.Equal(t, "nope-movie-live-1999", evs[0].Work)
}

func TestDispatch_SelectAndResolve(t *testing.T) {
	s, _ := newTestSession()

	evs := Dispatch(s, Message{Type: "special", Value: "ghibli"})
	assert.Empty(t, evs)

	evs = Dispatch(s, Message{Type: "select", Value: "3"})
	require.Len(t, evs, 1)
	require.Equal(t, EventSelect, evs[0].Type)
	assert.Equal(t, "https://flix.example/?special=ghibli&work=spirited-away-movie-anime-2001", evs[0].Selection.Link)

	evs = Dispatch(s, Message{Type: "resolve", Value: "ghost-story-movie-live-2020"})
	require.Len(t, evs, 1)
	require.Equal(t, EventResolved, evs[0].Type)
	assert.Equal(t, models.FlexString("1"), evs[0].Resolution.Item.ID)

	evs = Dispatch(s, Message{Type: "load", Value: "search=ghost&work=the-ghost-ship-movie-live-2018"})
	require.Len(t, evs, 1)
	assert.Equal(t, EventResolved, evs[0].Type)
	assert.Equal(t, "ghost", s.State().Search)
}
