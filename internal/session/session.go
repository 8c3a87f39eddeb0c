// Package session owns one user's FilterState and re-runs the search on
// every change.
package session

import (
	"errors"
	"slices"
	"sync"
	"time"

	"flixhub/internal/filterstate"
	"flixhub/internal/works"
	"flixhub/pkg/models"
)

const DefaultDebounce = 300 * time.Millisecond

var (
	ErrUnknownGroup   = errors.New("unknown country group")
	ErrUnknownSpecial = errors.New("unknown special category")
)

// Backend is the catalog side of a session. *works.Service implements it.
type Backend interface {
	Defaults() models.FilterState
	Decode(query string) filterstate.Decoded
	Encode(st models.FilterState) string
	Search(st models.FilterState) works.Result
	Select(sourceID string, st models.FilterState) (works.Selection, error)
	Resolve(workID string) (works.Resolution, error)
	GroupCodes(key string) ([]string, bool)
	Special(key string) (models.SpecialCategory, bool)
}

type Options struct {
	Debounce  time.Duration
	OnResults func(works.Result)
}

// Session is safe for concurrent use. Results are delivered through
// OnResults, in the order the changes were applied.
type Session struct {
	mu        sync.Mutex
	backend   Backend
	state     models.FilterState
	debounce  *Debouncer
	onResults func(works.Result)
}

func New(backend Backend, opts Options) *Session {
	onResults := opts.OnResults
	if onResults == nil {
		onResults = func(works.Result) {}
	}
	return &Session{
		backend:   backend,
		state:     backend.Defaults().Clone(),
		debounce:  NewDebouncer(opts.Debounce),
		onResults: onResults,
	}
}

// State returns a copy of the current state.
func (s *Session) State() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Query returns the canonical query of the current state.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Encode(s.state)
}

// Loaded is the outcome of Load. Work is the deep-linked id, if any, and
// Resolution its record once resolved.
type Loaded struct {
	Work       string
	Resolution *works.Resolution
}

// Load replaces the state with the one decoded from query and runs the
// search. When the query deep-links a work, it is resolved; an unknown id
// yields workid.ErrWorkNotFound with the filtered results still delivered.
func (s *Session) Load(query string) (Loaded, error) {
	d := s.backend.Decode(query)

	s.mu.Lock()
	s.debounce.Cancel()
	s.state = d.State
	s.runLocked()
	s.mu.Unlock()

	out := Loaded{Work: d.Work}
	if d.Work == "" {
		return out, nil
	}
	res, err := s.backend.Resolve(d.Work)
	if err != nil {
		return out, err
	}
	out.Resolution = &res
	return out, nil
}

// Refresh re-runs the search, e.g. after the catalog was reloaded.
func (s *Session) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runLocked()
}

// SetSearch updates the query and runs the search once input settles.
func (s *Session) SetSearch(q string) {
	s.mu.Lock()
	s.state.Search = q
	s.mu.Unlock()

	s.debounce.Trigger(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.runLocked()
	})
}

// ClearSearch empties the query and runs immediately.
func (s *Session) ClearSearch() {
	s.update(func(st *models.FilterState) {
		st.Search = ""
	})
}

func (s *Session) ToggleCountry(code string) {
	s.update(func(st *models.FilterState) {
		st.Countries = toggle(st.Countries, code)
	})
}

func (s *Session) SelectAllCountries() {
	all := s.backend.Defaults().Countries
	s.update(func(st *models.FilterState) {
		st.Countries = all
		st.Special = ""
	})
}

func (s *Session) ClearCountries() {
	s.update(func(st *models.FilterState) {
		st.Countries = []string{}
		st.Special = ""
	})
}

// SelectCountryGroup selects every country of a group in addition to the
// current selection.
func (s *Session) SelectCountryGroup(key string) error {
	codes, ok := s.backend.GroupCodes(key)
	if !ok {
		return ErrUnknownGroup
	}
	s.update(func(st *models.FilterState) {
		for _, c := range codes {
			if !slices.Contains(st.Countries, c) {
				st.Countries = append(st.Countries, c)
			}
		}
	})
	return nil
}

func (s *Session) ToggleCategory(name string) {
	s.update(func(st *models.FilterState) {
		st.Categories = toggle(st.Categories, name)
	})
}

func (s *Session) SelectAllCategories() {
	all := s.backend.Defaults().Categories
	s.update(func(st *models.FilterState) {
		st.Categories = all
		st.Special = ""
	})
}

func (s *Session) ClearCategories() {
	s.update(func(st *models.FilterState) {
		st.Categories = []string{}
		st.Special = ""
	})
}

// SetYearStart moves the end along when the new start passes it.
func (s *Session) SetYearStart(year int) {
	s.update(func(st *models.FilterState) {
		st.Years.Start = year
		if st.Years.End < year {
			st.Years.End = year
		}
	})
}

// SetYearEnd moves the start along when the new end precedes it.
func (s *Session) SetYearEnd(year int) {
	s.update(func(st *models.FilterState) {
		st.Years.End = year
		if st.Years.Start > year {
			st.Years.Start = year
		}
	})
}

// SetSpecial restricts the results to a curated list and narrows the
// categories to the list's category. An empty key clears it.
func (s *Session) SetSpecial(key string) error {
	if key == "" {
		s.update(func(st *models.FilterState) { st.Special = "" })
		return nil
	}
	sc, ok := s.backend.Special(key)
	if !ok {
		return ErrUnknownSpecial
	}
	s.update(func(st *models.FilterState) {
		st.Special = sc.Key
		if sc.Category != "" {
			st.Categories = []string{sc.Category}
		}
	})
	return nil
}

// Select assigns the record's work id and builds its links from the current
// state.
func (s *Session) Select(sourceID string) (works.Selection, error) {
	return s.backend.Select(sourceID, s.State())
}

func (s *Session) Resolve(workID string) (works.Resolution, error) {
	return s.backend.Resolve(workID)
}

// Close drops a pending debounced search.
func (s *Session) Close() {
	s.debounce.Cancel()
}

// update applies fn and runs the search immediately, superseding any
// pending debounced run.
func (s *Session) update(fn func(st *models.FilterState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debounce.Cancel()
	fn(&s.state)
	s.runLocked()
}

func (s *Session) runLocked() {
	s.onResults(s.backend.Search(s.state))
}

func toggle(set []string, item string) []string {
	if i := slices.Index(set, item); i >= 0 {
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return append(slices.Clone(set), item)
}
