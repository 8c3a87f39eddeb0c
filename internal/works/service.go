// Package works serves the loaded catalog: filtering, id assignment and
// permalinks.
package works

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"flixhub/internal/catalog"
	"flixhub/internal/filter"
	"flixhub/internal/filterstate"
	"flixhub/internal/identity"
	"flixhub/internal/workid"
	"flixhub/pkg/models"
	"flixhub/pkg/utils"
)

// ErrRecordNotFound means no record carries the given source id.
var ErrRecordNotFound = errors.New("record not found")

// Loader produces a fresh catalog. *catalog.Aggregator implements it.
type Loader interface {
	FetchAndMerge(ctx context.Context) ([]*models.Work, error)
}

type Result struct {
	Total int            `json:"total"`
	Query string         `json:"query"`
	Items []*models.Work `json:"items"`
}

type Selection struct {
	WorkID    string `json:"work_id"`
	Permalink string `json:"permalink"`
	Link      string `json:"link"`
}

type Resolution struct {
	WorkID    string       `json:"work_id"`
	Permalink string       `json:"permalink"`
	Item      *models.Work `json:"item"`
}

type Stats struct {
	Records  int       `json:"records"`
	Indexed  int       `json:"indexed"`
	LoadedAt time.Time `json:"loaded_at"`
}

type Options struct {
	Reference *catalog.Reference
	History   identity.Store
	Loader    Loader
	Origin    string
}

// Service owns the catalog and the id generator. All access is serialized,
// so ids are generated one at a time over a fixed catalog order.
type Service struct {
	mu     sync.Mutex
	ref    *catalog.Reference
	loader Loader
	origin string
	gen    *workid.Generator
	engine *filter.Engine
	ranker *filter.Ranker

	works    []*models.Work
	facets   catalog.Facets
	codec    *filterstate.Codec
	index    *workid.Index
	loadedAt time.Time
}

func NewService(opts Options) *Service {
	ref := opts.Reference
	if ref == nil {
		ref = catalog.DefaultReference()
	}
	s := &Service{
		ref:    ref,
		loader: opts.Loader,
		origin: opts.Origin,
		gen:    workid.NewGenerator(opts.History),
		engine: filter.NewEngine(ref.Specials),
		ranker: filter.NewRanker(ref.Featured),
	}
	s.installLocked(nil)
	return s
}

// Reload fetches the catalog from the loader and swaps it in. Fresh records
// carry no cached ids; the history keeps them stable across reloads.
func (s *Service) Reload(ctx context.Context) (int, error) {
	if s.loader == nil {
		return 0, errors.New("no catalog loader configured")
	}
	ws, err := s.loader.FetchAndMerge(ctx)
	if err != nil {
		reloads.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("load catalog: %w", err)
	}
	s.SetCatalog(ws)
	reloads.WithLabelValues("ok").Inc()
	return len(ws), nil
}

// SetCatalog replaces the catalog with ws, in the given order.
func (s *Service) SetCatalog(ws []*models.Work) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.installLocked(ws)
	utils.Named("works").Info().Int("records", len(s.works)).Msg("catalog installed")
}

func (s *Service) installLocked(ws []*models.Work) {
	s.works = slices.DeleteFunc(slices.Clone(ws), func(w *models.Work) bool { return w == nil })
	s.facets = catalog.BuildFacets(s.works, s.ref)
	s.codec = filterstate.NewCodec(s.facets, s.ref.Specials)
	s.index = workid.NewIndex()
	s.gen.Reset()
	s.loadedAt = time.Now().UTC()
	catalogRecords.Set(float64(len(s.works)))
}

func (s *Service) Origin() string { return s.origin }

func (s *Service) Reference() *catalog.Reference { return s.ref }

// Defaults is the state of a fresh page for the current catalog.
func (s *Service) Defaults() models.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.facets.DefaultState()
}

func (s *Service) Decode(query string) filterstate.Decoded {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codec.Decode(query)
}

func (s *Service) Encode(st models.FilterState) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.codec.Encode(st)
}

// Search filters and ranks the catalog. Items is never nil.
func (s *Service) Search(st models.FilterState) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	searches.Inc()
	items := s.ranker.Rank(s.engine.Apply(s.works, st))
	return Result{
		Total: len(items),
		Query: s.codec.Encode(st),
		Items: items,
	}
}

// Select assigns the work id of the record with the given source id and
// returns its permalink and the deep link under st.
func (s *Service) Select(sourceID string, st models.FilterState) (Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.findLocked(sourceID)
	if w == nil {
		return Selection{}, ErrRecordNotFound
	}
	id := s.gen.Assign(w, s.works)
	s.index.Put(id, w)
	selections.Inc()

	return Selection{
		WorkID:    id,
		Permalink: s.permalink(id),
		Link:      s.codec.DeepLink(s.origin, st, id),
	}, nil
}

// Resolve finds the record carrying workID. It returns
// workid.ErrWorkNotFound when no record does.
func (s *Service) Resolve(workID string) (Resolution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.gen.Resolve(workID, s.works, s.index)
	if err != nil {
		if errors.Is(err, workid.ErrWorkNotFound) {
			notFound.Inc()
		}
		return Resolution{}, err
	}
	return Resolution{
		WorkID:    workID,
		Permalink: s.permalink(workID),
		Item:      w,
	}, nil
}

func (s *Service) GroupCodes(key string) ([]string, bool) {
	return s.ref.GroupCodes(key)
}

func (s *Service) Special(key string) (models.SpecialCategory, bool) {
	return s.ref.Special(key)
}

func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{Records: len(s.works), Indexed: s.index.Len(), LoadedAt: s.loadedAt}
}

func (s *Service) permalink(workID string) string {
	return filterstate.Permalink(s.origin, workID)
}

func (s *Service) findLocked(sourceID string) *models.Work {
	if sourceID == "" {
		return nil
	}
	for _, w := range s.works {
		if string(w.ID) == sourceID {
			return w
		}
	}
	return nil
}
