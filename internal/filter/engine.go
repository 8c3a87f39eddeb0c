// Package filter turns a catalog and a FilterState into an ordered result list.
package filter

import (
	"strings"

	"flixhub/pkg/models"
)

// Engine applies the structural filters and the search to a catalog.
type Engine struct {
	Specials []models.SpecialCategory
}

func NewEngine(specials []models.SpecialCategory) *Engine {
	return &Engine{Specials: specials}
}

func (e *Engine) Special(key string) (models.SpecialCategory, bool) {
	if key == "" {
		return models.SpecialCategory{}, false
	}
	for _, sc := range e.Specials {
		if sc.Key == key {
			return sc, true
		}
	}
	return models.SpecialCategory{}, false
}

// Apply runs the pipeline in order: special-category base set, categories,
// year range, countries, dedup by source id, then search. The result keeps
// catalog order; use Ranker for display order. It never returns nil.
func (e *Engine) Apply(catalog []*models.Work, st models.FilterState) []*models.Work {
	out := []*models.Work{}
	if len(st.Countries) == 0 || len(st.Categories) == 0 {
		return out
	}

	base := catalog
	if sc, ok := e.Special(st.Special); ok {
		base = members(catalog, sc)
	}

	categories := make(map[string]struct{}, len(st.Categories))
	for _, c := range st.Categories {
		categories[c] = struct{}{}
	}

	seen := make(map[models.FlexString]struct{})
	for _, w := range base {
		if _, ok := categories[w.Category]; !ok {
			continue
		}
		if y, ok := w.YearValue(); ok && !st.Years.Contains(y) {
			continue
		}
		if !w.Countries.MatchesAny(st.Countries) {
			continue
		}
		if w.ID != "" {
			if _, dup := seen[w.ID]; dup {
				continue
			}
			seen[w.ID] = struct{}{}
		}
		out = append(out, w)
	}

	return e.search(catalog, out, st.Search)
}

// search filters results by query. A query equal to a special-category
// keyword replaces the results with that category's members from the full
// catalog.
func (e *Engine) search(catalog, results []*models.Work, query string) []*models.Work {
	query = strings.TrimSpace(query)
	if query == "" {
		return results
	}

	if sc, ok := e.keywordSpecial(query); ok {
		return members(catalog, sc)
	}

	q := Fold(query)
	out := []*models.Work{}
	for _, w := range results {
		if MatchesSearch(w, q) {
			out = append(out, w)
		}
	}
	return out
}

// members returns the works whose title is listed in sc, deduplicated by
// source id.
func members(catalog []*models.Work, sc models.SpecialCategory) []*models.Work {
	titles := make(map[string]struct{}, len(sc.Titles))
	for _, t := range sc.Titles {
		titles[t] = struct{}{}
	}

	out := []*models.Work{}
	seen := make(map[models.FlexString]struct{})
	for _, w := range catalog {
		if _, ok := titles[w.Title]; !ok {
			continue
		}
		if w.ID != "" {
			if _, dup := seen[w.ID]; dup {
				continue
			}
			seen[w.ID] = struct{}{}
		}
		out = append(out, w)
	}
	return out
}
