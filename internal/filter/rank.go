package filter

import (
	"cmp"
	"slices"

	"flixhub/pkg/models"
)

// Ranker orders results for display: featured titles first in list order,
// then rating descending (unrated last), then year descending.
type Ranker struct {
	featured map[string]int
}

func NewRanker(featured []string) *Ranker {
	pos := make(map[string]int, len(featured))
	for i, t := range featured {
		if _, dup := pos[t]; !dup {
			pos[t] = i
		}
	}
	return &Ranker{featured: pos}
}

// Rank returns a sorted copy of works. Equal keys keep their input order.
func (r *Ranker) Rank(works []*models.Work) []*models.Work {
	out := slices.Clone(works)
	if out == nil {
		out = []*models.Work{}
	}
	slices.SortStableFunc(out, r.compare)
	return out
}

func (r *Ranker) compare(a, b *models.Work) int {
	ai, aFeatured := r.featured[a.Title]
	bi, bFeatured := r.featured[b.Title]
	switch {
	case aFeatured && bFeatured:
		return cmp.Compare(ai, bi)
	case aFeatured:
		return -1
	case bFeatured:
		return 1
	}

	ar, aRated := a.RatingValue()
	br, bRated := b.RatingValue()
	switch {
	case aRated && bRated:
		if c := cmp.Compare(br, ar); c != 0 {
			return c
		}
	case aRated:
		return -1
	case bRated:
		return 1
	}

	ay, _ := a.YearValue()
	by, _ := b.YearValue()
	return cmp.Compare(by, ay)
}
