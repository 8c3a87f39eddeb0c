package catalog

import (
	"slices"

	"flixhub/pkg/models"
)

// Facets is the selectable universe derived from a catalog: every country,
// category and year the filters can offer.
type Facets struct {
	Countries  []string         `json:"countries"`
	Categories []string         `json:"categories"`
	Years      models.YearRange `json:"years"`
	YearList   []int            `json:"year_list"`
}

// BuildFacets derives the facets of works. Years only come from records
// listed (in object form) in one of ref.YearScope's countries; without any,
// the range falls back to DefaultYears.
func BuildFacets(works []*models.Work, ref *Reference) Facets {
	f := Facets{Countries: ref.CountryCodes()}

	seenCat := make(map[string]bool)
	seenYear := make(map[int]bool)
	for _, w := range works {
		if w.Category != "" && !seenCat[w.Category] {
			seenCat[w.Category] = true
			f.Categories = append(f.Categories, w.Category)
		}

		if !w.Countries.IsList || !w.Countries.MatchesAny(ref.YearScope) {
			continue
		}
		if y, ok := w.YearValue(); ok && !seenYear[y] {
			seenYear[y] = true
			f.YearList = append(f.YearList, y)
		}
	}
	slices.Sort(f.Categories)
	slices.Sort(f.YearList)

	if len(f.YearList) == 0 {
		f.Years = DefaultYears
	} else {
		f.Years = models.YearRange{Start: f.YearList[0], End: f.YearList[len(f.YearList)-1]}
	}
	return f
}

// DefaultState is the state of a fresh page: everything selected, full year
// range, no search.
func (f Facets) DefaultState() models.FilterState {
	return models.FilterState{
		Countries:  slices.Clone(f.Countries),
		Categories: slices.Clone(f.Categories),
		Years:      f.Years,
	}
}
