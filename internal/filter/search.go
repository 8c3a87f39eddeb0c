package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"

	"flixhub/pkg/models"
)

// Fold normalizes text for case-insensitive matching: full/half width forms
// are folded and case is folded.
func Fold(s string) string {
	t := transform.Chain(width.Fold, cases.Fold())
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// keywordSpecial returns the special category whose keyword alias equals the
// query, if any.
func (e *Engine) keywordSpecial(query string) (models.SpecialCategory, bool) {
	q := Fold(strings.TrimSpace(query))
	if q == "" {
		return models.SpecialCategory{}, false
	}
	for _, sc := range e.Specials {
		for _, kw := range sc.Keywords {
			if Fold(strings.TrimSpace(kw)) == q {
				return sc, true
			}
		}
	}
	return models.SpecialCategory{}, false
}

// MatchesSearch reports whether any searchable field of w contains the
// folded query.
func MatchesSearch(w *models.Work, foldedQuery string) bool {
	fields := [...]string{w.Title, w.TitleJa, w.Synopsis, w.SynopsisJa, w.SynopsisJaFull}
	for _, f := range fields {
		if f != "" && strings.Contains(Fold(f), foldedQuery) {
			return true
		}
	}
	return false
}
