package identity

import (
	"regexp"
	"strings"

	"flixhub/pkg/models"
)

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Fingerprint identifies "the same work" across catalog reloads:
// normalized title, year and category joined by "::".
func Fingerprint(w *models.Work) string {
	title := strings.ToLower(w.Title)
	title = nonWordRe.ReplaceAllString(title, "")
	title = whitespaceRe.ReplaceAllString(title, "-")

	return title + "::" + YearOrUnknown(w) + "::" + orUnknown(w.Category)
}

// YearOrUnknown renders the year the way fingerprints and work ids do: the
// raw source text, or "unknown" when it is missing or zero.
func YearOrUnknown(w *models.Work) string {
	y := strings.TrimSpace(string(w.Year))
	if y == "" || y == "0" {
		return "unknown"
	}
	return y
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
