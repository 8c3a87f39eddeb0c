package workid

import (
	"errors"
	"regexp"
	"strings"

	"flixhub/pkg/models"
)

// ErrWorkNotFound means a work id matched no record in the current catalog.
// The record may have left the catalog, so callers report it as "not found"
// rather than as a failure.
var ErrWorkNotFound = errors.New("work not found")

// Parsed holds the segments of a work id, read from the right.
type Parsed struct {
	Title     string // title slug, hyphenated
	Genre     Genre
	MediaKind MediaKind
	Year      string
	Suffix    string // collision suffix, empty for a base id
}

// Parse splits id into its segments. Ids whose genre or media kind segment
// is not one the generator emits do not parse.
func Parse(id string) (Parsed, bool) {
	parts := strings.Split(id, "-")
	if p, ok := parseSegments(parts); ok {
		return p, true
	}
	if n := len(parts); n > 4 {
		if p, ok := parseSegments(parts[:n-1]); ok {
			p.Suffix = parts[n-1]
			return p, true
		}
	}
	return Parsed{}, false
}

func parseSegments(parts []string) (Parsed, bool) {
	n := len(parts)
	if n < 4 {
		return Parsed{}, false
	}
	p := Parsed{
		Title:     strings.Join(parts[:n-3], "-"),
		Genre:     Genre(parts[n-3]),
		MediaKind: MediaKind(parts[n-2]),
		Year:      parts[n-1],
	}
	if !p.Genre.Valid() || !p.MediaKind.Valid() {
		return Parsed{}, false
	}
	return p, true
}

// Index caches resolved ids for the lifetime of a catalog.
type Index struct {
	byID map[string]*models.Work
}

func NewIndex() *Index {
	return &Index{byID: make(map[string]*models.Work)}
}

func (ix *Index) Put(id string, w *models.Work) {
	ix.byID[id] = w
}

func (ix *Index) Lookup(id string) (*models.Work, bool) {
	w, ok := ix.byID[id]
	return w, ok
}

func (ix *Index) Len() int { return len(ix.byID) }

var spaceRunRe = regexp.MustCompile(`\s+`)

// candidateTitle normalizes a record title for comparison with a parsed id
// title: lowercase, punctuation dropped, hyphens read as spaces.
func candidateTitle(title string) string {
	s := strings.ToLower(title)
	s = nonWordRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "-", " ")
	return spaceRunRe.ReplaceAllString(s, " ")
}

// Resolve finds the record carrying id. It checks the index first, then
// rebuilds ids for records whose title matches the id's title segment,
// generating (and caching) ids as a side effect.
func (g *Generator) Resolve(id string, catalog []*models.Work, ix *Index) (*models.Work, error) {
	if w, ok := ix.Lookup(id); ok {
		return w, nil
	}

	parsed, ok := Parse(id)
	if !ok {
		return nil, ErrWorkNotFound
	}

	want := strings.ReplaceAll(parsed.Title, "-", " ")
	for _, c := range catalog {
		title := candidateTitle(c.Title)
		if !strings.Contains(title, want) && !strings.Contains(want, title) {
			continue
		}
		if g.Assign(c, catalog) == id {
			ix.Put(id, c)
			return c, nil
		}
	}
	return nil, ErrWorkNotFound
}
