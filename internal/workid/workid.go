// Package workid builds the stable, human readable identifiers used in
// permalinks, e.g. "ghost-story-movie-live-2020".
package workid

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"flixhub/internal/identity"
	"flixhub/pkg/models"
)

var generated = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "flixhub_work_ids_generated_total",
	Help: "Work ids handed out, by how they were obtained",
}, []string{"origin"})

// Genre is the coarse format segment of a work id.
type Genre string

const (
	GenreMovie Genre = "movie"
	GenreTV    Genre = "tv"
)

var genreByType = map[string]Genre{
	"movie":       GenreMovie,
	"film":        GenreMovie,
	"documentary": GenreMovie,
	"short":       GenreMovie,
	"series":      GenreTV,
	"tv":          GenreTV,
}

// GenreOf maps a record type to its genre. Unknown types are movies.
func GenreOf(recordType string) Genre {
	if g, ok := genreByType[strings.ToLower(recordType)]; ok {
		return g
	}
	return GenreMovie
}

func (g Genre) Valid() bool { return g == GenreMovie || g == GenreTV }

// MediaKind tells animation apart from live action.
type MediaKind string

const (
	MediaAnime MediaKind = "anime"
	MediaLive  MediaKind = "live"
)

// AnimationMarker is the substring of a category that marks animation.
const AnimationMarker = "アニメ"

func MediaKindOf(category string) MediaKind {
	if strings.Contains(category, AnimationMarker) {
		return MediaAnime
	}
	return MediaLive
}

func (k MediaKind) Valid() bool { return k == MediaAnime || k == MediaLive }

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	hyphenRunRe  = regexp.MustCompile(`-{2,}`)
)

// Slugify lowercases, strips punctuation, joins words with hyphens and trims
// stray hyphens. Titles without ASCII word characters produce "".
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonWordRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, "-")
	s = hyphenRunRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// BaseID is the unsuffixed id of a record.
func BaseID(w *models.Work) string {
	return Slugify(w.Title) + "-" + string(GenreOf(w.Type)) + "-" + string(MediaKindOf(w.Category)) + "-" + identity.YearOrUnknown(w)
}

const letterSuffixes = "abcdefghijklmnopqrstuvwxyz"

// Suffix returns the n-th collision suffix: a..z, then 26, 27, ...
func Suffix(n int) string {
	if n < len(letterSuffixes) {
		return letterSuffixes[n : n+1]
	}
	return strconv.Itoa(n)
}

// Generator assigns work ids. It is not safe for concurrent use; callers
// that share a catalog between goroutines serialize access (see works.Service).
type Generator struct {
	History identity.Store

	fps map[*models.Work]string
}

func NewGenerator(history identity.Store) *Generator {
	return &Generator{History: history, fps: make(map[*models.Work]string)}
}

// Reset drops the fingerprints cached for the previous catalog.
func (g *Generator) Reset() {
	clear(g.fps)
}

func (g *Generator) fingerprint(w *models.Work) string {
	if fp, ok := g.fps[w]; ok {
		return fp
	}
	if g.fps == nil {
		g.fps = make(map[*models.Work]string)
	}
	fp := identity.Fingerprint(w)
	g.fps[w] = fp
	return fp
}

// Assign returns the cached id of w, generating and caching it on first use.
func (g *Generator) Assign(w *models.Work, catalog []*models.Work) string {
	if w.WorkID != "" {
		return w.WorkID
	}
	w.WorkID = g.Generate(w, catalog)
	return w.WorkID
}

// Generate computes the id of w, unique among catalog at the time of the
// call, and records it in the history.
func (g *Generator) Generate(w *models.Work, catalog []*models.Work) string {
	fp := g.fingerprint(w)

	if existing, ok := g.History.Get(fp); ok && existing != "" {
		if !takenByOther(w, catalog, existing, func(o *models.Work) string { return o.WorkID }) {
			generated.WithLabelValues("history").Inc()
			return existing
		}
	}

	base := BaseID(w)
	id := base
	for n := 0; takenByOther(w, catalog, id, g.resolvedID); n++ {
		id = base + "-" + Suffix(n)
	}

	g.History.Set(fp, id)
	generated.WithLabelValues("fresh").Inc()
	return id
}

// resolvedID is the id another record already holds: its cached id, or the
// one its fingerprint maps to in the history.
func (g *Generator) resolvedID(o *models.Work) string {
	if o.WorkID != "" {
		return o.WorkID
	}
	id, _ := g.History.Get(g.fingerprint(o))
	return id
}

func takenByOther(self *models.Work, catalog []*models.Work, id string, idOf func(*models.Work) string) bool {
	for _, o := range catalog {
		if o == self {
			continue
		}
		if idOf(o) == id {
			return true
		}
	}
	return false
}
