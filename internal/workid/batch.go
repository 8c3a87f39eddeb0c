package workid

import (
	"context"

	"flixhub/internal/identity"
	"flixhub/pkg/models"
)

// AssignAll assigns ids to every record of catalog in order. It hands out the
// same ids as calling Assign on each record in turn, but tracks which ids are
// held in maps and writes the new history entries with one save when the
// store supports it.
func (g *Generator) AssignAll(ctx context.Context, catalog []*models.Work) []string {
	b := g.newBatch(catalog)
	ids := make([]string, len(catalog))
	for i, w := range catalog {
		ids[i] = b.assign(w)
	}
	b.flush(ctx)
	return ids
}

type batch struct {
	g *Generator

	pending  map[string]string         // history entries not saved yet
	waiting  map[string][]*models.Work // records without a cached id, by fingerprint
	cached   map[string]int            // cached id -> records holding it
	resolved map[string]int            // resolved id -> records holding it
}

func (g *Generator) newBatch(catalog []*models.Work) *batch {
	b := &batch{
		g:        g,
		pending:  make(map[string]string),
		waiting:  make(map[string][]*models.Work),
		cached:   make(map[string]int),
		resolved: make(map[string]int),
	}
	for _, o := range catalog {
		if o.WorkID != "" {
			b.cached[o.WorkID]++
			b.resolved[o.WorkID]++
			continue
		}
		fp := g.fingerprint(o)
		b.waiting[fp] = append(b.waiting[fp], o)
		if id := b.history(fp); id != "" {
			b.resolved[id]++
		}
	}
	return b
}

func (b *batch) history(fp string) string {
	if id, ok := b.pending[fp]; ok {
		return id
	}
	id, _ := b.g.History.Get(fp)
	return id
}

func (b *batch) assign(w *models.Work) string {
	if w.WorkID != "" {
		return w.WorkID
	}
	fp := b.g.fingerprint(w)

	// w has no cached id yet, so it is not counted in b.cached
	if existing := b.history(fp); existing != "" && b.cached[existing] == 0 {
		generated.WithLabelValues("history").Inc()
		b.settle(w, fp, existing)
		return existing
	}

	base := BaseID(w)
	id := base
	for n := 0; b.takenByOther(fp, id); n++ {
		id = base + "-" + Suffix(n)
	}

	b.record(fp, id)
	generated.WithLabelValues("fresh").Inc()
	b.settle(w, fp, id)
	return id
}

// takenByOther reports whether a record other than the one with fingerprint
// fp (and no cached id) resolves to id.
func (b *batch) takenByOther(fp, id string) bool {
	n := b.resolved[id]
	if b.history(fp) == id {
		n--
	}
	return n > 0
}

// record points fp at id. Every waiting record with that fingerprint now
// resolves to id.
func (b *batch) record(fp, id string) {
	old := b.history(fp)
	b.pending[fp] = id
	if old == id {
		return
	}
	for range b.waiting[fp] {
		if old != "" {
			b.resolved[old]--
		}
		b.resolved[id]++
	}
}

// settle caches id on w. Its resolved id is already id, so only the cached
// count moves.
func (b *batch) settle(w *models.Work, fp, id string) {
	w.WorkID = id
	b.cached[id]++

	rest := b.waiting[fp][:0]
	for _, o := range b.waiting[fp] {
		if o != w {
			rest = append(rest, o)
		}
	}
	if len(rest) == 0 {
		delete(b.waiting, fp)
	} else {
		b.waiting[fp] = rest
	}
}

func (b *batch) flush(ctx context.Context) {
	if len(b.pending) == 0 {
		return
	}
	if m, ok := b.g.History.(identity.Batch); ok {
		if err := m.Merge(ctx, b.pending); err == nil {
			return
		}
	}
	// Set logs and absorbs backend failures
	for fp, id := range b.pending {
		b.g.History.Set(fp, id)
	}
}
