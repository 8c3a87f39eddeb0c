package workid

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flixhub/internal/identity"
	"flixhub/pkg/models"
)

type countingBackend struct {
	*identity.MemoryBackend
	saves atomic.Int32
}

func (c *countingBackend) Save(ctx context.Context, data []byte) error {
	c.saves.Add(1)
	return c.MemoryBackend.Save(ctx, data)
}

// mixedCatalog covers collisions, shared fingerprints, history reuse and
// cached ids in one catalog.
func mixedCatalog(history *identity.History) []*models.Work {
	owner := &models.Work{ID: "e1", Title: "Echo", Year: "2010", Category: "Drama", Type: "movie"}
	history.Set(identity.Fingerprint(owner), "echo-movie-live-2010")
	alpha := &models.Work{ID: "a2", Title: "Alpha", Year: "2000", Category: "Drama", Type: "movie"}
	history.Set(identity.Fingerprint(alpha), "alpha-movie-live-2000")

	ws := []*models.Work{
		{ID: "t1", Title: "Twin", Year: "2001", Category: "Drama", Type: "movie"},
		{ID: "t2", Title: "Twin", Year: "2001", Category: "Comedy", Type: "movie"},
		{ID: "t3", Title: "Twin", Year: "2001", Category: "Drama", Type: "movie"},
		{ID: "e2", Title: "Echo!", Year: "2010", Category: "Thriller", Type: "movie"},
		owner,
		{ID: "a1", Title: "Alpha", Year: "2000", Category: "Comedy", Type: "movie", WorkID: "alpha-movie-live-2000"},
		alpha,
		{ID: "s1", Title: "Ghost Story", Year: "2020", Category: "Horror", Type: "series"},
		{ID: "u1", Title: "Untitled", Category: "Documentary", Type: "documentary"},
	}
	for i := range 30 {
		ws = append(ws, &models.Work{
			ID:    models.FlexString(fmt.Sprintf("same-%d", i)),
			Title: "Same", Year: "1999", Category: fmt.Sprintf("Genre %d", i), Type: "movie",
		})
	}
	return ws
}

func TestAssignAll_MatchesSequentialAssign(t *testing.T) {
	seqHistory := identity.NewHistory(identity.NewMemoryBackend())
	seqCatalog := mixedCatalog(seqHistory)
	seq := NewGenerator(seqHistory)
	want := make([]string, len(seqCatalog))
	for i, w := range seqCatalog {
		want[i] = seq.Assign(w, seqCatalog)
	}

	batchHistory := identity.NewHistory(identity.NewMemoryBackend())
	batchCatalog := mixedCatalog(batchHistory)
	got := NewGenerator(batchHistory).AssignAll(context.Background(), batchCatalog)

	assert.Equal(t, want, got)
	for i, w := range batchCatalog {
		assert.Equal(t, got[i], w.WorkID)
	}
	assert.Equal(t, seqHistory.Snapshot(), batchHistory.Snapshot())
	assert.Equal(t, "alpha-movie-live-2000-a", got[6])
	assert.Equal(t, "echo-movie-live-2010-a", got[3])
}

func TestAssignAll_SingleSave(t *testing.T) {
	backend := &countingBackend{MemoryBackend: identity.NewMemoryBackend()}
	history := identity.NewHistory(backend)

	const n = 500
	catalog := make([]*models.Work, n)
	for i := range catalog {
		catalog[i] = &models.Work{ID: models.FlexString(fmt.Sprint(i)), Title: fmt.Sprintf("Title %d", i), Year: "2000", Type: "movie"}
	}

	ids := NewGenerator(history).AssignAll(context.Background(), catalog)
	require.Len(t, ids, n)
	assert.Equal(t, int32(1), backend.saves.Load())
	assert.Len(t, history.Snapshot(), n)

	// a second pass over the same records has nothing new to write
	NewGenerator(history).AssignAll(context.Background(), catalog)
	assert.Equal(t, int32(1), backend.saves.Load())
}

func TestAssignAll_LargeCatalog(t *testing.T) {
	if testing.Short() {
		t.Skip("large catalog")
	}
	const n = 20000
	catalog := make([]*models.Work, n)
	for i := range catalog {
		// titles come in pairs, so half the records need a suffix
		catalog[i] = &models.Work{ID: models.FlexString(fmt.Sprint(i)), Title: fmt.Sprintf("Title %d", i/2), Year: "2000", Category: fmt.Sprint(i % 3), Type: "movie"}
	}

	start := time.Now()
	ids := NewGenerator(identity.NewHistory(identity.NewMemoryBackend())).AssignAll(context.Background(), catalog)
	elapsed := time.Since(start)

	seen := make(map[string]bool, n)
	for _, id := range ids {
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Less(t, elapsed, 10*time.Second)
}
