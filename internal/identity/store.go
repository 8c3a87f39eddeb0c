package identity

import (
	"context"
	"encoding/json"
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"flixhub/pkg/utils"
)

// DefaultKey is the storage key the history document lives under.
const DefaultKey = "work_id_history"

var (
	historyReadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flixhub_identity_history_read_failures_total",
		Help: "Identity history loads that failed or returned unparsable data",
	})
	historyWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flixhub_identity_history_write_failures_total",
		Help: "Identity history saves that failed and were dropped",
	})
)

// Store maps a work fingerprint to the work id assigned to it earlier.
type Store interface {
	Get(fingerprint string) (string, bool)
	Set(fingerprint, workID string)
}

// Batch is implemented by stores that can write many entries with a single
// save. *History implements it.
type Batch interface {
	Merge(ctx context.Context, entries map[string]string) error
}

// Backend persists the whole history as one JSON document.
// Load returns nil data when nothing has been stored yet.
type Backend interface {
	Name() string
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// History is the Store used by the generator. Reads are served from a cache
// that is filled on first use; writes re-read the backend, merge and save the
// full document. Backend failures are logged and never returned.
type History struct {
	backend Backend
	timeout time.Duration
	log     *utils.Logger

	mu      sync.Mutex
	entries map[string]string
	loaded  bool
}

func NewHistory(b Backend) *History {
	return &History{
		backend: b,
		timeout: 5 * time.Second,
		log:     utils.Named("identity"),
		entries: make(map[string]string),
	}
}

func (h *History) Get(fingerprint string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.ensureLoaded()
	id, ok := h.entries[fingerprint]
	return id, ok
}

func (h *History) Set(fingerprint, workID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// pick up writes made by other processes sharing the backend
	fresh, ok := h.load()
	if !ok {
		fresh = maps.Clone(h.entries)
	}
	if cur, ok := fresh[fingerprint]; ok && cur == workID {
		h.entries = fresh
		h.loaded = true
		return
	}
	fresh[fingerprint] = workID
	h.entries = fresh
	h.loaded = true

	h.save(fresh)
}

// Snapshot returns a copy of the current history.
func (h *History) Snapshot() map[string]string {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.ensureLoaded()
	return maps.Clone(h.entries)
}

// Merge adds entries to the stored history. Unlike Set it reports save
// failures, since callers are batch tools.
func (h *History) Merge(ctx context.Context, entries map[string]string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	fresh, ok := h.load()
	if !ok {
		return errors.New("history backend unavailable")
	}
	maps.Copy(fresh, entries)

	data, err := json.Marshal(fresh)
	if err != nil {
		return err
	}
	if err := h.backend.Save(ctx, data); err != nil {
		historyWriteFailures.Inc()
		return err
	}
	h.entries = fresh
	h.loaded = true
	return nil
}

func (h *History) ensureLoaded() {
	if h.loaded {
		return
	}
	h.entries, _ = h.load()
	h.loaded = true
}

// load reads the stored document. Corrupt data decodes to an empty history;
// ok is false only when the backend itself could not be read.
func (h *History) load() (entries map[string]string, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	data, err := h.backend.Load(ctx)
	if err != nil {
		historyReadFailures.Inc()
		h.log.Warn().Err(err).Str("backend", h.backend.Name()).Msg("history load failed, using empty history")
		return make(map[string]string), false
	}
	entries, err = decodeHistory(data)
	if err != nil {
		historyReadFailures.Inc()
		h.log.Warn().Err(err).Str("backend", h.backend.Name()).Msg("history is corrupt, using empty history")
	}
	return entries, true
}

func (h *History) save(entries map[string]string) {
	data, err := json.Marshal(entries)
	if err != nil {
		historyWriteFailures.Inc()
		h.log.Error().Err(err).Msg("history encode failed")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	if err := h.backend.Save(ctx, data); err != nil {
		historyWriteFailures.Inc()
		h.log.Error().Err(err).Str("backend", h.backend.Name()).Msg("history save failed")
	}
}

func decodeHistory(data []byte) (map[string]string, error) {
	entries := make(map[string]string)
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return make(map[string]string), err
	}
	if entries == nil {
		// "null" document
		entries = make(map[string]string)
	}
	return entries, nil
}
