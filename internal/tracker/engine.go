// Package tracker owns the authoritative in-memory checklist: it merges the
// static catalog with persisted records on load, and writes visit changes
// through to the record store with a local-snapshot fallback when the
// backend is unreachable.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/adventures/internal/catalog"
	"github.com/dmitrijs2005/adventures/internal/common"
	"github.com/dmitrijs2005/adventures/internal/imagex"
	"github.com/dmitrijs2005/adventures/internal/logging"
	"github.com/dmitrijs2005/adventures/internal/models"
	"golang.org/x/sync/errgroup"
)

// RecordStore is the persistence contract the engine writes through to.
// Implementations signal an unconfigured or unreachable backend with
// common.ErrBackendUnavailable; the engine recovers from that locally and
// never surfaces it to callers.
type RecordStore interface {
	FetchAll(ctx context.Context) (map[string][]models.Document, error)
	Upsert(ctx context.Context, category string, adventure models.Adventure) (*models.Document, error)
}

// ImageStore externalizes inline image payloads into durable references.
type ImageStore interface {
	Upload(ctx context.Context, payload string, suggestedName string) (string, error)
}

// State of the engine's load lifecycle. Ready is terminal: it is re-entered
// on every read, never re-fetched.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "uninitialized"
	}
}

// Visit carries the fields supplied by a record/edit action. Photos may mix
// inline payloads and already-externalized URLs; Thumbnail is an index into
// Photos.
type Visit struct {
	DateVisited string
	Memories    string
	Photos      []string
	Thumbnail   int
}

// Engine reconciles and persists the adventure checklists.
type Engine struct {
	store     RecordStore
	images    ImageStore
	snapshots *SnapshotStore
	catalog   catalog.Catalog
	log       logging.Logger

	mu    sync.RWMutex
	state State
	items map[string][]models.Adventure
}

// NewEngine builds an engine over the given catalog and backends. Nothing
// is loaded until Load is called.
func NewEngine(cat catalog.Catalog, store RecordStore, images ImageStore, snapshots *SnapshotStore, log logging.Logger) *Engine {
	return &Engine{
		store:     store,
		images:    images,
		snapshots: snapshots,
		catalog:   cat,
		log:       log,
	}
}

// Load builds the baseline checklist from the catalog and merges persisted
// state over it: the remote store when reachable, the local snapshot
// otherwise, the bare baseline when neither exists. It runs a single
// fallback read and never retries; repeated calls after the first are
// no-ops. The engine always ends up Ready.
func (e *Engine) Load(ctx context.Context) {
	e.mu.Lock()
	if e.state != StateUninitialized {
		e.mu.Unlock()
		return
	}
	e.state = StateLoading
	e.items = e.catalog.Baseline()
	e.mu.Unlock()

	fetched, err := e.store.FetchAll(ctx)
	if err == nil {
		overlay := make(map[string][]models.Adventure, len(fetched))
		for category, docs := range fetched {
			list := make([]models.Adventure, len(docs))
			for i, d := range docs {
				list[i] = d.Adventure
			}
			overlay[category] = list
		}
		e.apply(overlay)
	} else {
		e.log.Warn(ctx, "record store unavailable, trying local snapshot", "error", err)
		snap, ok, serr := e.snapshots.Load()
		if serr != nil {
			e.log.Warn(ctx, "local snapshot unreadable", "error", serr)
		}
		if ok {
			e.apply(snap)
		}
	}

	e.mu.Lock()
	e.state = StateReady
	e.mu.Unlock()
}

// apply merges persisted items over the baseline, category by category,
// matching by id via a keyed lookup. Categories and ids unknown to the
// catalog are silently ignored; untouched items keep their baseline shape.
func (e *Engine) apply(overlay map[string][]models.Adventure) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for category, list := range e.items {
		saved, ok := overlay[category]
		if !ok {
			continue
		}
		index := make(map[string]models.Adventure, len(saved))
		for _, a := range saved {
			index[a.ID] = a
		}
		for i, item := range list {
			if s, ok := index[item.ID]; ok {
				list[i] = mergeAdventure(item, s)
			}
		}
	}
}

// mergeAdventure shallow-merges a persisted item over a baseline one:
// persisted fields win, fields absent from the persisted record are
// retained. Merging the same record twice yields the same result as once.
func mergeAdventure(base, saved models.Adventure) models.Adventure {
	out := base
	out.Visited = saved.Visited
	if saved.Name != "" {
		out.Name = saved.Name
	}
	if saved.DateVisited != "" {
		out.DateVisited = saved.DateVisited
	}
	if saved.Memories != "" {
		out.Memories = saved.Memories
	}
	if len(saved.Images) > 0 {
		out.Images = saved.Images
	}
	if saved.Thumbnail != "" {
		out.Thumbnail = saved.Thumbnail
	}
	return out
}

// SaveVisit records or edits a visit: photos are externalized (best effort),
// the item is updated in place with visited forced on, and the result is
// written through to the store or, failing that, to the local snapshot.
func (e *Engine) SaveVisit(ctx context.Context, category, id string, visit Visit) (models.Adventure, error) {
	if len(visit.Photos) > 0 && (visit.Thumbnail < 0 || visit.Thumbnail >= len(visit.Photos)) {
		return models.Adventure{}, fmt.Errorf("%w: thumbnail index out of range", common.ErrValidation)
	}

	images := e.externalize(ctx, id, visit.Photos)

	var thumbnail string
	if len(images) > 0 {
		thumbnail = images[visit.Thumbnail]
	}

	e.mu.Lock()
	i, err := e.find(category, id)
	if err != nil {
		e.mu.Unlock()
		return models.Adventure{}, err
	}

	item := e.items[category][i]
	item.Visited = true
	item.DateVisited = visit.DateVisited
	item.Memories = visit.Memories
	item.Images = images
	item.Thumbnail = thumbnail
	e.items[category][i] = item
	e.mu.Unlock()

	return item, e.persist(ctx, category, item)
}

// RemoveVisit resets an item to its baseline shape and writes the minimal
// unvisited record through the same upsert-or-fallback path. The stored
// document is overwritten, not deleted.
func (e *Engine) RemoveVisit(ctx context.Context, category, id string) (models.Adventure, error) {
	e.mu.Lock()
	i, err := e.find(category, id)
	if err != nil {
		e.mu.Unlock()
		return models.Adventure{}, err
	}

	item := models.Adventure{ID: id, Name: e.items[category][i].Name}
	e.items[category][i] = item
	e.mu.Unlock()

	return item, e.persist(ctx, category, item)
}

// find locates an item by id within a category. Callers hold e.mu.
func (e *Engine) find(category, id string) (int, error) {
	list, ok := e.items[category]
	if !ok {
		return 0, fmt.Errorf("%w: unknown category %q", common.ErrNotFound, category)
	}
	for i := range list {
		if list[i].ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: no item %q in category %q", common.ErrNotFound, id, category)
}

// externalize uploads every inline photo concurrently and joins before
// returning. Upload failures degrade to keeping the inline payload: a visit
// is never lost because an upload failed. Non-inline entries pass through.
func (e *Engine) externalize(ctx context.Context, id string, photos []string) []string {
	if len(photos) == 0 {
		return nil
	}

	results := make([]string, len(photos))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range photos {
		if !imagex.IsInline(p) {
			results[i] = p
			continue
		}
		g.Go(func() error {
			url, err := e.images.Upload(ctx, p, fmt.Sprintf("%s-%d", id, i))
			if err != nil {
				e.log.Warn(ctx, "image upload failed, keeping inline payload", "id", id, "index", i, "error", err)
				results[i] = p
				return nil
			}
			results[i] = url
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// persist writes one item through to the store. On an unavailable backend
// the entire current snapshot of all categories is written to the local
// fallback store instead, and the save is reported successful.
func (e *Engine) persist(ctx context.Context, category string, item models.Adventure) error {
	_, err := e.store.Upsert(ctx, category, item)
	if err == nil {
		return nil
	}

	if !errors.Is(err, common.ErrBackendUnavailable) {
		return err
	}

	e.log.Warn(ctx, "record store unavailable, persisting local snapshot", "category", category, "id", item.ID)
	if serr := e.snapshots.Save(e.Snapshot()); serr != nil {
		e.log.Error(ctx, "local snapshot write failed", "error", serr)
	}
	return nil
}

// Items returns a copy of the reconciled checklist for a category, or nil
// for an unknown category.
func (e *Engine) Items(category string) []models.Adventure {
	e.mu.RLock()
	defer e.mu.RUnlock()

	list, ok := e.items[category]
	if !ok {
		return nil
	}
	out := make([]models.Adventure, len(list))
	copy(out, list)
	return out
}

// Snapshot returns a copy of the whole in-memory state, shaped like the
// GET /adventures response.
func (e *Engine) Snapshot() map[string][]models.Adventure {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make(map[string][]models.Adventure, len(e.items))
	for category, list := range e.items {
		cp := make([]models.Adventure, len(list))
		copy(cp, list)
		out[category] = cp
	}
	return out
}

// State reports the load lifecycle state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}
