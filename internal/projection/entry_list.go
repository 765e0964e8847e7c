package projection

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// ViewEntry is an entry as rendered inside one collection view. A ghost is
// the strike-through remnant of an entry that moved or migrated elsewhere;
// GhostNewLocation points at its current home.
type ViewEntry struct {
	entry.Entry

	RenderAsGhost    bool
	GhostNewLocation string
}

// EntryList folds every entry event (tasks, notes, journal events) into a
// keyed map of entries, synthesizing migrated copies as it goes.
type EntryList struct {
	store  appcore.EventStore
	logger *slog.Logger

	mu    sync.Mutex
	dirty bool
	cache map[string]*entry.Entry

	subs        *subscribers
	unsubscribe func()
}

// NewEntryList creates the projection and subscribes it to the store
func NewEntryList(store appcore.EventStore, logger *slog.Logger) *EntryList {
	if logger == nil {
		logger = slog.Default()
	}
	p := &EntryList{
		store:  store,
		logger: logger,
		dirty:  true,
		subs:   newSubscribers(),
	}
	p.unsubscribe = store.Subscribe(func() {
		p.invalidate()
		p.subs.notify()
	})
	return p
}

// Close detaches the projection from the store
func (p *EntryList) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

// Subscribe registers a change listener on this projection
func (p *EntryList) Subscribe(fn func()) (unsubscribe func()) {
	return p.subs.add(fn)
}

func (p *EntryList) invalidate() {
	p.mu.Lock()
	p.dirty = true
	p.mu.Unlock()
}

// entries returns the current fold, rebuilding it when stale.
func (p *EntryList) entries(ctx context.Context) (map[string]*entry.Entry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.dirty && p.cache != nil {
		return p.cache, nil
	}
	events, err := p.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	p.cache = FoldEntries(events)
	p.dirty = false
	return p.cache, nil
}

// FoldEntries replays a global event sequence into the entry map. Exported
// so replay tooling and tests fold without a live projection.
func FoldEntries(events []event.DomainEvent) map[string]*entry.Entry {
	m := make(map[string]*entry.Entry)
	get := func(id string) *entry.Entry {
		e, ok := m[id]
		if !ok {
			e = entry.NewEntry(id)
			m[id] = e
		}
		return e
	}

	for _, evt := range events {
		switch ev := evt.(type) {
		case *entry.TaskMigrated:
			orig := get(ev.AggregateID())
			source := ev.SourceCollectionID
			if source == "" {
				source = orig.LiveLocation()
			}
			orig.Apply(ev)
			synthesizeCopy(m, orig, ev.MigratedToID, ev.TargetCollectionID, source, ev.NewParentID, ev)

		case *entry.NoteMigrated:
			orig := get(ev.AggregateID())
			source := ev.SourceCollectionID
			if source == "" {
				source = orig.LiveLocation()
			}
			orig.Apply(ev)
			synthesizeCopy(m, orig, ev.MigratedToID, ev.TargetCollectionID, source, "", ev)

		case *entry.EventMigrated:
			orig := get(ev.AggregateID())
			source := ev.SourceCollectionID
			if source == "" {
				source = orig.LiveLocation()
			}
			orig.Apply(ev)
			synthesizeCopy(m, orig, ev.MigratedToID, ev.TargetCollectionID, source, "", ev)

		case *entry.TaskCreated, *entry.TaskCompleted, *entry.TaskReopened,
			*entry.TaskTitleChanged, *entry.TaskDeleted, *entry.TaskReordered,
			*entry.TaskAddedToCollection, *entry.TaskRemovedFromCollection,
			*entry.NoteCreated, *entry.NoteContentChanged, *entry.NoteDeleted,
			*entry.NoteReordered, *entry.EventCreated, *entry.EventContentChanged,
			*entry.EventDateChanged, *entry.EventDeleted, *entry.EventReordered,
			*entry.EntryMovedToCollection:
			get(evt.AggregateID()).Apply(evt)
		}
	}
	return m
}

// synthesizeCopy materializes the migrated copy of orig under copyID. The
// copy starts its own event stream; until it receives direct events its
// state mirrors the original at migration time.
func synthesizeCopy(
	m map[string]*entry.Entry,
	orig *entry.Entry,
	copyID, targetCollectionID, sourceCollectionID, newParentID string,
	evt event.DomainEvent,
) {
	if copyID == "" {
		return
	}
	if _, exists := m[copyID]; exists {
		return
	}
	cp := orig.Clone()
	cp.ID = copyID
	cp.CollectionID = targetCollectionID
	cp.Collections = nil
	cp.MultiManaged = false
	cp.MigratedTo = ""
	cp.MigratedToCollectionID = ""
	cp.MigratedFrom = orig.ID
	cp.MigratedFromCollectionID = sourceCollectionID
	cp.ParentEntryID = newParentID
	cp.Version = 0
	cp.CollectionHistory = nil
	if targetCollectionID != "" {
		cp.CollectionHistory = []entry.CollectionHistoryEntry{{
			CollectionID: targetCollectionID,
			AddedAt:      evt.OccurredAt(),
		}}
	}
	m[copyID] = cp
}

// GetEntries returns every live entry ordered by its order key
func (p *EntryList) GetEntries(ctx context.Context) ([]entry.Entry, error) {
	m, err := p.entries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entry.Entry, 0, len(m))
	for _, e := range m {
		if e.Deleted {
			continue
		}
		out = append(out, *e.Clone())
	}
	sortEntries(out)
	return out, nil
}

// GetTasks returns every live task ordered by its order key
func (p *EntryList) GetTasks(ctx context.Context) ([]entry.Entry, error) {
	all, err := p.GetEntries(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, e := range all {
		if e.Kind == entry.KindTask {
			out = append(out, e)
		}
	}
	return out, nil
}

// GetEntryByID returns any entry, including deleted ones and migrated
// copies; the second result reports existence.
func (p *EntryList) GetEntryByID(ctx context.Context, id string) (entry.Entry, bool, error) {
	m, err := p.entries(ctx)
	if err != nil {
		return entry.Entry{}, false, err
	}
	e, ok := m[id]
	if !ok {
		return entry.Entry{}, false, nil
	}
	return *e.Clone(), true, nil
}

// GetTaskByID returns a task by id, whether active or a migrated copy
func (p *EntryList) GetTaskByID(ctx context.Context, id string) (entry.Entry, bool, error) {
	e, ok, err := p.GetEntryByID(ctx, id)
	if err != nil || !ok || e.Kind != entry.KindTask {
		return entry.Entry{}, false, err
	}
	return e, true, nil
}

// GetSubTasks returns the live child tasks of parentID in order
func (p *EntryList) GetSubTasks(ctx context.Context, parentID string) ([]entry.Entry, error) {
	m, err := p.entries(ctx)
	if err != nil {
		return nil, err
	}
	var out []entry.Entry
	for _, e := range m {
		if e.Kind == entry.KindTask && e.ParentEntryID == parentID && !e.Deleted {
			out = append(out, *e.Clone())
		}
	}
	sortEntries(out)
	return out, nil
}

// LastEntryOrder returns the highest order key over all live entries, or ""
// when the order space is empty. New entries append after it.
func (p *EntryList) LastEntryOrder(ctx context.Context) (string, error) {
	all, err := p.GetEntries(ctx)
	if err != nil {
		return "", err
	}
	if len(all) == 0 {
		return "", nil
	}
	return all[len(all)-1].Order, nil
}

// GetEntriesForCollectionView returns what a collection displays: its live
// entries plus ghosts for entries that were moved or migrated away.
func (p *EntryList) GetEntriesForCollectionView(ctx context.Context, collectionID string) ([]ViewEntry, error) {
	m, err := p.entries(ctx)
	if err != nil {
		return nil, err
	}

	var out []ViewEntry
	for _, e := range m {
		if e.Deleted {
			continue
		}
		ve, show := renderInCollection(e, collectionID)
		if show {
			out = append(out, ve)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return entryLess(&out[i].Entry, &out[j].Entry)
	})
	return out, nil
}

// renderInCollection applies the ghost-visibility rule: the union of the
// migration-pointer rule and the closed-history-row rule.
func renderInCollection(e *entry.Entry, collectionID string) (ViewEntry, bool) {
	if e.MigratedTo != "" {
		// migrated originals are strike-through references wherever they
		// resided; never active
		if e.ResidedIn(collectionID) {
			return ViewEntry{
				Entry:            *e.Clone(),
				RenderAsGhost:    true,
				GhostNewLocation: e.MigratedToCollectionID,
			}, true
		}
		return ViewEntry{}, false
	}

	if e.InCollection(collectionID) {
		return ViewEntry{Entry: *e.Clone()}, true
	}

	// once here but removed: ghost if it lives somewhere else now
	if hasClosedResidency(e, collectionID) {
		if loc := e.LiveLocation(); loc != "" && loc != collectionID {
			return ViewEntry{
				Entry:            *e.Clone(),
				RenderAsGhost:    true,
				GhostNewLocation: loc,
			}, true
		}
	}
	return ViewEntry{}, false
}

func hasClosedResidency(e *entry.Entry, collectionID string) bool {
	for _, h := range e.CollectionHistory {
		if h.CollectionID == collectionID && h.RemovedAt != nil {
			return true
		}
	}
	return false
}

func sortEntries(entries []entry.Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entryLess(&entries[i], &entries[j])
	})
}

func entryLess(a, b *entry.Entry) bool {
	if a.Order != b.Order {
		return a.Order < b.Order
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
