package projection

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/collection"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// CollectionList folds collection events into a queryable set of
// collections. Legacy settings migrate on read, never in the log.
type CollectionList struct {
	store  appcore.EventStore
	logger *slog.Logger

	mu    sync.Mutex
	dirty bool
	cache map[string]*collection.Collection

	subs        *subscribers
	unsubscribe func()
}

// NewCollectionList creates the projection and subscribes it to the store
func NewCollectionList(store appcore.EventStore, logger *slog.Logger) *CollectionList {
	if logger == nil {
		logger = slog.Default()
	}
	p := &CollectionList{
		store:  store,
		logger: logger,
		dirty:  true,
		subs:   newSubscribers(),
	}
	p.unsubscribe = store.Subscribe(func() {
		p.mu.Lock()
		p.dirty = true
		p.mu.Unlock()
		p.subs.notify()
	})
	return p
}

// Close detaches the projection from the store
func (p *CollectionList) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

// Subscribe registers a change listener on this projection
func (p *CollectionList) Subscribe(fn func()) (unsubscribe func()) {
	return p.subs.add(fn)
}

func (p *CollectionList) collections(ctx context.Context) (map[string]*collection.Collection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.dirty && p.cache != nil {
		return p.cache, nil
	}
	events, err := p.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	p.cache = FoldCollections(events)
	p.dirty = false
	return p.cache, nil
}

// FoldCollections replays a global event sequence into the collection map.
func FoldCollections(events []event.DomainEvent) map[string]*collection.Collection {
	m := make(map[string]*collection.Collection)
	for _, evt := range events {
		if evt.AggregateType() != "Collection" {
			continue
		}
		c, ok := m[evt.AggregateID()]
		if !ok {
			c = collection.NewCollection(evt.AggregateID())
			m[evt.AggregateID()] = c
		}
		c.Apply(evt)
	}
	return m
}

// GetCollections returns live collections sorted by order ascending
func (p *CollectionList) GetCollections(ctx context.Context) ([]collection.Collection, error) {
	m, err := p.collections(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]collection.Collection, 0, len(m))
	for _, c := range m {
		if c.IsDeleted() {
			continue
		}
		out = append(out, *c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return collectionLess(&out[i], &out[j]) })
	return out, nil
}

// GetDeletedCollections returns soft-deleted collections, most recently
// deleted first
func (p *CollectionList) GetDeletedCollections(ctx context.Context) ([]collection.Collection, error) {
	m, err := p.collections(ctx)
	if err != nil {
		return nil, err
	}
	var out []collection.Collection
	for _, c := range m {
		if c.IsDeleted() {
			out = append(out, *c.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].DeletedAt, out[j].DeletedAt
		if !a.Equal(*b) {
			return a.After(*b)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// GetCollectionByID returns a live collection by id
func (p *CollectionList) GetCollectionByID(ctx context.Context, id string) (collection.Collection, bool, error) {
	c, ok, err := p.GetCollectionByIDIncludingDeleted(ctx, id)
	if err != nil || !ok || c.IsDeleted() {
		return collection.Collection{}, false, err
	}
	return c, true, nil
}

// GetCollectionByIDIncludingDeleted returns a collection whether or not it
// is soft-deleted
func (p *CollectionList) GetCollectionByIDIncludingDeleted(
	ctx context.Context,
	id string,
) (collection.Collection, bool, error) {
	m, err := p.collections(ctx)
	if err != nil {
		return collection.Collection{}, false, err
	}
	c, ok := m[id]
	if !ok {
		return collection.Collection{}, false, nil
	}
	return *c.Clone(), true, nil
}

// GetDailyLogByDate returns the live daily collection for a YYYY-MM-DD date
func (p *CollectionList) GetDailyLogByDate(ctx context.Context, date string) (collection.Collection, bool, error) {
	return p.FindByTypeAndDate(ctx, collection.TypeDaily, date)
}

// GetMonthlyLogByDate returns the live monthly collection for a YYYY-MM date
func (p *CollectionList) GetMonthlyLogByDate(ctx context.Context, date string) (collection.Collection, bool, error) {
	return p.FindByTypeAndDate(ctx, collection.TypeMonthly, date)
}

// FindByTypeAndDate returns the live collection with the given natural key
func (p *CollectionList) FindByTypeAndDate(
	ctx context.Context,
	typ collection.Type,
	date string,
) (collection.Collection, bool, error) {
	m, err := p.collections(ctx)
	if err != nil {
		return collection.Collection{}, false, err
	}
	for _, c := range m {
		if !c.IsDeleted() && c.Type == typ && c.Date == date {
			return *c.Clone(), true, nil
		}
	}
	return collection.Collection{}, false, nil
}

// FindLatestByName returns the most recently created live collection whose
// normalized name and creator match, for the create dedupe window.
func (p *CollectionList) FindLatestByName(
	ctx context.Context,
	nameKey, createdBy string,
) (collection.Collection, bool, error) {
	m, err := p.collections(ctx)
	if err != nil {
		return collection.Collection{}, false, err
	}
	var best *collection.Collection
	for _, c := range m {
		if c.IsDeleted() || c.CreatedBy != createdBy || collection.NameKey(c.Name) != nameKey {
			continue
		}
		if best == nil || c.CreatedAt.After(best.CreatedAt) {
			best = c
		}
	}
	if best == nil {
		return collection.Collection{}, false, nil
	}
	return *best.Clone(), true, nil
}

// LastCollectionOrder returns the highest order key over live collections,
// or "" when there are none.
func (p *CollectionList) LastCollectionOrder(ctx context.Context) (string, error) {
	all, err := p.GetCollections(ctx)
	if err != nil {
		return "", err
	}
	if len(all) == 0 {
		return "", nil
	}
	return all[len(all)-1].Order, nil
}

func collectionLess(a, b *collection.Collection) bool {
	if a.Order != b.Order {
		return a.Order < b.Order
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}
