package projection

import (
	"context"
	"log/slog"
	"sync"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

// TaskList is the narrow projection used by pure task-mode commands: it
// folds only task events and returns tasks in order.
type TaskList struct {
	store  appcore.EventStore
	logger *slog.Logger

	mu    sync.Mutex
	dirty bool
	cache map[string]*entry.Entry

	subs        *subscribers
	unsubscribe func()
}

// NewTaskList creates the projection and subscribes it to the store
func NewTaskList(store appcore.EventStore, logger *slog.Logger) *TaskList {
	if logger == nil {
		logger = slog.Default()
	}
	p := &TaskList{
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
func (p *TaskList) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

// Subscribe registers a change listener on this projection
func (p *TaskList) Subscribe(fn func()) (unsubscribe func()) {
	return p.subs.add(fn)
}

func (p *TaskList) tasks(ctx context.Context) (map[string]*entry.Entry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.dirty && p.cache != nil {
		return p.cache, nil
	}
	events, err := p.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	taskEvents := make([]event.DomainEvent, 0, len(events))
	for _, evt := range events {
		if evt.AggregateType() == "Task" {
			taskEvents = append(taskEvents, evt)
		}
	}
	p.cache = FoldEntries(taskEvents)
	p.dirty = false
	return p.cache, nil
}

// GetTasks returns every live task ordered by its order key
func (p *TaskList) GetTasks(ctx context.Context) ([]entry.Entry, error) {
	m, err := p.tasks(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entry.Entry, 0, len(m))
	for _, e := range m {
		if e.Deleted || e.Kind != entry.KindTask {
			continue
		}
		out = append(out, *e.Clone())
	}
	sortEntries(out)
	return out, nil
}

// GetTaskByID returns a task by id, whether active or a migrated copy
func (p *TaskList) GetTaskByID(ctx context.Context, id string) (entry.Entry, bool, error) {
	m, err := p.tasks(ctx)
	if err != nil {
		return entry.Entry{}, false, err
	}
	e, ok := m[id]
	if !ok || e.Kind != entry.KindTask {
		return entry.Entry{}, false, nil
	}
	return *e.Clone(), true, nil
}

// GetSubTasks returns the live child tasks of parentID in order
func (p *TaskList) GetSubTasks(ctx context.Context, parentID string) ([]entry.Entry, error) {
	m, err := p.tasks(ctx)
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
