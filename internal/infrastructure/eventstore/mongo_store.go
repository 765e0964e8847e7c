package eventstore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

const (
	eventsCollection   = "events"
	countersCollection = "counters"
	seqCounterID       = "events_seq"
)

// MongoEventStore implements the EventStore on MongoDB: the remote-log
// backend. Envelopes carry an explicit global sequence allocated from a
// counters document inside the append transaction.
type MongoEventStore struct {
	client     *mongo.Client
	events     *mongo.Collection
	counters   *mongo.Collection
	serializer *EventSerializer
	logger     *slog.Logger

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// MongoOption configures MongoEventStore.
type MongoOption func(*MongoEventStore)

// WithLogger sets the logger for the event store.
func WithLogger(logger *slog.Logger) MongoOption {
	return func(s *MongoEventStore) {
		s.logger = logger
	}
}

// NewMongoEventStore creates a MongoDB-backed event store
func NewMongoEventStore(client *mongo.Client, databaseName string, opts ...MongoOption) *MongoEventStore {
	database := client.Database(databaseName)

	s := &MongoEventStore{
		client:     client,
		events:     database.Collection(eventsCollection),
		counters:   database.Collection(countersCollection),
		serializer: NewEventSerializer(),
		logger:     slog.Default(),
		subs:       make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureIndexes creates the indexes appends rely on: unique global
// sequence and unique (aggregate_id, version).
func (s *MongoEventStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.events.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "seq", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "aggregate_id", Value: 1}, {Key: "version", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create event store indexes: %w", err)
	}
	return nil
}

// Append appends a single event to the log
func (s *MongoEventStore) Append(ctx context.Context, evt event.DomainEvent) error {
	return s.AppendBatch(ctx, []event.DomainEvent{evt})
}

// AppendBatch appends one or more events atomically
func (s *MongoEventStore) AppendBatch(ctx context.Context, events []event.DomainEvent) error {
	if len(events) == 0 {
		return appcore.ErrEmptyBatch
	}
	for _, evt := range events {
		if err := validateEvent(evt); err != nil {
			return err
		}
	}

	envelopes, err := s.serializer.SerializeMany(events)
	if err != nil {
		return err
	}

	session, err := s.client.StartSession()
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to start MongoDB session for event store",
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(txCtx context.Context) (any, error) {
		// validate per-aggregate versions against the committed log
		staged := make(map[string]int, len(envelopes))
		for _, env := range envelopes {
			count, cErr := s.events.CountDocuments(txCtx, bson.M{"aggregate_id": env.AggregateID})
			if cErr != nil {
				return nil, fmt.Errorf("failed to count aggregate events: %w", cErr)
			}
			next := int(count) + staged[env.AggregateID] + 1
			if env.Version != next {
				return nil, fmt.Errorf("%w: aggregate %s expected version %d, got %d",
					appcore.ErrVersionConflict, env.AggregateID, next, env.Version)
			}
			staged[env.AggregateID]++
		}

		// allocate a contiguous block of global sequence numbers
		var counter struct {
			Seq uint64 `bson:"seq"`
		}
		findErr := s.counters.FindOneAndUpdate(txCtx,
			bson.M{"_id": seqCounterID},
			bson.M{"$inc": bson.M{"seq": int64(len(envelopes))}},
			options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
		).Decode(&counter)
		if findErr != nil {
			return nil, fmt.Errorf("failed to allocate sequence block: %w", findErr)
		}
		base := counter.Seq - uint64(len(envelopes)) + 1

		docs := make([]any, len(envelopes))
		for i, env := range envelopes {
			env.Seq = base + uint64(i)
			docs[i] = env
		}

		if _, insErr := s.events.InsertMany(txCtx, docs); insErr != nil {
			if mongo.IsDuplicateKeyError(insErr) {
				s.logger.WarnContext(ctx, "duplicate key on event append",
					slog.Int("events_count", len(envelopes)),
				)
				return nil, appcore.ErrVersionConflict
			}
			return nil, fmt.Errorf("failed to insert events: %w", insErr)
		}
		return nil, nil
	})
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

// GetAll returns every event in global append order
func (s *MongoEventStore) GetAll(ctx context.Context) ([]event.DomainEvent, error) {
	cursor, err := s.events.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	return s.decodeCursor(ctx, cursor)
}

// GetByID returns every event for an aggregate in order
func (s *MongoEventStore) GetByID(ctx context.Context, aggregateID string) ([]event.DomainEvent, error) {
	cursor, err := s.events.Find(ctx,
		bson.M{"aggregate_id": aggregateID},
		options.Find().SetSort(bson.D{{Key: "version", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query aggregate events: %w", err)
	}
	return s.decodeCursor(ctx, cursor)
}

// Subscribe registers a change listener
func (s *MongoEventStore) Subscribe(fn func()) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *MongoEventStore) decodeCursor(ctx context.Context, cursor *mongo.Cursor) ([]event.DomainEvent, error) {
	defer func() { _ = cursor.Close(ctx) }()

	var envelopes []*Envelope
	for cursor.Next(ctx) {
		var env Envelope
		if err := cursor.Decode(&env); err != nil {
			return nil, fmt.Errorf("failed to decode envelope: %w", err)
		}
		envelopes = append(envelopes, &env)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return s.serializer.DeserializeMany(envelopes)
}

func (s *MongoEventStore) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
