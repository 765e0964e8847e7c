package eventstore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync"

	bolt "go.etcd.io/bbolt"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/event"
)

var (
	// bucketEvents holds canonical envelopes keyed by big-endian global sequence
	bucketEvents = []byte("events")

	// bucketAggregates holds, per aggregate id, a nested bucket mapping
	// version to the event's global sequence
	bucketAggregates = []byte("aggregates")
)

// BoltEventStore implements the EventStore on an embedded bbolt database.
// One read-write transaction per append makes batches atomic for free.
type BoltEventStore struct {
	db         *bolt.DB
	serializer *EventSerializer

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewBoltEventStore opens (or creates) the database at path
func NewBoltEventStore(path string) (*BoltEventStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketEvents, bucketAggregates} {
			if _, bErr := tx.CreateBucketIfNotExists(bucket); bErr != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, bErr)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltEventStore{
		db:         db,
		serializer: NewEventSerializer(),
		subs:       make(map[int]func()),
	}, nil
}

// Close closes the database
func (s *BoltEventStore) Close() error {
	return s.db.Close()
}

// Append appends a single event to the log
func (s *BoltEventStore) Append(ctx context.Context, evt event.DomainEvent) error {
	return s.AppendBatch(ctx, []event.DomainEvent{evt})
}

// AppendBatch appends one or more events atomically
func (s *BoltEventStore) AppendBatch(_ context.Context, events []event.DomainEvent) error {
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

	err = s.db.Update(func(tx *bolt.Tx) error {
		eventsBucket := tx.Bucket(bucketEvents)
		aggregates := tx.Bucket(bucketAggregates)

		for i, env := range envelopes {
			aggBucket, aggErr := aggregates.CreateBucketIfNotExists([]byte(env.AggregateID))
			if aggErr != nil {
				return fmt.Errorf("failed to index aggregate %s: %w", env.AggregateID, aggErr)
			}
			// the cursor sees keys staged earlier in this transaction
			next := 1
			if last, _ := aggBucket.Cursor().Last(); last != nil {
				next = int(binary.BigEndian.Uint64(last)) + 1
			}
			if env.Version != next {
				return fmt.Errorf("%w: aggregate %s expected version %d, got %d",
					appcore.ErrVersionConflict, env.AggregateID, next, env.Version)
			}

			seq, seqErr := eventsBucket.NextSequence()
			if seqErr != nil {
				return fmt.Errorf("failed to allocate sequence: %w", seqErr)
			}
			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, seq)

			data, mErr := json.Marshal(env)
			if mErr != nil {
				return fmt.Errorf("failed to marshal envelope at index %d: %w", i, mErr)
			}
			if pErr := eventsBucket.Put(key, data); pErr != nil {
				return pErr
			}

			verKey := make([]byte, 8)
			binary.BigEndian.PutUint64(verKey, uint64(env.Version))
			if pErr := aggBucket.Put(verKey, key); pErr != nil {
				return pErr
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notify()
	return nil
}

// GetAll returns every event in global append order
func (s *BoltEventStore) GetAll(_ context.Context) ([]event.DomainEvent, error) {
	var envelopes []*Envelope
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEvents).ForEach(func(_, v []byte) error {
			var env Envelope
			if uErr := json.Unmarshal(v, &env); uErr != nil {
				return fmt.Errorf("failed to unmarshal envelope: %w", uErr)
			}
			envelopes = append(envelopes, &env)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return s.serializer.DeserializeMany(envelopes)
}

// GetByID returns every event for an aggregate in order
func (s *BoltEventStore) GetByID(_ context.Context, aggregateID string) ([]event.DomainEvent, error) {
	var envelopes []*Envelope
	err := s.db.View(func(tx *bolt.Tx) error {
		aggBucket := tx.Bucket(bucketAggregates).Bucket([]byte(aggregateID))
		if aggBucket == nil {
			return nil
		}
		eventsBucket := tx.Bucket(bucketEvents)
		return aggBucket.ForEach(func(_, seqKey []byte) error {
			data := eventsBucket.Get(seqKey)
			if data == nil {
				return fmt.Errorf("missing event at sequence %d for aggregate %s",
					binary.BigEndian.Uint64(seqKey), aggregateID)
			}
			var env Envelope
			if uErr := json.Unmarshal(data, &env); uErr != nil {
				return fmt.Errorf("failed to unmarshal envelope: %w", uErr)
			}
			envelopes = append(envelopes, &env)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return s.serializer.DeserializeMany(envelopes)
}

// Subscribe registers a change listener
func (s *BoltEventStore) Subscribe(fn func()) func() {
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

func (s *BoltEventStore) notify() {
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
