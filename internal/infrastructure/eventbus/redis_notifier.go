// Package eventbus propagates event-store change signals between processes
// over Redis Pub/Sub. The payload carries no change summary: receivers
// re-read their projections, the same contract local store subscribers get.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
)

// DefaultChannel is the Redis channel change signals travel on.
const DefaultChannel = "squickr:changes"

const publishTimeout = 5 * time.Second

// changeSignal is the wire form of one store notification.
type changeSignal struct {
	Source string    `json:"source"`
	SentAt time.Time `json:"sent_at"`
}

// RedisNotifier bridges a local event store and a Redis channel: it
// publishes a signal after every local append and forwards remote signals
// into a local callback.
type RedisNotifier struct {
	client  *redis.Client
	channel string
	source  string
	logger  *slog.Logger

	unsubscribe func()
	cancel      context.CancelFunc
}

// NotifierOption configures the RedisNotifier.
type NotifierOption func(*RedisNotifier)

// WithChannel overrides the Redis channel name.
func WithChannel(channel string) NotifierOption {
	return func(n *RedisNotifier) {
		n.channel = channel
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) NotifierOption {
	return func(n *RedisNotifier) {
		n.logger = logger
	}
}

// NewRedisNotifier creates a notifier identified as source among its peers
func NewRedisNotifier(client *redis.Client, source string, opts ...NotifierOption) *RedisNotifier {
	n := &RedisNotifier{
		client:  client,
		channel: DefaultChannel,
		source:  source,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Attach subscribes the notifier to the store and starts forwarding remote
// signals to onRemoteChange. It returns when the subscription is active.
func (n *RedisNotifier) Attach(ctx context.Context, store appcore.EventStore, onRemoteChange func()) error {
	n.unsubscribe = store.Subscribe(func() {
		n.publish()
	})

	runCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel

	pubsub := n.client.Subscribe(runCtx, n.channel)
	if _, err := pubsub.Receive(runCtx); err != nil {
		cancel()
		return fmt.Errorf("failed to subscribe to %s: %w", n.channel, err)
	}

	go n.consume(runCtx, pubsub, onRemoteChange)
	return nil
}

// Close stops forwarding in both directions
func (n *RedisNotifier) Close() {
	if n.unsubscribe != nil {
		n.unsubscribe()
		n.unsubscribe = nil
	}
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}

func (n *RedisNotifier) publish() {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	payload, err := json.Marshal(changeSignal{Source: n.source, SentAt: time.Now().UTC()})
	if err != nil {
		n.logger.ErrorContext(ctx, "failed to marshal change signal",
			slog.String("error", err.Error()),
		)
		return
	}
	if err = n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		n.logger.ErrorContext(ctx, "failed to publish change signal",
			slog.String("channel", n.channel),
			slog.String("error", err.Error()),
		)
	}
}

func (n *RedisNotifier) consume(ctx context.Context, pubsub *redis.PubSub, onRemoteChange func()) {
	defer func() { _ = pubsub.Close() }()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var signal changeSignal
			if err := json.Unmarshal([]byte(msg.Payload), &signal); err != nil {
				n.logger.WarnContext(ctx, "dropping malformed change signal",
					slog.String("error", err.Error()),
				)
				continue
			}
			// our own publications come back on the channel; the local
			// store already notified its subscribers directly
			if signal.Source == n.source {
				continue
			}
			if onRemoteChange != nil {
				onRemoteChange()
			}
		}
	}
}
