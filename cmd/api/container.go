package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	appcollection "github.com/psychosledge/squickr-life/internal/application/collection"
	appentry "github.com/psychosledge/squickr-life/internal/application/entry"
	apptask "github.com/psychosledge/squickr-life/internal/application/task"
	"github.com/psychosledge/squickr-life/internal/config"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/uuid"
	"github.com/psychosledge/squickr-life/internal/infrastructure/changefeed"
	"github.com/psychosledge/squickr-life/internal/infrastructure/eventbus"
	"github.com/psychosledge/squickr-life/internal/infrastructure/eventstore"
	"github.com/psychosledge/squickr-life/internal/projection"
)

// Container wires the application graph: store, projections, use cases,
// and the optional cross-process notifier.
type Container struct {
	cfg    *config.Config
	logger *slog.Logger

	Store       appcore.EventStore
	Collections *projection.CollectionList
	Entries     *projection.EntryList
	Tasks       *projection.TaskList
	Feed        *changefeed.Hub

	CreateTask         *apptask.CreateTaskUseCase
	CreateSubTask      *apptask.CreateSubTaskUseCase
	CompleteTask       *apptask.CompleteTaskUseCase
	CompleteParent     *apptask.CompleteParentTaskUseCase
	ReopenTask         *apptask.ReopenTaskUseCase
	DeleteTask         *apptask.DeleteTaskUseCase
	DeleteParent       *apptask.DeleteParentTaskUseCase
	ReorderTask        *apptask.ReorderTaskUseCase
	UpdateTaskTitle    *apptask.UpdateTaskTitleUseCase
	MigrateTask        *apptask.MigrateTaskUseCase
	AddToCollection    *apptask.AddTaskToCollectionUseCase
	RemoveFromColl     *apptask.RemoveTaskFromCollectionUseCase
	CreateNote         *appentry.CreateNoteUseCase
	UpdateNoteContent  *appentry.UpdateNoteContentUseCase
	DeleteNote         *appentry.DeleteNoteUseCase
	ReorderNote        *appentry.ReorderNoteUseCase
	MigrateNote        *appentry.MigrateNoteUseCase
	CreateEvent        *appentry.CreateEventUseCase
	UpdateEventContent *appentry.UpdateEventContentUseCase
	SetEventDate       *appentry.SetEventDateUseCase
	DeleteEvent        *appentry.DeleteEventUseCase
	ReorderEvent       *appentry.ReorderEventUseCase
	MigrateEvent       *appentry.MigrateEventUseCase
	MoveEntry          *appentry.MoveEntryToCollectionUseCase
	CreateCollection   *appcollection.CreateCollectionUseCase
	RenameCollection   *appcollection.RenameCollectionUseCase
	ReorderCollection  *appcollection.ReorderCollectionUseCase
	DeleteCollection   *appcollection.DeleteCollectionUseCase
	RestoreCollection  *appcollection.RestoreCollectionUseCase
	UpdateSettings     *appcollection.UpdateCollectionSettingsUseCase
	Favorite           *appcollection.FavoriteCollectionUseCase
	Unfavorite         *appcollection.UnfavoriteCollectionUseCase
	Access             *appcollection.AccessCollectionUseCase

	notifier    *eventbus.RedisNotifier
	redisClient *redis.Client
	mongoClient *mongo.Client
	boltStore   *eventstore.BoltEventStore
}

// NewContainer builds the application graph from configuration
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Container{cfg: cfg, logger: logger}

	if err := c.buildStore(ctx); err != nil {
		return nil, err
	}

	c.Collections = projection.NewCollectionList(c.Store, logger)
	c.Entries = projection.NewEntryList(c.Store, logger)
	c.Tasks = projection.NewTaskList(c.Store, logger)
	c.Feed = changefeed.NewHub(c.Store, logger)

	clk := clock.System()
	c.CreateTask = apptask.NewCreateTaskUseCase(c.Store, c.Entries, clk)
	c.CreateSubTask = apptask.NewCreateSubTaskUseCase(c.Store, c.Entries, clk)
	c.CompleteTask = apptask.NewCompleteTaskUseCase(c.Store, c.Entries, clk)
	c.CompleteParent = apptask.NewCompleteParentTaskUseCase(c.Store, c.Entries, clk)
	c.ReopenTask = apptask.NewReopenTaskUseCase(c.Store, c.Entries, clk)
	c.DeleteTask = apptask.NewDeleteTaskUseCase(c.Store, c.Entries, clk)
	c.DeleteParent = apptask.NewDeleteParentTaskUseCase(c.Store, c.Entries, clk)
	c.ReorderTask = apptask.NewReorderTaskUseCase(c.Store, c.Entries, clk)
	c.UpdateTaskTitle = apptask.NewUpdateTaskTitleUseCase(c.Store, c.Entries, clk)
	c.MigrateTask = apptask.NewMigrateTaskUseCase(c.Store, c.Entries, clk)
	c.AddToCollection = apptask.NewAddTaskToCollectionUseCase(c.Store, c.Entries, clk)
	c.RemoveFromColl = apptask.NewRemoveTaskFromCollectionUseCase(c.Store, c.Entries, clk)
	c.CreateNote = appentry.NewCreateNoteUseCase(c.Store, c.Entries, clk)
	c.UpdateNoteContent = appentry.NewUpdateNoteContentUseCase(c.Store, c.Entries, clk)
	c.DeleteNote = appentry.NewDeleteNoteUseCase(c.Store, c.Entries, clk)
	c.ReorderNote = appentry.NewReorderNoteUseCase(c.Store, c.Entries, clk)
	c.MigrateNote = appentry.NewMigrateNoteUseCase(c.Store, c.Entries, clk)
	c.CreateEvent = appentry.NewCreateEventUseCase(c.Store, c.Entries, clk)
	c.UpdateEventContent = appentry.NewUpdateEventContentUseCase(c.Store, c.Entries, clk)
	c.SetEventDate = appentry.NewSetEventDateUseCase(c.Store, c.Entries, clk)
	c.DeleteEvent = appentry.NewDeleteEventUseCase(c.Store, c.Entries, clk)
	c.ReorderEvent = appentry.NewReorderEventUseCase(c.Store, c.Entries, clk)
	c.MigrateEvent = appentry.NewMigrateEventUseCase(c.Store, c.Entries, clk)
	c.MoveEntry = appentry.NewMoveEntryToCollectionUseCase(c.Store, c.Entries, clk)
	c.CreateCollection = appcollection.NewCreateCollectionUseCase(c.Store, c.Collections, clk)
	c.RenameCollection = appcollection.NewRenameCollectionUseCase(c.Store, c.Collections, clk)
	c.ReorderCollection = appcollection.NewReorderCollectionUseCase(c.Store, c.Collections, clk)
	c.DeleteCollection = appcollection.NewDeleteCollectionUseCase(c.Store, c.Collections, clk)
	c.RestoreCollection = appcollection.NewRestoreCollectionUseCase(c.Store, c.Collections, clk)
	c.UpdateSettings = appcollection.NewUpdateCollectionSettingsUseCase(c.Store, c.Collections, clk)
	c.Favorite = appcollection.NewFavoriteCollectionUseCase(c.Store, c.Collections, clk)
	c.Unfavorite = appcollection.NewUnfavoriteCollectionUseCase(c.Store, c.Collections, clk)
	c.Access = appcollection.NewAccessCollectionUseCase(c.Store, c.Collections, clk)

	if err := c.startNotifier(ctx); err != nil {
		c.closeInfra()
		return nil, err
	}
	return c, nil
}

func (c *Container) buildStore(ctx context.Context) error {
	switch c.cfg.Storage.Backend {
	case config.StorageMemory:
		c.Store = eventstore.NewInMemoryEventStore()

	case config.StorageBolt:
		store, err := eventstore.NewBoltEventStore(c.cfg.Storage.BoltPath)
		if err != nil {
			return fmt.Errorf("failed to open bolt store: %w", err)
		}
		c.boltStore = store
		c.Store = store

	case config.StorageMongo:
		connectCtx, cancel := context.WithTimeout(ctx, c.cfg.MongoDB.Timeout)
		defer cancel()

		client, err := mongo.Connect(options.Client().ApplyURI(c.cfg.MongoDB.URI))
		if err != nil {
			return fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
		if err = client.Ping(connectCtx, nil); err != nil {
			return fmt.Errorf("failed to ping MongoDB: %w", err)
		}
		store := eventstore.NewMongoEventStore(client, c.cfg.MongoDB.Database, eventstore.WithLogger(c.logger))
		if err = store.EnsureIndexes(connectCtx); err != nil {
			return err
		}
		c.mongoClient = client
		c.Store = store

	default:
		return fmt.Errorf("unknown storage backend %q", c.cfg.Storage.Backend)
	}
	return nil
}

func (c *Container) startNotifier(ctx context.Context) error {
	if c.cfg.Redis.Addr == "" {
		return nil
	}
	c.redisClient = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.Addr,
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
		PoolSize: c.cfg.Redis.PoolSize,
	})
	c.notifier = eventbus.NewRedisNotifier(
		c.redisClient,
		uuid.NewUUID().String(),
		eventbus.WithLogger(c.logger),
	)
	// remote change signals are only logged: the change feed and the
	// projections listen to local store appends and are not told about them
	return c.notifier.Attach(ctx, c.Store, func() {
		c.logger.Debug("remote change signal received")
	})
}

// Close tears the container down in reverse dependency order
func (c *Container) Close() error {
	if c.notifier != nil {
		c.notifier.Close()
	}
	c.Feed.Close()
	c.Collections.Close()
	c.Entries.Close()
	c.Tasks.Close()
	return c.closeInfra()
}

func (c *Container) closeInfra() error {
	var firstErr error
	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.boltStore != nil {
		if err := c.boltStore.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.mongoClient != nil {
		if err := c.mongoClient.Disconnect(context.Background()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
