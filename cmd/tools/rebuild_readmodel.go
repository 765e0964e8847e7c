// Command rebuild_readmodel replays a persisted event log through the
// projections and prints a per-collection summary, verifying that the log
// folds cleanly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/infrastructure/eventstore"
	"github.com/psychosledge/squickr-life/internal/projection"
)

func main() {
	boltPath := flag.String("bolt", "squickr.db", "path to the bolt event log")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	store, err := eventstore.NewBoltEventStore(*boltPath)
	if err != nil {
		logger.Error("failed to open event log", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	events, err := store.GetAll(ctx)
	if err != nil {
		logger.Error("failed to read event log", slog.String("error", err.Error()))
		os.Exit(1)
	}

	entries := projection.FoldEntries(events)
	collections := projection.FoldCollections(events)

	fmt.Printf("log: %d events, %d entries, %d collections\n",
		len(events), len(entries), len(collections))

	ids := make([]string, 0, len(collections))
	for id := range collections {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		c := collections[id]
		state := "live"
		if c.IsDeleted() {
			state = "deleted"
		}
		live, ghosts := countForCollection(entries, id)
		fmt.Printf("  %s  %-30q %s/%s  entries=%d ghosts=%d\n",
			id, c.Name, c.Type, state, live, ghosts)
	}
}

func countForCollection(entries map[string]*entry.Entry, collectionID string) (live, ghosts int) {
	for _, e := range entries {
		if e.Deleted {
			continue
		}
		switch {
		case e.MigratedTo == "" && e.InCollection(collectionID):
			live++
		case e.MigratedTo != "" && e.ResidedIn(collectionID):
			ghosts++
		}
	}
	return live, ghosts
}
