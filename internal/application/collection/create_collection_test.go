package collection_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcollection "github.com/psychosledge/squickr-life/internal/application/collection"
	"github.com/psychosledge/squickr-life/internal/domain/clock"
	"github.com/psychosledge/squickr-life/internal/domain/collection"
	"github.com/psychosledge/squickr-life/internal/domain/errs"
	"github.com/psychosledge/squickr-life/internal/infrastructure/eventstore"
	"github.com/psychosledge/squickr-life/internal/projection"
)

func testContext() context.Context {
	return context.Background()
}

type testEnv struct {
	store       *eventstore.InMemoryEventStore
	collections *projection.CollectionList
	clock       *clock.Fixed
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := eventstore.NewInMemoryEventStore()
	collections := projection.NewCollectionList(store, nil)
	t.Cleanup(collections.Close)
	return &testEnv{
		store:       store,
		collections: collections,
		clock:       clock.NewFixed(time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)),
	}
}

func (e *testEnv) create(t *testing.T, cmd appcollection.CreateCollectionCommand) appcollection.CreateResult {
	t.Helper()
	uc := appcollection.NewCreateCollectionUseCase(e.store, e.collections, e.clock)
	result, err := uc.Execute(testContext(), cmd)
	require.NoError(t, err)
	return result
}

func TestCreateCollectionUseCase_DefaultsToLog(t *testing.T) {
	env := newTestEnv(t)

	result := env.create(t, appcollection.CreateCollectionCommand{Name: "Groceries"})

	got, ok, err := env.collections.GetCollectionByID(testContext(), result.CollectionID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, collection.TypeLog, got.Type)
	assert.Equal(t, "Groceries", got.Name)
	assert.NotEmpty(t, got.Order)
	assert.Empty(t, got.Date)
}

// S5: creating a second daily log for the same date returns the first id.
func TestCreateCollectionUseCase_DuplicateDailyLog(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	first := env.create(t, appcollection.CreateCollectionCommand{
		Name: "Sat Feb 1",
		Type: collection.TypeDaily,
		Date: "2026-02-01",
	})

	// Act
	second := env.create(t, appcollection.CreateCollectionCommand{
		Name: "Other name",
		Type: collection.TypeDaily,
		Date: "2026-02-01",
	})

	// Assert
	assert.Equal(t, first.CollectionID, second.CollectionID)
	assert.True(t, second.Existing)
	assert.Equal(t, 1, env.store.Len())
}

func TestCreateCollectionUseCase_DateFormatPerType(t *testing.T) {
	env := newTestEnv(t)
	uc := appcollection.NewCreateCollectionUseCase(env.store, env.collections, env.clock)

	cases := []struct {
		name string
		cmd  appcollection.CreateCollectionCommand
		ok   bool
	}{
		{"daily valid", appcollection.CreateCollectionCommand{Name: "d", Type: collection.TypeDaily, Date: "2026-02-01"}, true},
		{"daily wrong layout", appcollection.CreateCollectionCommand{Name: "d", Type: collection.TypeDaily, Date: "2026-02"}, false},
		{"daily missing", appcollection.CreateCollectionCommand{Name: "d", Type: collection.TypeDaily}, false},
		{"monthly valid", appcollection.CreateCollectionCommand{Name: "m", Type: collection.TypeMonthly, Date: "2026-02"}, true},
		{"monthly wrong layout", appcollection.CreateCollectionCommand{Name: "m", Type: collection.TypeMonthly, Date: "2026-02-01"}, false},
		{"yearly valid", appcollection.CreateCollectionCommand{Name: "y", Type: collection.TypeYearly, Date: "2026"}, true},
		{"custom forbids date", appcollection.CreateCollectionCommand{Name: "c", Type: collection.TypeCustom, Date: "2026-02-01"}, false},
		{"custom without date", appcollection.CreateCollectionCommand{Name: "c", Type: collection.TypeCustom}, true},
		{"unknown type", appcollection.CreateCollectionCommand{Name: "u", Type: "weekly"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(testContext(), tc.cmd)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidInput)
			}
		})
	}
}

func TestCreateCollectionUseCase_DuplicateNameWindow(t *testing.T) {
	// Arrange
	env := newTestEnv(t)
	first := env.create(t, appcollection.CreateCollectionCommand{Name: "Groceries", UserID: "u1"})

	// Act: inside the window, a normalized-name match returns the existing id
	env.clock.Advance(2 * time.Second)
	inWindow := env.create(t, appcollection.CreateCollectionCommand{Name: "  groceries ", UserID: "u1"})

	// a different user is never deduped
	other := env.create(t, appcollection.CreateCollectionCommand{Name: "Groceries", UserID: "u2"})

	// outside the window duplicates get distinct ids
	env.clock.Advance(10 * time.Second)
	late := env.create(t, appcollection.CreateCollectionCommand{Name: "Groceries", UserID: "u1"})

	// Assert
	assert.Equal(t, first.CollectionID, inWindow.CollectionID)
	assert.True(t, inWindow.Existing)
	assert.NotEqual(t, first.CollectionID, other.CollectionID)
	assert.NotEqual(t, first.CollectionID, late.CollectionID)
	assert.False(t, late.Existing)
}

func TestCreateCollectionUseCase_OrderedAfterLast(t *testing.T) {
	env := newTestEnv(t)
	a := env.create(t, appcollection.CreateCollectionCommand{Name: "first"})
	env.clock.Advance(10 * time.Second)
	b := env.create(t, appcollection.CreateCollectionCommand{Name: "second"})

	all, err := env.collections.GetCollections(testContext())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.CollectionID, all[0].ID)
	assert.Equal(t, b.CollectionID, all[1].ID)
	assert.Less(t, all[0].Order, all[1].Order)
}
