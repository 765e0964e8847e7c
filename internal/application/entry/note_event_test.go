package entry_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appentry "github.com/psychosledge/squickr-life/internal/application/entry"
	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/errs"
)

func TestCreateNoteUseCase(t *testing.T) {
	env := newTestEnv(t)

	noteID := env.createNote(t, "  remember this  ", "daily-log")

	got := env.getEntry(t, noteID)
	assert.Equal(t, entry.KindNote, got.Kind)
	assert.Equal(t, "remember this", got.Content)
	assert.Equal(t, "daily-log", got.CollectionID)
	assert.NotEmpty(t, got.Order)
}

func TestCreateNoteUseCase_ContentValidation(t *testing.T) {
	env := newTestEnv(t)
	useCase := appentry.NewCreateNoteUseCase(env.store, env.entries, env.clock)

	_, err := useCase.Execute(testContext(), appentry.CreateNoteCommand{Content: "  "})
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = useCase.Execute(testContext(), appentry.CreateNoteCommand{Content: strings.Repeat("y", 5001)})
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	assert.Equal(t, 0, env.store.Len())
}

func TestUpdateNoteContentUseCase(t *testing.T) {
	env := newTestEnv(t)
	noteID := env.createNote(t, "v1", "")
	useCase := appentry.NewUpdateNoteContentUseCase(env.store, env.entries, env.clock)

	_, err := useCase.Execute(testContext(), appentry.UpdateNoteContentCommand{NoteID: noteID, Content: "v2"})
	require.NoError(t, err)

	assert.Equal(t, "v2", env.getEntry(t, noteID).Content)

	// tasks are not notes
	taskID := env.createTask(t, "not a note", "")
	_, err = useCase.Execute(testContext(), appentry.UpdateNoteContentCommand{NoteID: taskID, Content: "nope"})
	require.Error(t, err)
}

func TestCreateEventUseCase_WithDate(t *testing.T) {
	env := newTestEnv(t)

	eventID := env.createEvent(t, "dentist", "daily-log", "2026-02-14")

	got := env.getEntry(t, eventID)
	assert.Equal(t, entry.KindEvent, got.Kind)
	assert.Equal(t, "2026-02-14", got.EventDate)
}

func TestCreateEventUseCase_RejectsBadDate(t *testing.T) {
	env := newTestEnv(t)
	useCase := appentry.NewCreateEventUseCase(env.store, env.entries, env.clock)

	_, err := useCase.Execute(testContext(), appentry.CreateEventCommand{
		Content:   "dentist",
		EventDate: "14.02.2026",
	})

	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestSetEventDateUseCase_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	eventID := env.createEvent(t, "dentist", "", "2026-02-14")
	useCase := appentry.NewSetEventDateUseCase(env.store, env.entries, env.clock)
	before := env.store.Len()

	result, err := useCase.Execute(testContext(), appentry.SetEventDateCommand{
		EventID:   eventID,
		EventDate: "2026-02-14",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Events)
	assert.Equal(t, before, env.store.Len())

	_, err = useCase.Execute(testContext(), appentry.SetEventDateCommand{EventID: eventID, EventDate: "2026-03-01"})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", env.getEntry(t, eventID).EventDate)
}

func TestMigrateNoteUseCase(t *testing.T) {
	env := newTestEnv(t)
	noteID := env.createNote(t, "carry me over", "col-A")
	useCase := appentry.NewMigrateNoteUseCase(env.store, env.entries, env.clock)

	result, err := useCase.Execute(testContext(), appentry.MigrateNoteCommand{
		NoteID:             noteID,
		TargetCollectionID: "col-B",
	})
	require.NoError(t, err)

	original := env.getEntry(t, noteID)
	assert.Equal(t, result.MigratedToID, original.MigratedTo)

	copyNote := env.getEntry(t, result.MigratedToID)
	assert.Equal(t, entry.KindNote, copyNote.Kind)
	assert.Equal(t, "carry me over", copyNote.Content)
	assert.Equal(t, "col-B", copyNote.CollectionID)
	assert.Equal(t, noteID, copyNote.MigratedFrom)

	// same target is idempotent, different target rejected
	again, err := useCase.Execute(testContext(), appentry.MigrateNoteCommand{
		NoteID:             noteID,
		TargetCollectionID: "col-B",
	})
	require.NoError(t, err)
	assert.Equal(t, result.MigratedToID, again.MigratedToID)
	assert.Empty(t, again.Events)

	_, err = useCase.Execute(testContext(), appentry.MigrateNoteCommand{
		NoteID:             noteID,
		TargetCollectionID: "col-C",
	})
	require.ErrorIs(t, err, errs.ErrAlreadyMigrated)
}

func TestDeleteNoteUseCase(t *testing.T) {
	env := newTestEnv(t)
	noteID := env.createNote(t, "gone soon", "")
	useCase := appentry.NewDeleteNoteUseCase(env.store, env.entries, env.clock)

	_, err := useCase.Execute(testContext(), appentry.DeleteNoteCommand{NoteID: noteID})
	require.NoError(t, err)

	got := env.getEntry(t, noteID)
	assert.True(t, got.Deleted)

	// deleting again fails: the note is gone from the live view
	_, err = useCase.Execute(testContext(), appentry.DeleteNoteCommand{NoteID: noteID})
	require.Error(t, err)
}

func TestReorderNoteUseCase_AcrossKinds(t *testing.T) {
	// a note can be reordered between a task and an event
	env := newTestEnv(t)
	taskID := env.createTask(t, "anchor task", "")
	eventID := env.createEvent(t, "anchor event", "", "")
	noteID := env.createNote(t, "wandering note", "")

	useCase := appentry.NewReorderNoteUseCase(env.store, env.entries, env.clock)
	_, err := useCase.Execute(testContext(), appentry.ReorderNoteCommand{
		NoteID:          noteID,
		PreviousEntryID: taskID,
		NextEntryID:     eventID,
	})
	require.NoError(t, err)

	taskOrder := env.getEntry(t, taskID).Order
	eventOrder := env.getEntry(t, eventID).Order
	noteOrder := env.getEntry(t, noteID).Order
	assert.Greater(t, noteOrder, taskOrder)
	assert.Less(t, noteOrder, eventOrder)
}
