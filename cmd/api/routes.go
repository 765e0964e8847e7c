package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appcollection "github.com/psychosledge/squickr-life/internal/application/collection"
	appentry "github.com/psychosledge/squickr-life/internal/application/entry"
	apptask "github.com/psychosledge/squickr-life/internal/application/task"
	"github.com/psychosledge/squickr-life/internal/domain/collection"
	"github.com/psychosledge/squickr-life/internal/infrastructure/httpserver"
	"github.com/psychosledge/squickr-life/internal/middleware"
)

// SetupRoutes registers middleware and the API surface on the server.
func SetupRoutes(server *httpserver.Server, c *Container) {
	server.Use(
		middleware.Recovery(middleware.DefaultRecoveryConfig()),
		middleware.Logging(middleware.LoggingConfig{Logger: c.logger, SkipPaths: []string{"/health"}}),
		middleware.CORS(middleware.DefaultCORSConfig()),
	)

	e := server.Echo()
	h := &apiHandler{c: c}

	e.GET("/health", h.health)
	e.GET("/ws", h.changeFeed)

	api := e.Group("/api/v1")

	api.POST("/collections", h.createCollection)
	api.GET("/collections", h.listCollections)
	api.GET("/collections/deleted", h.listDeletedCollections)
	api.GET("/collections/:id", h.getCollection)
	api.GET("/collections/:id/entries", h.collectionEntries)
	api.PUT("/collections/:id/name", h.renameCollection)
	api.PUT("/collections/:id/order", h.reorderCollection)
	api.PUT("/collections/:id/settings", h.updateCollectionSettings)
	api.DELETE("/collections/:id", h.deleteCollection)
	api.POST("/collections/:id/restore", h.restoreCollection)
	api.POST("/collections/:id/favorite", h.favoriteCollection)
	api.DELETE("/collections/:id/favorite", h.unfavoriteCollection)
	api.POST("/collections/:id/access", h.accessCollection)

	api.GET("/entries", h.listEntries)
	api.POST("/entries/:id/move", h.moveEntry)

	api.GET("/tasks", h.listTasks)
	api.POST("/tasks", h.createTask)
	api.POST("/tasks/:id/subtasks", h.createSubTask)
	api.POST("/tasks/:id/complete", h.completeTask)
	api.POST("/tasks/:id/reopen", h.reopenTask)
	api.DELETE("/tasks/:id", h.deleteTask)
	api.PUT("/tasks/:id/title", h.updateTaskTitle)
	api.PUT("/tasks/:id/order", h.reorderTask)
	api.POST("/tasks/:id/migrate", h.migrateTask)
	api.POST("/tasks/:id/collections", h.addTaskToCollection)
	api.DELETE("/tasks/:id/collections/:collectionId", h.removeTaskFromCollection)

	api.POST("/notes", h.createNote)
	api.PUT("/notes/:id/content", h.updateNoteContent)
	api.PUT("/notes/:id/order", h.reorderNote)
	api.DELETE("/notes/:id", h.deleteNote)
	api.POST("/notes/:id/migrate", h.migrateNote)

	api.POST("/events", h.createEvent)
	api.PUT("/events/:id/content", h.updateEventContent)
	api.PUT("/events/:id/date", h.setEventDate)
	api.PUT("/events/:id/order", h.reorderEvent)
	api.DELETE("/events/:id", h.deleteEvent)
	api.POST("/events/:id/migrate", h.migrateEvent)
}

type apiHandler struct {
	c *Container
}

func (h *apiHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *apiHandler) changeFeed(c echo.Context) error {
	h.c.Feed.ServeHTTP(c.Response(), c.Request())
	return nil
}

// Collections

type createCollectionRequest struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Date   string `json:"date"`
	UserID string `json:"userId"`
}

func (h *apiHandler) createCollection(c echo.Context) error {
	var req createCollectionRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	result, err := h.c.CreateCollection.Execute(c.Request().Context(), appcollection.CreateCollectionCommand{
		Name:   req.Name,
		Type:   collection.Type(req.Type),
		Date:   req.Date,
		UserID: req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	status := http.StatusCreated
	if result.Existing {
		status = http.StatusOK
	}
	return c.JSON(status, map[string]any{"id": result.CollectionID, "existing": result.Existing})
}

func (h *apiHandler) listCollections(c echo.Context) error {
	collections, err := h.c.Collections.GetCollections(c.Request().Context())
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, collections)
}

func (h *apiHandler) listDeletedCollections(c echo.Context) error {
	collections, err := h.c.Collections.GetDeletedCollections(c.Request().Context())
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, collections)
}

func (h *apiHandler) getCollection(c echo.Context) error {
	col, ok, err := h.c.Collections.GetCollectionByIDIncludingDeleted(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	if !ok {
		return c.JSON(http.StatusNotFound, httpserver.ErrorResponse{Error: "collection not found"})
	}
	return c.JSON(http.StatusOK, col)
}

func (h *apiHandler) collectionEntries(c echo.Context) error {
	entries, err := h.c.Entries.GetEntriesForCollectionView(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

type nameRequest struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
}

func (h *apiHandler) renameCollection(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	_, err := h.c.RenameCollection.Execute(c.Request().Context(), appcollection.RenameCollectionCommand{
		CollectionID: c.Param("id"),
		Name:         req.Name,
		UserID:       req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type reorderRequest struct {
	PreviousID string `json:"previousId"`
	NextID     string `json:"nextId"`
	UserID     string `json:"userId"`
}

func (h *apiHandler) reorderCollection(c echo.Context) error {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	_, err := h.c.ReorderCollection.Execute(c.Request().Context(), appcollection.ReorderCollectionCommand{
		CollectionID:         c.Param("id"),
		PreviousCollectionID: req.PreviousID,
		NextCollectionID:     req.NextID,
		UserID:               req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type settingsRequest struct {
	Settings collection.Settings `json:"settings"`
	UserID   string              `json:"userId"`
}

func (h *apiHandler) updateCollectionSettings(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	_, err := h.c.UpdateSettings.Execute(c.Request().Context(), appcollection.UpdateCollectionSettingsCommand{
		CollectionID: c.Param("id"),
		Settings:     req.Settings,
		UserID:       req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) deleteCollection(c echo.Context) error {
	_, err := h.c.DeleteCollection.Execute(c.Request().Context(), appcollection.DeleteCollectionCommand{
		CollectionID: c.Param("id"),
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) restoreCollection(c echo.Context) error {
	_, err := h.c.RestoreCollection.Execute(c.Request().Context(), appcollection.RestoreCollectionCommand{
		CollectionID: c.Param("id"),
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) favoriteCollection(c echo.Context) error {
	_, err := h.c.Favorite.Execute(c.Request().Context(), appcollection.FavoriteCollectionCommand{
		CollectionID: c.Param("id"),
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) unfavoriteCollection(c echo.Context) error {
	_, err := h.c.Unfavorite.Execute(c.Request().Context(), appcollection.UnfavoriteCollectionCommand{
		CollectionID: c.Param("id"),
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) accessCollection(c echo.Context) error {
	_, err := h.c.Access.Execute(c.Request().Context(), appcollection.AccessCollectionCommand{
		CollectionID: c.Param("id"),
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Entries

func (h *apiHandler) listEntries(c echo.Context) error {
	entries, err := h.c.Entries.GetEntries(c.Request().Context())
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

type moveRequest struct {
	CollectionID string `json:"collectionId"`
	UserID       string `json:"userId"`
}

func (h *apiHandler) moveEntry(c echo.Context) error {
	var req moveRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	result, err := h.c.MoveEntry.Execute(c.Request().Context(), appentry.MoveEntryToCollectionCommand{
		EntryID:      c.Param("id"),
		CollectionID: req.CollectionID,
		UserID:       req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"events": len(result.Events)})
}

// Tasks

type createTaskRequest struct {
	Title        string `json:"title"`
	CollectionID string `json:"collectionId"`
	UserID       string `json:"userId"`
}

func (h *apiHandler) listTasks(c echo.Context) error {
	tasks, err := h.c.Tasks.GetTasks(c.Request().Context())
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *apiHandler) createTask(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	result, err := h.c.CreateTask.Execute(c.Request().Context(), apptask.CreateTaskCommand{
		Title:        req.Title,
		CollectionID: req.CollectionID,
		UserID:       req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": result.TaskID})
}

type createSubTaskRequest struct {
	Title  string `json:"title"`
	UserID string `json:"userId"`
}

func (h *apiHandler) createSubTask(c echo.Context) error {
	var req createSubTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	result, err := h.c.CreateSubTask.Execute(c.Request().Context(), apptask.CreateSubTaskCommand{
		Title:         req.Title,
		ParentEntryID: c.Param("id"),
		UserID:        req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": result.TaskID})
}

type cascadeRequest struct {
	Cascade   bool `json:"cascade"`
	Confirmed bool `json:"confirmed"`
}

func (h *apiHandler) completeTask(c echo.Context) error {
	var req cascadeRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	ctx := c.Request().Context()
	if req.Cascade {
		_, err := h.c.CompleteParent.Execute(ctx, apptask.CompleteParentTaskCommand{
			TaskID:    c.Param("id"),
			Confirmed: req.Confirmed,
		})
		if err != nil {
			return httpserver.WriteError(c, err)
		}
	} else {
		_, err := h.c.CompleteTask.Execute(ctx, apptask.CompleteTaskCommand{TaskID: c.Param("id")})
		if err != nil {
			return httpserver.WriteError(c, err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) reopenTask(c echo.Context) error {
	_, err := h.c.ReopenTask.Execute(c.Request().Context(), apptask.ReopenTaskCommand{TaskID: c.Param("id")})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) deleteTask(c echo.Context) error {
	ctx := c.Request().Context()
	if c.QueryParam("cascade") == "true" {
		_, err := h.c.DeleteParent.Execute(ctx, apptask.DeleteParentTaskCommand{
			TaskID:    c.Param("id"),
			Confirmed: c.QueryParam("confirmed") == "true",
		})
		if err != nil {
			return httpserver.WriteError(c, err)
		}
	} else {
		_, err := h.c.DeleteTask.Execute(ctx, apptask.DeleteTaskCommand{TaskID: c.Param("id")})
		if err != nil {
			return httpserver.WriteError(c, err)
		}
	}
	return c.NoContent(http.StatusNoContent)
}

type titleRequest struct {
	Title  string `json:"title"`
	UserID string `json:"userId"`
}

func (h *apiHandler) updateTaskTitle(c echo.Context) error {
	var req titleRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	_, err := h.c.UpdateTaskTitle.Execute(c.Request().Context(), apptask.UpdateTaskTitleCommand{
		TaskID: c.Param("id"),
		Title:  req.Title,
		UserID: req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) reorderTask(c echo.Context) error {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	_, err := h.c.ReorderTask.Execute(c.Request().Context(), apptask.ReorderTaskCommand{
		TaskID:          c.Param("id"),
		PreviousEntryID: req.PreviousID,
		NextEntryID:     req.NextID,
		UserID:          req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type migrateRequest struct {
	TargetCollectionID string `json:"targetCollectionId"`
	UserID             string `json:"userId"`
}

func (h *apiHandler) migrateTask(c echo.Context) error {
	var req migrateRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	result, err := h.c.MigrateTask.Execute(c.Request().Context(), apptask.MigrateTaskCommand{
		TaskID:             c.Param("id"),
		TargetCollectionID: req.TargetCollectionID,
		UserID:             req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"migratedToId":    result.MigratedToID,
		"childMigrations": result.ChildMigrations,
	})
}

type membershipRequest struct {
	CollectionID string `json:"collectionId"`
	UserID       string `json:"userId"`
}

func (h *apiHandler) addTaskToCollection(c echo.Context) error {
	var req membershipRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	_, err := h.c.AddToCollection.Execute(c.Request().Context(), apptask.AddTaskToCollectionCommand{
		TaskID:       c.Param("id"),
		CollectionID: req.CollectionID,
		UserID:       req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) removeTaskFromCollection(c echo.Context) error {
	_, err := h.c.RemoveFromColl.Execute(c.Request().Context(), apptask.RemoveTaskFromCollectionCommand{
		TaskID:       c.Param("id"),
		CollectionID: c.Param("collectionId"),
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Notes

type contentRequest struct {
	Content      string `json:"content"`
	CollectionID string `json:"collectionId"`
	UserID       string `json:"userId"`
}

func (h *apiHandler) createNote(c echo.Context) error {
	var req contentRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	result, err := h.c.CreateNote.Execute(c.Request().Context(), appentry.CreateNoteCommand{
		Content:      req.Content,
		CollectionID: req.CollectionID,
		UserID:       req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": result.EntryID})
}

func (h *apiHandler) updateNoteContent(c echo.Context) error {
	var req contentRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	_, err := h.c.UpdateNoteContent.Execute(c.Request().Context(), appentry.UpdateNoteContentCommand{
		NoteID:  c.Param("id"),
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) reorderNote(c echo.Context) error {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	_, err := h.c.ReorderNote.Execute(c.Request().Context(), appentry.ReorderNoteCommand{
		NoteID:          c.Param("id"),
		PreviousEntryID: req.PreviousID,
		NextEntryID:     req.NextID,
		UserID:          req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) deleteNote(c echo.Context) error {
	_, err := h.c.DeleteNote.Execute(c.Request().Context(), appentry.DeleteNoteCommand{NoteID: c.Param("id")})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) migrateNote(c echo.Context) error {
	var req migrateRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	result, err := h.c.MigrateNote.Execute(c.Request().Context(), appentry.MigrateNoteCommand{
		NoteID:             c.Param("id"),
		TargetCollectionID: req.TargetCollectionID,
		UserID:             req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"migratedToId": result.MigratedToID})
}

// Journal events

type createEventRequest struct {
	Content      string `json:"content"`
	CollectionID string `json:"collectionId"`
	EventDate    string `json:"eventDate"`
	UserID       string `json:"userId"`
}

func (h *apiHandler) createEvent(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	result, err := h.c.CreateEvent.Execute(c.Request().Context(), appentry.CreateEventCommand{
		Content:      req.Content,
		CollectionID: req.CollectionID,
		EventDate:    req.EventDate,
		UserID:       req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": result.EntryID})
}

func (h *apiHandler) updateEventContent(c echo.Context) error {
	var req contentRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	_, err := h.c.UpdateEventContent.Execute(c.Request().Context(), appentry.UpdateEventContentCommand{
		EventID: c.Param("id"),
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type eventDateRequest struct {
	EventDate string `json:"eventDate"`
	UserID    string `json:"userId"`
}

func (h *apiHandler) setEventDate(c echo.Context) error {
	var req eventDateRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	_, err := h.c.SetEventDate.Execute(c.Request().Context(), appentry.SetEventDateCommand{
		EventID:   c.Param("id"),
		EventDate: req.EventDate,
		UserID:    req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) reorderEvent(c echo.Context) error {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	_, err := h.c.ReorderEvent.Execute(c.Request().Context(), appentry.ReorderEventCommand{
		EventID:         c.Param("id"),
		PreviousEntryID: req.PreviousID,
		NextEntryID:     req.NextID,
		UserID:          req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) deleteEvent(c echo.Context) error {
	_, err := h.c.DeleteEvent.Execute(c.Request().Context(), appentry.DeleteEventCommand{EventID: c.Param("id")})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *apiHandler) migrateEvent(c echo.Context) error {
	var req migrateRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.WriteError(c, err)
	}
	result, err := h.c.MigrateEvent.Execute(c.Request().Context(), appentry.MigrateEventCommand{
		EventID:            c.Param("id"),
		TargetCollectionID: req.TargetCollectionID,
		UserID:             req.UserID,
	})
	if err != nil {
		return httpserver.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"migratedToId": result.MigratedToID})
}
