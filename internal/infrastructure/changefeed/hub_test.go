package changefeed_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psychosledge/squickr-life/internal/domain/entry"
	"github.com/psychosledge/squickr-life/internal/domain/event"
	"github.com/psychosledge/squickr-life/internal/domain/uuid"
	"github.com/psychosledge/squickr-life/internal/infrastructure/changefeed"
	"github.com/psychosledge/squickr-life/internal/infrastructure/eventstore"
)

func dialHub(t *testing.T, hub *changefeed.Hub) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(hub)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_PushesChangeFrameOnAppend(t *testing.T) {
	// Arrange
	store := eventstore.NewInMemoryEventStore()
	hub := changefeed.NewHub(store, nil)
	t.Cleanup(hub.Close)
	conn := dialHub(t, hub)

	// give the hub a beat to register the client
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	// Act: append one event
	evt := entry.NewTaskCreated(uuid.NewUUID().String(), 1, time.Now().UTC(), event.Metadata{}, "hi", "", "a0", "")
	require.NoError(t, store.Append(context.Background(), evt))

	// Assert: a single "changed" frame arrives
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame struct {
		Type string `json:"type"`
	}
	require.NoError(t, json.Unmarshal(payload, &frame))
	assert.Equal(t, "changed", frame.Type)
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	store := eventstore.NewInMemoryEventStore()
	hub := changefeed.NewHub(store, nil)
	conn := dialHub(t, hub)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 },
		time.Second, 10*time.Millisecond)

	hub.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "connection closes after hub shutdown")
}
