package events

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	hub := NewHub(logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(hub.ServeClient))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_BroadcastsEventsToClients(t *testing.T) {
	hub := newTestHub(t)
	conn := dial(t, hub)

	// Give the register channel a moment to be serviced.
	time.Sleep(50 * time.Millisecond)

	hub.Publish(Event{
		Name: ReportVerified,
		Data: map[string]string{"report_id": "abc"},
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Name string            `json:"event"`
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, ReportVerified, event.Name)
	assert.Equal(t, "abc", event.Data["report_id"])
}

func TestHub_MultipleClientsReceiveSameEvent(t *testing.T) {
	hub := newTestHub(t)
	first := dial(t, hub)
	second := dial(t, hub)

	time.Sleep(50 * time.Millisecond)

	hub.Publish(Event{Name: ClaimRequested})

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, payload, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(payload), ClaimRequested)
	}
}

func TestNopPublisher_DiscardsEvents(t *testing.T) {
	// Compile-time and smoke check for the test double used across services.
	var p Publisher = NopPublisher{}
	p.Publish(Event{Name: ReportSubmitted})
}
