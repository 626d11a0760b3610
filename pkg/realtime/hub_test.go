package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendzone/pkg/logger"
)

func Test_Hub_FanOut(t *testing.T) {
	hub := NewHub(&logger.Logger{})
	channel := ChatChannel("u1--u2")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeSubscriber(w, r, []string{channel})
	}))
	defer srv.Close()

	wsURL := strings.Replace(srv.URL, "http", "ws", 1)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// The subscription registers asynchronously with the dial; publish
	// until the event comes through.
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				hub.Trigger(context.Background(), channel, EventIncomingMessage, map[string]string{"text": "hi"})
			}
		}
	}()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var evt Event
	require.NoError(t, conn.ReadJSON(&evt))

	assert.Equal(t, channel, evt.Channel)
	assert.Equal(t, EventIncomingMessage, evt.Event)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(evt.Data, &payload))
	assert.Equal(t, "hi", payload["text"])
}

func Test_Hub_TriggerWithoutSubscribers(t *testing.T) {
	hub := NewHub(&logger.Logger{})

	// Publishing into the void is not an error; realtime is best-effort.
	err := hub.Trigger(context.Background(), RequestsChannel("u9"), EventIncomingFriendRequests, map[string]string{"senderId": "u1"})
	require.NoError(t, err)
}
