package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"friendzone/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// subscriber is one websocket connection. Writes are serialized by mu since
// gorilla/websocket allows only one concurrent writer per conn.
type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) send(evt Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(evt)
}

// Hub is an in-process Publisher fanning events out over websockets. It is
// a process-wide singleton, constructed once at startup.
type Hub struct {
	logger *logger.Logger

	mu       sync.RWMutex
	channels map[string]map[*subscriber]struct{}
}

func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		logger:   logger,
		channels: make(map[string]map[*subscriber]struct{}),
	}
}

// Trigger delivers the event to every connection subscribed to the channel.
// The channel name must already have passed through ChannelKey. A slow or
// dead connection is dropped rather than retried.
func (h *Hub) Trigger(ctx context.Context, channel, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	evt := Event{Channel: channel, Event: event, Data: data}

	h.mu.RLock()
	subs := make([]*subscriber, 0, len(h.channels[channel]))
	for s := range h.channels[channel] {
		subs = append(subs, s)
	}
	h.mu.RUnlock()

	for _, s := range subs {
		if err := s.send(evt); err != nil {
			h.logger.Warn("dropping dead subscriber", "channel", channel, "err", err)
			h.remove(s)
		}
	}
	return nil
}

// ServeSubscriber upgrades the request and keeps the connection subscribed
// to the given channels until the peer goes away. Channel authorization is
// the caller's job; the hub only routes.
func (h *Hub) ServeSubscriber(w http.ResponseWriter, r *http.Request, channels []string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	for _, ch := range channels {
		if h.channels[ch] == nil {
			h.channels[ch] = make(map[*subscriber]struct{})
		}
		h.channels[ch][sub] = struct{}{}
	}
	h.mu.Unlock()

	defer func() {
		h.remove(sub)
		conn.Close()
	}()

	// Subscribers never send application data; the read loop only notices
	// closure.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

func (h *Hub) remove(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch, subs := range h.channels {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.channels, ch)
		}
	}
}
