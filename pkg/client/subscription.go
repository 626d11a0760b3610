package client

import (
	"encoding/json"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"friendzone/pkg/realtime"
)

// Subscription is the client half of the fan-out channel. It holds one
// websocket connection, dispatches events to bound handlers and keeps a
// timestamp-ordered view of the conversation it watches. Events are a
// convenience layer: the view should be seeded from Messages() and merged,
// never treated as the sole record.
type Subscription struct {
	conn *websocket.Conn

	mu       sync.Mutex
	handlers map[string][]func(realtime.Event)
	view     []Message
	seen     map[string]struct{}
}

// Subscribe dials the websocket endpoint for the given channels. Channel
// names are logical keys ("chat:u1--u2"); the transform to transport-safe
// names happens here so callers never hand-build them.
func (c *Client) Subscribe(channels ...string) (*Subscription, error) {
	wsURL := strings.Replace(c.baseURL, "http", "ws", 1) + "/ws"

	q := url.Values{}
	q.Set("token", c.token)
	for _, ch := range channels {
		q.Add("channel", realtime.ChannelKey(ch))
	}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	sub := &Subscription{
		conn:     conn,
		handlers: make(map[string][]func(realtime.Event)),
		seen:     make(map[string]struct{}),
	}
	go sub.readLoop()
	return sub, nil
}

// Bind registers a handler for an event name.
func (s *Subscription) Bind(event string, handler func(realtime.Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[event] = append(s.handlers[event], handler)
}

// OnMessage binds the incoming-message event, merging each pushed message
// into the local view before invoking the handler.
func (s *Subscription) OnMessage(handler func(Message)) {
	s.Bind(realtime.EventIncomingMessage, func(evt realtime.Event) {
		var msg Message
		if err := json.Unmarshal(evt.Data, &msg); err != nil {
			return
		}
		s.merge(msg)
		if handler != nil {
			handler(msg)
		}
	})
}

// OnFriendRequest binds the incoming_friend_requests event.
func (s *Subscription) OnFriendRequest(handler func(IncomingRequest)) {
	s.Bind(realtime.EventIncomingFriendRequests, func(evt realtime.Event) {
		var req IncomingRequest
		if err := json.Unmarshal(evt.Data, &req); err != nil {
			return
		}
		if handler != nil {
			handler(req)
		}
	})
}

// SeedMessages loads fetched history into the view.
func (s *Subscription) SeedMessages(messages []Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, msg := range messages {
		s.mergeLocked(msg)
	}
}

// Messages returns the local view, most recent first.
func (s *Subscription) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.view))
	copy(out, s.view)
	return out
}

// Close tears the subscription down.
func (s *Subscription) Close() error {
	return s.conn.Close()
}

func (s *Subscription) merge(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mergeLocked(msg)
}

func (s *Subscription) mergeLocked(msg Message) {
	if _, ok := s.seen[msg.ID]; ok {
		return
	}
	s.seen[msg.ID] = struct{}{}
	s.view = append(s.view, msg)
	sort.SliceStable(s.view, func(i, j int) bool {
		return s.view[i].Timestamp > s.view[j].Timestamp
	})
}

func (s *Subscription) readLoop() {
	for {
		var evt realtime.Event
		if err := s.conn.ReadJSON(&evt); err != nil {
			return
		}
		s.mu.Lock()
		handlers := append([]func(realtime.Event){}, s.handlers[evt.Event]...)
		s.mu.Unlock()
		for _, handle := range handlers {
			handle(evt)
		}
	}
}
