// Package realtime is the fan-out layer pushing friend-request and message
// events to connected clients. Delivery is at-most-once: the store stays
// the source of truth and a dropped event only costs a live notification.
package realtime

import (
	"context"
	"encoding/json"
	"strings"
)

// Event names carried on the wire.
const (
	EventIncomingFriendRequests = "incoming_friend_requests"
	EventIncomingMessage        = "incoming-message"
)

// Publisher is the server-side half of the fan-out channel.
type Publisher interface {
	Trigger(ctx context.Context, channel, event string, payload any) error
}

// Event is the envelope every subscriber receives.
type Event struct {
	Channel string          `json:"channel"`
	Event   string          `json:"event"`
	Data    json.RawMessage `json:"data"`
}

// ChannelKey rewrites colons to double underscores. The transport reserves
// colons in channel names, so every publisher and subscriber addressing the
// same logical topic must apply this transform or events go nowhere.
func ChannelKey(key string) string {
	return strings.ReplaceAll(key, ":", "__")
}

// RequestsChannel is the personal topic carrying a user's incoming friend
// request events.
func RequestsChannel(userID string) string {
	return ChannelKey("user:" + userID + ":incoming_friend_requests")
}

// ChatChannel is the topic carrying a conversation's message events.
func ChatChannel(chatID string) string {
	return ChannelKey("chat:" + chatID)
}
