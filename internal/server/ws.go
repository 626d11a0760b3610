package server

import (
	"net/http"
	"strings"

	"friendzone/internal/auth"
	"friendzone/internal/chat"
	"friendzone/pkg/errors"
	"friendzone/pkg/realtime"
)

// wsHandler subscribes a client to realtime channels. Channels arrive
// already transformed (colons replaced); a user may only subscribe to their
// own personal channels and conversations they are a party to.
type wsHandler struct {
	hub *realtime.Hub
}

func (h *wsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, errors.ErrNoSession)
		return
	}

	channels := r.URL.Query()["channel"]
	if len(channels) == 0 {
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "no channels requested"})
		return
	}
	for _, ch := range channels {
		if !channelAllowed(session.User.ID, ch) {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "channel not allowed"})
			return
		}
	}

	h.hub.ServeSubscriber(w, r, channels)
}

func channelAllowed(userID, channel string) bool {
	if channel == realtime.RequestsChannel(userID) {
		return true
	}
	if chatID, ok := strings.CutPrefix(channel, realtime.ChannelKey("chat:")); ok {
		id1, id2, err := chat.ParseConversationID(chatID)
		if err != nil {
			return false
		}
		return userID == id1 || userID == id2
	}
	return false
}
