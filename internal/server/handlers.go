package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"friendzone/internal/auth"
	"friendzone/internal/chat"
	"friendzone/internal/friend"
	"friendzone/pkg/errors"
	"friendzone/pkg/logger"
)

// Handlers contains all HTTP handlers. Each one is a single-pass pipeline:
// authenticate, validate, delegate to the usecase, respond.
type Handlers struct {
	friends friend.FriendUsecase
	chats   chat.ChatUsecase
	logger  *logger.Logger
}

func NewHandlers(friends friend.FriendUsecase, chats chat.ChatUsecase, logger *logger.Logger) *Handlers {
	return &Handlers{
		friends: friends,
		chats:   chats,
		logger:  logger,
	}
}

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondOK(w)
}

type addFriendRequest struct {
	Email string `json:"email"`
}

// AddFriend handles POST /api/friends/add
func (h *Handlers) AddFriend(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, errors.ErrNoSession)
		return
	}

	var req addFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid request payload"})
		return
	}

	err := h.friends.AddFriend(r.Context(), friend.AddFriendCommand{
		UserID:    session.User.ID,
		UserEmail: session.User.Email,
		Email:     req.Email,
	})
	if err != nil {
		respondFriendError(w, err)
		return
	}
	respondOK(w)
}

type acceptFriendRequest struct {
	ID string `json:"id"`
}

// AcceptFriend handles POST /api/friends/accept
func (h *Handlers) AcceptFriend(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, errors.ErrNoSession)
		return
	}

	var req acceptFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid request payload"})
		return
	}

	err := h.friends.AcceptFriend(r.Context(), friend.AcceptFriendCommand{
		UserID:      session.User.ID,
		RequesterID: req.ID,
	})
	if err != nil {
		respondFriendError(w, err)
		return
	}
	respondOK(w)
}

// ListFriends handles GET /api/friends
func (h *Handlers) ListFriends(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, errors.ErrNoSession)
		return
	}

	friends, err := h.friends.ListFriends(r.Context(), session.User.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, friends)
}

// ListFriendRequests handles GET /api/friends/requests
func (h *Handlers) ListFriendRequests(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, errors.ErrNoSession)
		return
	}

	requests, err := h.friends.ListIncomingRequests(r.Context(), session.User.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

type sendMessageRequest struct {
	Text   string `json:"text"`
	ChatID string `json:"chatId"`
}

// SendMessage handles POST /api/message/send
func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, errors.ErrNoSession)
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondSendError(w, err)
		return
	}

	msg, err := h.chats.SendMessage(r.Context(), chat.SendMessageCommand{
		SenderID: session.User.ID,
		ChatID:   req.ChatID,
		Text:     req.Text,
	})
	if err != nil {
		respondSendError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

// ChatHistory handles GET /api/chat/{chatId}/messages
func (h *Handlers) ChatHistory(w http.ResponseWriter, r *http.Request) {
	session, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, errors.ErrNoSession)
		return
	}

	chatID := mux.Vars(r)["chatId"]
	messages, err := h.chats.History(r.Context(), session.User.ID, chatID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messages)
}
