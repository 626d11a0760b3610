package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"friendzone/config"
	"friendzone/pkg/logger"
	"friendzone/pkg/realtime"
)

// NewRouter wires the HTTP surface: public health check, authenticated API
// routes and the websocket subscription endpoint.
func NewRouter(cfg *config.Config, handlers *Handlers, hub *realtime.Hub, log *logger.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(corsMiddleware)
	router.Use(loggingMiddleware(log))

	router.HandleFunc("/health", handlers.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(sessionMiddleware(cfg.JWT.Secret))
	api.HandleFunc("/friends/add", handlers.AddFriend).Methods("POST")
	api.HandleFunc("/friends/accept", handlers.AcceptFriend).Methods("POST")
	api.HandleFunc("/friends/requests", handlers.ListFriendRequests).Methods("GET")
	api.HandleFunc("/friends", handlers.ListFriends).Methods("GET")
	api.HandleFunc("/message/send", handlers.SendMessage).Methods("POST")
	api.HandleFunc("/chat/{chatId}/messages", handlers.ChatHistory).Methods("GET")

	ws := &wsHandler{hub: hub}
	wsRoute := router.PathPrefix("/ws").Subrouter()
	wsRoute.Use(sessionMiddleware(cfg.JWT.Secret))
	wsRoute.HandleFunc("", ws.Subscribe).Methods("GET")

	return router
}
