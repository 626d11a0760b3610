package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"friendzone/config"
	chatRepository "friendzone/internal/chat/repository"
	chatUsecase "friendzone/internal/chat/usecase"
	friendRepository "friendzone/internal/friend/repository"
	friendUsecase "friendzone/internal/friend/usecase"
	"friendzone/internal/server"
	userRepository "friendzone/internal/user/repository"
	"friendzone/pkg/kv"
	"friendzone/pkg/logger"
	"friendzone/pkg/realtime"
)

func main() {
	// .env is optional; env vars override config file values either way.
	_ = godotenv.Load()

	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	appLogger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	store, err := kv.NewStore(cfg)
	if err != nil {
		log.Fatalf("failed to connect to store: %v", err)
	}

	hub := realtime.NewHub(appLogger)

	users := userRepository.NewUserRepository(store, *appLogger)
	friends := friendRepository.NewFriendRepository(store, *appLogger)
	chats := chatRepository.NewChatRepository(store, *appLogger)

	friendUC := friendUsecase.NewFriendUsecase(friends, users, hub, *appLogger)
	chatUC := chatUsecase.NewChatUsecase(chats, friends, hub, *appLogger)

	handlers := server.NewHandlers(friendUC, chatUC, appLogger)
	router := server.NewRouter(cfg, handlers, hub, appLogger)

	addr := ":" + cfg.Server.Port
	appLogger.Info("server starting", "addr", addr, "environment", cfg.Server.Environment)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
