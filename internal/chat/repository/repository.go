package repository

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	Message "friendzone/internal/chat/model"
	"friendzone/pkg/kv"
	"friendzone/pkg/logger"
)

type ChatRepository struct {
	store  kv.Store
	logger *logger.Logger
}

func NewChatRepository(store kv.Store, logger logger.Logger) *ChatRepository {
	return &ChatRepository{
		store:  store,
		logger: &logger,
	}
}

func (r *ChatRepository) Append(ctx context.Context, chatID string, msg *Message.Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return errors.Wrap(err, "chatRepo.Append.Marshal: ")
	}

	err = r.store.ZAdd(ctx, kv.ChatMessagesKey(chatID), kv.ZMember{
		Score:  float64(msg.Timestamp),
		Member: string(raw),
	})
	if err != nil {
		return errors.Wrap(err, "chatRepo.Append.ZAdd: ")
	}
	return nil
}

func (r *ChatRepository) History(ctx context.Context, chatID string) ([]Message.Message, error) {
	raws, err := r.store.ZRange(ctx, kv.ChatMessagesKey(chatID), 0, -1)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.History.ZRange: ")
	}

	messages := make([]Message.Message, 0, len(raws))
	for _, raw := range raws {
		var msg Message.Message
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			return nil, errors.Wrap(err, "chatRepo.History.Unmarshal: ")
		}
		if err := msg.Validate(); err != nil {
			return nil, errors.Wrap(err, "chatRepo.History.Validate: ")
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
