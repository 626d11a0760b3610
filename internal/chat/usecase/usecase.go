package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"friendzone/internal/chat"
	Message "friendzone/internal/chat/model"
	"friendzone/internal/friend"
	"friendzone/pkg/errors"
	"friendzone/pkg/logger"
	"friendzone/pkg/realtime"
)

type ChatUsecase struct {
	chats     chat.ChatRepository
	friends   friend.FriendRepository
	publisher realtime.Publisher
	logger    logger.Logger
}

func NewChatUsecase(
	chats chat.ChatRepository,
	friends friend.FriendRepository,
	publisher realtime.Publisher,
	logger logger.Logger,
) *ChatUsecase {
	return &ChatUsecase{
		chats:     chats,
		friends:   friends,
		publisher: publisher,
		logger:    logger,
	}
}

// authorize verifies the session user is one half of the conversation id
// and returns the other half.
func (uc *ChatUsecase) authorize(userID, chatID string) (string, error) {
	id1, id2, err := chat.ParseConversationID(chatID)
	if err != nil {
		return "", err
	}
	if userID != id1 && userID != id2 {
		return "", errors.ErrNotParticipant
	}
	if userID == id1 {
		return id2, nil
	}
	return id1, nil
}

func (uc *ChatUsecase) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (*Message.Message, error) {
	if cmd.Text == "" {
		return nil, errors.ErrEmptyMessage
	}

	partnerID, err := uc.authorize(cmd.SenderID, cmd.ChatID)
	if err != nil {
		return nil, err
	}

	isFriend, err := uc.friends.AreFriends(ctx, cmd.SenderID, partnerID)
	if err != nil {
		uc.logger.Error("store error checking friendship", "err", err)
		return nil, errors.ErrStoreFailed(err)
	}
	if !isFriend {
		return nil, errors.ErrNotFriends
	}

	msg := &Message.Message{
		ID:        uuid.NewString(),
		SenderID:  cmd.SenderID,
		Text:      cmd.Text,
		Timestamp: time.Now().UnixMilli(),
	}

	if err := uc.chats.Append(ctx, cmd.ChatID, msg); err != nil {
		uc.logger.Error("store error appending message", "chatId", cmd.ChatID, "err", err)
		return nil, errors.ErrStoreFailed(err)
	}

	err = uc.publisher.Trigger(ctx,
		realtime.ChatChannel(cmd.ChatID),
		realtime.EventIncomingMessage,
		msg,
	)
	if err != nil {
		// The log is the source of truth; a dropped event only costs the
		// live update.
		uc.logger.Warn("message notification dropped", "chatId", cmd.ChatID, "err", err)
	}
	return msg, nil
}

func (uc *ChatUsecase) History(ctx context.Context, userID, chatID string) ([]Message.Message, error) {
	if _, err := uc.authorize(userID, chatID); err != nil {
		return nil, err
	}

	ascending, err := uc.chats.History(ctx, chatID)
	if err != nil {
		uc.logger.Error("store error reading chat log", "chatId", chatID, "err", err)
		return nil, errors.ErrStoreFailed(err)
	}

	// Store order is ascending by timestamp; display wants most recent
	// first.
	reversed := make([]Message.Message, len(ascending))
	for i, msg := range ascending {
		reversed[len(ascending)-1-i] = msg
	}
	return reversed, nil
}
