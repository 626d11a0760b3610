package chat

import (
	"context"

	Message "friendzone/internal/chat/model"
)

// NOTE: commands travel from handler to usecase
type SendMessageCommand struct {
	SenderID string
	ChatID   string
	Text     string
}

type ChatUsecase interface {
	// SendMessage appends a new message to the conversation's log and
	// publishes it on the conversation's realtime channel.
	SendMessage(ctx context.Context, cmd SendMessageCommand) (*Message.Message, error)

	// History returns the conversation's full log most-recent-first for
	// the given participant.
	History(ctx context.Context, userID, chatID string) ([]Message.Message, error)
}
